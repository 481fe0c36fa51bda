package password_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xxxsen/accountd/internal/pkg/password"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.Hash("Qwer123!")
	require.NoError(t, err)
	require.NotEqual(t, "Qwer123!", hash)
	require.NoError(t, password.Compare(hash, "Qwer123!"))
	require.Error(t, password.Compare(hash, "wrong"))
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("Qwer123!")
	require.NoError(t, err)
	second, err := password.Hash("Qwer123!")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
	require.NoError(t, password.Compare(first, "Qwer123!"))
	require.NoError(t, password.Compare(second, "Qwer123!"))
}
