package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErr "github.com/xxxsen/accountd/internal/pkg/errors"
	"github.com/xxxsen/accountd/internal/pkg/jwt"
	"github.com/xxxsen/accountd/internal/service"
)

func TestLogin(t *testing.T) {
	dir := newFakeDirectory()
	accounts := service.NewAccountService(dir)
	secret := []byte("test-secret")
	auth := service.NewAuthService(dir, secret, time.Hour)

	created, err := accounts.Register(context.Background(), service.RegisterParams{Email: "a@x.com", Password: "Qwer123!"})
	require.NoError(t, err)

	user, token, err := auth.Login(context.Background(), "A@X.com", "Qwer123!")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	claims, err := jwt.ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, created.ID, claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	dir := newFakeDirectory()
	accounts := service.NewAccountService(dir)
	auth := service.NewAuthService(dir, []byte("test-secret"), time.Hour)

	_, err := accounts.Register(context.Background(), service.RegisterParams{Email: "a@x.com", Password: "Qwer123!"})
	require.NoError(t, err)

	_, _, err = auth.Login(context.Background(), "a@x.com", "wrong")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	dir := newFakeDirectory()
	auth := service.NewAuthService(dir, []byte("test-secret"), time.Hour)

	_, _, err := auth.Login(context.Background(), "nobody@x.com", "Qwer123!")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)
}
