package service

import (
	"context"

	"github.com/xxxsen/accountd/internal/model"
)

// UserDirectory is the storage port for user records. Implementations must
// enforce email uniqueness atomically on Create and UpdateFields, returning
// a conflict error rather than racing; lookups return a not-found error when
// no record matches.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, userID int64) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) error
}
