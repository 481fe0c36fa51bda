package service

import (
	"context"
	"time"

	"github.com/xxxsen/accountd/internal/model"
	appErr "github.com/xxxsen/accountd/internal/pkg/errors"
	"github.com/xxxsen/accountd/internal/pkg/jwt"
	"github.com/xxxsen/accountd/internal/pkg/password"
	"github.com/xxxsen/accountd/internal/pkg/validate"
)

type AuthService struct {
	users     UserDirectory
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(users UserDirectory, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: secret, jwtTTL: ttl}
}

// Login verifies email+password and mints a session token. Unknown email and
// wrong password are indistinguishable to the caller; directory failures stay
// internal errors and are never mapped to unauthorized.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*model.PublicUser, string, error) {
	email = validate.NormalizeEmail(email)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if appErr.IsNotFound(err) {
			return nil, "", appErr.ErrUnauthorized
		}
		return nil, "", err
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return nil, "", appErr.ErrUnauthorized
	}
	token, err := jwt.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user.Public(), token, nil
}
