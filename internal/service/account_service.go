package service

import (
	"context"
	"time"

	"github.com/xxxsen/accountd/internal/model"
	appErr "github.com/xxxsen/accountd/internal/pkg/errors"
	"github.com/xxxsen/accountd/internal/pkg/password"
	"github.com/xxxsen/accountd/internal/pkg/validate"
)

type AccountService struct {
	users UserDirectory
}

func NewAccountService(users UserDirectory) *AccountService {
	return &AccountService{users: users}
}

type RegisterParams struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

type UpdateProfileParams struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

func duplicateEmailViolation() appErr.FieldViolation {
	return appErr.FieldViolation{Field: "email", Message: "email is already in use"}
}

// Register creates a new account. The email-in-use pre-check is best effort;
// the directory's uniqueness constraint is what actually decides the race,
// and an insert-time conflict is reported as the same duplicate-email
// validation failure.
func (s *AccountService) Register(ctx context.Context, params RegisterParams) (*model.PublicUser, error) {
	email := validate.NormalizeEmail(params.Email)
	violations := validate.Email(email)
	violations = append(violations, validate.Password(params.Password)...)
	if params.FirstName != nil {
		violations = append(violations, validate.Name("first_name", *params.FirstName)...)
	}
	if params.LastName != nil {
		violations = append(violations, validate.Name("last_name", *params.LastName)...)
	}
	if len(violations) == 0 {
		if _, err := s.users.GetByEmail(ctx, email); err == nil {
			violations = append(violations, duplicateEmailViolation())
		} else if !appErr.IsNotFound(err) {
			return nil, err
		}
	}
	if len(violations) > 0 {
		return nil, appErr.NewValidationError(violations...)
	}

	hash, err := password.Hash(params.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().Unix()
	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Ctime:        now,
		Mtime:        now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if appErr.IsConflict(err) {
			return nil, appErr.NewValidationError(duplicateEmailViolation())
		}
		return nil, err
	}
	return user.Public(), nil
}

// UpdateProfile applies a subset of {first_name, last_name, email, password}.
// Nil fields are dropped; an empty resulting set is a no-op and returns
// (nil, nil) without touching storage. A password is always hashed before it
// is written. The email uniqueness check exempts the user's own address.
func (s *AccountService) UpdateProfile(ctx context.Context, userID int64, params UpdateProfileParams) (*model.PublicUser, error) {
	fields := make(map[string]interface{})
	var violations []appErr.FieldViolation

	if params.FirstName != nil {
		violations = append(violations, validate.Name("first_name", *params.FirstName)...)
		fields["first_name"] = *params.FirstName
	}
	if params.LastName != nil {
		violations = append(violations, validate.Name("last_name", *params.LastName)...)
		fields["last_name"] = *params.LastName
	}
	if params.Email != nil {
		email := validate.NormalizeEmail(*params.Email)
		if vs := validate.Email(email); len(vs) > 0 {
			violations = append(violations, vs...)
		} else if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing.ID != userID {
			violations = append(violations, duplicateEmailViolation())
		} else if err != nil && !appErr.IsNotFound(err) {
			return nil, err
		}
		fields["email"] = email
	}
	if params.Password != nil {
		violations = append(violations, validate.Password(*params.Password)...)
	}
	if len(violations) > 0 {
		return nil, appErr.NewValidationError(violations...)
	}
	if params.Password != nil {
		hash, err := password.Hash(*params.Password)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hash
	}
	if len(fields) == 0 {
		return nil, nil
	}

	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		if appErr.IsConflict(err) {
			return nil, appErr.NewValidationError(duplicateEmailViolation())
		}
		return nil, err
	}
	updated, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return updated.Public(), nil
}

func (s *AccountService) FetchProfile(ctx context.Context, userID int64) (*model.PublicUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}
