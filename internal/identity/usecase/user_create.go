package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/docuvault/docuvault/internal/identity/entity"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
)

type (
	UserCreateInput struct {
		MobileNumber string `validate:"required,mobile_number"`
		Name         string `validate:"required,min=2,max=100"`
		Email        string `validate:"omitempty,email"`
	}

	UserCreateOutput struct {
		User entity.User
	}
)

func (s *Usecase) UserCreate(ctx context.Context, in UserCreateInput) (*UserCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "UserCreate")
	defer span.End()

	if _, err := s.authenticated(ctx); err != nil {
		return nil, err
	}

	in.MobileNumber = strings.TrimSpace(in.MobileNumber)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	newUser := entity.NewUser{
		ID:           s.uid.Generate(),
		MobileNumber: in.MobileNumber,
		Name:         in.Name,
		Email:        in.Email,
		Role:         entity.RoleUser,
	}

	if err := s.repoDB.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			slog.WarnContext(ctx, "user account already exists", "mobile_number", in.MobileNumber)
			return nil, goerror.NewBusiness("User with that mobile number already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create new user", "mobile_number", in.MobileNumber, "error", err)
		return nil, goerror.NewServer(err)
	}

	user, err := s.repoDB.GetUserByID(ctx, newUser.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get created user", "user_id", newUser.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserCreateOutput{User: *user}, nil
}
