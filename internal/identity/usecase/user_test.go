package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/docuvault/docuvault/internal/identity/entity"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
	"github.com/docuvault/docuvault/internal/pkg/jwt"
)

func authedContext() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		UserID:       42,
		MobileNumber: "+15550000042",
		Role:         entity.RoleUser,
	})
}

func TestUserList(t *testing.T) {

	t.Run("RequiresAuth", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.UserList(context.Background(), UserListInput{})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("DefaultsAndOffset", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		var got entity.UserListFilter
		f.repo.getUserList = func(_ context.Context, filter entity.UserListFilter) ([]entity.User, int64, error) {
			got = filter
			return []entity.User{{ID: 1}}, 21, nil
		}

		// Act
		out, err := f.uc.UserList(authedContext(), UserListInput{Page: 3})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Size != 10 {
			t.Fatalf("size = %d, want default 10", got.Size)
		}
		if got.Page != 20 {
			t.Fatalf("offset = %d, want 20", got.Page)
		}
		if out.Total != 21 || out.Page != 3 {
			t.Fatalf("meta = page %d total %d", out.Page, out.Total)
		}
	})

	t.Run("CapsOversizedPage", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		var got entity.UserListFilter
		f.repo.getUserList = func(_ context.Context, filter entity.UserListFilter) ([]entity.User, int64, error) {
			got = filter
			return nil, 0, nil
		}

		// Act
		_, err := f.uc.UserList(authedContext(), UserListInput{Size: 500})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Size != 10 {
			t.Fatalf("size = %d, want fallback 10", got.Size)
		}
	})
}

func TestUserDetail(t *testing.T) {

	t.Run("Found", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		f.repo.getUserByID = func(_ context.Context, id int64) (*entity.User, error) {
			return &entity.User{ID: id, Name: "Sam"}, nil
		}

		// Act
		out, err := f.uc.UserDetail(authedContext(), UserDetailInput{ID: 5})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID != 5 || out.User.Name != "Sam" {
			t.Fatalf("user = %+v", out.User)
		}
	})

	t.Run("NotFound", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		f.repo.getUserByID = func(context.Context, int64) (*entity.User, error) {
			return nil, goerror.ErrNotFound
		}

		// Act
		_, err := f.uc.UserDetail(authedContext(), UserDetailInput{ID: 5})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
		if gerr.Msg() != "User not found" {
			t.Fatalf("message = %q", gerr.Msg())
		}
	})

	t.Run("RejectsZeroID", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.UserDetail(authedContext(), UserDetailInput{ID: 0})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Type() != goerror.TypeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestUserCreate(t *testing.T) {

	t.Run("CreatesWithDefaults", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		var created entity.NewUser
		f.repo.createUser = func(_ context.Context, in entity.NewUser) error {
			created = in
			return nil
		}
		f.repo.getUserByID = func(_ context.Context, id int64) (*entity.User, error) {
			return &entity.User{ID: id, MobileNumber: created.MobileNumber, Name: created.Name, Role: created.Role}, nil
		}

		// Act
		out, err := f.uc.UserCreate(authedContext(), UserCreateInput{
			MobileNumber: " +15557770001 ",
			Name:         "  Alex Doe ",
			Email:        "Alex@Example.COM",
		})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.MobileNumber != "+15557770001" {
			t.Fatalf("number = %q, want trimmed", created.MobileNumber)
		}
		if created.Name != "Alex Doe" {
			t.Fatalf("name = %q, want trimmed", created.Name)
		}
		if created.Email != "alex@example.com" {
			t.Fatalf("email = %q, want lowercased", created.Email)
		}
		if created.Role != entity.RoleUser {
			t.Fatalf("role = %q", created.Role)
		}
		if out.User.ID != created.ID {
			t.Fatalf("returned user id = %d, want %d", out.User.ID, created.ID)
		}
	})

	t.Run("DuplicateNumber", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		f.repo.createUser = func(context.Context, entity.NewUser) error {
			return goerror.ErrConflict
		}

		// Act
		_, err := f.uc.UserCreate(authedContext(), UserCreateInput{
			MobileNumber: "+15557770002",
			Name:         "Dup User",
		})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("InvalidEmail", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.UserCreate(authedContext(), UserCreateInput{
			MobileNumber: "+15557770003",
			Name:         "Bad Email",
			Email:        "not-an-email",
		})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Type() != goerror.TypeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
