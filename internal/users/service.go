package users

import (
	"context"
	"fmt"

	"github.com/angelmondragon/hotelops-backend/pkg/db"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
)

const msgEmailTaken = "Email already exists"

type repository interface {
	Create(ctx context.Context, dto CreateUserDTO) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// Service manages the opaque actors referenced by movements, orders and
// tickets. There is no login or session state.
type Service interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, input CreateUserDTO) (*models.User, error)
}

type service struct {
	repo repository
}

func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users")
	}
	if rows == nil {
		rows = []models.User{}
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return user, nil
}

func (s *service) Create(ctx context.Context, input CreateUserDTO) (*models.User, error) {
	model := input.ToModel()
	switch {
	case model.Email == "":
		return nil, pkgerrors.Validation("email is required")
	case model.Name == "":
		return nil, pkgerrors.Validation("name is required")
	case !model.Role.IsValid():
		return nil, pkgerrors.Validation(fmt.Sprintf("invalid role %q", input.Role))
	}

	user, err := s.repo.Create(ctx, input)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, msgEmailTaken)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}
	return user, nil
}
