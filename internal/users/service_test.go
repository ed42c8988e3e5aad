package users

import (
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/hotelops-backend/pkg/db/dbtest"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetUser(t *testing.T) {
	client := dbtest.Open(t)
	svc, err := NewService(NewRepository(client.DB()))
	require.NoError(t, err)
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserDTO{Email: " Admin@Hotel.com ", Name: "Admin", Role: enums.UserRoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "admin@hotel.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Get(ctx, user.ID+1)
	require.Error(t, err)
	assert.Equal(t, "User not found", pkgerrors.As(err).PublicMessage())
}

func TestDuplicateEmailIsValidationError(t *testing.T) {
	client := dbtest.Open(t)
	svc, err := NewService(NewRepository(client.DB()))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Create(ctx, CreateUserDTO{Email: "a@hotel.com", Name: "A", Role: enums.UserRoleStorekeeper})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateUserDTO{Email: "a@hotel.com", Name: "B", Role: enums.UserRoleMaintenance})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, msgEmailTaken, pkgerrors.As(err).PublicMessage())
}

type stubRepo struct {
	createErr error
}

func (s stubRepo) Create(context.Context, CreateUserDTO) (*models.User, error) {
	return nil, s.createErr
}

func (stubRepo) FindByID(context.Context, int64) (*models.User, error) { return nil, nil }

func (stubRepo) List(context.Context) ([]models.User, error) { return nil, nil }

func TestCreateValidation(t *testing.T) {
	svc, err := NewService(stubRepo{createErr: errors.New("unreachable")})
	require.NoError(t, err)

	cases := []struct {
		name  string
		input CreateUserDTO
	}{
		{"missing email", CreateUserDTO{Name: "A", Role: enums.UserRoleAdmin}},
		{"missing name", CreateUserDTO{Email: "a@b.c", Role: enums.UserRoleAdmin}},
		{"bad role", CreateUserDTO{Email: "a@b.c", Name: "A", Role: "root"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
		})
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	svc, err := NewService(stubRepo{})
	require.NoError(t, err)
	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
