package seed

import (
	"context"
	"testing"

	"github.com/angelmondragon/hotelops-backend/pkg/db/dbtest"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIsIdempotent(t *testing.T) {
	client := dbtest.Open(t)
	ctx := context.Background()

	res, err := Run(ctx, client, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 3, res.UsersCreated)
	assert.Equal(t, 4, res.LocationsCreated)

	res, err = Run(ctx, client, logger.Nop())
	require.NoError(t, err)
	assert.Zero(t, res.UsersCreated)
	assert.Zero(t, res.LocationsCreated)

	var users, locations int64
	require.NoError(t, client.DB().Model(&models.User{}).Count(&users).Error)
	require.NoError(t, client.DB().Model(&models.StockLocation{}).Count(&locations).Error)
	assert.EqualValues(t, 3, users)
	assert.EqualValues(t, 4, locations)
}

func TestRunSkipsPopulatedGroupOnly(t *testing.T) {
	client := dbtest.Open(t)
	ctx := context.Background()

	require.NoError(t, client.DB().Create(&models.StockLocation{Name: "Lobby"}).Error)

	res, err := Run(ctx, client, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.UsersCreated)
	assert.Zero(t, res.LocationsCreated)
}
