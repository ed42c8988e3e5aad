package items

import (
	"context"
	"io"
	"testing"

	"github.com/angelmondragon/hotelops-backend/internal/stock"
	"github.com/angelmondragon/hotelops-backend/pkg/db"
	"github.com/angelmondragon/hotelops-backend/pkg/db/dbtest"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	client *db.Client
	svc    Service
	ledger stock.Service
	userID int64
	mainID int64
	barID  int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := dbtest.Open(t)
	conn := client.DB()

	user := models.User{Email: "store@hotel.com", Name: "Store", Role: enums.UserRoleStorekeeper}
	require.NoError(t, conn.Create(&user).Error)
	main := models.StockLocation{Name: "Main Store"}
	require.NoError(t, conn.Create(&main).Error)
	bar := models.StockLocation{Name: "Bar"}
	require.NoError(t, conn.Create(&bar).Error)

	ledger, err := stock.NewService(stock.NewRepository(conn), client, logger.New(logger.Options{ServiceName: "test", Output: io.Discard}), nil)
	require.NoError(t, err)
	svc, err := NewService(NewRepository(conn), ledger, client)
	require.NoError(t, err)

	return &fixture{client: client, svc: svc, ledger: ledger, userID: user.ID, mainID: main.ID, barID: bar.ID}
}

func intPtr(v int) *int { return &v }

func TestCreateSeedsZeroRowPerLocation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.svc.Create(ctx, CreateItemInput{
		Name:          "Towels",
		Category:      enums.ItemCategoryLinen,
		Unit:          enums.UnitPiece,
		MinStockLevel: intPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, view.MinStockLevel)
	assert.Equal(t, 100, view.MaxStockLevel)
	assert.Zero(t, view.TotalStock)
	assert.True(t, view.LowStock)
	require.Len(t, view.StockByLocation, 2)
	for _, row := range view.StockByLocation {
		assert.Zero(t, row.Quantity)
		assert.NotEmpty(t, row.LocationName)
	}

	var rows int64
	require.NoError(t, f.client.DB().Model(&models.ItemStock{}).Where("item_id = ?", view.ID).Count(&rows).Error)
	assert.EqualValues(t, 2, rows)
}

func TestCreateDefaultsLevels(t *testing.T) {
	f := newFixture(t)
	view, err := f.svc.Create(context.Background(), CreateItemInput{Name: "Soap", Category: enums.ItemCategoryAmenities, Unit: enums.UnitBox})
	require.NoError(t, err)
	assert.Equal(t, 0, view.MinStockLevel)
	assert.Equal(t, 100, view.MaxStockLevel)
	assert.False(t, view.LowStock)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), CreateItemInput{Name: "Mystery", Category: "Widgets", Unit: enums.UnitPiece})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestListLowStockFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	towels, err := f.svc.Create(ctx, CreateItemInput{Name: "Towels", Category: enums.ItemCategoryLinen, Unit: enums.UnitPiece, MinStockLevel: intPtr(10)})
	require.NoError(t, err)
	soap, err := f.svc.Create(ctx, CreateItemInput{Name: "Soap", Category: enums.ItemCategoryAmenities, Unit: enums.UnitBox, MinStockLevel: intPtr(5)})
	require.NoError(t, err)

	_, err = f.ledger.Receive(ctx, stock.MovementInput{ItemID: soap.ID, LocationID: f.barID, Quantity: 8, PerformedBy: f.userID})
	require.NoError(t, err)

	all, err := f.svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 8, all[1].TotalStock)

	low := true
	onlyLow, err := f.svc.List(ctx, ListFilter{LowStock: &low})
	require.NoError(t, err)
	require.Len(t, onlyLow, 1)
	assert.Equal(t, towels.ID, onlyLow[0].ID)
}

func TestUpdateIsPartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, CreateItemInput{Name: "Towels", Category: enums.ItemCategoryLinen, Unit: enums.UnitPiece, MinStockLevel: intPtr(10)})
	require.NoError(t, err)

	name := "Bath Towels"
	updated, err := f.svc.Update(ctx, created.ID, UpdateItemInput{Name: &name, MinStockLevel: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, "Bath Towels", updated.Name)
	assert.Equal(t, enums.ItemCategoryLinen, updated.Category)
	assert.Equal(t, 0, updated.MinStockLevel)
	assert.False(t, updated.LowStock)

	_, err = f.svc.Update(ctx, 999, UpdateItemInput{Name: &name})
	require.Error(t, err)
	assert.Equal(t, "Item not found", pkgerrors.As(err).PublicMessage())
}

func TestDeletePurgesStockRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, CreateItemInput{Name: "Towels", Category: enums.ItemCategoryLinen, Unit: enums.UnitPiece})
	require.NoError(t, err)

	deleted, err := f.svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Towels", deleted.Name)

	var rows int64
	require.NoError(t, f.client.DB().Model(&models.ItemStock{}).Count(&rows).Error)
	assert.Zero(t, rows)

	_, err = f.svc.Get(ctx, created.ID)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestDeleteWithMovementsFailsAndRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, CreateItemInput{Name: "Towels", Category: enums.ItemCategoryLinen, Unit: enums.UnitPiece})
	require.NoError(t, err)
	_, err = f.ledger.Receive(ctx, stock.MovementInput{ItemID: created.ID, LocationID: f.mainID, Quantity: 5, PerformedBy: f.userID})
	require.NoError(t, err)

	_, err = f.svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeInternal))

	view, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, view.TotalStock)
	assert.Len(t, view.StockByLocation, 2)
}
