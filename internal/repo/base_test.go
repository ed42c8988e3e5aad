package repo

import (
	"context"
	"testing"

	"github.com/angelmondragon/hotelops-backend/pkg/db/dbtest"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestNewBaseStoresConnection(t *testing.T) {
	db := dbtest.Open(t).DB()
	base := NewBase(db)

	if base.db != db {
		t.Fatalf("expected base db to match provided connection")
	}
}

func TestBaseDB_BindsContext(t *testing.T) {
	db := dbtest.Open(t).DB()
	base := NewBase(db)

	ctx := context.WithValue(context.Background(), ctxKey{}, "value")
	withCtx := base.DB(ctx)

	if withCtx == nil {
		t.Fatalf("expected non-nil DB when context provided")
	}
	if withCtx.Statement == nil {
		t.Fatalf("expected statement created after WithContext")
	}
	if withCtx.Statement.Context != ctx {
		t.Fatalf("expected context to flow through, got %v", withCtx.Statement.Context)
	}

	withoutCtx := base.DB(nil)
	if withoutCtx != db {
		t.Fatalf("expected nil context to return raw connection")
	}
}

func TestFindByIDMapsMissingRow(t *testing.T) {
	db := dbtest.Open(t).DB()
	base := NewBase(db)
	ctx := context.Background()

	loc := models.StockLocation{Name: "Main Store"}
	require.NoError(t, db.Create(&loc).Error)

	var got models.StockLocation
	require.NoError(t, base.FindByID(ctx, &got, loc.ID, "Location"))
	require.Equal(t, "Main Store", got.Name)

	err := base.FindByID(ctx, &got, loc.ID+100, "Location")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	require.Equal(t, "Location not found", typed.Message())
}
