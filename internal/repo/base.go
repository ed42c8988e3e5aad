package repo

import (
	"context"

	"github.com/angelmondragon/hotelops-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"gorm.io/gorm"
)

// Base provides a shared foundation for domain repositories.
type Base struct {
	db *gorm.DB
}

// NewBase constructs a Base repository backed by the provided GORM connection.
func NewBase(conn *gorm.DB) Base {
	return Base{db: conn}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// FindByID loads dest by primary key, mapping a missing row to the
// canonical "<entity> not found" error.
func (b Base) FindByID(ctx context.Context, dest any, id int64, entity string) error {
	err := b.DB(ctx).First(dest, id).Error
	if db.IsNotFound(err) {
		return pkgerrors.NotFound(entity)
	}
	return err
}
