package items

import (
	"context"

	"github.com/angelmondragon/hotelops-backend/internal/repo"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, item *models.InventoryItem) error
	FindByID(ctx context.Context, id int64) (*models.InventoryItem, error)
	List(ctx context.Context) ([]models.InventoryItem, error)
	Save(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func (r *repository) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.DB(ctx).Create(item).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.Base.FindByID(ctx, &item, id, "Item"); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) List(ctx context.Context) ([]models.InventoryItem, error) {
	var rows []models.InventoryItem
	err := r.DB(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Save(ctx context.Context, item *models.InventoryItem) error {
	return r.DB(ctx).Select("*").Omit("id").Updates(item).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Delete(&models.InventoryItem{}, id).Error
}
