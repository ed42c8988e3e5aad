package locations

import (
	"context"

	"github.com/angelmondragon/hotelops-backend/internal/repo"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, location *models.StockLocation) error
	FindByID(ctx context.Context, id int64) (*models.StockLocation, error)
	List(ctx context.Context) ([]models.StockLocation, error)
	Save(ctx context.Context, location *models.StockLocation) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
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

func (r *repository) Create(ctx context.Context, location *models.StockLocation) error {
	return r.DB(ctx).Create(location).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.StockLocation, error) {
	var location models.StockLocation
	if err := r.Base.FindByID(ctx, &location, id, "Location"); err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *repository) List(ctx context.Context) ([]models.StockLocation, error) {
	var rows []models.StockLocation
	err := r.DB(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Save(ctx context.Context, location *models.StockLocation) error {
	return r.DB(ctx).Select("*").Omit("id").Updates(location).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Delete(&models.StockLocation{}, id).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB(ctx).Model(&models.StockLocation{}).Count(&n).Error
	return n, err
}
