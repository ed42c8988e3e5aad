package suppliers

import (
	"context"

	"github.com/angelmondragon/hotelops-backend/internal/repo"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, supplier *models.Supplier) error
	FindByID(ctx context.Context, id int64) (*models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
	Save(ctx context.Context, supplier *models.Supplier) error
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

func (r *repository) Create(ctx context.Context, supplier *models.Supplier) error {
	return r.DB(ctx).Create(supplier).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.Base.FindByID(ctx, &supplier, id, "Supplier"); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *repository) List(ctx context.Context) ([]models.Supplier, error) {
	var rows []models.Supplier
	err := r.DB(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Save(ctx context.Context, supplier *models.Supplier) error {
	return r.DB(ctx).Select("*").Omit("id").Updates(supplier).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Delete(&models.Supplier{}, id).Error
}
