package maintenance

import (
	"context"

	"github.com/angelmondragon/hotelops-backend/internal/repo"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, ticket *models.MaintenanceTicket) error
	FindByID(ctx context.Context, id int64) (*models.MaintenanceTicket, error)
	FindUser(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.MaintenanceTicket, error)
	Save(ctx context.Context, ticket *models.MaintenanceTicket) error
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

func (r *repository) Create(ctx context.Context, ticket *models.MaintenanceTicket) error {
	return r.DB(ctx).Create(ticket).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.MaintenanceTicket, error) {
	var ticket models.MaintenanceTicket
	if err := r.Base.FindByID(ctx, &ticket, id, "Ticket"); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// FindUser returns nil without error for a dangling reference.
func (r *repository) FindUser(ctx context.Context, id int64) (*models.User, error) {
	var users []models.User
	if err := r.DB(ctx).Where("id = ?", id).Limit(1).Find(&users).Error; err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *repository) List(ctx context.Context) ([]models.MaintenanceTicket, error) {
	var tickets []models.MaintenanceTicket
	err := r.DB(ctx).Order("created_at DESC, id DESC").Find(&tickets).Error
	return tickets, err
}

func (r *repository) Save(ctx context.Context, ticket *models.MaintenanceTicket) error {
	return r.DB(ctx).Select("*").Omit("id").Updates(ticket).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Delete(&models.MaintenanceTicket{}, id).Error
}
