package purchasing

import (
	"context"

	"github.com/angelmondragon/hotelops-backend/internal/repo"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository manages purchase orders and the lines they own.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.PurchaseOrder) error
	CreateLines(ctx context.Context, lines []models.PurchaseOrderLine) error
	FindOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error)
	FindSupplier(ctx context.Context, id int64) (*models.Supplier, error)
	ListOrders(ctx context.Context) ([]OrderSummary, error)
	ListLines(ctx context.Context, orderID int64) ([]LineView, error)
	UpdateStatus(ctx context.Context, id int64, input UpdateStatusInput) error
	DeleteLines(ctx context.Context, orderID int64) error
	DeleteOrder(ctx context.Context, id int64) error
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

func (r *repository) CreateOrder(ctx context.Context, order *models.PurchaseOrder) error {
	return r.DB(ctx).Create(order).Error
}

func (r *repository) CreateLines(ctx context.Context, lines []models.PurchaseOrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.DB(ctx).Create(&lines).Error
}

func (r *repository) FindOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	var order models.PurchaseOrder
	if err := r.FindByID(ctx, &order, id, "Purchase order"); err != nil {
		return nil, err
	}
	return &order, nil
}

// FindSupplier returns nil without error when the supplier row is gone.
func (r *repository) FindSupplier(ctx context.Context, id int64) (*models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.DB(ctx).Where("id = ?", id).Limit(1).Find(&suppliers).Error; err != nil {
		return nil, err
	}
	if len(suppliers) == 0 {
		return nil, nil
	}
	return &suppliers[0], nil
}

func (r *repository) ListOrders(ctx context.Context) ([]OrderSummary, error) {
	var rows []OrderSummary
	err := r.DB(ctx).
		Table("purchase_orders AS o").
		Select("o.id, o.supplier_id, o.status, o.expected_date, o.created_by, o.created_at, s.name AS supplier_name").
		Joins("LEFT JOIN suppliers AS s ON s.id = o.supplier_id").
		Order("o.created_at DESC, o.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListLines(ctx context.Context, orderID int64) ([]LineView, error) {
	var rows []LineView
	err := r.DB(ctx).
		Table("purchase_order_lines AS l").
		Select("l.id, l.purchase_order_id, l.item_id, l.quantity, l.unit_price, i.name AS item_name, i.unit AS item_unit").
		Joins("LEFT JOIN inventory_items AS i ON i.id = l.item_id").
		Where("l.purchase_order_id = ?", orderID).
		Order("l.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, input UpdateStatusInput) error {
	updates := map[string]any{"status": input.Status}
	if input.ExpectedDate != nil {
		updates["expected_date"] = *input.ExpectedDate
	}
	return r.DB(ctx).Model(&models.PurchaseOrder{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteLines(ctx context.Context, orderID int64) error {
	return r.DB(ctx).Where("purchase_order_id = ?", orderID).Delete(&models.PurchaseOrderLine{}).Error
}

func (r *repository) DeleteOrder(ctx context.Context, id int64) error {
	return r.DB(ctx).Delete(&models.PurchaseOrder{}, id).Error
}

