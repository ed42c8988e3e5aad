package stock

import (
	"context"

	"github.com/angelmondragon/hotelops-backend/internal/repo"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository owns item_stock and stock_movements.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	AddQuantity(ctx context.Context, itemID, locationID int64, qty int) error
	DeductQuantity(ctx context.Context, itemID, locationID int64, qty int) (bool, error)
	Quantity(ctx context.Context, itemID, locationID int64) (int, bool, error)
	CreateMovement(ctx context.Context, movement *models.StockMovement) error
	ListLocationStock(ctx context.Context, itemIDs []int64) ([]LocationStock, error)
	ListMovements(ctx context.Context, filter MovementFilter) ([]MovementView, error)
	InitItemRows(ctx context.Context, itemID int64) (int64, error)
	DeleteItemRows(ctx context.Context, itemID int64) error
}

type repository struct {
	repo.Base
}

// NewRepository returns a stock repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

// AddQuantity upserts the (item, location) row in one statement so concurrent
// receives cannot lose an increment.
func (r *repository) AddQuantity(ctx context.Context, itemID, locationID int64, qty int) error {
	row := models.ItemStock{ItemID: itemID, LocationID: locationID, Quantity: qty}
	return r.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "item_id"}, {Name: "location_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("item_stock.quantity + excluded.quantity"),
			}),
		}).
		Create(&row).Error
}

// DeductQuantity decrements only when enough stock is on hand. It reports
// false when no row matched, which covers both a missing row and a short one.
func (r *repository) DeductQuantity(ctx context.Context, itemID, locationID int64, qty int) (bool, error) {
	res := r.DB(ctx).
		Model(&models.ItemStock{}).
		Where("item_id = ? AND location_id = ? AND quantity >= ?", itemID, locationID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Quantity(ctx context.Context, itemID, locationID int64) (int, bool, error) {
	var rows []models.ItemStock
	if err := r.DB(ctx).
		Where("item_id = ? AND location_id = ?", itemID, locationID).
		Limit(1).
		Find(&rows).Error; err != nil {
		return 0, false, err
	}
	if len(rows) == 0 {
		return 0, false, nil
	}
	return rows[0].Quantity, true, nil
}

func (r *repository) CreateMovement(ctx context.Context, movement *models.StockMovement) error {
	return r.DB(ctx).Create(movement).Error
}

// ListLocationStock returns stock rows joined with location names. A nil
// itemIDs slice returns every row.
func (r *repository) ListLocationStock(ctx context.Context, itemIDs []int64) ([]LocationStock, error) {
	q := r.DB(ctx).
		Table("item_stock AS s").
		Select("s.item_id, s.location_id, COALESCE(l.name, '') AS location_name, s.quantity").
		Joins("LEFT JOIN stock_locations AS l ON l.id = s.location_id").
		Order("s.item_id ASC, s.location_id ASC")
	if itemIDs != nil {
		if len(itemIDs) == 0 {
			return []LocationStock{}, nil
		}
		q = q.Where("s.item_id IN ?", itemIDs)
	}
	var rows []LocationStock
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListMovements(ctx context.Context, filter MovementFilter) ([]MovementView, error) {
	q := r.DB(ctx).
		Table("stock_movements AS m").
		Select(`m.id, m.item_id, m.location_id, m.movement_type, m.quantity, m.reference_id,
			m.performed_by, m.created_at,
			COALESCE(i.name, '') AS item_name,
			COALESCE(l.name, '') AS location_name,
			COALESCE(u.name, '') AS performed_by_name`).
		Joins("LEFT JOIN inventory_items AS i ON i.id = m.item_id").
		Joins("LEFT JOIN stock_locations AS l ON l.id = m.location_id").
		Joins("LEFT JOIN users AS u ON u.id = m.performed_by").
		Order("m.created_at DESC, m.id DESC")
	if filter.ItemID > 0 {
		q = q.Where("m.item_id = ?", filter.ItemID)
	}
	if filter.LocationID > 0 {
		q = q.Where("m.location_id = ?", filter.LocationID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	var rows []MovementView
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// InitItemRows inserts a zero-quantity row at every existing location.
func (r *repository) InitItemRows(ctx context.Context, itemID int64) (int64, error) {
	res := r.DB(ctx).Exec(
		"INSERT INTO item_stock (item_id, location_id, quantity) SELECT ?, id, 0 FROM stock_locations",
		itemID,
	)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteItemRows(ctx context.Context, itemID int64) error {
	return r.DB(ctx).Where("item_id = ?", itemID).Delete(&models.ItemStock{}).Error
}
