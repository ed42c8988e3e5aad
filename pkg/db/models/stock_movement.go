package models

import (
	"time"

	"github.com/angelmondragon/hotelops-backend/pkg/enums"
)

// StockMovement is an append-only ledger entry. Rows are never updated.
type StockMovement struct {
	ID           int64              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemID       int64              `gorm:"column:item_id;not null" json:"itemId"`
	LocationID   int64              `gorm:"column:location_id;not null" json:"locationId"`
	MovementType enums.MovementType `gorm:"column:movement_type;type:text;not null" json:"movementType"`
	Quantity     int                `gorm:"column:quantity;not null" json:"quantity"`
	ReferenceID  *string            `gorm:"column:reference_id" json:"referenceId"`
	PerformedBy  int64              `gorm:"column:performed_by;not null" json:"performedBy"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime:false" json:"createdAt"`
}

func (StockMovement) TableName() string { return "stock_movements" }
