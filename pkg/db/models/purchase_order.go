package models

import (
	"time"

	"github.com/angelmondragon/hotelops-backend/pkg/enums"
)

// PurchaseOrder owns its lines. Totals are computed on read and never stored.
type PurchaseOrder struct {
	ID           int64                     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SupplierID   int64                     `gorm:"column:supplier_id;not null" json:"supplierId"`
	Status       enums.PurchaseOrderStatus `gorm:"column:status;type:text;not null" json:"status"`
	ExpectedDate *string                   `gorm:"column:expected_date" json:"expectedDate"`
	CreatedBy    int64                     `gorm:"column:created_by;not null" json:"createdBy"`
	CreatedAt    time.Time                 `gorm:"column:created_at;autoCreateTime:false" json:"createdAt"`
}

func (PurchaseOrder) TableName() string { return "purchase_orders" }

type PurchaseOrderLine struct {
	ID              int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PurchaseOrderID int64   `gorm:"column:purchase_order_id;not null" json:"purchaseOrderId"`
	ItemID          int64   `gorm:"column:item_id;not null" json:"itemId"`
	Quantity        int     `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice       float64 `gorm:"column:unit_price;not null" json:"unitPrice"`
}

func (PurchaseOrderLine) TableName() string { return "purchase_order_lines" }
