package purchasing

import (
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

type LineInput struct {
	ItemID    int64
	Quantity  int
	UnitPrice float64
}

type CreateOrderInput struct {
	SupplierID   int64
	ExpectedDate *string
	CreatedBy    int64
	// Status defaults to Draft when empty.
	Status enums.PurchaseOrderStatus
	Lines  []LineInput
}

// UpdateStatusInput overwrites the status; a nil ExpectedDate leaves it unchanged.
type UpdateStatusInput struct {
	Status       enums.PurchaseOrderStatus
	ExpectedDate *string
}

// OrderSummary is a list row.
type OrderSummary struct {
	models.PurchaseOrder
	SupplierName *string `gorm:"column:supplier_name" json:"supplierName"`
}

type LineView struct {
	models.PurchaseOrderLine
	ItemName *string `gorm:"column:item_name" json:"itemName"`
	ItemUnit *string `gorm:"column:item_unit" json:"itemUnit"`
}

// OrderDetail is the order with its resolved supplier, lines and computed total.
type OrderDetail struct {
	models.PurchaseOrder
	Supplier *models.Supplier `json:"supplier"`
	Lines    []LineView       `json:"lines"`
	Total    float64          `json:"total"`
}

// OrderTotal sums quantity × unitPrice in decimal so that cents do not drift.
func OrderTotal(lines []models.PurchaseOrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromInt(int64(line.Quantity)).Mul(decimal.NewFromFloat(line.UnitPrice)))
	}
	return total
}
