package items

import (
	"github.com/angelmondragon/hotelops-backend/internal/stock"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
)

const (
	defaultMinStockLevel = 0
	defaultMaxStockLevel = 100
)

// ItemView is a catalog entry with its stock aggregate.
type ItemView struct {
	models.InventoryItem
	stock.View
	LowStock bool `json:"lowStock"`
}

func newItemView(item models.InventoryItem, view stock.View) ItemView {
	if view.StockByLocation == nil {
		view.StockByLocation = []stock.LocationStock{}
	}
	return ItemView{
		InventoryItem: item,
		View:          view,
		LowStock:      view.TotalStock < item.MinStockLevel,
	}
}

type CreateItemInput struct {
	Name          string
	Category      enums.ItemCategory
	Unit          enums.Unit
	MinStockLevel *int
	MaxStockLevel *int
}

// UpdateItemInput is a partial overwrite; nil fields are kept.
type UpdateItemInput struct {
	Name          *string
	Category      *enums.ItemCategory
	Unit          *enums.Unit
	MinStockLevel *int
	MaxStockLevel *int
}

type ListFilter struct {
	// LowStock, when set, keeps only items whose lowStock flag matches.
	LowStock *bool
}
