package models

import "github.com/angelmondragon/hotelops-backend/pkg/enums"

// InventoryItem is a catalog entry; quantities live in ItemStock.
type InventoryItem struct {
	ID            int64              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string             `gorm:"column:name;not null" json:"name"`
	Category      enums.ItemCategory `gorm:"column:category;type:text;not null" json:"category"`
	Unit          enums.Unit         `gorm:"column:unit;type:text;not null" json:"unit"`
	MinStockLevel int                `gorm:"column:min_stock_level;not null" json:"minStockLevel"`
	MaxStockLevel int                `gorm:"column:max_stock_level;not null" json:"maxStockLevel"`
}

func (InventoryItem) TableName() string { return "inventory_items" }
