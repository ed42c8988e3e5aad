package models

// ItemStock is the cached on-hand quantity for one (item, location) pair.
// It must equal the sum of receives minus issues recorded for the pair.
type ItemStock struct {
	ID         int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemID     int64 `gorm:"column:item_id;not null" json:"itemId"`
	LocationID int64 `gorm:"column:location_id;not null" json:"locationId"`
	Quantity   int   `gorm:"column:quantity;not null" json:"quantity"`
}

func (ItemStock) TableName() string { return "item_stock" }
