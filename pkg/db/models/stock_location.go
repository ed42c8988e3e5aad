package models

type StockLocation struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Description *string `gorm:"column:description" json:"description"`
}

func (StockLocation) TableName() string { return "stock_locations" }
