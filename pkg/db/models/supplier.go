package models

type Supplier struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"column:name;not null" json:"name"`
	ContactEmail *string `gorm:"column:contact_email" json:"contactEmail"`
	ContactPhone *string `gorm:"column:contact_phone" json:"contactPhone"`
	Address      *string `gorm:"column:address" json:"address"`
}

func (Supplier) TableName() string { return "suppliers" }
