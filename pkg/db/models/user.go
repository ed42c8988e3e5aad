package models

import (
	"time"

	"github.com/angelmondragon/hotelops-backend/pkg/enums"
)

// User is an opaque actor referenced by movements, orders and tickets.
type User struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string         `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Name      string         `gorm:"column:name;not null" json:"name"`
	Role      enums.UserRole `gorm:"column:role;type:text;not null" json:"role"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (User) TableName() string { return "users" }
