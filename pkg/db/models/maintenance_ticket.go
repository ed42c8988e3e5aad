package models

import (
	"time"

	"github.com/angelmondragon/hotelops-backend/pkg/enums"
)

// MaintenanceTicket timestamps are set by the service clock, not by GORM, so
// that UpdatedAt can be kept strictly increasing.
type MaintenanceTicket struct {
	ID              int64                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RoomCode        string               `gorm:"column:room_code;not null" json:"roomCode"`
	Description     string               `gorm:"column:description;not null" json:"description"`
	Priority        enums.TicketPriority `gorm:"column:priority;type:text;not null" json:"priority"`
	Status          enums.TicketStatus   `gorm:"column:status;type:text;not null" json:"status"`
	AssignedTo      *int64               `gorm:"column:assigned_to" json:"assignedTo"`
	ResolutionNotes *string              `gorm:"column:resolution_notes" json:"resolutionNotes"`
	Cost            *float64             `gorm:"column:cost" json:"cost"`
	CreatedBy       int64                `gorm:"column:created_by;not null" json:"createdBy"`
	CreatedAt       time.Time            `gorm:"column:created_at;autoCreateTime:false" json:"createdAt"`
	UpdatedAt       time.Time            `gorm:"column:updated_at;autoUpdateTime:false" json:"updatedAt"`
}

func (MaintenanceTicket) TableName() string { return "maintenance_tickets" }
