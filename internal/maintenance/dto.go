package maintenance

import (
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
)

type CreateTicketInput struct {
	RoomCode    string
	Description string
	Priority    enums.TicketPriority
	CreatedBy   int64
}

// UpdateTicketInput carries a partial overwrite; nil fields are left alone.
// Status may be set to any variant.
type UpdateTicketInput struct {
	RoomCode    *string
	Description *string
	Priority    *enums.TicketPriority
	Status      *enums.TicketStatus
	AssignedTo  *int64
}

// CloseTicketInput leaves stored notes and cost alone when a field is nil.
type CloseTicketInput struct {
	ResolutionNotes *string
	Cost            *float64
}

// TicketDetail resolves the actor references on a ticket.
type TicketDetail struct {
	models.MaintenanceTicket
	AssignedToUser *models.User `json:"assignedToUser"`
	CreatedByUser  *models.User `json:"createdByUser"`
}
