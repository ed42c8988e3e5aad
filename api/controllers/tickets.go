package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/hotelops-backend/api/responses"
	"github.com/angelmondragon/hotelops-backend/api/validators"
	"github.com/angelmondragon/hotelops-backend/internal/maintenance"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
)

func ListTickets(svc maintenance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("maintenance"))
			return
		}
		rows, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func GetTicket(svc maintenance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("maintenance"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ticket, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ticket)
	}
}

func CreateTicket(svc maintenance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("maintenance"))
			return
		}
		var payload createTicketRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		priority, err := enums.ParseTicketPriority(strings.TrimSpace(payload.Priority))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid priority"))
			return
		}
		ticket, err := svc.Create(r.Context(), maintenance.CreateTicketInput{
			RoomCode:    validators.SanitizeString(payload.RoomCode, 32),
			Description: payload.Description,
			Priority:    priority,
			CreatedBy:   payload.CreatedBy,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, ticket)
	}
}

// UpdateTicket overwrites any provided field, status included.
func UpdateTicket(svc maintenance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("maintenance"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateTicketRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ticket, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ticket)
	}
}

func AssignTicket(svc maintenance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("maintenance"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload assignTicketRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ticket, err := svc.Assign(r.Context(), id, payload.AssignedTo)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ticket)
	}
}

func CloseTicket(svc maintenance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("maintenance"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload closeTicketRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ticket, err := svc.Close(r.Context(), id, maintenance.CloseTicketInput{
			ResolutionNotes: payload.ResolutionNotes,
			Cost:            payload.Cost,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ticket)
	}
}

func DeleteTicket(svc maintenance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("maintenance"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ticket, err := svc.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ticket)
	}
}

type createTicketRequest struct {
	RoomCode    string `json:"roomCode" validate:"required,max=32"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"required"`
	CreatedBy   int64  `json:"createdBy" validate:"required"`
}

type updateTicketRequest struct {
	RoomCode    *string `json:"roomCode,omitempty" validate:"omitempty,min=1,max=32"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	AssignedTo  *int64  `json:"assignedTo,omitempty"`
}

func (r updateTicketRequest) toInput() (maintenance.UpdateTicketInput, error) {
	input := maintenance.UpdateTicketInput{
		RoomCode:    r.RoomCode,
		Description: r.Description,
		AssignedTo:  r.AssignedTo,
	}
	if r.Priority != nil {
		priority, err := enums.ParseTicketPriority(strings.TrimSpace(*r.Priority))
		if err != nil {
			return maintenance.UpdateTicketInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid priority")
		}
		input.Priority = &priority
	}
	if r.Status != nil {
		status, err := enums.ParseTicketStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return maintenance.UpdateTicketInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}
	return input, nil
}

type assignTicketRequest struct {
	AssignedTo int64 `json:"assignedTo" validate:"required"`
}

type closeTicketRequest struct {
	ResolutionNotes *string  `json:"resolutionNotes,omitempty"`
	Cost            *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
}
