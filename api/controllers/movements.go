package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/hotelops-backend/api/responses"
	"github.com/angelmondragon/hotelops-backend/api/validators"
	"github.com/angelmondragon/hotelops-backend/internal/stock"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
)

const maxMovementsLimit = 1000

// ListMovements returns the ledger newest first. itemId, locationId and
// limit are optional filters.
func ListMovements(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("stock"))
			return
		}
		itemID, err := validators.ParseQueryID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		locationID, err := validators.ParseQueryID(r, "locationId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, maxMovementsLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.ListMovements(r.Context(), stock.MovementFilter{
			ItemID:     itemID,
			LocationID: locationID,
			Limit:      limit,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func ReceiveStock(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("stock"))
			return
		}
		postMovement(w, r, logg, svc.Receive)
	}
}

// IssueStock rejects requests exceeding the on-hand quantity with
// INSUFFICIENT_STOCK and leaves the ledger untouched.
func IssueStock(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("stock"))
			return
		}
		postMovement(w, r, logg, svc.Issue)
	}
}

type postFunc func(ctx context.Context, input stock.MovementInput) (*models.StockMovement, error)

func postMovement(w http.ResponseWriter, r *http.Request, logg *logger.Logger, post postFunc) {
	var payload movementRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}

	var referenceID *string
	if payload.ReferenceID != nil {
		if ref := validators.SanitizeString(*payload.ReferenceID, 0); ref != "" {
			referenceID = &ref
		}
	}

	movement, err := post(r.Context(), stock.MovementInput{
		ItemID:      payload.ItemID,
		LocationID:  payload.LocationID,
		Quantity:    payload.Quantity,
		ReferenceID: referenceID,
		PerformedBy: payload.PerformedBy,
	})
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}
	responses.WriteCreated(w, movement)
}

// Quantity is checked by the ledger so that zero and negative values get
// the "Quantity must be positive" message.
type movementRequest struct {
	ItemID      int64   `json:"itemId" validate:"required"`
	LocationID  int64   `json:"locationId" validate:"required"`
	Quantity    int     `json:"quantity"`
	ReferenceID *string `json:"referenceId,omitempty" validate:"omitempty,max=120"`
	PerformedBy int64   `json:"performedBy" validate:"required"`
}
