package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/hotelops-backend/api/responses"
	"github.com/angelmondragon/hotelops-backend/api/validators"
	"github.com/angelmondragon/hotelops-backend/internal/purchasing"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
)

func ListPurchaseOrders(svc purchasing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("purchasing"))
			return
		}
		rows, err := svc.ListOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func GetPurchaseOrder(svc purchasing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("purchasing"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.GetOrder(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// CreatePurchaseOrder writes the order and all of its lines, or nothing.
func CreatePurchaseOrder(svc purchasing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("purchasing"))
			return
		}
		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.CreateOrder(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, order)
	}
}

func UpdatePurchaseOrder(svc purchasing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("purchasing"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		status, err := enums.ParsePurchaseOrderStatus(strings.TrimSpace(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}
		order, err := svc.UpdateStatus(r.Context(), id, purchasing.UpdateStatusInput{
			Status:       status,
			ExpectedDate: payload.ExpectedDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func DeletePurchaseOrder(svc purchasing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("purchasing"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.DeleteOrder(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

type createOrderRequest struct {
	SupplierID   int64              `json:"supplierId" validate:"required"`
	ExpectedDate *string            `json:"expectedDate,omitempty"`
	CreatedBy    int64              `json:"createdBy" validate:"required"`
	Status       *string            `json:"status,omitempty"`
	Lines        []orderLineRequest `json:"lines" validate:"dive"`
}

type orderLineRequest struct {
	ItemID    int64   `json:"itemId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

func (r createOrderRequest) toInput() (purchasing.CreateOrderInput, error) {
	input := purchasing.CreateOrderInput{
		SupplierID:   r.SupplierID,
		ExpectedDate: r.ExpectedDate,
		CreatedBy:    r.CreatedBy,
		Lines:        make([]purchasing.LineInput, 0, len(r.Lines)),
	}
	if r.Status != nil {
		status, err := enums.ParsePurchaseOrderStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return purchasing.CreateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = status
	}
	for _, line := range r.Lines {
		input.Lines = append(input.Lines, purchasing.LineInput{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return input, nil
}

type updateOrderRequest struct {
	Status       string  `json:"status" validate:"required"`
	ExpectedDate *string `json:"expectedDate,omitempty"`
}
