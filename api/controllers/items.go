package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/hotelops-backend/api/responses"
	"github.com/angelmondragon/hotelops-backend/api/validators"
	itemsvc "github.com/angelmondragon/hotelops-backend/internal/items"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
)

// ListItems returns every item with its stock view; ?lowStock=true narrows to
// items under their minimum level.
func ListItems(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("item"))
			return
		}
		lowStock, err := validators.ParseQueryBool(r, "lowStock")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.List(r.Context(), itemsvc.ListFilter{LowStock: lowStock})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func GetItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("item"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func CreateItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("item"))
			return
		}
		var payload createItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, item)
	}
}

func UpdateItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("item"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func DeleteItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("item"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

type createItemRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Category      string `json:"category" validate:"required"`
	Unit          string `json:"unit" validate:"required"`
	MinStockLevel *int   `json:"minStockLevel,omitempty" validate:"omitempty,min=0"`
	MaxStockLevel *int   `json:"maxStockLevel,omitempty" validate:"omitempty,min=0"`
}

func (r createItemRequest) toInput() (itemsvc.CreateItemInput, error) {
	category, err := enums.ParseItemCategory(strings.TrimSpace(r.Category))
	if err != nil {
		return itemsvc.CreateItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	unit, err := enums.ParseUnit(strings.TrimSpace(r.Unit))
	if err != nil {
		return itemsvc.CreateItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid unit")
	}
	return itemsvc.CreateItemInput{
		Name:          validators.SanitizeString(r.Name, 200),
		Category:      category,
		Unit:          unit,
		MinStockLevel: r.MinStockLevel,
		MaxStockLevel: r.MaxStockLevel,
	}, nil
}

type updateItemRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category      *string `json:"category,omitempty"`
	Unit          *string `json:"unit,omitempty"`
	MinStockLevel *int    `json:"minStockLevel,omitempty" validate:"omitempty,min=0"`
	MaxStockLevel *int    `json:"maxStockLevel,omitempty" validate:"omitempty,min=0"`
}

func (r updateItemRequest) toInput() (itemsvc.UpdateItemInput, error) {
	input := itemsvc.UpdateItemInput{
		Name:          r.Name,
		MinStockLevel: r.MinStockLevel,
		MaxStockLevel: r.MaxStockLevel,
	}
	if r.Category != nil {
		category, err := enums.ParseItemCategory(strings.TrimSpace(*r.Category))
		if err != nil {
			return itemsvc.UpdateItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		input.Category = &category
	}
	if r.Unit != nil {
		unit, err := enums.ParseUnit(strings.TrimSpace(*r.Unit))
		if err != nil {
			return itemsvc.UpdateItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid unit")
		}
		input.Unit = &unit
	}
	return input, nil
}

func unavailable(name string) error {
	return pkgerrors.New(pkgerrors.CodeInternal, name+" service unavailable")
}
