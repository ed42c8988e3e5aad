package items

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/hotelops-backend/internal/stock"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// stockLedger is the slice of stock.Service the catalog needs. Every call
// runs on the caller's transaction.
type stockLedger interface {
	InitItem(ctx context.Context, tx *gorm.DB, itemID int64) error
	PurgeItem(ctx context.Context, tx *gorm.DB, itemID int64) error
	Views(ctx context.Context, tx *gorm.DB, itemIDs []int64) (map[int64]stock.View, error)
}

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]ItemView, error)
	Get(ctx context.Context, id int64) (*ItemView, error)
	Create(ctx context.Context, input CreateItemInput) (*ItemView, error)
	Update(ctx context.Context, id int64, input UpdateItemInput) (*ItemView, error)
	Delete(ctx context.Context, id int64) (*models.InventoryItem, error)
}

type service struct {
	repo  Repository
	stock stockLedger
	tx    txRunner
}

func NewService(repo Repository, stock stockLedger, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("items repository required")
	}
	if stock == nil {
		return nil, fmt.Errorf("stock ledger required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, stock: stock, tx: tx}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]ItemView, error) {
	out := []ItemView{}
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		rows, err := s.repo.WithTx(tx).List(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list items")
		}
		ids := make([]int64, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
		}
		views, err := s.stock.Views(ctx, tx, ids)
		if err != nil {
			return err
		}
		for _, row := range rows {
			view := newItemView(row, views[row.ID])
			if filter.LowStock != nil && view.LowStock != *filter.LowStock {
				continue
			}
			out = append(out, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ItemView, error) {
	var view *ItemView
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		item, err := s.repo.WithTx(tx).FindByID(ctx, id)
		if err != nil {
			return wrapStorage(err, "load item")
		}
		view, err = s.viewOf(ctx, tx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Create inserts the item and a zero-quantity stock row at every existing
// location in one transaction.
func (s *service) Create(ctx context.Context, input CreateItemInput) (*ItemView, error) {
	item := models.InventoryItem{
		Name:          strings.TrimSpace(input.Name),
		Category:      input.Category,
		Unit:          input.Unit,
		MinStockLevel: defaultMinStockLevel,
		MaxStockLevel: defaultMaxStockLevel,
	}
	if input.MinStockLevel != nil {
		item.MinStockLevel = *input.MinStockLevel
	}
	if input.MaxStockLevel != nil {
		item.MaxStockLevel = *input.MaxStockLevel
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}

	var view *ItemView
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, &item); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create item")
		}
		if err := s.stock.InitItem(ctx, tx, item.ID); err != nil {
			return err
		}
		var err error
		view, err = s.viewOf(ctx, tx, &item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateItemInput) (*ItemView, error) {
	var view *ItemView
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		item, err := repo.FindByID(ctx, id)
		if err != nil {
			return wrapStorage(err, "load item")
		}
		if input.Name != nil {
			item.Name = strings.TrimSpace(*input.Name)
		}
		if input.Category != nil {
			item.Category = *input.Category
		}
		if input.Unit != nil {
			item.Unit = *input.Unit
		}
		if input.MinStockLevel != nil {
			item.MinStockLevel = *input.MinStockLevel
		}
		if input.MaxStockLevel != nil {
			item.MaxStockLevel = *input.MaxStockLevel
		}
		if err := validateItem(*item); err != nil {
			return err
		}
		if err := repo.Save(ctx, item); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update item")
		}
		view, err = s.viewOf(ctx, tx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Delete removes the item's stock rows before the item itself. Items that
// still have movements or order lines fail on the foreign key.
func (s *service) Delete(ctx context.Context, id int64) (*models.InventoryItem, error) {
	var item *models.InventoryItem
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		var err error
		if item, err = repo.FindByID(ctx, id); err != nil {
			return wrapStorage(err, "load item")
		}
		if err := s.stock.PurgeItem(ctx, tx, id); err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete item")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) viewOf(ctx context.Context, tx *gorm.DB, item *models.InventoryItem) (*ItemView, error) {
	views, err := s.stock.Views(ctx, tx, []int64{item.ID})
	if err != nil {
		return nil, err
	}
	view := newItemView(*item, views[item.ID])
	return &view, nil
}

func validateItem(item models.InventoryItem) error {
	switch {
	case item.Name == "":
		return pkgerrors.Validation("name is required")
	case !item.Category.IsValid():
		return pkgerrors.Validation(fmt.Sprintf("invalid category %q", item.Category))
	case !item.Unit.IsValid():
		return pkgerrors.Validation(fmt.Sprintf("invalid unit %q", item.Unit))
	case item.MinStockLevel < 0 || item.MaxStockLevel < 0:
		return pkgerrors.Validation("stock levels must not be negative")
	}
	return nil
}

func wrapStorage(err error, msg string) error {
	if err == nil {
		return nil
	}
	if pkgerrors.As(err) != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, msg)
}
