package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
	"gorm.io/gorm"
)

const (
	msgQuantityPositive  = "Quantity must be positive"
	msgInsufficientStock = "Insufficient stock"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type ledgerMetrics interface {
	Posted(movementType string, qty int)
	IssueRejected()
}

// Service is the stock ledger: every quantity change is paired with an
// immutable movement in the same transaction.
type Service interface {
	Receive(ctx context.Context, input MovementInput) (*models.StockMovement, error)
	Issue(ctx context.Context, input MovementInput) (*models.StockMovement, error)
	GetStockView(ctx context.Context, itemID int64) (View, error)
	ListMovements(ctx context.Context, filter MovementFilter) ([]MovementView, error)

	// Catalog hooks, run inside the caller's transaction.
	InitItem(ctx context.Context, tx *gorm.DB, itemID int64) error
	PurgeItem(ctx context.Context, tx *gorm.DB, itemID int64) error
	Views(ctx context.Context, tx *gorm.DB, itemIDs []int64) (map[int64]View, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	logg    *logger.Logger
	metrics ledgerMetrics
	now     func() time.Time
}

// NewService wires the stock ledger. metrics may be nil.
func NewService(repo Repository, tx txRunner, logg *logger.Logger, metrics ledgerMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stock repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:    repo,
		tx:      tx,
		logg:    logg,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}, nil
}

func (s *service) Receive(ctx context.Context, input MovementInput) (*models.StockMovement, error) {
	if input.Quantity <= 0 {
		return nil, pkgerrors.Validation(msgQuantityPositive)
	}

	movement := s.newMovement(input, enums.MovementTypeReceive)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.AddQuantity(ctx, input.ItemID, input.LocationID, input.Quantity); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upsert item stock")
		}
		if err := repo.CreateMovement(ctx, movement); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record receive movement")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.posted(ctx, movement)
	return movement, nil
}

func (s *service) Issue(ctx context.Context, input MovementInput) (*models.StockMovement, error) {
	if input.Quantity <= 0 {
		return nil, pkgerrors.Validation(msgQuantityPositive)
	}

	movement := s.newMovement(input, enums.MovementTypeIssue)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		ok, err := repo.DeductQuantity(ctx, input.ItemID, input.LocationID, input.Quantity)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deduct item stock")
		}
		if !ok {
			available, _, err := repo.Quantity(ctx, input.ItemID, input.LocationID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read item stock")
			}
			return pkgerrors.New(pkgerrors.CodeInsufficientStock, msgInsufficientStock).WithDetails(map[string]any{
				"itemId":     input.ItemID,
				"locationId": input.LocationID,
				"requested":  input.Quantity,
				"available":  available,
			})
		}
		if err := repo.CreateMovement(ctx, movement); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record issue movement")
		}
		return nil
	})
	if err != nil {
		if pkgerrors.HasCode(err, pkgerrors.CodeInsufficientStock) && s.metrics != nil {
			s.metrics.IssueRejected()
		}
		return nil, err
	}

	s.posted(ctx, movement)
	return movement, nil
}

func (s *service) GetStockView(ctx context.Context, itemID int64) (View, error) {
	views, err := s.Views(ctx, nil, []int64{itemID})
	if err != nil {
		return View{}, err
	}
	return views[itemID], nil
}

func (s *service) ListMovements(ctx context.Context, filter MovementFilter) ([]MovementView, error) {
	rows, err := s.repo.ListMovements(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list movements")
	}
	if rows == nil {
		rows = []MovementView{}
	}
	return rows, nil
}

func (s *service) InitItem(ctx context.Context, tx *gorm.DB, itemID int64) error {
	if _, err := s.repo.WithTx(tx).InitItemRows(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "initialize item stock")
	}
	return nil
}

func (s *service) PurgeItem(ctx context.Context, tx *gorm.DB, itemID int64) error {
	if err := s.repo.WithTx(tx).DeleteItemRows(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete item stock")
	}
	return nil
}

// Views builds stock views for the given items; a nil itemIDs slice loads
// every item. Every requested id is present in the result, possibly empty.
func (s *service) Views(ctx context.Context, tx *gorm.DB, itemIDs []int64) (map[int64]View, error) {
	rows, err := s.repo.WithTx(tx).ListLocationStock(ctx, itemIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load stock view")
	}

	grouped := make(map[int64][]LocationStock, len(itemIDs))
	for _, id := range itemIDs {
		grouped[id] = nil
	}
	for _, row := range rows {
		grouped[row.ItemID] = append(grouped[row.ItemID], row)
	}

	views := make(map[int64]View, len(grouped))
	for id, itemRows := range grouped {
		views[id] = newView(itemRows)
	}
	return views, nil
}

func (s *service) newMovement(input MovementInput, movementType enums.MovementType) *models.StockMovement {
	return &models.StockMovement{
		ItemID:       input.ItemID,
		LocationID:   input.LocationID,
		MovementType: movementType,
		Quantity:     input.Quantity,
		ReferenceID:  input.ReferenceID,
		PerformedBy:  input.PerformedBy,
		CreatedAt:    s.now(),
	}
}

func (s *service) posted(ctx context.Context, movement *models.StockMovement) {
	if s.metrics != nil {
		s.metrics.Posted(string(movement.MovementType), movement.Quantity)
	}
	ctx = s.logg.WithFields(ctx, map[string]any{
		"movement_id":   movement.ID,
		"movement_type": movement.MovementType,
		"item_id":       movement.ItemID,
		"location_id":   movement.LocationID,
		"quantity":      movement.Quantity,
	})
	ctx = s.logg.WithActorID(ctx, movement.PerformedBy)
	s.logg.Info(ctx, "stock.movement_posted")
}
