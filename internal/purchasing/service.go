package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service is the purchase order engine. Status changes are unconditional
// overwrites, and marking an order Delivered does not touch the stock ledger.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDetail, error)
	GetOrder(ctx context.Context, id int64) (*OrderDetail, error)
	ListOrders(ctx context.Context) ([]OrderSummary, error)
	UpdateStatus(ctx context.Context, id int64, input UpdateStatusInput) (*models.PurchaseOrder, error)
	DeleteOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error)
}

type service struct {
	repo Repository
	tx   txRunner
	now  func() time.Time
}

func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("purchasing repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo: repo,
		tx:   tx,
		now:  func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}, nil
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDetail, error) {
	status := input.Status
	if status == "" {
		status = enums.PurchaseOrderStatusDraft
	}
	if !status.IsValid() {
		return nil, pkgerrors.Validation(fmt.Sprintf("invalid status %q", status))
	}

	order := &models.PurchaseOrder{
		SupplierID:   input.SupplierID,
		Status:       status,
		ExpectedDate: input.ExpectedDate,
		CreatedBy:    input.CreatedBy,
		CreatedAt:    s.now(),
	}

	var detail *OrderDetail
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.CreateOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create purchase order")
		}

		lines := make([]models.PurchaseOrderLine, 0, len(input.Lines))
		for _, line := range input.Lines {
			lines = append(lines, models.PurchaseOrderLine{
				PurchaseOrderID: order.ID,
				ItemID:          line.ItemID,
				Quantity:        line.Quantity,
				UnitPrice:       line.UnitPrice,
			})
		}
		if err := repo.CreateLines(ctx, lines); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create purchase order lines")
		}

		var err error
		detail, err = s.loadDetail(ctx, repo, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *service) GetOrder(ctx context.Context, id int64) (*OrderDetail, error) {
	var detail *OrderDetail
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		order, err := repo.FindOrder(ctx, id)
		if err != nil {
			return wrapStorage(err, "load purchase order")
		}
		detail, err = s.loadDetail(ctx, repo, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *service) ListOrders(ctx context.Context) ([]OrderSummary, error) {
	rows, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list purchase orders")
	}
	if rows == nil {
		rows = []OrderSummary{}
	}
	return rows, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, input UpdateStatusInput) (*models.PurchaseOrder, error) {
	if !input.Status.IsValid() {
		return nil, pkgerrors.Validation(fmt.Sprintf("invalid status %q", input.Status))
	}

	var order *models.PurchaseOrder
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.FindOrder(ctx, id); err != nil {
			return wrapStorage(err, "load purchase order")
		}
		if err := repo.UpdateStatus(ctx, id, input); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update purchase order status")
		}
		var err error
		order, err = repo.FindOrder(ctx, id)
		return wrapStorage(err, "reload purchase order")
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *service) DeleteOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	var order *models.PurchaseOrder
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		var err error
		order, err = repo.FindOrder(ctx, id)
		if err != nil {
			return wrapStorage(err, "load purchase order")
		}
		// lines first: they reference the order
		if err := repo.DeleteLines(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete purchase order lines")
		}
		if err := repo.DeleteOrder(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete purchase order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *service) loadDetail(ctx context.Context, repo Repository, order *models.PurchaseOrder) (*OrderDetail, error) {
	supplier, err := repo.FindSupplier(ctx, order.SupplierID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load supplier")
	}
	lines, err := repo.ListLines(ctx, order.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load purchase order lines")
	}
	if lines == nil {
		lines = []LineView{}
	}

	raw := make([]models.PurchaseOrderLine, 0, len(lines))
	for _, line := range lines {
		raw = append(raw, line.PurchaseOrderLine)
	}

	return &OrderDetail{
		PurchaseOrder: *order,
		Supplier:      supplier,
		Lines:         lines,
		Total:         OrderTotal(raw).InexactFloat64(),
	}, nil
}

// wrapStorage keeps typed errors (not found) and marks the rest internal.
func wrapStorage(err error, msg string) error {
	if err == nil {
		return nil
	}
	if pkgerrors.As(err) != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, msg)
}
