package suppliers

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type CreateSupplierInput struct {
	Name         string
	ContactEmail *string
	ContactPhone *string
	Address      *string
}

// UpdateSupplierInput is a partial overwrite; nil fields are kept.
type UpdateSupplierInput struct {
	Name         *string
	ContactEmail *string
	ContactPhone *string
	Address      *string
}

// Service manages suppliers. Deleting a supplier that purchase orders still
// reference fails on the foreign key; nothing cascades.
type Service interface {
	List(ctx context.Context) ([]models.Supplier, error)
	Get(ctx context.Context, id int64) (*models.Supplier, error)
	Create(ctx context.Context, input CreateSupplierInput) (*models.Supplier, error)
	Update(ctx context.Context, id int64, input UpdateSupplierInput) (*models.Supplier, error)
	Delete(ctx context.Context, id int64) (*models.Supplier, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("suppliers repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) List(ctx context.Context) ([]models.Supplier, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list suppliers")
	}
	if rows == nil {
		rows = []models.Supplier{}
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStorage(err, "load supplier")
	}
	return supplier, nil
}

func (s *service) Create(ctx context.Context, input CreateSupplierInput) (*models.Supplier, error) {
	supplier := &models.Supplier{
		Name:         strings.TrimSpace(input.Name),
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Address:      input.Address,
	}
	if supplier.Name == "" {
		return nil, pkgerrors.Validation("name is required")
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create supplier")
	}
	return supplier, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateSupplierInput) (*models.Supplier, error) {
	var supplier *models.Supplier
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		var err error
		if supplier, err = repo.FindByID(ctx, id); err != nil {
			return wrapStorage(err, "load supplier")
		}
		if input.Name != nil {
			supplier.Name = strings.TrimSpace(*input.Name)
			if supplier.Name == "" {
				return pkgerrors.Validation("name is required")
			}
		}
		if input.ContactEmail != nil {
			supplier.ContactEmail = input.ContactEmail
		}
		if input.ContactPhone != nil {
			supplier.ContactPhone = input.ContactPhone
		}
		if input.Address != nil {
			supplier.Address = input.Address
		}
		if err := repo.Save(ctx, supplier); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update supplier")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*models.Supplier, error) {
	var supplier *models.Supplier
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		var err error
		if supplier, err = repo.FindByID(ctx, id); err != nil {
			return wrapStorage(err, "load supplier")
		}
		if err := repo.Delete(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete supplier")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return supplier, nil
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
