package locations

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/hotelops-backend/pkg/db"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"gorm.io/gorm"
)

const msgNameTaken = "Location name already exists"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type CreateLocationInput struct {
	Name        string
	Description *string
}

// UpdateLocationInput is a partial overwrite; nil fields are kept.
type UpdateLocationInput struct {
	Name        *string
	Description *string
}

// Service manages stock locations. Creating a location does not backfill
// stock rows for existing items, and deleting one does not cascade.
type Service interface {
	List(ctx context.Context) ([]models.StockLocation, error)
	Get(ctx context.Context, id int64) (*models.StockLocation, error)
	Create(ctx context.Context, input CreateLocationInput) (*models.StockLocation, error)
	Update(ctx context.Context, id int64, input UpdateLocationInput) (*models.StockLocation, error)
	Delete(ctx context.Context, id int64) (*models.StockLocation, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("locations repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) List(ctx context.Context) ([]models.StockLocation, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list locations")
	}
	if rows == nil {
		rows = []models.StockLocation{}
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.StockLocation, error) {
	location, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStorage(err, "load location")
	}
	return location, nil
}

func (s *service) Create(ctx context.Context, input CreateLocationInput) (*models.StockLocation, error) {
	location := &models.StockLocation{Name: strings.TrimSpace(input.Name), Description: input.Description}
	if location.Name == "" {
		return nil, pkgerrors.Validation("name is required")
	}
	if err := s.repo.Create(ctx, location); err != nil {
		return nil, mapWriteError(err, "create location")
	}
	return location, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateLocationInput) (*models.StockLocation, error) {
	var location *models.StockLocation
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		var err error
		if location, err = repo.FindByID(ctx, id); err != nil {
			return wrapStorage(err, "load location")
		}
		if input.Name != nil {
			location.Name = strings.TrimSpace(*input.Name)
			if location.Name == "" {
				return pkgerrors.Validation("name is required")
			}
		}
		if input.Description != nil {
			location.Description = input.Description
		}
		if err := repo.Save(ctx, location); err != nil {
			return mapWriteError(err, "update location")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return location, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*models.StockLocation, error) {
	var location *models.StockLocation
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		var err error
		if location, err = repo.FindByID(ctx, id); err != nil {
			return wrapStorage(err, "load location")
		}
		if err := repo.Delete(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete location")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return location, nil
}

func mapWriteError(err error, msg string) error {
	if db.IsUniqueViolation(err, "") {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, msgNameTaken)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, msg)
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
