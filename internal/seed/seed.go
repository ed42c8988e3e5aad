// Package seed inserts the default reference rows a fresh install needs.
package seed

import (
	"context"

	"github.com/angelmondragon/hotelops-backend/internal/locations"
	"github.com/angelmondragon/hotelops-backend/internal/users"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

var DefaultUsers = []users.CreateUserDTO{
	{Email: "admin@hotel.com", Name: "Admin User", Role: enums.UserRoleAdmin},
	{Email: "store@hotel.com", Name: "Store Keeper", Role: enums.UserRoleStorekeeper},
	{Email: "maintenance@hotel.com", Name: "Maintenance Staff", Role: enums.UserRoleMaintenance},
}

var DefaultLocations = []locations.CreateLocationInput{
	{Name: "Main Store", Description: strPtr("Central storage facility")},
	{Name: "Housekeeping", Description: strPtr("Housekeeping supplies storage")},
	{Name: "Bar", Description: strPtr("Bar inventory storage")},
	{Name: "Kitchen", Description: strPtr("Kitchen and F&B storage")},
}

type Result struct {
	UsersCreated     int
	LocationsCreated int
}

// Run seeds each group only when its table is empty, so it is safe to run
// on every deploy.
func Run(ctx context.Context, tx txRunner, logg *logger.Logger) (Result, error) {
	var res Result
	err := tx.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)
		n, err := userRepo.Count(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			for _, dto := range DefaultUsers {
				if _, err := userRepo.Create(ctx, dto); err != nil {
					return err
				}
				res.UsersCreated++
			}
		}

		locationRepo := locations.NewRepository(tx)
		if n, err = locationRepo.Count(ctx); err != nil {
			return err
		}
		if n == 0 {
			for _, input := range DefaultLocations {
				location := &models.StockLocation{Name: input.Name, Description: input.Description}
				if err := locationRepo.Create(ctx, location); err != nil {
					return err
				}
				res.LocationsCreated++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if logg != nil {
		logg.Info(logg.WithFields(ctx, map[string]any{
			"users_created":     res.UsersCreated,
			"locations_created": res.LocationsCreated,
		}), "seed.complete")
	}
	return res, nil
}

func strPtr(v string) *string { return &v }
