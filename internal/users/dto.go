package users

import (
	"strings"

	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
)

// CreateUserDTO holds the data required to persist a new user.
type CreateUserDTO struct {
	Email string
	Name  string
	Role  enums.UserRole
}

// ToModel normalizes the email and converts the DTO into a GORM model.
func (dto CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Email: strings.ToLower(strings.TrimSpace(dto.Email)),
		Name:  strings.TrimSpace(dto.Name),
		Role:  dto.Role,
	}
}
