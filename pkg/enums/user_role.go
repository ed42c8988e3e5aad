package enums

import "fmt"

// UserRole is informational only; no authorization is derived from it.
type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleStorekeeper UserRole = "storekeeper"
	UserRoleMaintenance UserRole = "maintenance"
)

var validUserRoles = []UserRole{
	UserRoleAdmin,
	UserRoleStorekeeper,
	UserRoleMaintenance,
}

// IsValid reports whether the value is a known UserRole.
func (v UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
