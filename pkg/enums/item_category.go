package enums

import "fmt"

// ItemCategory groups inventory items on the catalog.
type ItemCategory string

const (
	ItemCategoryLinen     ItemCategory = "Linen"
	ItemCategoryAmenities ItemCategory = "Amenities"
	ItemCategoryFB        ItemCategory = "F&B"
	ItemCategoryCleaning  ItemCategory = "Cleaning"
)

var validItemCategories = []ItemCategory{
	ItemCategoryLinen,
	ItemCategoryAmenities,
	ItemCategoryFB,
	ItemCategoryCleaning,
}

func (v ItemCategory) String() string {
	return string(v)
}

// IsValid reports whether the value is a known ItemCategory.
func (v ItemCategory) IsValid() bool {
	for _, candidate := range validItemCategories {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseItemCategory converts raw input into a ItemCategory.
func ParseItemCategory(value string) (ItemCategory, error) {
	for _, candidate := range validItemCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item category %q", value)
}
