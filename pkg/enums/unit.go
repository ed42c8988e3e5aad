package enums

import "fmt"

// Unit is the counting unit an item is stocked in.
type Unit string

const (
	UnitPiece Unit = "piece"
	UnitKg    Unit = "kg"
	UnitLitre Unit = "litre"
	UnitBox   Unit = "box"
)

var validUnits = []Unit{
	UnitPiece,
	UnitKg,
	UnitLitre,
	UnitBox,
}

// IsValid reports whether the value is a known Unit.
func (v Unit) IsValid() bool {
	for _, candidate := range validUnits {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseUnit converts raw input into a Unit.
func ParseUnit(value string) (Unit, error) {
	for _, candidate := range validUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid unit %q", value)
}
