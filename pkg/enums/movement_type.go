package enums

import "fmt"

// MovementType classifies a stock ledger entry.
type MovementType string

const (
	MovementTypeReceive  MovementType = "receive"
	MovementTypeIssue    MovementType = "issue"
	MovementTypeTransfer MovementType = "transfer"
)

var validMovementTypes = []MovementType{
	MovementTypeReceive,
	MovementTypeIssue,
	MovementTypeTransfer,
}

func (v MovementType) String() string {
	return string(v)
}

// IsValid reports whether the value is a known MovementType.
func (v MovementType) IsValid() bool {
	for _, candidate := range validMovementTypes {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseMovementType converts raw input into a MovementType.
func ParseMovementType(value string) (MovementType, error) {
	for _, candidate := range validMovementTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid movement type %q", value)
}
