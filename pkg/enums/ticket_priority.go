package enums

import "fmt"

// TicketPriority ranks maintenance tickets.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityHigh   TicketPriority = "High"
	TicketPriorityUrgent TicketPriority = "Urgent"
)

var validTicketPriorities = []TicketPriority{
	TicketPriorityLow,
	TicketPriorityMedium,
	TicketPriorityHigh,
	TicketPriorityUrgent,
}

// IsValid reports whether the value is a known TicketPriority.
func (v TicketPriority) IsValid() bool {
	for _, candidate := range validTicketPriorities {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseTicketPriority converts raw input into a TicketPriority.
func ParseTicketPriority(value string) (TicketPriority, error) {
	for _, candidate := range validTicketPriorities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ticket priority %q", value)
}
