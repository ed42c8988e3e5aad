package enums

import "fmt"

// PurchaseOrderStatus has no enforced transition graph; any status may follow any other.
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft              PurchaseOrderStatus = "Draft"
	PurchaseOrderStatusSubmitted          PurchaseOrderStatus = "Submitted"
	PurchaseOrderStatusPartiallyDelivered PurchaseOrderStatus = "Partially Delivered"
	PurchaseOrderStatusDelivered          PurchaseOrderStatus = "Delivered"
	PurchaseOrderStatusCancelled          PurchaseOrderStatus = "Cancelled"
)

var validPurchaseOrderStatuses = []PurchaseOrderStatus{
	PurchaseOrderStatusDraft,
	PurchaseOrderStatusSubmitted,
	PurchaseOrderStatusPartiallyDelivered,
	PurchaseOrderStatusDelivered,
	PurchaseOrderStatusCancelled,
}

func (v PurchaseOrderStatus) String() string {
	return string(v)
}

// IsValid reports whether the value is a known PurchaseOrderStatus.
func (v PurchaseOrderStatus) IsValid() bool {
	for _, candidate := range validPurchaseOrderStatuses {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParsePurchaseOrderStatus converts raw input into a PurchaseOrderStatus.
func ParsePurchaseOrderStatus(value string) (PurchaseOrderStatus, error) {
	for _, candidate := range validPurchaseOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid purchase order status %q", value)
}
