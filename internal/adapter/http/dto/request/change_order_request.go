package request

import "strings"

type ChangeOrderLineRequest struct {
	ServiceKey string  `json:"service_key"`
	Name       string  `json:"name" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
}

// ChangeOrderRequest is the payload for creating a change order against a
// contract. At least one of the three sections must be present; the use case
// rejects an empty one.
type ChangeOrderRequest struct {
	Additions   []ChangeOrderLineRequest `json:"additions"`
	Deletions   []ChangeOrderLineRequest `json:"deletions"`
	Adjustments map[string]float64       `json:"adjustments"`
	CreatedBy   string                   `json:"created_by"`
}

func (r ChangeOrderRequest) ResolveCreatedBy() string {
	return strings.TrimSpace(r.CreatedBy)
}

// ChangeOrderVoidRequest identifies who voided the change order.
type ChangeOrderVoidRequest struct {
	VoidedBy string `json:"voided_by"`
}
