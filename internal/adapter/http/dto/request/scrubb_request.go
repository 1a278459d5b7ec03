package request

import "strings"

// ScrubbRequest records an actual-cost update for one contract service.
// actual_cost == 0 resets the item to pending.
type ScrubbRequest struct {
	ServiceKey string `json:"service_key" binding:"required"`
	ActualCost Amount `json:"actual_cost"`
	UpdatedBy  string `json:"updated_by"`
}

func (r ScrubbRequest) ResolveServiceKey() string {
	return strings.TrimSpace(r.ServiceKey)
}

func (r ScrubbRequest) ResolveUpdatedBy() string {
	return strings.TrimSpace(r.UpdatedBy)
}

// PermitRequest records one permit cost on the contract's permit log.
type PermitRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	CreatedBy   string  `json:"created_by"`
}

func (r PermitRequest) ResolveDescription() string {
	return strings.TrimSpace(r.Description)
}
