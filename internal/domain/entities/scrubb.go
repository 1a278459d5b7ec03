package entities

import "time"

// ScrubbHistoryEntry is an immutable record of an actual-cost ("scrubb")
// update for one contract service.
//
// Variance follows the positive-equals-savings convention:
//
//	variance = contractPrice - actualCost   when actualCost > 0
//	variance = 0                            when actualCost == 0 (pending)
//
// A pending item has no variance at all; "not scrubbed yet" is not
// "on budget".
type ScrubbHistoryEntry struct {
	ServiceKey    string  `json:"service_key"`
	PreviousCost  float64 `json:"previous_cost"`
	NewCost       float64 `json:"new_cost"`
	ContractPrice float64 `json:"contract_price"`
	Variance      float64 `json:"variance"`

	IsAllowance           bool `json:"is_allowance"`
	IsChangeOrderAddition bool `json:"is_change_order_addition"`

	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"`
}

// LatestScrubbCosts folds a scrubb history into the latest actual cost per
// service key, in insertion order so later entries win.
func LatestScrubbCosts(history []ScrubbHistoryEntry) map[string]float64 {
	costs := make(map[string]float64, len(history))
	for _, e := range history {
		costs[e.ServiceKey] = e.NewCost
	}
	return costs
}
