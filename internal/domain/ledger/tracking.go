package ledger

import (
	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/money"
	"modular_homes/internal/domain/pricing"
)

// TrackingItem is one cost-tracked contract service: its contract price,
// the latest scrubbed actual cost (zero while pending) and the flags the
// reconciliation walk keys off.
type TrackingItem struct {
	ServiceKey    string  `json:"service_key"`
	Name          string  `json:"name"`
	ContractPrice float64 `json:"contract_price"`
	ActualCost    float64 `json:"actual_cost"`

	IsAllowance           bool `json:"is_allowance"`
	IsChangeOrderAddition bool `json:"is_change_order_addition"`
}

// BuildTrackingItems derives the tracked item list from the quote's priced
// services plus the additions of change orders that are still active.
// Voided change orders contribute nothing: their reversal entry already
// cancelled them out.
func BuildTrackingItems(q entities.Quote, totals pricing.Totals) []TrackingItem {
	costs := entities.LatestScrubbCosts(q.ScrubbHistory)

	items := make([]TrackingItem, 0, len(totals.Services))
	for _, svc := range totals.Services {
		items = append(items, TrackingItem{
			ServiceKey:    svc.Key,
			Name:          svc.Name,
			ContractPrice: svc.ContractPrice,
			ActualCost:    money.Num(costs[svc.Key]),
			IsAllowance:   svc.IsAllowance,
		})
	}

	for _, co := range entities.ActiveChangeOrders(q.ChangeOrderHistory) {
		for _, add := range co.Additions {
			items = append(items, TrackingItem{
				ServiceKey:            add.ServiceKey,
				Name:                  add.Name,
				ContractPrice:         money.Num(add.Amount),
				ActualCost:            money.Num(costs[add.ServiceKey]),
				IsAllowance:           entities.IsAllowanceService(add.ServiceKey),
				IsChangeOrderAddition: true,
			})
		}
	}
	return items
}
