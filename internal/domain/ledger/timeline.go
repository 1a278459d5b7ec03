package ledger

import (
	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/money"
)

// TimelinePoint is the fund balance immediately after one change-order
// history entry.
type TimelinePoint struct {
	Entry   entities.ChangeOrderEntry `json:"entry"`
	Balance float64                   `json:"balance"`
}

// Timeline replays the change-order history in insertion order and yields
// the running balance at each point.
//
// Reversal entries arrive with their financial fields pre-negated by the
// writer, so the walk applies every entry the same way; inverting a
// reversal a second time would double-refund the voided draw.
func Timeline(history []entities.ChangeOrderEntry, starting float64) []TimelinePoint {
	points := make([]TimelinePoint, 0, len(history))
	balance := money.Num(starting)
	for _, e := range history {
		balance -= money.Num(e.ContingencyUsed)
		points = append(points, TimelinePoint{Entry: e, Balance: balance})
	}
	return points
}

// ActiveChangeOrderCount counts history entries that still bind the
// contract: non-reversal entries with no matching reversal. A voided change
// order and its reversal both drop out.
func ActiveChangeOrderCount(history []entities.ChangeOrderEntry) int {
	return len(entities.ActiveChangeOrders(history))
}
