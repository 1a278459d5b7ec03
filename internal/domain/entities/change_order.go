package entities

import "time"

// ChangeOrderStatus is the state of a single change order.
//
//	draft -> sent -> signed, signed -> draft (un-sign)
//	any non-voided state -> voided, by appending a reversal entry
//
// Voided is terminal for a change order number; further changes need a new
// number.

type ChangeOrderStatus string

const (
	ChangeOrderStatusDraft  ChangeOrderStatus = "draft"
	ChangeOrderStatusSent   ChangeOrderStatus = "sent"
	ChangeOrderStatusSigned ChangeOrderStatus = "signed"
	ChangeOrderStatusVoided ChangeOrderStatus = "voided"
)

// CanTransitionTo validates status toggles on a live (non-voided) entry.
// Voiding is not a transition: it appends a reversal entry instead.
func (s ChangeOrderStatus) CanTransitionTo(next ChangeOrderStatus) bool {
	switch next {
	case ChangeOrderStatusSent:
		return s == ChangeOrderStatusDraft
	case ChangeOrderStatusSigned:
		return s == ChangeOrderStatusDraft || s == ChangeOrderStatusSent
	case ChangeOrderStatusDraft:
		return s == ChangeOrderStatusSigned || s == ChangeOrderStatusSent
	}
	return false
}

// ChangeOrderLine is a service added to or removed from the contract by a
// change order.
type ChangeOrderLine struct {
	ServiceKey string  `json:"service_key"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
}

// Adjustment is a price delta applied to an existing contract service.
type Adjustment struct {
	Amount float64 `json:"amount"`
}

// ChangeOrderEntry is an immutable audit record in the quote's
// change-order history.
//
// Financial fields are frozen at creation time. Status may toggle
// draft<->signed afterwards, which never rewrites them. ContingencyUsed and
// ContingencyBalance snapshot the fund immediately before/after this entry's
// own draw; the first entry's snapshot is how the reconciliation engine
// recovers the starting fund once the live pricing total has been inflated
// by prior change orders.
//
// A reversal entry (IsReversal=true) voids an earlier entry: same
// ChangeOrderNum, TotalChange and ContingencyUsed pre-negated by the writer,
// so the pair sums to zero. Readers must add it like any other entry and
// must not invert it a second time.
type ChangeOrderEntry struct {
	ChangeOrderNum int               `json:"change_order_num"`
	Version        int               `json:"version"`
	Status         ChangeOrderStatus `json:"status"`

	Additions   []ChangeOrderLine     `json:"additions,omitempty"`
	Deletions   []ChangeOrderLine     `json:"deletions,omitempty"`
	Adjustments map[string]Adjustment `json:"adjustments,omitempty"`

	TotalChange        float64 `json:"total_change"`
	ContingencyUsed    float64 `json:"contingency_used"`
	ContingencyBalance float64 `json:"contingency_balance"`

	IsReversal bool      `json:"is_reversal"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by"`
}

// Reversed reports whether history contains a reversal entry for num.
func Reversed(history []ChangeOrderEntry, num int) bool {
	for _, e := range history {
		if e.IsReversal && e.ChangeOrderNum == num {
			return true
		}
	}
	return false
}

// ActiveChangeOrders returns the entries that still count toward the
// contract: originals with no matching reversal.
func ActiveChangeOrders(history []ChangeOrderEntry) []ChangeOrderEntry {
	var active []ChangeOrderEntry
	for _, e := range history {
		if e.IsReversal {
			continue
		}
		if Reversed(history, e.ChangeOrderNum) {
			continue
		}
		active = append(active, e)
	}
	return active
}
