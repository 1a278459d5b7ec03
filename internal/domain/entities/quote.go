package entities

import "time"

// QuoteStatus represents the lifecycle of a quote/contract.
//
// Domain notes:
//   - A quote starts as a draft and is sent to the customer for review.
//   - Accepting a quote promotes it to a contract ("under contract").
//   - Once accepted, priced selections are immutable except through a
//     change order.

type QuoteStatus string

const (
	QuoteStatusDraft         QuoteStatus = "draft"
	QuoteStatusSent          QuoteStatus = "sent"
	QuoteStatusAccepted      QuoteStatus = "accepted"
	QuoteStatusDeclined      QuoteStatus = "declined"
	QuoteStatusUnderContract QuoteStatus = "under_contract"
	QuoteStatusCompleted     QuoteStatus = "completed"
	QuoteStatusCancelled     QuoteStatus = "cancelled"
)

// IsContract reports whether change orders may be created against the quote.
func (s QuoteStatus) IsContract() bool {
	switch s {
	case QuoteStatusAccepted, QuoteStatusUnderContract, QuoteStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo validates the lifecycle state machine:
//
//	draft -> sent -> accepted | declined
//	accepted -> under_contract -> completed
//	any contract state -> cancelled
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	switch next {
	case QuoteStatusSent:
		return s == QuoteStatusDraft
	case QuoteStatusAccepted, QuoteStatusDeclined:
		return s == QuoteStatusSent
	case QuoteStatusUnderContract:
		return s == QuoteStatusAccepted
	case QuoteStatusCompleted:
		return s == QuoteStatusUnderContract
	case QuoteStatusCancelled:
		return s.IsContract() || s == QuoteStatusDraft || s == QuoteStatusSent
	}
	return false
}

// HomeDimensions captures the site/home geometry the pricing engine derives
// material quantities from.
type HomeDimensions struct {
	WidthFt       float64 `json:"width_ft"`
	LengthFt      float64 `json:"length_ft"`
	DoubleWide    bool    `json:"double_wide"`
	WalkDoors     int     `json:"walk_doors"`
	IBeamHeightIn float64 `json:"i_beam_height_in"`
}

// CustomMaterial is a user-entered material row appended verbatim to the
// material breakdown.
type CustomMaterial struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// Quote is the aggregate root for the quoting/contracting flow.
//
// The four history slices are append-only logs. Entries are never deleted or
// rewritten; voiding a change order appends a compensating reversal entry.
// No running contingency balance is stored anywhere on the quote: displays
// recompute it from the logs on every read.
type Quote struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Status     QuoteStatus `json:"status"`

	HomeModelID   string         `json:"home_model_id,omitempty"`
	HomeBasePrice float64        `json:"home_base_price"`
	Dimensions    HomeDimensions `json:"dimensions"`
	DriveMiles    float64        `json:"drive_miles"`

	// Selections and per-service knobs keyed by service key.
	SelectedServices  map[string]bool    `json:"selected_services"`
	PriceOverrides    map[string]float64 `json:"price_overrides,omitempty"`
	ServiceQuantities map[string]float64 `json:"service_quantities,omitempty"`
	ServiceDays       map[string]float64 `json:"service_days,omitempty"`

	// Rate overrides; zero means "use the pricing-table default".
	MarkupRate      float64 `json:"markup_rate,omitempty"`
	ContingencyRate float64 `json:"contingency_rate,omitempty"`

	RemovedMaterials map[string]bool  `json:"removed_materials,omitempty"`
	CustomMaterials  []CustomMaterial `json:"custom_materials,omitempty"`

	ChangeOrderHistory []ChangeOrderEntry  `json:"change_order_history,omitempty"`
	ScrubbHistory      []ScrubbHistoryEntry `json:"scrubb_history,omitempty"`
	ScrubbPayments     []Payment           `json:"scrubb_payments,omitempty"`
	PermitEntries      []PermitEntry       `json:"permit_entries,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NextChangeOrderNum returns the number a newly created change order should
// use. Reversal entries reuse the number of the entry they void, so only
// originals count.
func (q Quote) NextChangeOrderNum() int {
	max := 0
	for _, e := range q.ChangeOrderHistory {
		if !e.IsReversal && e.ChangeOrderNum > max {
			max = e.ChangeOrderNum
		}
	}
	return max + 1
}
