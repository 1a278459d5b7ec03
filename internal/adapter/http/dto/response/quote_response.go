package response

import (
	"time"

	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/ledger"
)

type QuoteResponse struct {
	QuoteID    string `json:"quote_id"`
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`

	HomeModelID   string                  `json:"home_model_id,omitempty"`
	HomeBasePrice float64                 `json:"home_base_price"`
	Dimensions    entities.HomeDimensions `json:"dimensions"`
	DriveMiles    float64                 `json:"drive_miles"`

	SelectedServices  map[string]bool    `json:"selected_services,omitempty"`
	PriceOverrides    map[string]float64 `json:"price_overrides,omitempty"`
	ServiceQuantities map[string]float64 `json:"service_quantities,omitempty"`
	ServiceDays       map[string]float64 `json:"service_days,omitempty"`

	MarkupRate      float64 `json:"markup_rate,omitempty"`
	ContingencyRate float64 `json:"contingency_rate,omitempty"`

	RemovedMaterials []string                  `json:"removed_materials,omitempty"`
	CustomMaterials  []entities.CustomMaterial `json:"custom_materials,omitempty"`

	// ChangeOrders counts only active change orders: reversal entries and
	// the originals they void are excluded. HistoryEntries is the raw
	// append-only log length.
	ChangeOrders   int `json:"change_order_count"`
	HistoryEntries int `json:"change_order_history_count"`
	ScrubbCount    int `json:"scrubb_count"`
	PaymentCount   int `json:"payment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	res := QuoteResponse{
		QuoteID:           q.ID,
		ID:                q.ID,
		CustomerID:        q.CustomerID,
		Status:            string(q.Status),
		HomeModelID:       q.HomeModelID,
		HomeBasePrice:     q.HomeBasePrice,
		Dimensions:        q.Dimensions,
		DriveMiles:        q.DriveMiles,
		SelectedServices:  q.SelectedServices,
		PriceOverrides:    q.PriceOverrides,
		ServiceQuantities: q.ServiceQuantities,
		ServiceDays:       q.ServiceDays,
		MarkupRate:        q.MarkupRate,
		ContingencyRate:   q.ContingencyRate,
		CustomMaterials:   q.CustomMaterials,
		ChangeOrders:      ledger.ActiveChangeOrderCount(q.ChangeOrderHistory),
		HistoryEntries:    len(q.ChangeOrderHistory),
		ScrubbCount:       len(q.ScrubbHistory),
		PaymentCount:      len(q.ScrubbPayments),
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
	for key, removed := range q.RemovedMaterials {
		if removed {
			res.RemovedMaterials = append(res.RemovedMaterials, key)
		}
	}
	return res
}
