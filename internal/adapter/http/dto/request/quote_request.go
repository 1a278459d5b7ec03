package request

import "strings"

type DimensionsRequest struct {
	WidthFt       float64 `json:"width_ft"`
	LengthFt      float64 `json:"length_ft"`
	DoubleWide    bool    `json:"double_wide"`
	WalkDoors     int     `json:"walk_doors"`
	IBeamHeightIn float64 `json:"i_beam_height_in"`
}

type CustomMaterialRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    Amount  `json:"price"`
	Quantity float64 `json:"quantity"`
}

// QuoteRequest carries the priceable selections of a quote. The same shape
// serves create (customer_id required) and selection updates (customer_id
// ignored; the quote keeps its owner).
type QuoteRequest struct {
	CustomerID    string            `json:"customer_id"`
	HomeModelID   string            `json:"home_model_id"`
	HomeBasePrice float64           `json:"home_base_price"`
	Dimensions    DimensionsRequest `json:"dimensions"`
	DriveMiles    float64           `json:"drive_miles"`

	SelectedServices  map[string]bool    `json:"selected_services"`
	PriceOverrides    map[string]float64 `json:"price_overrides"`
	ServiceQuantities map[string]float64 `json:"service_quantities"`
	ServiceDays       map[string]float64 `json:"service_days"`

	MarkupRate      float64 `json:"markup_rate"`
	ContingencyRate float64 `json:"contingency_rate"`

	RemovedMaterials []string                `json:"removed_materials"`
	CustomMaterials  []CustomMaterialRequest `json:"custom_materials"`
}

func (r QuoteRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}

// ResolveRemovedMaterials folds the wire-friendly key list into the set the
// pricing engine consumes. Blank keys are dropped.
func (r QuoteRequest) ResolveRemovedMaterials() map[string]bool {
	if len(r.RemovedMaterials) == 0 {
		return nil
	}
	removed := make(map[string]bool, len(r.RemovedMaterials))
	for _, key := range r.RemovedMaterials {
		if key = strings.TrimSpace(key); key != "" {
			removed[key] = true
		}
	}
	return removed
}
