package pricing

import (
	"math"

	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/money"
)

// LineItem is one priced row of the material takeoff.
type LineItem struct {
	Key       string  `json:"key,omitempty"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
	Total     float64 `json:"total"`
	Custom    bool    `json:"custom,omitempty"`
}

func perimeter(d entities.HomeDimensions) float64 {
	w, l := money.Num(d.WidthFt), money.Num(d.LengthFt)
	if w <= 0 || l <= 0 {
		return 0
	}
	return 2 * (w + l)
}

func floorArea(d entities.HomeDimensions) float64 {
	w, l := money.Num(d.WidthFt), money.Num(d.LengthFt)
	if w <= 0 || l <= 0 {
		return 0
	}
	return w * l
}

// pierCount places piers along each I-beam rail at the table spacing, one
// extra pier closing each run. Double-wides carry two units, so four rails.
func pierCount(d entities.HomeDimensions, spacingFt float64) float64 {
	l := money.Num(d.LengthFt)
	if l <= 0 || spacingFt <= 0 {
		return 0
	}
	perRail := math.Ceil(l/spacingFt) + 1
	rails := 2.0
	if d.DoubleWide {
		rails = 4
	}
	return perRail * rails
}

func anchorCount(d entities.HomeDimensions, spacingFt float64) float64 {
	p := perimeter(d)
	if p <= 0 || spacingFt <= 0 {
		return 0
	}
	return math.Ceil(p / spacingFt)
}

// materialLines runs the takeoff over the fixed catalog, skipping rows the
// user removed, then appends custom rows verbatim.
func materialLines(q entities.Quote, t MaterialsTable) []LineItem {
	lines := make([]LineItem, 0, len(t.Items)+len(q.CustomMaterials))
	for _, item := range t.Items {
		if q.RemovedMaterials[item.Key] {
			continue
		}

		name := item.Name
		unit := money.Num(item.UnitPrice)
		var qty float64
		switch item.Rule {
		case QuantityFixed:
			qty = money.Num(item.Quantity)
		case QuantityVaporRoll:
			if t.VaporRollCoverageSqFt > 0 {
				qty = math.Ceil(floorArea(q.Dimensions) / t.VaporRollCoverageSqFt)
			}
		case QuantityPier:
			qty = pierCount(q.Dimensions, t.PierSpacingFt)
			// The pier row itself prices off the I-beam height.
			if item.Key == "pier" {
				sku := t.PierStandard
				if money.Num(q.Dimensions.IBeamHeightIn) >= t.TallBeamInches && t.TallBeamInches > 0 {
					sku = t.PierTall
				}
				name = sku.Name
				unit = money.Num(sku.UnitPrice)
			}
		case QuantityAnchor:
			qty = anchorCount(q.Dimensions, t.AnchorSpacingFt)
		case QuantityWalkDoor:
			qty = float64(q.Dimensions.WalkDoors)
		}

		if qty <= 0 {
			continue
		}
		lines = append(lines, LineItem{
			Key:       item.Key,
			Name:      name,
			UnitPrice: unit,
			Quantity:  qty,
			Total:     unit * qty,
		})
	}

	for _, cm := range q.CustomMaterials {
		price := money.Num(cm.Price)
		qty := money.Num(cm.Quantity)
		if qty == 0 {
			qty = 1
		}
		lines = append(lines, LineItem{
			Name:      cm.Name,
			UnitPrice: price,
			Quantity:  qty,
			Total:     price * qty,
			Custom:    true,
		})
	}
	return lines
}
