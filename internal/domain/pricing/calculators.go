package pricing

import (
	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/money"
)

// CalculatorKind tags the formula used to price a service. Kinds map to
// implementations through a single dispatch table instead of scattered
// conditionals.
type CalculatorKind string

const (
	// CalcFlat prices at the catalog base amount.
	CalcFlat CalculatorKind = "flat"
	// CalcDriveRated prices base + round-trip miles x drive rate.
	CalcDriveRated CalculatorKind = "drive_rated"
	// CalcInstallation prices the set crew: base + floor area rate, with
	// double-wide and walk-door additions.
	CalcInstallation CalculatorKind = "installation"
	// CalcSkirting prices base + perimeter x per-foot rate.
	CalcSkirting CalculatorKind = "skirting"
	// CalcSiding prices by home length against the siding tier table.
	CalcSiding CalculatorKind = "siding"
	// CalcDayRate prices base + crew days x day rate.
	CalcDayRate CalculatorKind = "day_rate"
	// CalcBanded prices a quantity against the service's price-band table
	// (sewer run, patio size, foundation area).
	CalcBanded CalculatorKind = "banded"
	// CalcClosing is deferred: closing costs are a percentage of the
	// post-markup total and are priced by the engine, not here.
	CalcClosing CalculatorKind = "closing"
)

// doubleWideSetCharge is the extra set-crew charge for the second unit.
const doubleWideSetCharge = 1800

type calcInput struct {
	quote  entities.Quote
	tables PricingTables
	def    ServiceDef
}

type calcFunc func(in calcInput) float64

var calculators = map[CalculatorKind]calcFunc{
	CalcFlat:         calcFlat,
	CalcDriveRated:   calcDriveRated,
	CalcInstallation: calcInstallation,
	CalcSkirting:     calcSkirting,
	CalcSiding:       calcSiding,
	CalcDayRate:      calcDayRate,
	CalcBanded:       calcBanded,
	CalcClosing:      func(calcInput) float64 { return 0 },
}

// servicePrice dispatches to the service's calculator. Unknown kinds price
// as zero rather than failing, mirroring how a stale catalog selection must
// never crash totals computation.
func servicePrice(in calcInput) float64 {
	fn, ok := calculators[in.def.Calculator]
	if !ok {
		return 0
	}
	return money.Num(fn(in))
}

func calcFlat(in calcInput) float64 {
	return in.def.Base
}

func calcDriveRated(in calcInput) float64 {
	miles := money.Num(in.quote.DriveMiles)
	return in.def.Base + milesRoundTrip(miles)*driveRate(in.tables.DriveRates, miles)
}

func calcInstallation(in calcInput) float64 {
	d := in.quote.Dimensions
	price := in.def.Base + floorArea(d)*in.def.Rate
	if d.DoubleWide {
		price += doubleWideSetCharge
	}
	price += float64(d.WalkDoors) * 125
	return price
}

func calcSkirting(in calcInput) float64 {
	return in.def.Base + perimeter(in.quote.Dimensions)*in.def.Rate
}

func calcSiding(in calcInput) float64 {
	return bandPrice(in.tables.SidingTiers, money.Num(in.quote.Dimensions.LengthFt))
}

func calcDayRate(in calcInput) float64 {
	days := money.Num(in.quote.ServiceDays[in.def.Key])
	if days <= 0 {
		days = in.def.DefaultDays
	}
	return in.def.Base + days*in.def.DayRate
}

func calcBanded(in calcInput) float64 {
	qty := money.Num(in.quote.ServiceQuantities[in.def.Key])
	switch in.def.Key {
	case entities.ServiceSewer:
		return bandPrice(in.tables.Sewer, qty)
	case entities.ServicePatio:
		return bandPrice(in.tables.Patio, qty)
	case entities.ServiceFoundation:
		if qty <= 0 {
			qty = floorArea(in.quote.Dimensions)
		}
		return bandPrice(in.tables.Foundation, qty)
	}
	return 0
}

func milesRoundTrip(oneWay float64) float64 {
	if oneWay <= 0 {
		return 0
	}
	return oneWay * 2
}
