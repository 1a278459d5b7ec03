package pricing

import "modular_homes/internal/domain/entities"

// PricingTables bundles the static catalogs the engine prices against.
// Tables are passed in on every call instead of read from package state so
// ComputeTotals stays a pure, independently testable function.
type PricingTables struct {
	Materials      MaterialsTable
	Services       map[string]ServiceDef
	Sewer          []PriceBand
	Patio          []PriceBand
	Foundation     []PriceBand
	SidingTiers    []PriceBand
	DriveRates     []DriveRateBand
	ProjectCommand ProjectCommandTable
	Rates          RateTable
}

// RateTable holds the contract-level percentages and the catalog-home markup
// multiplier.
type RateTable struct {
	Overhead    float64
	Markup      float64
	Contingency float64
	Closing     float64
	HomeMarkup  float64
}

// SKU is a priced catalog part.
type SKU struct {
	Key       string
	Name      string
	UnitPrice float64
}

// MaterialQuantityRule selects how a material line's quantity is derived
// from the home geometry.
type MaterialQuantityRule string

const (
	QuantityFixed     MaterialQuantityRule = "fixed"
	QuantityVaporRoll MaterialQuantityRule = "vapor_roll"
	QuantityPier      MaterialQuantityRule = "pier"
	QuantityAnchor    MaterialQuantityRule = "anchor"
	QuantityWalkDoor  MaterialQuantityRule = "walk_door"
)

// MaterialItem is one row of the fixed materials catalog.
type MaterialItem struct {
	Key       string
	Name      string
	UnitPrice float64
	Quantity  float64 // only for QuantityFixed
	Rule      MaterialQuantityRule
}

// MaterialsTable drives the geometry-based material takeoff.
//
// Pier lines are special-cased: the I-beam height picks between the two
// pier-diameter SKUs, so the pier row carries no price of its own.
type MaterialsTable struct {
	Items []MaterialItem

	PierStandard   SKU     // up to TallBeamInches of I-beam
	PierTall       SKU     // larger diameter above that
	TallBeamInches float64

	VaporRollCoverageSqFt float64
	PierSpacingFt         float64
	AnchorSpacingFt       float64
}

// PriceBand prices a quantity falling at or under UpTo. A zero UpTo on the
// last band means "no limit".
type PriceBand struct {
	UpTo  float64
	Price float64
}

// DriveRateBand is a per-mile rate for one-way distances at or under
// UpToMiles.
type DriveRateBand struct {
	UpToMiles   float64
	RatePerMile float64
}

// ServiceDef is one row of the services catalog. Which of Base, Rate and
// DayRate matter depends on the calculator kind.
type ServiceDef struct {
	Key        string
	Name       string
	Calculator CalculatorKind

	Base        float64
	Rate        float64 // per sqft (installation) or per perimeter ft (skirting)
	DayRate     float64
	DefaultDays float64
}

// ProjectCommandTable drives the three overhead-labor subtotals. Each is a
// base amount plus a per-selected-service amount, with the round-trip drive
// cost folded in (twice for site supervision, scaled by service count).
type ProjectCommandTable struct {
	SiteSupervisionBase       float64
	SiteSupervisionPerService float64

	ProjectManagementBase       float64
	ProjectManagementPerService float64

	CoordinationBase       float64
	CoordinationPerService float64
}

// DefaultTables is the reference configuration the business quotes with.
func DefaultTables() PricingTables {
	return PricingTables{
		Materials: MaterialsTable{
			Items: []MaterialItem{
				{Key: "vapor_barrier", Name: "Vapor barrier roll (6 mil)", UnitPrice: 89.50, Rule: QuantityVaporRoll},
				{Key: "pier", Name: "Pier block", Rule: QuantityPier},
				{Key: "pier_cap", Name: "Pier cap and shim set", UnitPrice: 14.25, Rule: QuantityPier},
				{Key: "anchor_strap", Name: "Anchor strap and auger", UnitPrice: 32.00, Rule: QuantityAnchor},
				{Key: "walk_door_hardware", Name: "Walk door hardware kit", UnitPrice: 65.00, Rule: QuantityWalkDoor},
			},
			PierStandard:          SKU{Key: "pier_16", Name: `Pier block 16"`, UnitPrice: 21.75},
			PierTall:              SKU{Key: "pier_24", Name: `Pier block 24"`, UnitPrice: 38.50},
			TallBeamInches:        10,
			VaporRollCoverageSqFt: 500,
			PierSpacingFt:         8,
			AnchorSpacingFt:       12,
		},
		Services: map[string]ServiceDef{
			entities.ServiceInstallation:   {Key: entities.ServiceInstallation, Name: "Home installation", Calculator: CalcInstallation, Base: 4500, Rate: 2.25},
			entities.ServiceDelivery:       {Key: entities.ServiceDelivery, Name: "Home delivery", Calculator: CalcDriveRated, Base: 1200},
			entities.ServiceSkirting:       {Key: entities.ServiceSkirting, Name: "Skirting", Calculator: CalcSkirting, Base: 350, Rate: 11.50},
			entities.ServiceSiding:         {Key: entities.ServiceSiding, Name: "Siding", Calculator: CalcSiding},
			entities.ServiceLandscaping:    {Key: entities.ServiceLandscaping, Name: "Landscaping", Calculator: CalcDayRate, DayRate: 1450, DefaultDays: 2},
			entities.ServiceDeck:           {Key: entities.ServiceDeck, Name: "Deck build", Calculator: CalcDayRate, Base: 850, DayRate: 1650, DefaultDays: 3},
			entities.ServicePatio:          {Key: entities.ServicePatio, Name: "Patio", Calculator: CalcBanded},
			entities.ServiceFoundation:     {Key: entities.ServiceFoundation, Name: "Foundation", Calculator: CalcBanded},
			entities.ServiceElectricalHook: {Key: entities.ServiceElectricalHook, Name: "Electrical hookup", Calculator: CalcFlat, Base: 1850},
			entities.ServicePlumbingHook:   {Key: entities.ServicePlumbingHook, Name: "Plumbing hookup", Calculator: CalcFlat, Base: 1400},
			entities.ServiceHVAC:           {Key: entities.ServiceHVAC, Name: "HVAC crossover and startup", Calculator: CalcFlat, Base: 975},
			entities.ServiceSteps:          {Key: entities.ServiceSteps, Name: "Steps and landings", Calculator: CalcFlat, Base: 1250},
			entities.ServiceClosingCosts:   {Key: entities.ServiceClosingCosts, Name: "Closing costs", Calculator: CalcClosing},

			entities.ServicePermits:        {Key: entities.ServicePermits, Name: "Permits (allowance)", Calculator: CalcFlat, Base: 2500},
			entities.ServiceWell:           {Key: entities.ServiceWell, Name: "Well (allowance)", Calculator: CalcFlat, Base: 9500},
			entities.ServiceSandPad:        {Key: entities.ServiceSandPad, Name: "Sand pad (allowance)", Calculator: CalcFlat, Base: 3800},
			entities.ServiceSewer:          {Key: entities.ServiceSewer, Name: "Sewer (allowance)", Calculator: CalcBanded},
			entities.ServiceGravelDriveway: {Key: entities.ServiceGravelDriveway, Name: "Gravel driveway (allowance)", Calculator: CalcDriveRated, Base: 2200},
			entities.ServiceCrane:          {Key: entities.ServiceCrane, Name: "Crane set (allowance)", Calculator: CalcFlat, Base: 5600},
		},
		Sewer: []PriceBand{
			{UpTo: 50, Price: 3200},
			{UpTo: 100, Price: 4800},
			{UpTo: 200, Price: 7400},
			{Price: 9900},
		},
		Patio: []PriceBand{
			{UpTo: 100, Price: 1800},
			{UpTo: 200, Price: 3100},
			{Price: 4500},
		},
		Foundation: []PriceBand{
			{UpTo: 1000, Price: 8200},
			{UpTo: 1600, Price: 11600},
			{UpTo: 2200, Price: 14900},
			{Price: 18500},
		},
		SidingTiers: []PriceBand{
			{UpTo: 56, Price: 5200},
			{UpTo: 66, Price: 6400},
			{UpTo: 76, Price: 7600},
			{Price: 8900},
		},
		DriveRates: []DriveRateBand{
			{UpToMiles: 25, RatePerMile: 3.50},
			{UpToMiles: 75, RatePerMile: 2.75},
			{RatePerMile: 2.25},
		},
		ProjectCommand: ProjectCommandTable{
			SiteSupervisionBase:         600,
			SiteSupervisionPerService:   140,
			ProjectManagementBase:       900,
			ProjectManagementPerService: 110,
			CoordinationBase:            450,
			CoordinationPerService:      65,
		},
		Rates: RateTable{
			Overhead:    0.05,
			Markup:      0.10,
			Contingency: 0.02,
			Closing:     0.035,
			HomeMarkup:  1.15,
		},
	}
}

// bandPrice resolves qty against a band table. Quantities at or below zero
// price as zero so blank inputs never produce a charge.
func bandPrice(bands []PriceBand, qty float64) float64 {
	if qty <= 0 {
		return 0
	}
	for _, b := range bands {
		if b.UpTo == 0 || qty <= b.UpTo {
			return b.Price
		}
	}
	return 0
}

// driveRate returns the per-mile rate for a one-way distance.
func driveRate(bands []DriveRateBand, miles float64) float64 {
	if miles <= 0 {
		return 0
	}
	for _, b := range bands {
		if b.UpToMiles == 0 || miles <= b.UpToMiles {
			return b.RatePerMile
		}
	}
	return 0
}
