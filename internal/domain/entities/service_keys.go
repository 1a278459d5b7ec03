package entities

// Service keys used across the pricing tables, quotes and change orders.
// Keys are stable identifiers; display names live in the services catalog.
const (
	ServiceInstallation   = "installation"
	ServiceDelivery       = "delivery"
	ServiceSkirting       = "skirting"
	ServiceSiding         = "siding"
	ServiceLandscaping    = "landscaping"
	ServiceDeck           = "deck"
	ServicePatio          = "patio"
	ServiceFoundation     = "foundation"
	ServiceElectricalHook = "electrical_hookup"
	ServicePlumbingHook   = "plumbing_hookup"
	ServiceHVAC           = "hvac"
	ServiceSteps          = "steps"
	ServiceClosingCosts   = "closing_costs"

	// Allowance services below: priced as estimates, settled against
	// actual cost later.
	ServicePermits        = "permits"
	ServiceWell           = "well"
	ServiceSandPad        = "sand_pad"
	ServiceSewer          = "sewer"
	ServiceGravelDriveway = "gravel_driveway"
	ServiceCrane          = "crane"
)

// allowanceServices is the fixed allowance-item set. A quoted price for
// these is explicitly an estimate; the contingency fund absorbs the
// difference between estimate and actual.
var allowanceServices = map[string]bool{
	ServicePermits:        true,
	ServiceWell:           true,
	ServiceSandPad:        true,
	ServiceSewer:          true,
	ServiceGravelDriveway: true,
	ServiceCrane:          true,
}

// IsAllowanceService reports whether key belongs to the allowance-item set.
func IsAllowanceService(key string) bool {
	return allowanceServices[key]
}
