// Package pricing is the quote pricing engine: a pure function from a
// quote's selections plus static pricing tables to a fully itemized cost
// breakdown.
//
// ComputeTotals holds no state, reads no clock and never errors: blank or
// malformed numeric input resolves to zero and a selected service key
// missing from the catalog prices as a zero-cost line. Currency stays in
// floating-point dollars with no intermediate rounding.
package pricing

import (
	"sort"

	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/money"
)

// PricedService is one contract service with its computed (or overridden)
// price. IsAllowance marks the price as an estimate settled later against
// actual cost.
type PricedService struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	ContractPrice float64 `json:"contract_price"`
	IsAllowance   bool    `json:"is_allowance"`
}

// ProjectCommand is the overhead-labor breakdown.
type ProjectCommand struct {
	SiteSupervision     float64 `json:"site_supervision"`
	ProjectManagement   float64 `json:"project_management"`
	ProjectCoordination float64 `json:"project_coordination"`
	Total               float64 `json:"total"`
}

// Totals is the full itemized output of the pricing engine.
type Totals struct {
	Materials      []LineItem      `json:"materials"`
	MaterialsTotal float64         `json:"materials_total"`
	Services       []PricedService `json:"services"`
	// ServicesTotal excludes the closing-costs line: closing is priced
	// from the running total after the subtotal, so folding it back in
	// would make the subtotal circular. Services carries the priced
	// closing line for itemized display, hence
	// sum(Services) == ServicesTotal + ClosingCosts when selected.
	ServicesTotal float64 `json:"services_total"`
	ProjectCommand ProjectCommand  `json:"project_command"`
	HomePrice      float64         `json:"home_price"`
	Subtotal       float64         `json:"subtotal"`
	Overhead       float64         `json:"overhead"`
	Markup         float64         `json:"markup"`
	ClosingCosts   float64         `json:"closing_costs"`
	Total          float64         `json:"total"`
	Contingency    float64         `json:"contingency"`
	GrandTotal     float64         `json:"grand_total"`
}

// ComputeTotals prices the quote against the tables.
//
// Order matters: materials, services, project command, subtotal (with the
// home base price marked up when a catalog model is selected), additive
// overhead and markup, self-inclusive closing costs, then contingency on
// the pre-contingency total.
func ComputeTotals(q entities.Quote, tables PricingTables) Totals {
	var out Totals

	out.Materials = materialLines(q, tables.Materials)
	for _, line := range out.Materials {
		out.MaterialsTotal += line.Total
	}

	closingSelected := false
	for _, key := range selectedKeys(q) {
		if key == entities.ServiceClosingCosts {
			closingSelected = true
		}
		svc := priceService(q, tables, key)
		out.Services = append(out.Services, svc)
		out.ServicesTotal += svc.ContractPrice
	}

	out.ProjectCommand = projectCommand(q, tables, len(out.Services))

	out.HomePrice = money.Num(q.HomeBasePrice)
	if q.HomeModelID != "" {
		out.HomePrice *= money.Num(tables.Rates.HomeMarkup)
	}

	out.Subtotal = out.MaterialsTotal + out.ServicesTotal + out.ProjectCommand.Total + out.HomePrice

	markupRate := money.Num(q.MarkupRate)
	if markupRate <= 0 {
		markupRate = tables.Rates.Markup
	}
	out.Overhead = out.Subtotal * tables.Rates.Overhead
	out.Markup = out.Subtotal * markupRate
	out.Total = out.Subtotal + out.Overhead + out.Markup

	if closingSelected {
		out.ClosingCosts = closingCosts(out.Total, tables.Rates.Closing)
		out.Total += out.ClosingCosts
		// Patch the priced figure into the itemized list only.
		// ServicesTotal stays closing-free; it already fed the subtotal.
		for i := range out.Services {
			if out.Services[i].Key == entities.ServiceClosingCosts {
				out.Services[i].ContractPrice = out.ClosingCosts
			}
		}
	}

	contingencyRate := money.Num(q.ContingencyRate)
	if contingencyRate <= 0 {
		contingencyRate = tables.Rates.Contingency
	}
	out.Contingency = out.Total * contingencyRate
	out.GrandTotal = out.Total + out.Contingency

	return out
}

// selectedKeys returns the quote's selected service keys in a stable order
// so two identical quotes always price byte-identically.
func selectedKeys(q entities.Quote) []string {
	keys := make([]string, 0, len(q.SelectedServices))
	for key, selected := range q.SelectedServices {
		if selected {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func priceService(q entities.Quote, tables PricingTables, key string) PricedService {
	svc := PricedService{Key: key, Name: key, IsAllowance: entities.IsAllowanceService(key)}

	def, ok := tables.Services[key]
	if ok {
		svc.Name = def.Name
		svc.ContractPrice = servicePrice(calcInput{quote: q, tables: tables, def: def})
	}
	// A stale selection with no catalog row stays a zero-cost line.

	if override, ok := q.PriceOverrides[key]; ok {
		svc.ContractPrice = money.Num(override)
	}
	return svc
}

// closingCosts computes the self-inclusive closing fee: a percentage of the
// post-markup total grossed up by 1/(1-pct) so the fee covers itself.
func closingCosts(postMarkupTotal, pct float64) float64 {
	if pct <= 0 || pct >= 1 {
		return 0
	}
	return postMarkupTotal * pct / (1 - pct)
}

// projectCommand computes the three overhead-labor subtotals from service
// count and drive distance. The round-trip drive cost lands twice in site
// supervision (supervisors drive out per service), once in each of the
// other two.
func projectCommand(q entities.Quote, tables PricingTables, serviceCount int) ProjectCommand {
	var pc ProjectCommand
	if serviceCount == 0 {
		return pc
	}

	t := tables.ProjectCommand
	n := float64(serviceCount)
	miles := money.Num(q.DriveMiles)
	driveCost := milesRoundTrip(miles) * driveRate(tables.DriveRates, miles)

	pc.SiteSupervision = t.SiteSupervisionBase + n*t.SiteSupervisionPerService + 2*driveCost*n
	pc.ProjectManagement = t.ProjectManagementBase + n*t.ProjectManagementPerService + driveCost
	pc.ProjectCoordination = t.CoordinationBase + n*t.CoordinationPerService + driveCost
	pc.Total = pc.SiteSupervision + pc.ProjectManagement + pc.ProjectCoordination
	return pc
}
