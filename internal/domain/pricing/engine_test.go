package pricing

import (
	"math"
	"reflect"
	"testing"

	"modular_homes/internal/domain/entities"
)

func approx(t *testing.T, got, want float64, label string) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s: expected %v, got %v", label, want, got)
	}
}

func TestComputeTotals_RateStack(t *testing.T) {
	// A bare 100k home exercises the whole rate stack with round numbers:
	// 5% overhead, 10% markup, 2% contingency on the marked-up total.
	q := entities.Quote{HomeBasePrice: 100000}
	out := ComputeTotals(q, DefaultTables())

	approx(t, out.Subtotal, 100000, "subtotal")
	approx(t, out.Overhead, 5000, "overhead")
	approx(t, out.Markup, 10000, "markup")
	approx(t, out.Total, 115000, "total")
	approx(t, out.Contingency, 2300, "contingency")
	approx(t, out.GrandTotal, 117300, "grand total")
}

func TestComputeTotals_EmptyQuote(t *testing.T) {
	out := ComputeTotals(entities.Quote{}, DefaultTables())

	if len(out.Materials) != 0 {
		t.Fatalf("expected no material lines, got %d", len(out.Materials))
	}
	if len(out.Services) != 0 {
		t.Fatalf("expected no services, got %d", len(out.Services))
	}
	approx(t, out.ProjectCommand.Total, 0, "project command")
	approx(t, out.GrandTotal, 0, "grand total")
}

func TestComputeTotals_Deterministic(t *testing.T) {
	q := entities.Quote{
		HomeBasePrice: 82000,
		Dimensions:    entities.HomeDimensions{WidthFt: 28, LengthFt: 60, DoubleWide: true, WalkDoors: 2},
		DriveMiles:    40,
		SelectedServices: map[string]bool{
			entities.ServiceInstallation:   true,
			entities.ServiceDelivery:       true,
			entities.ServiceSkirting:       true,
			entities.ServiceElectricalHook: true,
			entities.ServicePermits:        true,
		},
	}
	tables := DefaultTables()

	first := ComputeTotals(q, tables)
	for i := 0; i < 10; i++ {
		if got := ComputeTotals(q, tables); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged from first run", i)
		}
	}
}

func TestComputeTotals_HomeMarkupOnlyForCatalogModels(t *testing.T) {
	tables := DefaultTables()

	catalog := ComputeTotals(entities.Quote{HomeModelID: "redwood-28", HomeBasePrice: 100000}, tables)
	approx(t, catalog.HomePrice, 115000, "catalog home price")

	direct := ComputeTotals(entities.Quote{HomeBasePrice: 100000}, tables)
	approx(t, direct.HomePrice, 100000, "pass-through home price")
}

func TestComputeTotals_ServiceOrderIsStable(t *testing.T) {
	q := entities.Quote{
		SelectedServices: map[string]bool{
			entities.ServiceSkirting:     true,
			entities.ServiceDelivery:     true,
			entities.ServiceInstallation: true,
			entities.ServiceHVAC:         false,
		},
	}
	out := ComputeTotals(q, DefaultTables())

	want := []string{entities.ServiceDelivery, entities.ServiceInstallation, entities.ServiceSkirting}
	if len(out.Services) != len(want) {
		t.Fatalf("expected %d services, got %d", len(want), len(out.Services))
	}
	for i, key := range want {
		if out.Services[i].Key != key {
			t.Fatalf("position %d: expected %s, got %s", i, key, out.Services[i].Key)
		}
	}
}

func TestComputeTotals_PriceOverrideReplacesComputedPrice(t *testing.T) {
	q := entities.Quote{
		SelectedServices: map[string]bool{entities.ServiceElectricalHook: true},
		PriceOverrides:   map[string]float64{entities.ServiceElectricalHook: 2400},
	}
	out := ComputeTotals(q, DefaultTables())

	approx(t, out.Services[0].ContractPrice, 2400, "overridden price")
}

func TestComputeTotals_UnknownServiceKeyPricesZero(t *testing.T) {
	q := entities.Quote{
		SelectedServices: map[string]bool{"retired_service": true},
	}
	out := ComputeTotals(q, DefaultTables())

	if len(out.Services) != 1 {
		t.Fatalf("expected the stale selection to stay listed, got %d services", len(out.Services))
	}
	approx(t, out.Services[0].ContractPrice, 0, "stale selection price")
	if out.Services[0].Name != "retired_service" {
		t.Fatalf("expected key as fallback name, got %q", out.Services[0].Name)
	}
}

func TestComputeTotals_ClosingCostsAreSelfInclusive(t *testing.T) {
	tables := DefaultTables()
	q := entities.Quote{
		HomeBasePrice: 90000,
		SelectedServices: map[string]bool{
			entities.ServiceClosingCosts:   true,
			entities.ServiceElectricalHook: true,
		},
	}
	out := ComputeTotals(q, tables)

	preClosing := out.Subtotal + out.Overhead + out.Markup
	wantClosing := preClosing * tables.Rates.Closing / (1 - tables.Rates.Closing)
	approx(t, out.ClosingCosts, wantClosing, "closing costs")
	approx(t, out.Total, preClosing+wantClosing, "total with closing")

	// Sanity: the grossed-up fee is exactly the closing rate of the final total.
	approx(t, out.ClosingCosts, out.Total*tables.Rates.Closing, "self-inclusive identity")

	found := false
	for _, svc := range out.Services {
		if svc.Key == entities.ServiceClosingCosts {
			found = true
			approx(t, svc.ContractPrice, wantClosing, "closing line")
		}
	}
	if !found {
		t.Fatal("closing costs line missing from services")
	}

	// The itemized list carries the priced closing line but ServicesTotal
	// stays closing-free: it already fed the subtotal closing is computed on.
	var itemized float64
	for _, svc := range out.Services {
		itemized += svc.ContractPrice
	}
	approx(t, itemized-out.ClosingCosts, out.ServicesTotal, "services total excludes closing")
}

func TestComputeTotals_ContingencyRateOverride(t *testing.T) {
	q := entities.Quote{HomeBasePrice: 100000, ContingencyRate: 0.05}
	out := ComputeTotals(q, DefaultTables())

	approx(t, out.Contingency, 5750, "overridden contingency")
	approx(t, out.GrandTotal, 120750, "grand total")
}

func TestComputeTotals_MarkupRateOverride(t *testing.T) {
	q := entities.Quote{HomeBasePrice: 100000, MarkupRate: 0.20}
	out := ComputeTotals(q, DefaultTables())

	approx(t, out.Markup, 20000, "overridden markup")
	approx(t, out.Total, 125000, "total")
}

func TestComputeTotals_ProjectCommand(t *testing.T) {
	tables := DefaultTables()
	q := entities.Quote{
		DriveMiles: 20, // 3.50/mi band, 40 round-trip miles => 140 drive cost
		SelectedServices: map[string]bool{
			entities.ServiceElectricalHook: true,
			entities.ServicePlumbingHook:   true,
			entities.ServiceHVAC:           true,
		},
	}
	out := ComputeTotals(q, tables)

	approx(t, out.ProjectCommand.SiteSupervision, 600+3*140+2*140*3, "site supervision")
	approx(t, out.ProjectCommand.ProjectManagement, 900+3*110+140, "project management")
	approx(t, out.ProjectCommand.ProjectCoordination, 450+3*65+140, "coordination")
}

func TestComputeTotals_NoServicesMeansNoProjectCommand(t *testing.T) {
	q := entities.Quote{DriveMiles: 500, HomeBasePrice: 60000}
	out := ComputeTotals(q, DefaultTables())

	approx(t, out.ProjectCommand.Total, 0, "project command with no services")
}

func TestClosingCosts_DegenerateRates(t *testing.T) {
	approx(t, closingCosts(1000, 0), 0, "zero pct")
	approx(t, closingCosts(1000, 1), 0, "pct of 1")
	approx(t, closingCosts(1000, -0.1), 0, "negative pct")
}

func TestBandPrice(t *testing.T) {
	bands := []PriceBand{{UpTo: 50, Price: 100}, {UpTo: 100, Price: 200}, {Price: 300}}

	approx(t, bandPrice(bands, 0), 0, "zero qty")
	approx(t, bandPrice(bands, -5), 0, "negative qty")
	approx(t, bandPrice(bands, 50), 100, "at band edge")
	approx(t, bandPrice(bands, 51), 200, "next band")
	approx(t, bandPrice(bands, 5000), 300, "open-ended band")
}
