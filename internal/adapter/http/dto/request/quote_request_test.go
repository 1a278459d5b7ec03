package request

import "testing"

func TestQuoteRequest_ResolveCustomerID(t *testing.T) {
	r := QuoteRequest{CustomerID: " cust-1 "}
	if got := r.ResolveCustomerID(); got != "cust-1" {
		t.Fatalf("expected cust-1, got %q", got)
	}

	r2 := QuoteRequest{CustomerID: "   "}
	if got := r2.ResolveCustomerID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestQuoteRequest_ResolveRemovedMaterials(t *testing.T) {
	r := QuoteRequest{RemovedMaterials: []string{" anchors ", "vapor_barrier", "  ", "anchors"}}
	removed := r.ResolveRemovedMaterials()
	if len(removed) != 2 {
		t.Fatalf("expected 2 keys, got %d: %+v", len(removed), removed)
	}
	if !removed["anchors"] || !removed["vapor_barrier"] {
		t.Fatalf("unexpected set: %+v", removed)
	}

	r2 := QuoteRequest{}
	if got := r2.ResolveRemovedMaterials(); got != nil {
		t.Fatalf("expected nil for empty list, got %+v", got)
	}
}

func TestChangeOrderRequest_ResolveCreatedBy(t *testing.T) {
	r := ChangeOrderRequest{CreatedBy: " pm "}
	if got := r.ResolveCreatedBy(); got != "pm" {
		t.Fatalf("expected pm, got %q", got)
	}
}
