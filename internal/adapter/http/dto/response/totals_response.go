package response

import (
	"modular_homes/internal/domain/ledger"
	"modular_homes/internal/domain/pricing"
)

// TotalsResponse wraps the pricing engine output with the quote it was
// computed for.
type TotalsResponse struct {
	QuoteID string `json:"quote_id"`
	pricing.Totals
}

func FromTotals(quoteID string, t pricing.Totals) TotalsResponse {
	return TotalsResponse{QuoteID: quoteID, Totals: t}
}

// ContingencyResponse wraps the reconciled fund state with the quote it was
// replayed from.
type ContingencyResponse struct {
	QuoteID string `json:"quote_id"`
	ledger.Reconciliation
}

func FromReconciliation(quoteID string, rec ledger.Reconciliation) ContingencyResponse {
	return ContingencyResponse{QuoteID: quoteID, Reconciliation: rec}
}
