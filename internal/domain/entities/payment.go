package entities

import (
	"encoding/json"
	"time"
)

// Payment is an entry in the quote's payment log.
//
// IsContingencyPayment marks a payment that refills the contingency fund
// (typically after an overdraft) instead of paying down the base contract
// price. The reconciliation engine never infers this flag; it is set by the
// recording caller and nothing else.
//
// Gateway payload:
//   - ProviderPayloadRaw keeps the original gateway response (JSON) for
//     traceability/audit when the payment was charged through Mercado Pago.
type Payment struct {
	ID                   string    `json:"id"`
	Amount               float64   `json:"amount"`
	Date                 time.Time `json:"date"`
	IsContingencyPayment bool      `json:"is_contingency_payment"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}

// PermitEntry records a permit-related cost item on the quote.
type PermitEntry struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	IssuedAt    time.Time `json:"issued_at"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
}
