package request

import "encoding/json"

// PaymentRequest is the payload for recording a payment against a contract.
//
// `gateway_payload` is stored as-is (raw JSON) to support varying Mercado
// Pago schemas; it is only consumed when charge_gateway is true.
type PaymentRequest struct {
	Amount               float64         `json:"amount" binding:"required"`
	IsContingencyPayment bool            `json:"is_contingency_payment"`
	ChargeGateway        bool            `json:"charge_gateway"`
	GatewayPayload       json.RawMessage `json:"gateway_payload"`
	CreatedBy            string          `json:"created_by"`
}
