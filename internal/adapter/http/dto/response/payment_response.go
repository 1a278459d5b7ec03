package response

import (
	"encoding/json"
	"time"

	"modular_homes/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`

	IsContingencyPayment bool `json:"is_contingency_payment"`

	ProviderPaymentID  string                 `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	res := PaymentResponse{
		PaymentID:            p.ID,
		ID:                   p.ID,
		Amount:               p.Amount,
		Date:                 p.Date,
		IsContingencyPayment: p.IsContingencyPayment,
		ProviderPaymentID:    p.ProviderPaymentID,
		ProviderPayloadRaw:   string(p.ProviderPayloadRaw),
		CreatedAt:            p.CreatedAt,
		CreatedBy:            p.CreatedBy,
	}
	if len(p.ProviderPayloadRaw) > 0 {
		var parsed map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
			res.ProviderPayload = parsed
		}
	}
	return res
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	res := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		res = append(res, FromPayment(p))
	}
	return res
}
