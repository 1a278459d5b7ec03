package response

import (
	"time"

	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/money"
)

type ScrubbResponse struct {
	ServiceKey    string  `json:"service_key"`
	PreviousCost  float64 `json:"previous_cost"`
	NewCost       float64 `json:"new_cost"`
	ContractPrice float64 `json:"contract_price"`
	Variance      float64 `json:"variance"`

	IsAllowance           bool `json:"is_allowance"`
	IsChangeOrderAddition bool `json:"is_change_order_addition"`

	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// FromScrubb maps one log entry to its wire shape. The stored entry keeps
// full float precision; the response rounds money fields to cents.
func FromScrubb(e entities.ScrubbHistoryEntry) ScrubbResponse {
	return ScrubbResponse{
		ServiceKey:            e.ServiceKey,
		PreviousCost:          money.RoundCents(e.PreviousCost),
		NewCost:               money.RoundCents(e.NewCost),
		ContractPrice:         money.RoundCents(e.ContractPrice),
		Variance:              money.RoundCents(e.Variance),
		IsAllowance:           e.IsAllowance,
		IsChangeOrderAddition: e.IsChangeOrderAddition,
		UpdatedAt:             e.UpdatedAt,
		UpdatedBy:             e.UpdatedBy,
	}
}

func FromScrubbHistory(history []entities.ScrubbHistoryEntry) []ScrubbResponse {
	res := make([]ScrubbResponse, 0, len(history))
	for _, e := range history {
		res = append(res, FromScrubb(e))
	}
	return res
}

type PermitResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	IssuedAt    time.Time `json:"issued_at"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by,omitempty"`
}

func FromPermit(p entities.PermitEntry) PermitResponse {
	return PermitResponse{
		ID:          p.ID,
		Description: p.Description,
		Amount:      p.Amount,
		IssuedAt:    p.IssuedAt,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
}

func FromPermits(entries []entities.PermitEntry) []PermitResponse {
	res := make([]PermitResponse, 0, len(entries))
	for _, p := range entries {
		res = append(res, FromPermit(p))
	}
	return res
}
