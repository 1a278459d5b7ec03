package response

import (
	"time"

	"modular_homes/internal/domain/entities"
)

type ChangeOrderResponse struct {
	ChangeOrderNum int    `json:"change_order_num"`
	Version        int    `json:"version"`
	Status         string `json:"status"`

	Additions   []entities.ChangeOrderLine     `json:"additions,omitempty"`
	Deletions   []entities.ChangeOrderLine     `json:"deletions,omitempty"`
	Adjustments map[string]entities.Adjustment `json:"adjustments,omitempty"`

	TotalChange        float64 `json:"total_change"`
	ContingencyUsed    float64 `json:"contingency_used"`
	ContingencyBalance float64 `json:"contingency_balance"`

	IsReversal bool      `json:"is_reversal"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by,omitempty"`
}

func FromChangeOrder(e entities.ChangeOrderEntry) ChangeOrderResponse {
	return ChangeOrderResponse{
		ChangeOrderNum:     e.ChangeOrderNum,
		Version:            e.Version,
		Status:             string(e.Status),
		Additions:          e.Additions,
		Deletions:          e.Deletions,
		Adjustments:        e.Adjustments,
		TotalChange:        e.TotalChange,
		ContingencyUsed:    e.ContingencyUsed,
		ContingencyBalance: e.ContingencyBalance,
		IsReversal:         e.IsReversal,
		CreatedAt:          e.CreatedAt,
		CreatedBy:          e.CreatedBy,
	}
}
