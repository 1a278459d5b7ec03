package response

import (
	"testing"
	"time"

	"modular_homes/internal/domain/entities"
)

func TestFromScrubb_RoundsMoneyFields(t *testing.T) {
	now := time.Now().UTC()
	e := entities.ScrubbHistoryEntry{
		ServiceKey:    "well",
		PreviousCost:  9500.0000001,
		NewCost:       9100.406,
		ContractPrice: 9500,
		Variance:      399.5949999,
		IsAllowance:   true,
		UpdatedAt:     now,
		UpdatedBy:     "pm",
	}

	res := FromScrubb(e)
	if res.PreviousCost != 9500 || res.NewCost != 9100.41 {
		t.Fatalf("costs must round to cents: %+v", res)
	}
	if res.Variance != 399.59 {
		t.Fatalf("variance must round to cents, got %v", res.Variance)
	}
	if res.ContractPrice != 9500 || !res.IsAllowance || res.UpdatedBy != "pm" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}
