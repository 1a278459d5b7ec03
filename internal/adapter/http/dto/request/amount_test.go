package request

import (
	"encoding/json"
	"testing"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		body string
		want float64
	}{
		{"number", `{"price": 1250.5, "name": "skirting"}`, 1250.5},
		{"currency string", `{"price": "$1,250.00", "name": "skirting"}`, 1250},
		{"plain string", `{"price": "980", "name": "skirting"}`, 980},
		{"blank string", `{"price": "  ", "name": "skirting"}`, 0},
		{"malformed string", `{"price": "twelve", "name": "skirting"}`, 0},
		{"missing", `{"name": "skirting"}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var cm CustomMaterialRequest
			if err := json.Unmarshal([]byte(tc.body), &cm); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if float64(cm.Price) != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, float64(cm.Price))
			}
		})
	}
}

func TestScrubbRequest_ActualCostAcceptsString(t *testing.T) {
	var r ScrubbRequest
	body := `{"service_key": "well", "actual_cost": "$9,100.40", "updated_by": "pm"}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if float64(r.ActualCost) != 9100.40 {
		t.Fatalf("expected 9100.40, got %v", float64(r.ActualCost))
	}
}
