package request

import (
	"encoding/json"

	"modular_homes/internal/domain/money"
)

// Amount is a dollar figure that tolerates the shapes clients actually send:
// a JSON number, or a string like "$1,250.00". Blank or malformed values
// resolve to 0, never an error, the same coercion the pricing engine applies
// to its own numeric inputs.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*a = Amount(money.Num(v))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(money.ParseNum(s))
	return nil
}
