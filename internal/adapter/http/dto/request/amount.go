package request

import (
	"bytes"
	"encoding/json"
	"errors"

	"calcplanner/internal/usecase"
)

var ErrInvalidAmount = errors.New("amount must be a number or a string")

// Amount is a form value sent either as a JSON number or as the raw text the
// user typed. Text goes through usecase.ParseAmount: the leading number is
// kept ("12abc" is 12), text without one is 0, and a comma decimal separator
// is accepted. A JSON null decoded into an Amount is 0; a null *Amount field
// stays nil.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}
	if b[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return ErrInvalidAmount
		}
		*a = Amount(usecase.ParseAmount(raw))
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return ErrInvalidAmount
	}
	*a = Amount(v)
	return nil
}

// Float returns the amount as a non-negative number.
func (a Amount) Float() float64 {
	return usecase.CoercePrice(float64(a))
}
