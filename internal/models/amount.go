package models

import "github.com/shopspring/decimal"

// AmountScale is the number of decimal places kept for currency values.
const AmountScale = 2

// Amount is a currency value with fixed two-place precision.
// It scans from and binds to NUMERIC columns through the embedded decimal.
type Amount struct {
	decimal.Decimal
}

// NewAmount rounds d to AmountScale places.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d.Round(AmountScale)}
}

// AmountFromString parses s, e.g. "150.00".
func AmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(d), nil
}

// MarshalJSON writes the amount as a bare JSON number with exactly two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(AmountScale)), nil
}

// UnmarshalJSON accepts JSON numbers and numeric strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = NewAmount(d)
	return nil
}
