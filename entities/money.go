package entities

import "fmt"

// Money is an exact amount in minor units. Keeping cents as an integer makes
// order totals reproducible, there is no float drift to reconcile later.
type Money struct {
	Cents    int64  `json:"cents" db:"cents"`
	Currency string `json:"currency" db:"currency"`
}

func NewMoney(cents int64, currency string) Money {
	return Money{Cents: cents, Currency: currency}
}

func (m Money) Mul(qty int) Money {
	return Money{Cents: m.Cents * int64(qty), Currency: m.Currency}
}

func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents, Currency: m.Currency}
}

// Format renders the amount with two decimal places, e.g. 12550 -> "125.50".
func (m Money) Format() string {
	sign := ""
	cents := m.Cents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
