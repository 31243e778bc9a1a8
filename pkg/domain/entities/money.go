package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencyCode identifies an ISO 4217 currency
type CurrencyCode string

// minorUnits maps currencies to their number of minor-unit digits.
// Currencies not listed default to 2.
var minorUnits = map[CurrencyCode]int32{
	"BHD": 3,
	"JPY": 0,
	"KRW": 0,
	"KWD": 3,
	"VND": 0,
}

// Money represents an exact decimal amount tagged with a currency code.
// Arithmetic between two Money values requires equal currency codes;
// mixed-currency operations fail rather than silently converting.
type Money struct {
	Amount   decimal.Decimal
	Currency CurrencyCode
}

// NewMoney creates a validated Money value
func NewMoney(amount decimal.Decimal, currency CurrencyCode) (Money, error) {
	if currency == "" {
		return Money{}, fmt.Errorf("currency code cannot be empty")
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("amount cannot be negative, got %s", amount)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// NewMoneyFromString parses a decimal string into a Money value
func NewMoneyFromString(amount string, currency CurrencyCode) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return NewMoney(d, currency)
}

// Add returns the sum of two Money values in the same currency
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, &CurrencyMismatchError{Left: m.Currency, Right: other.Currency}
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub returns the difference of two Money values in the same currency
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, &CurrencyMismatchError{Left: m.Currency, Right: other.Currency}
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// Cmp compares two Money values in the same currency.
// Returns -1, 0 or 1 following decimal.Decimal.Cmp semantics.
func (m Money) Cmp(other Money) (int, error) {
	if m.Currency != other.Currency {
		return 0, &CurrencyMismatchError{Left: m.Currency, Right: other.Currency}
	}
	return m.Amount.Cmp(other.Amount), nil
}

// DivFactor rescales the amount by a positive factor, preserving the currency.
// Used for unit normalization only; never converts between currencies.
func (m Money) DivFactor(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Div(factor), Currency: m.Currency}
}

// MulFactor scales the amount by a factor, preserving the currency
func (m Money) MulFactor(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

// RoundDisplay rounds the amount half-up to the currency's minor unit.
// Internal arithmetic keeps full precision; rounding happens only at display.
func (m Money) RoundDisplay() Money {
	places, ok := minorUnits[m.Currency]
	if !ok {
		places = 2
	}
	return Money{Amount: m.Amount.Round(places), Currency: m.Currency}
}

// Equal reports whether two Money values have the same currency and amount
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.RoundDisplay().Amount, m.Currency)
}
