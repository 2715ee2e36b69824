package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Add returns a + b. Ledger arithmetic never rounds: every operation is exact
// at arbitrary scale, so totals computed here are reproducible byte for byte.
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

// Sub returns a - b
func Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b)
}

// Multiply returns a * b
func Multiply(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

// Percent returns base * rate / 100. The division is a decimal shift and is exact.
func Percent(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Shift(-2)
}

// Sum adds all values, returning zero for an empty input
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = Add(total, v)
	}
	return total
}

// Currency represents an ISO 4217 currency code
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CNY Currency = "CNY"
)

// DefaultCurrency is used when a document does not name one
const DefaultCurrency = USD

// ParseCurrency normalises and validates an ISO 4217 code.
// An empty code yields DefaultCurrency.
func ParseCurrency(code string) (Currency, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultCurrency, nil
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("invalid currency code %q", code)
	}
	return Currency(unit.String()), nil
}

// Money is an amount tagged with its currency. It is immutable.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates Money, rejecting an empty currency
func NewMoney(amount decimal.Decimal, c Currency) (Money, error) {
	if c == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{amount: amount, currency: c}, nil
}

// MustMoney is NewMoney for callers that already validated the currency
func MustMoney(amount decimal.Decimal, c Currency) Money {
	m, err := NewMoney(amount, c)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns zero Money in c
func Zero(c Currency) Money {
	return Money{amount: decimal.Zero, currency: c}
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }
func (m Money) IsPositive() bool        { return m.amount.IsPositive() }
func (m Money) IsNegative() bool        { return m.amount.IsNegative() }

// Add returns m + other; currencies must match
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot add money with different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{amount: Add(m.amount, other.amount), currency: m.currency}, nil
}

// Subtract returns m - other; currencies must match
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot subtract money with different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{amount: Sub(m.amount, other.amount), currency: m.currency}, nil
}

// Multiply returns m scaled by factor
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: Multiply(m.amount, factor), currency: m.currency}
}

// Equals compares amount and currency
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// GreaterThan compares amounts; currencies must match
func (m Money) GreaterThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, fmt.Errorf("cannot compare money with different currencies: %s and %s", m.currency, other.currency)
	}
	return m.amount.GreaterThan(other.amount), nil
}

// String renders the amount with two places for display only
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// MarshalJSON renders {"amount": "...", "currency": "..."} with the exact amount
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}{
		Amount:   m.amount.String(),
		Currency: m.currency,
	})
}

// UnmarshalJSON supports request binding
func (m *Money) UnmarshalJSON(data []byte) error {
	var v struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(v.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	m.amount = amount
	m.currency = v.Currency
	return nil
}
