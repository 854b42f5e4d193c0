// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
// All intermediate financial math keeps full precision; rounding to
// 2 decimal places happens exactly once at the serialization boundary.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

var hundred = decimal.NewFromInt(100)

// PercentOf returns rate% of amount (rate expressed as 0-100).
// PercentOf(200, 15) = 30.
func PercentOf(amount Money, rate Money) Money {
	return amount.Mul(rate).Div(hundred)
}

// WithPercentAdded returns amount * (1 + rate/100).
// WithPercentAdded(5, 30) = 6.5.
func WithPercentAdded(amount Money, rate Money) Money {
	return amount.Mul(decimal.NewFromInt(1).Add(rate.Div(hundred)))
}

// WithoutPercent reverses WithPercentAdded: amount / (1 + rate/100).
func WithoutPercent(amount Money, rate Money) Money {
	return amount.Div(decimal.NewFromInt(1).Add(rate.Div(hundred)))
}

// Round2 rounds to 2 decimal places (half away from zero).
// Display/serialization only, never use mid-computation.
func Round2(m Money) Money {
	return m.Round(2)
}

// Round2Float converts Money to float64 rounded to 2 decimal places
// for JSON responses.
func Round2Float(m Money) float64 {
	f, _ := m.Round(2).Float64()
	return f
}

// Round4Float converts Money to float64 rounded to 4 decimal places.
// Used for per-gram unit prices where 2 digits lose too much precision.
func Round4Float(m Money) float64 {
	f, _ := m.Round(4).Float64()
	return f
}
