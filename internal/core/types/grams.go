package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Grams is a fixed-point filament weight with 4 decimal places (scale = 1e4).
//
// Rationale:
// - Matches Postgres NUMERIC(15,4) semantics without floating point errors
// - Easy to store as BIGINT in DB (scaled integer)
// - JSON remains a number with up to 4 decimals
type Grams int64

const GramsScale int64 = 10_000

func NewGramsFromFloat64(v float64) Grams {
	return Grams(math.Round(v * float64(GramsScale)))
}

func NewGramsFromInt64Scaled(v int64) Grams { return Grams(v) }

func (g Grams) Int64Scaled() int64 { return int64(g) }

func (g Grams) Float64() float64 { return float64(g) / float64(GramsScale) }

func (g Grams) IsZero() bool { return g == 0 }

func (g Grams) IsPositive() bool { return g > 0 }

func (g Grams) IsNegative() bool { return g < 0 }

func (g Grams) Neg() Grams { return -g }

func (g Grams) Abs() Grams {
	if g < 0 {
		return -g
	}
	return g
}

func (g Grams) Add(other Grams) Grams { return g + other }

func (g Grams) Sub(other Grams) Grams { return g - other }

// MulInt scales the weight by an integer count (e.g. grams per unit times
// units sold).
func (g Grams) MulInt(n int64) Grams { return Grams(int64(g) * n) }

// DivInt divides the weight by an integer count (e.g. total usage over a
// number of days). Panics on zero, same as integer division.
func (g Grams) DivInt(n int64) Grams { return Grams(int64(g) / n) }

// CeilToGram rounds up to the next whole gram.
func (g Grams) CeilToGram() Grams {
	r := int64(g) % GramsScale
	if r <= 0 {
		return g - Grams(r)
	}
	return g + Grams(GramsScale-r)
}

// Money converts the weight to a full-precision decimal for cost math.
func (g Grams) Money() Money {
	return NewMoney(g.Float64())
}

// String returns a decimal string with 4 fractional digits.
func (g Grams) String() string {
	neg := g < 0
	v := g
	if neg {
		v = -v
	}
	intPart := int64(v) / GramsScale
	frac := int64(v) % GramsScale
	if neg {
		return fmt.Sprintf("-%d.%04d", intPart, frac)
	}
	return fmt.Sprintf("%d.%04d", intPart, frac)
}

// MarshalJSON encodes Grams as JSON number (not string), preserving 4 digits.
func (g Grams) MarshalJSON() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalJSON accepts either a JSON number or string and parses to fixed-point (4 digits).
func (g *Grams) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*g = 0
		return nil
	}

	// If string, unquote first.
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := parseGramsString(s)
		if err != nil {
			return err
		}
		*g = parsed
		return nil
	}

	// Otherwise treat as number token.
	parsed, err := parseGramsString(string(data))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func parseGramsString(s string) (Grams, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty weight")
	}

	// We intentionally do NOT support exponent form to keep parsing strict.
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("parse weight: %w", err)
		}
		return NewGramsFromFloat64(f), nil
	}

	sign := int64(1)
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = strings.TrimPrefix(s, "-")
	} else if strings.HasPrefix(s, "+") {
		s = strings.TrimPrefix(s, "+")
	}

	parts := strings.SplitN(s, ".", 2)
	intPartStr := parts[0]
	fracStr := ""
	if len(parts) == 2 {
		fracStr = parts[1]
	}

	if intPartStr == "" {
		intPartStr = "0"
	}
	intPart, err := strconv.ParseInt(intPartStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse weight integer part: %w", err)
	}

	// Normalize fractional part to 4 digits (pad right, truncate extra digits).
	if len(fracStr) > 4 {
		fracStr = fracStr[:4]
	}
	for len(fracStr) < 4 {
		fracStr += "0"
	}
	frac := int64(0)
	if fracStr != "" {
		frac, err = strconv.ParseInt(fracStr, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse weight fractional part: %w", err)
		}
	}

	return Grams(sign * (intPart*GramsScale + frac)), nil
}
