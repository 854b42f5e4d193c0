package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGramsFixedPoint(t *testing.T) {
	g := NewGramsFromFloat64(12.5)
	assert.Equal(t, int64(125_000), g.Int64Scaled())
	assert.Equal(t, 12.5, g.Float64())
	assert.Equal(t, "12.5000", g.String())
}

func TestGramsArithmetic(t *testing.T) {
	a := NewGramsFromFloat64(100)
	b := NewGramsFromFloat64(37.25)

	assert.Equal(t, NewGramsFromFloat64(137.25), a.Add(b))
	assert.Equal(t, NewGramsFromFloat64(62.75), a.Sub(b))
	assert.Equal(t, NewGramsFromFloat64(111.75), b.MulInt(3))
	assert.Equal(t, NewGramsFromFloat64(25), a.DivInt(4))
	assert.Equal(t, NewGramsFromFloat64(-37.25), b.Neg())
	assert.Equal(t, b, b.Neg().Abs())
}

func TestGramsCeilToGram(t *testing.T) {
	assert.Equal(t, NewGramsFromFloat64(125), NewGramsFromFloat64(124.5).CeilToGram())
	assert.Equal(t, NewGramsFromFloat64(125), NewGramsFromFloat64(124.0001).CeilToGram())
	assert.Equal(t, NewGramsFromFloat64(124), NewGramsFromFloat64(124).CeilToGram())
	assert.Equal(t, Grams(0), Grams(0).CeilToGram())
	assert.Equal(t, NewGramsFromFloat64(-1), NewGramsFromFloat64(-1.5).CeilToGram())
}

func TestGramsNoBinaryFloatDrift(t *testing.T) {
	// 0.1g accumulated ten times is exactly 1g in fixed point.
	var total Grams
	step := NewGramsFromFloat64(0.1)
	for i := 0; i < 10; i++ {
		total = total.Add(step)
	}
	assert.Equal(t, NewGramsFromFloat64(1), total)
}

func TestGramsJSONRoundTrip(t *testing.T) {
	g := NewGramsFromFloat64(3.1415)

	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, "3.1415", string(data))

	var back Grams
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, g, back)
}

func TestGramsUnmarshalVariants(t *testing.T) {
	tests := []struct {
		in   string
		want Grams
	}{
		{`"2.5"`, NewGramsFromFloat64(2.5)},
		{`750`, NewGramsFromFloat64(750)},
		{`null`, 0},
		{`-0.0001`, NewGramsFromInt64Scaled(-1)},
	}
	for _, tt := range tests {
		var g Grams
		require.NoError(t, json.Unmarshal([]byte(tt.in), &g), tt.in)
		assert.Equal(t, tt.want, g, tt.in)
	}

	var g Grams
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &g))
}

func TestGramsMoneyConversion(t *testing.T) {
	g := NewGramsFromFloat64(250.75)
	assert.True(t, g.Money().Equal(MustMoney("250.75")))
}
