package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		want   string
	}{
		{"ten percent", "200", "10", "20"},
		{"zero rate", "200", "0", "0"},
		{"zero amount", "0", "21", "0"},
		{"fractional rate", "100", "9.5", "9.5"},
		{"fractional amount", "33.33", "10", "3.333"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentOf(MustMoney(tt.amount), MustMoney(tt.rate))
			assert.True(t, got.Equal(MustMoney(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestWithPercentRoundTrip(t *testing.T) {
	// Adding a margin and stripping it again returns the base amount.
	base := MustMoney("80")
	rate := MustMoney("25")

	withMargin := WithPercentAdded(base, rate)
	assert.True(t, withMargin.Equal(MustMoney("100")), "got %s", withMargin)

	stripped := WithoutPercent(withMargin, rate)
	assert.True(t, stripped.Equal(base), "got %s", stripped)
}

func TestWithoutPercentZeroRate(t *testing.T) {
	amount := MustMoney("42.42")
	assert.True(t, WithoutPercent(amount, Zero()).Equal(amount))
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1.00"},
		{"2.675", "2.68"},
		{"-1.005", "-1.01"},
		{"3", "3"},
	}
	for _, tt := range tests {
		got := Round2(MustMoney(tt.in))
		assert.True(t, got.Equal(MustMoney(tt.want)), "Round2(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestRound2FloatAndRound4Float(t *testing.T) {
	assert.Equal(t, 3.33, Round2Float(MustMoney("3.3333")))
	assert.Equal(t, 3.3333, Round4Float(MustMoney("3.33334")))
	assert.Equal(t, 0.0249, Round4Float(MustMoney("0.02490")))
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("19.90")
	require.NoError(t, err)
	assert.True(t, m.Equal(NewMoney(19.90)))

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestPercentArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 style float drift must not appear in money math.
	sum := MustMoney("0.1").Add(MustMoney("0.2"))
	assert.True(t, sum.Equal(MustMoney("0.3")), "got %s", sum)
}
