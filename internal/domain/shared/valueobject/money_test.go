package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestArithmetic(t *testing.T) {
	t.Run("add is exact for fractional values", func(t *testing.T) {
		assert.True(t, Add(d("0.1"), d("0.2")).Equal(d("0.3")))
	})

	t.Run("sub may go negative", func(t *testing.T) {
		assert.True(t, Sub(d("10"), d("10.01")).Equal(d("-0.01")))
	})

	t.Run("multiply keeps full scale", func(t *testing.T) {
		got := Multiply(d("9.99"), d("2"))
		assert.Equal(t, "19.98", got.String())
	})

	t.Run("percent shifts without rounding", func(t *testing.T) {
		got := Percent(d("19.98"), d("10"))
		assert.Equal(t, "1.998", got.String())

		got = Percent(d("0.01"), d("7.25"))
		assert.Equal(t, "0.000725", got.String())
	})

	t.Run("sum of nothing is zero", func(t *testing.T) {
		assert.True(t, Sum().IsZero())
		assert.True(t, Sum(d("1.5"), d("2.25"), d("-0.75")).Equal(d("3")))
	})
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in      string
		want    Currency
		wantErr bool
	}{
		{"", DefaultCurrency, false},
		{"usd", USD, false},
		{" EUR ", EUR, false},
		{"CNY", CNY, false},
		{"XXXX", "", true},
		{"ZZZ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCurrency(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := NewMoney(d("1"), "")
		assert.Error(t, err)
	})

	t.Run("add and subtract require the same currency", func(t *testing.T) {
		a := MustMoney(d("10"), USD)
		b := MustMoney(d("2.5"), USD)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Equals(MustMoney(d("12.5"), USD)))

		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "7.50 USD", diff.String())

		_, err = a.Add(MustMoney(d("1"), EUR))
		assert.Error(t, err)
	})

	t.Run("json keeps exact amount", func(t *testing.T) {
		m := MustMoney(d("21.978"), USD)
		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":"21.978","currency":"USD"}`, string(data))

		var back Money
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, back.Equals(m))
	})

	t.Run("greater than", func(t *testing.T) {
		gt, err := MustMoney(d("45"), USD).GreaterThan(MustMoney(d("40"), USD))
		require.NoError(t, err)
		assert.True(t, gt)

		_, err = Zero(USD).GreaterThan(Zero(EUR))
		assert.Error(t, err)
	})
}
