package invoicing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(qty, price string) LineItem {
	return LineItem{ItemName: "item", Quantity: dec(qty), UnitPrice: dec(price)}
}

func TestCalculateTotals(t *testing.T) {
	t.Run("quote scenario keeps every fractional digit", func(t *testing.T) {
		totals := CalculateTotals([]LineItem{item("2", "9.99")}, dec("10"))

		assert.Equal(t, "19.98", totals.SubTotal.String())
		assert.Equal(t, "1.998", totals.TaxTotal.String())
		assert.Equal(t, "21.978", totals.Total.String())
		require.Len(t, totals.Items, 1)
		assert.Equal(t, "19.98", totals.Items[0].LineTotal.String())
	})

	t.Run("empty items give zero totals", func(t *testing.T) {
		totals := CalculateTotals(nil, dec("20"))

		assert.True(t, totals.SubTotal.IsZero())
		assert.True(t, totals.TaxTotal.IsZero())
		assert.True(t, totals.Total.IsZero())
		assert.Empty(t, totals.Items)
	})

	t.Run("preserves order and ignores caller line totals", func(t *testing.T) {
		in := []LineItem{
			{ItemName: "a", Quantity: dec("1"), UnitPrice: dec("3"), LineTotal: dec("999")},
			{ItemName: "b", Quantity: dec("0.5"), UnitPrice: dec("4")},
		}
		totals := CalculateTotals(in, decimal.Zero)

		require.Len(t, totals.Items, 2)
		assert.Equal(t, "a", totals.Items[0].ItemName)
		assert.Equal(t, "3", totals.Items[0].LineTotal.String())
		assert.Equal(t, "b", totals.Items[1].ItemName)
		assert.True(t, totals.SubTotal.Equal(dec("5")))
		assert.True(t, totals.Total.Equal(dec("5")))
		assert.Equal(t, "999", in[0].LineTotal.String(), "input must not be modified")
	})

	t.Run("no drift across many fractional items", func(t *testing.T) {
		items := make([]LineItem, 0, 1500)
		for i := 0; i < 1500; i++ {
			items = append(items, item("3", "0.1"))
		}
		totals := CalculateTotals(items, dec("7.5"))

		assert.Equal(t, "450", totals.SubTotal.String())
		assert.Equal(t, "33.75", totals.TaxTotal.String())
		assert.Equal(t, "483.75", totals.Total.String())
	})

	t.Run("deterministic", func(t *testing.T) {
		items := []LineItem{item("1.333", "2.71"), item("7", "0.07")}
		a := CalculateTotals(items, dec("13"))
		b := CalculateTotals(items, dec("13"))
		assert.True(t, a.Total.Equal(b.Total))
	})
}

func TestLineItems_ValueScan(t *testing.T) {
	items := LineItems{item("2", "9.99").WithTotal()}

	v, err := items.Value()
	require.NoError(t, err)

	var back LineItems
	require.NoError(t, back.Scan(v))
	require.Len(t, back, 1)
	assert.True(t, back[0].LineTotal.Equal(dec("19.98")))

	var empty LineItems
	require.NoError(t, empty.Scan(nil))
	assert.NotNil(t, empty)
	assert.Error(t, empty.Scan(42))
}
