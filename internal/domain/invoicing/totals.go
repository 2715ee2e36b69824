package invoicing

import (
	"github.com/erp/ledger/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Totals is the derived money block of a document
type Totals struct {
	Items    LineItems
	SubTotal decimal.Decimal
	TaxTotal decimal.Decimal
	Total    decimal.Decimal
}

// CalculateTotals derives line totals, the subtotal, the tax and the grand total.
//
//	subTotal = Σ quantity*price
//	taxTotal = subTotal * taxRate / 100
//	total    = subTotal + taxTotal
//
// Discount does not participate. The input slice is not modified and item
// order is preserved. An empty input yields zero totals.
func CalculateTotals(items []LineItem, taxRate decimal.Decimal) Totals {
	out := make(LineItems, 0, len(items))
	subTotal := decimal.Zero
	for _, item := range items {
		priced := item.WithTotal()
		subTotal = valueobject.Add(subTotal, priced.LineTotal)
		out = append(out, priced)
	}

	taxTotal := valueobject.Percent(subTotal, taxRate)
	return Totals{
		Items:    out,
		SubTotal: subTotal,
		TaxTotal: taxTotal,
		Total:    valueobject.Add(subTotal, taxTotal),
	}
}
