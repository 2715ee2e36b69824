package invoicing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolvePaymentStatus(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		discount string
		credit   string
		want     PaymentStatus
	}{
		{"no credit", "100", "0", "0", PaymentStatusUnpaid},
		{"full credit", "100", "0", "100", PaymentStatusPaid},
		{"partial credit", "100", "0", "40", PaymentStatusPartially},
		{"discount lowers payable", "50", "10", "40", PaymentStatusPaid},
		{"credit short of discounted payable", "50", "10", "39.99", PaymentStatusPartially},
		{"equal regardless of scale", "21.978", "0", "21.9780", PaymentStatusPaid},
		{"zero payable is paid", "0", "0", "0", PaymentStatusPaid},
		{"fully discounted is paid", "30", "30", "0", PaymentStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePaymentStatus(dec(tt.total), dec(tt.discount), dec(tt.credit))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePaymentStatus_PaidIffCreditEqualsPayable(t *testing.T) {
	step := dec("0.25")
	for total := decimal.Zero; total.LessThanOrEqual(dec("5")); total = total.Add(step) {
		for discount := decimal.Zero; discount.LessThanOrEqual(total); discount = discount.Add(step) {
			payable := total.Sub(discount)
			for credit := decimal.Zero; credit.LessThanOrEqual(payable); credit = credit.Add(step) {
				got := ResolvePaymentStatus(total, discount, credit)
				assert.True(t, got.IsValid())
				assert.Equal(t, credit.Equal(payable), got == PaymentStatusPaid,
					"total=%s discount=%s credit=%s", total, discount, credit)
				if !credit.Equal(payable) && credit.IsZero() {
					assert.Equal(t, PaymentStatusUnpaid, got)
				}
			}
		}
	}
}
