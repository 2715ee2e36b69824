package invoicing

import (
	"github.com/erp/ledger/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks how much of an invoice's payable amount has been credited
type PaymentStatus string

const (
	PaymentStatusUnpaid    PaymentStatus = "unpaid"
	PaymentStatusPartially PaymentStatus = "partially"
	PaymentStatusPaid      PaymentStatus = "paid"
)

// IsValid checks if the status is a known PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPartially, PaymentStatusPaid:
		return true
	}
	return false
}

func (s PaymentStatus) String() string {
	return string(s)
}

// AllPaymentStatuses lists statuses in reporting order
func AllPaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentStatusUnpaid, PaymentStatusPartially, PaymentStatusPaid}
}

// ResolvePaymentStatus maps an invoice's money state to its payment status.
// The payable amount is total - discount. Exactly equal credit is paid, any
// positive credit short of that is partially, and no credit is unpaid.
// Callers guarantee credit never exceeds the payable amount.
func ResolvePaymentStatus(total, discount, credit decimal.Decimal) PaymentStatus {
	payable := valueobject.Sub(total, discount)
	switch {
	case payable.Equal(credit):
		return PaymentStatusPaid
	case credit.IsPositive():
		return PaymentStatusPartially
	default:
		return PaymentStatusUnpaid
	}
}
