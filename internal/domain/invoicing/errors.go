package invoicing

import (
	"fmt"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// AmountExceededError is returned when a payment, or the increase of an
// edited payment, is larger than the invoice's remaining payable amount.
// MaxAmount is the largest amount that would have been accepted.
type AmountExceededError struct {
	*shared.DomainError
	MaxAmount valueobject.Money
}

// NewAmountExceededError builds the error for the given headroom
func NewAmountExceededError(maxAmount decimal.Decimal, currency valueobject.Currency) *AmountExceededError {
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}
	bound := valueobject.MustMoney(maxAmount, currency)
	return &AmountExceededError{
		DomainError: shared.NewDomainError(
			shared.CodeAmountExceeded,
			fmt.Sprintf("The maximum amount you can add is %s", bound),
		),
		MaxAmount: bound,
	}
}

// Unwrap lets errors.As find the embedded DomainError
func (e *AmountExceededError) Unwrap() error {
	return e.DomainError
}

var (
	errEmptyItems        = shared.NewDomainError(shared.CodeInvalidInput, "Items cannot be empty")
	errZeroAmount        = shared.NewDomainError(shared.CodeInvalidInput, "The minimum amount couldn't be 0")
	errNegativeAmount    = shared.NewDomainError(shared.CodeInvalidInput, "Payment amount cannot be negative")
	errTotalBelowCredit  = shared.NewDomainError(shared.CodeInvalidInput, "Payable amount cannot be lower than the credit already applied")
	errCreditOutOfBounds = shared.NewDomainError(shared.CodeInconsistent, "Invoice credit would fall outside [0, total - discount]")
)
