package invoicing

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// LineItem is one priced row of an invoice or quote.
// LineTotal is always derived from Quantity and UnitPrice, never accepted from callers.
type LineItem struct {
	ItemName    string          `json:"item_name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"price"`
	LineTotal   decimal.Decimal `json:"total"`
}

// Validate checks that quantity and price are non-negative
func (i LineItem) Validate() error {
	if i.Quantity.IsNegative() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Item quantity cannot be negative")
	}
	if i.UnitPrice.IsNegative() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Item price cannot be negative")
	}
	return nil
}

// WithTotal returns a copy of the item carrying quantity * price
func (i LineItem) WithTotal() LineItem {
	i.LineTotal = valueobject.Multiply(i.Quantity, i.UnitPrice)
	return i
}

// LineItems is stored as a JSONB array on the owning document
type LineItems []LineItem

// Value implements driver.Valuer
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = LineItems{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan LineItems: unsupported type")
	}

	if len(bytes) == 0 {
		*l = LineItems{}
		return nil
	}
	return json.Unmarshal(bytes, l)
}
