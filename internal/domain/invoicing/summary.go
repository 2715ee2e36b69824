package invoicing

import (
	"fmt"
	"strings"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Period selects the reporting window of a summary
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod defaults an empty value to month
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodMonth, nil
	case PeriodWeek, PeriodMonth, PeriodYear:
		return p, nil
	default:
		return "", shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Invalid type %q", s))
	}
}

// Window is the half-open date range [From, To)
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// WindowFor returns the current period containing now. Weeks start on Monday.
func WindowFor(p Period, now time.Time) Window {
	y, m, d := now.Date()
	loc := now.Location()
	switch p {
	case PeriodWeek:
		offset := (int(now.Weekday()) + 6) % 7
		from := time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
		return Window{From: from, To: from.AddDate(0, 0, 7)}
	case PeriodYear:
		from := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		return Window{From: from, To: from.AddDate(1, 0, 0)}
	default:
		from := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return Window{From: from, To: from.AddDate(0, 1, 0)}
	}
}

// StatusBucket is a grouped count, with the money sum of the group
type StatusBucket struct {
	Status string
	Count  int64
	Total  decimal.Decimal
}

// InvoiceStats are the raw aggregates behind the invoice summary
type InvoiceStats struct {
	Count           int64
	Total           decimal.Decimal
	Undue           decimal.Decimal
	Overdue         int64
	ByStatus        []StatusBucket
	ByPaymentStatus []StatusBucket
}

// QuoteStats are the raw aggregates behind the quote summary
type QuoteStats struct {
	Count    int64
	ByStatus []StatusBucket
}

// PaymentStats are the raw aggregates behind the payment summary
type PaymentStats struct {
	Count int64
	Total decimal.Decimal
}

// Percentage returns part/whole*100 rounded to whole percent; 0 when whole is 0
func Percentage(part, whole int64) int64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(part).Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(whole)).Round(0).IntPart()
}
