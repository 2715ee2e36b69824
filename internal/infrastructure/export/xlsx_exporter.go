// Package export renders ledger summaries as spreadsheets.
package export

import (
	"fmt"
	"strings"

	appinv "github.com/erp/ledger/internal/application/invoicing"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	invoiceSheet = "Invoices"
	dateLayout   = "2006-01-02"
	amountNumFmt = 4 // #,##0.00
	firstDataRow = 10
)

var _ appinv.SummaryExporter = (*XLSXExporter)(nil)

// XLSXExporter writes summaries with excelize
type XLSXExporter struct {
	logger *zap.Logger
}

// NewXLSXExporter creates an exporter
func NewXLSXExporter(logger *zap.Logger) *XLSXExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &XLSXExporter{logger: logger.Named("export")}
}

// InvoiceSummary renders one sheet: the totals block on top and one row per
// status below it
func (e *XLSXExporter) InvoiceSummary(s *appinv.InvoiceSummaryResponse) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("invoice summary is nil")
	}

	// Casers keep state, one per call
	title := cases.Title(language.English)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Warn("Failed to close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), invoiceSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: amountNumFmt})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	header := [][]any{
		{"Invoice summary"},
		{"Period", title.String(s.Period)},
		{"From", s.From.Format(dateLayout)},
		{"To", s.To.Format(dateLayout)},
		{"Invoices", s.Count},
		{"Total", s.Total.InexactFloat64()},
		{"Undue", s.TotalUndue.InexactFloat64()},
	}
	for i, row := range header {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(invoiceSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write %s: %w", cell, err)
		}
	}
	if err := f.SetCellStyle(invoiceSheet, "A1", "A7", bold); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(invoiceSheet, "B6", "B7", amount); err != nil {
		return nil, err
	}

	headRow := firstDataRow - 1
	headCell, _ := excelize.CoordinatesToCellName(1, headRow)
	if err := f.SetSheetRow(invoiceSheet, headCell, &[]any{"Status", "Count", "Percentage"}); err != nil {
		return nil, err
	}
	headEnd, _ := excelize.CoordinatesToCellName(3, headRow)
	if err := f.SetCellStyle(invoiceSheet, headCell, headEnd, bold); err != nil {
		return nil, err
	}

	for i, p := range s.Performance {
		cell, _ := excelize.CoordinatesToCellName(1, firstDataRow+i)
		row := []any{title.String(strings.ReplaceAll(p.Status, "_", " ")), p.Count, p.Percentage}
		if err := f.SetSheetRow(invoiceSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write %s: %w", cell, err)
		}
	}

	if err := f.SetColWidth(invoiceSheet, "A", "A", 18); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(invoiceSheet, "B", "C", 14); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	e.logger.Debug("Rendered invoice summary",
		zap.String("period", s.Period),
		zap.Int("rows", len(s.Performance)),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}
