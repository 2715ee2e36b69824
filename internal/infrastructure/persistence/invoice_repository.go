package persistence

import (
	"context"
	"time"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

func (r *GormInvoiceRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*invoicing.Invoice, error) {
	return r.find(r.db.WithContext(ctx), tenantID, id)
}

// FindByIDForUpdate issues SELECT ... FOR UPDATE; it only locks inside a transaction
func (r *GormInvoiceRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*invoicing.Invoice, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), tenantID, id)
}

func (r *GormInvoiceRepository) find(db *gorm.DB, tenantID, id uuid.UUID) (*invoicing.Invoice, error) {
	var model models.InvoiceModel
	if err := db.Scopes(liveScope(tenantID)).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormInvoiceRepository) Create(ctx context.Context, inv *invoicing.Invoice) error {
	return translateError(r.db.WithContext(ctx).Create(models.InvoiceFromDomain(inv)).Error)
}

// Save writes every editable column, guarded by removed=false and the previous version
func (r *GormInvoiceRepository) Save(ctx context.Context, inv *invoicing.Invoice) error {
	model := models.InvoiceFromDomain(inv)
	columns := model.DocumentColumns()
	columns["status"] = model.Status
	columns["credit"] = model.Credit
	columns["payment_status"] = model.PaymentStatus
	columns["recurring"] = model.Recurring
	columns["approved"] = model.Approved
	columns["converted_from"] = model.ConvertedQuoteID

	db := r.db.WithContext(ctx)
	result := db.Model(&models.InvoiceModel{}).
		Scopes(liveScope(inv.TenantID)).
		Where("id = ? AND version = ?", inv.ID, inv.Version-1).
		Updates(columns)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return missingOrConflict(db, &models.InvoiceModel{}, inv.TenantID, inv.ID)
	}
	return nil
}

// UpdateCredit is the conditional credit write. The row must still carry
// expectedCredit and the version the caller read; otherwise nothing is
// written and the caller gets CONCURRENCY_CONFLICT.
func (r *GormInvoiceRepository) UpdateCredit(ctx context.Context, inv *invoicing.Invoice, expectedCredit decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Scopes(liveScope(inv.TenantID)).
		Where("id = ? AND credit = ? AND version = ?", inv.ID, expectedCredit, inv.Version-1).
		Updates(map[string]any{
			"credit":         inv.Credit,
			"payment_status": string(inv.PaymentStatus),
			"version":        inv.Version,
			"updated_at":     inv.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

func (r *GormInvoiceRepository) SoftDelete(ctx context.Context, tenantID, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.InvoiceModel{}, tenantID, id)
}

type statusRow struct {
	Status string
	Count  int64
	Total  decimal.Decimal
}

func toBuckets(rows []statusRow) []invoicing.StatusBucket {
	buckets := make([]invoicing.StatusBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, invoicing.StatusBucket{Status: row.Status, Count: row.Count, Total: row.Total})
	}
	return buckets
}

// Stats aggregates live invoices dated inside window. Overdue counts
// invoices past their expiration date that are not fully paid at now.
func (r *GormInvoiceRepository) Stats(ctx context.Context, tenantID uuid.UUID, window invoicing.Window, now time.Time) (*invoicing.InvoiceStats, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
			Scopes(liveScope(tenantID)).
			Where("date >= ? AND date < ?", window.From, window.To)
	}
	stats := &invoicing.InvoiceStats{Total: decimal.Zero, Undue: decimal.Zero}

	var byStatus []statusRow
	if err := base().Select("status, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Group("status").Scan(&byStatus).Error; err != nil {
		return nil, translateError(err)
	}
	stats.ByStatus = toBuckets(byStatus)
	for _, row := range byStatus {
		stats.Count += row.Count
		stats.Total = stats.Total.Add(row.Total)
	}

	var byPayment []statusRow
	if err := base().Select("payment_status AS status, COUNT(*) AS count, COALESCE(SUM(total - discount - credit), 0) AS total").
		Group("payment_status").Scan(&byPayment).Error; err != nil {
		return nil, translateError(err)
	}
	stats.ByPaymentStatus = toBuckets(byPayment)
	for _, row := range byPayment {
		if row.Status != string(invoicing.PaymentStatusPaid) {
			stats.Undue = stats.Undue.Add(row.Total)
		}
	}

	if err := base().
		Where("expired_date IS NOT NULL AND expired_date < ? AND payment_status <> ?", now, string(invoicing.PaymentStatusPaid)).
		Count(&stats.Overdue).Error; err != nil {
		return nil, translateError(err)
	}
	return stats, nil
}

// softDelete flips removed to true on a live row; NOT_FOUND when none flipped
func softDelete(db *gorm.DB, model any, tenantID, id uuid.UUID) error {
	result := db.Model(model).
		Scopes(liveScope(tenantID)).
		Where("id = ?", id).
		Updates(map[string]any{
			"removed":    true,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ invoicing.InvoiceRepository = (*GormInvoiceRepository)(nil)
