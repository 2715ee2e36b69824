package persistence

import (
	"context"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormQuoteRepository implements QuoteRepository using GORM
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

func (r *GormQuoteRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*invoicing.Quote, error) {
	var model models.QuoteModel
	if err := r.db.WithContext(ctx).Scopes(liveScope(tenantID)).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormQuoteRepository) Create(ctx context.Context, q *invoicing.Quote) error {
	return translateError(r.db.WithContext(ctx).Create(models.QuoteFromDomain(q)).Error)
}

// Save writes every editable column with a version check
func (r *GormQuoteRepository) Save(ctx context.Context, q *invoicing.Quote) error {
	model := models.QuoteFromDomain(q)
	columns := model.DocumentColumns()
	columns["status"] = model.Status
	columns["converted"] = model.Converted
	columns["invoice_id"] = model.ConvertedInvoiceID

	db := r.db.WithContext(ctx)
	result := db.Model(&models.QuoteModel{}).
		Scopes(liveScope(q.TenantID)).
		Where("id = ? AND version = ?", q.ID, q.Version-1).
		Updates(columns)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return missingOrConflict(db, &models.QuoteModel{}, q.TenantID, q.ID)
	}
	return nil
}

func (r *GormQuoteRepository) SoftDelete(ctx context.Context, tenantID, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.QuoteModel{}, tenantID, id)
}

func (r *GormQuoteRepository) Stats(ctx context.Context, tenantID uuid.UUID, window invoicing.Window) (*invoicing.QuoteStats, error) {
	var rows []statusRow
	err := r.db.WithContext(ctx).Model(&models.QuoteModel{}).
		Scopes(liveScope(tenantID)).
		Where("date >= ? AND date < ?", window.From, window.To).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	stats := &invoicing.QuoteStats{ByStatus: toBuckets(rows)}
	for _, row := range rows {
		stats.Count += row.Count
	}
	return stats, nil
}

var _ invoicing.QuoteRepository = (*GormQuoteRepository)(nil)
