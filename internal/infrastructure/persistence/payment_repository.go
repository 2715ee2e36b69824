package persistence

import (
	"context"
	"time"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*invoicing.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).Scopes(liveScope(tenantID)).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormPaymentRepository) Create(ctx context.Context, p *invoicing.Payment) error {
	return translateError(r.db.WithContext(ctx).Create(models.PaymentFromDomain(p)).Error)
}

// Save writes the editable payment columns with a version check
func (r *GormPaymentRepository) Save(ctx context.Context, p *invoicing.Payment) error {
	model := models.PaymentFromDomain(p)
	db := r.db.WithContext(ctx)
	result := db.Model(&models.PaymentModel{}).
		Scopes(liveScope(p.TenantID)).
		Where("id = ? AND version = ?", p.ID, p.Version-1).
		Updates(map[string]any{
			"number":       model.Number,
			"date":         model.Date,
			"amount":       model.Amount,
			"payment_mode": model.PaymentMode,
			"ref":          model.Ref,
			"description":  model.Description,
			"pdf":          model.ArtifactName,
			"version":      model.Version,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return missingOrConflict(db, &models.PaymentModel{}, p.TenantID, p.ID)
	}
	return nil
}

func (r *GormPaymentRepository) SoftDelete(ctx context.Context, tenantID, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.PaymentModel{}, tenantID, id)
}

func (r *GormPaymentRepository) SoftDeleteByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Scopes(liveScope(tenantID)).
		Where("invoice_id = ?", invoiceID).
		Updates(map[string]any{
			"removed":    true,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormPaymentRepository) SumByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Scopes(liveScope(tenantID)).
		Where("invoice_id = ?", invoiceID).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, translateError(err)
	}
	return row.Total, nil
}

func (r *GormPaymentRepository) Stats(ctx context.Context, tenantID uuid.UUID, window invoicing.Window) (*invoicing.PaymentStats, error) {
	var row struct {
		Count int64
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Scopes(liveScope(tenantID)).
		Where("date >= ? AND date < ?", window.From, window.To).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Scan(&row).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &invoicing.PaymentStats{Count: row.Count, Total: row.Total}, nil
}

var _ invoicing.PaymentRepository = (*GormPaymentRepository)(nil)
