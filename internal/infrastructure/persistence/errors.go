package persistence

import (
	"errors"

	"github.com/erp/ledger/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps gorm errors to domain errors. Anything that is not a
// missing row is a record store failure that keeps the driver error in its chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var de *shared.DomainError
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return shared.NewStorageError(err)
}

// liveScope restricts a query to live rows of one tenant
func liveScope(tenantID any) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ? AND removed = ?", tenantID, false)
	}
}

// missingOrConflict decides why a versioned write touched no rows
func missingOrConflict(db *gorm.DB, model any, tenantID, id any) error {
	var count int64
	if err := db.Model(model).Scopes(liveScope(tenantID)).Where("id = ?", id).Count(&count).Error; err != nil {
		return translateError(err)
	}
	if count == 0 {
		return shared.ErrNotFound
	}
	return shared.ErrConcurrencyConflict
}
