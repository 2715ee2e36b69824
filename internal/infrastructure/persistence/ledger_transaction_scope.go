package persistence

import (
	"context"
	"errors"
	"fmt"

	appinv "github.com/erp/ledger/internal/application/invoicing"
	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTransactionScope runs ledger units of work in one database transaction
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute commits when fn succeeds and rolls back otherwise. A failure to
// begin is a storage failure. A failure to commit or to roll back leaves
// the outcome unknown to the caller and is reported as INCONSISTENT so that
// operators reconcile the affected invoice.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) (err error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return shared.NewStorageError(tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormTransactionalRepositories{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return shared.NewInconsistentError("Ledger transaction rollback failed", errors.Join(err, rbErr))
		}
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return shared.NewInconsistentError("Ledger transaction commit failed", fmt.Errorf("commit: %w", err))
	}
	return nil
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Invoices() invoicing.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

func (r *gormTransactionalRepositories) Quotes() invoicing.QuoteRepository {
	return NewGormQuoteRepository(r.tx)
}

func (r *gormTransactionalRepositories) Payments() invoicing.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

var _ appinv.TransactionScope = (*GormTransactionScope)(nil)
var _ appinv.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
