package invoicing

import (
	"context"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReconcileService rebuilds an invoice's credit from its live payments
type ReconcileService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewReconcileService creates a new ReconcileService
func NewReconcileService(txScope TransactionScope, logger *zap.Logger) *ReconcileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReconcileService{txScope: txScope, logger: logger}
}

// ReconcileInvoice sets credit to the sum of live payment amounts and
// re-resolves the payment status. Nothing is written when the stored
// state already agrees. A payment sum above the payable amount cannot be
// repaired automatically and is reported as Inconsistent.
func (s *ReconcileService) ReconcileInvoice(ctx context.Context, tenantID, id uuid.UUID) (*ReconcileResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "invoice", "reconcile")
	defer span.End()
	telemetry.SetAttributes(span, "invoice_id", id.String())

	var resp *ReconcileResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		inv, err := repos.Invoices().FindByIDForUpdate(ctx, tenantID, id)
		if err != nil {
			return err
		}
		sum, err := repos.Payments().SumByInvoice(ctx, tenantID, id)
		if err != nil {
			return err
		}

		resp = &ReconcileResponse{
			InvoiceID:             inv.ID,
			PreviousCredit:        inv.Credit,
			PreviousPaymentStatus: inv.PaymentStatus.String(),
		}

		expected := invoicing.ResolvePaymentStatus(inv.Total, inv.Discount, sum)
		if sum.Equal(inv.Credit) && expected == inv.PaymentStatus {
			resp.Credit = inv.Credit
			resp.PaymentStatus = inv.PaymentStatus.String()
			return nil
		}

		previousCredit := inv.Credit
		if err := inv.SetCredit(sum); err != nil {
			return err
		}
		if err := repos.Invoices().UpdateCredit(ctx, inv, previousCredit); err != nil {
			return err
		}
		resp.Credit = inv.Credit
		resp.PaymentStatus = inv.PaymentStatus.String()
		resp.Changed = true
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if resp.Changed {
		s.logger.Warn("invoice credit reconciled",
			zap.String("invoice_id", id.String()),
			zap.String("previous_credit", resp.PreviousCredit.String()),
			zap.String("credit", resp.Credit.String()),
			zap.String("payment_status", resp.PaymentStatus),
		)
	}
	return resp, nil
}
