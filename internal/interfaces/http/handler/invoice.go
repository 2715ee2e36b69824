package handler

import (
	"fmt"
	"net/http"

	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InvoiceHandler handles invoice API endpoints
type InvoiceHandler struct {
	documentHandler
	summaries SummaryService
	reconcile ReconcileService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(
	documents DocumentService,
	summaries SummaryService,
	reconcile ReconcileService,
	artifacts ArtifactService,
) *InvoiceHandler {
	return &InvoiceHandler{
		documentHandler: documentHandler{
			kind:      invoicing.KindInvoice,
			documents: documents,
			artifacts: artifacts,
		},
		summaries: summaries,
		reconcile: reconcile,
	}
}

// Create godoc
// @ID           createInvoice
// @Summary      Create an invoice
// @Description  Computes line totals, sub total, tax and total server side. Credit starts at zero and the payment status is derived from it.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID when JWT is disabled"
// @Param        Idempotency-Key header string false "Client generated key that makes retries safe"
// @Param        request body DocumentRequest true "Invoice"
// @Success      201 {object} APIResponse[DocumentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) { h.create(c) }

// Get godoc
// @ID           getInvoice
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[DocumentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) { h.get(c) }

// Update godoc
// @ID           updateInvoice
// @Summary      Update an invoice
// @Description  Replaces the editable fields and recomputes totals. Credit is kept and the payment status is re-derived against the new total.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Param        request body DocumentRequest true "Invoice"
// @Success      200 {object} APIResponse[DocumentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) { h.update(c) }

// Delete godoc
// @ID           deleteInvoice
// @Summary      Remove an invoice
// @Description  Soft deletes the invoice and every live payment recorded against it
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[RemovedResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) { h.remove(c) }

// Artifact godoc
// @ID           getInvoiceArtifact
// @Summary      Get the invoice PDF location
// @Description  Returns presigned download and upload URLs for the rendered invoice file
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[ArtifactResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/artifact [get]
func (h *InvoiceHandler) Artifact(c *gin.Context) { h.artifact(c) }

// Reconcile godoc
// @ID           reconcileInvoice
// @Summary      Reconcile invoice credit
// @Description  Recomputes credit from the live payments of the invoice and re-derives the payment status
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[ReconcileResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/reconcile [post]
func (h *InvoiceHandler) Reconcile(c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.reconcile.ReconcileInvoice(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Summary godoc
// @ID           getInvoiceSummary
// @Summary      Invoice summary
// @Description  Counts and totals of invoices dated in the current week, month or year
// @Tags         invoices
// @Produce      json
// @Param        type query string false "Period" Enums(week, month, year) default(month)
// @Success      200 {object} APIResponse[InvoiceSummaryResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/summary [get]
func (h *InvoiceHandler) Summary(c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	period, ok := h.summaryPeriod(c)
	if !ok {
		return
	}

	resp, err := h.summaries.InvoiceSummary(c.Request.Context(), tenantID, period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ExportSummary godoc
// @ID           exportInvoiceSummary
// @Summary      Export invoice summary
// @Description  Downloads the invoice summary as an XLSX workbook
// @Tags         invoices
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        type query string false "Period" Enums(week, month, year) default(month)
// @Success      200 {file} file
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/summary/export [get]
func (h *InvoiceHandler) ExportSummary(c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	period, ok := h.summaryPeriod(c)
	if !ok {
		return
	}

	content, fileName, err := h.summaries.ExportInvoiceSummary(c.Request.Context(), tenantID, period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, xlsxContentType, content)
}
