package handler

import (
	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/gin-gonic/gin"
)

// QuoteHandler handles quote API endpoints
type QuoteHandler struct {
	documentHandler
	summaries SummaryService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(documents DocumentService, summaries SummaryService, artifacts ArtifactService) *QuoteHandler {
	return &QuoteHandler{
		documentHandler: documentHandler{
			kind:      invoicing.KindQuote,
			documents: documents,
			artifacts: artifacts,
		},
		summaries: summaries,
	}
}

// Create godoc
// @ID           createQuote
// @Summary      Create a quote
// @Description  Computes line totals, sub total, tax and total server side
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID when JWT is disabled"
// @Param        request body DocumentRequest true "Quote"
// @Success      201 {object} APIResponse[DocumentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) { h.create(c) }

// Get godoc
// @ID           getQuote
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        id path string true "Quote ID" format(uuid)
// @Success      200 {object} APIResponse[DocumentResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) { h.get(c) }

// Update godoc
// @ID           updateQuote
// @Summary      Update a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id path string true "Quote ID" format(uuid)
// @Param        request body DocumentRequest true "Quote"
// @Success      200 {object} APIResponse[DocumentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /quotes/{id} [put]
func (h *QuoteHandler) Update(c *gin.Context) { h.update(c) }

// Delete godoc
// @ID           deleteQuote
// @Summary      Remove a quote
// @Tags         quotes
// @Produce      json
// @Param        id path string true "Quote ID" format(uuid)
// @Success      200 {object} APIResponse[RemovedResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) { h.remove(c) }

// Artifact godoc
// @ID           getQuoteArtifact
// @Summary      Get the quote PDF location
// @Tags         quotes
// @Produce      json
// @Param        id path string true "Quote ID" format(uuid)
// @Success      200 {object} APIResponse[ArtifactResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /quotes/{id}/artifact [get]
func (h *QuoteHandler) Artifact(c *gin.Context) { h.artifact(c) }

// Convert godoc
// @ID           convertQuote
// @Summary      Convert a quote to an invoice
// @Description  Creates an invoice with the quote's items and marks the quote as converted. A quote converts once.
// @Tags         quotes
// @Produce      json
// @Param        id path string true "Quote ID" format(uuid)
// @Success      201 {object} APIResponse[DocumentResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /quotes/{id}/convert [post]
func (h *QuoteHandler) Convert(c *gin.Context) {
	tenantID, userID, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	invoice, err := h.documents.ConvertQuote(c.Request.Context(), tenantID, userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

// Summary godoc
// @ID           getQuoteSummary
// @Summary      Quote summary
// @Description  Counts and totals of quotes per status for the current week, month or year
// @Tags         quotes
// @Produce      json
// @Param        type query string false "Period" Enums(week, month, year) default(month)
// @Success      200 {object} APIResponse[QuoteSummaryResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /quotes/summary [get]
func (h *QuoteHandler) Summary(c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	period, ok := h.summaryPeriod(c)
	if !ok {
		return
	}

	resp, err := h.summaries.QuoteSummary(c.Request.Context(), tenantID, period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
