package handler

import (
	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment API endpoints
type PaymentHandler struct {
	BaseHandler
	payments  PaymentService
	summaries SummaryService
	artifacts ArtifactService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments PaymentService, summaries SummaryService, artifacts ArtifactService) *PaymentHandler {
	return &PaymentHandler{
		payments:  payments,
		summaries: summaries,
		artifacts: artifacts,
	}
}

// Create godoc
// @ID           createPayment
// @Summary      Record a payment
// @Description  Credits the amount to the invoice and re-derives its payment status. An amount above what is still payable is rejected with max_amount.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID when JWT is disabled"
// @Param        Idempotency-Key header string false "Client generated key that makes retries safe"
// @Param        request body CreatePaymentRequest true "Payment"
// @Success      201 {object} APIResponse[PaymentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	tenantID, userID, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	payment, err := h.payments.CreatePayment(c.Request.Context(), tenantID, userID, req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

// Get godoc
// @ID           getPayment
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} APIResponse[PaymentResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	payment, err := h.payments.GetPayment(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// Update godoc
// @ID           updatePayment
// @Summary      Edit a payment
// @Description  Applies the difference between the new and the old amount to the invoice credit
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Param        request body UpdatePaymentRequest true "Payment"
// @Success      200 {object} APIResponse[PaymentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	payment, err := h.payments.UpdatePayment(c.Request.Context(), tenantID, id, req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// Delete godoc
// @ID           deletePayment
// @Summary      Remove a payment
// @Description  Soft deletes the payment and takes its amount back out of the invoice credit
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} APIResponse[PaymentResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	payment, err := h.payments.RemovePayment(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// Artifact godoc
// @ID           getPaymentArtifact
// @Summary      Get the payment receipt location
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} APIResponse[ArtifactResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payments/{id}/artifact [get]
func (h *PaymentHandler) Artifact(c *gin.Context) {
	artifact(&h.BaseHandler, h.artifacts, invoicing.KindPayment, c)
}

// Summary godoc
// @ID           getPaymentSummary
// @Summary      Payment summary
// @Description  Count and total of payments dated in the current week, month or year
// @Tags         payments
// @Produce      json
// @Param        type query string false "Period" Enums(week, month, year) default(month)
// @Success      200 {object} APIResponse[PaymentSummaryResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payments/summary [get]
func (h *PaymentHandler) Summary(c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	period, ok := h.summaryPeriod(c)
	if !ok {
		return
	}

	resp, err := h.summaries.PaymentSummary(c.Request.Context(), tenantID, period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
