package handler

import (
	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RemovedResponse acknowledges a soft delete
// @Description Identifier of the removed record
type RemovedResponse struct {
	ID      uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Removed bool      `json:"removed" example:"true"`
}

// documentHandler holds the CRUD flow shared by invoices and quotes
type documentHandler struct {
	BaseHandler
	kind      invoicing.Kind
	documents DocumentService
	artifacts ArtifactService
}

func (h *documentHandler) create(c *gin.Context) {
	tenantID, userID, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	doc, err := h.documents.CreateDocument(c.Request.Context(), h.kind, tenantID, userID, req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, doc)
}

func (h *documentHandler) get(c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	doc, err := h.documents.GetDocument(c.Request.Context(), h.kind, tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

func (h *documentHandler) update(c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	doc, err := h.documents.UpdateDocument(c.Request.Context(), h.kind, tenantID, id, req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

func (h *documentHandler) remove(c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.documents.RemoveDocument(c.Request.Context(), h.kind, tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, RemovedResponse{ID: id, Removed: true})
}

func (h *documentHandler) artifact(c *gin.Context) {
	artifact(&h.BaseHandler, h.artifacts, h.kind, c)
}

// artifact is shared with the payment handler
func artifact(h *BaseHandler, svc ArtifactService, kind invoicing.Kind, c *gin.Context) {
	tenantID, _, ok := h.tenantAndUser(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := svc.Artifact(c.Request.Context(), kind, tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
