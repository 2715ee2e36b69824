package handler

import (
	"net/http"
	"testing"

	appinv "github.com/erp/ledger/internal/application/invoicing"
	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newQuoteEngine(docs *MockDocumentService, summaries *MockSummaryService, artifacts *MockArtifactService) *gin.Engine {
	h := NewQuoteHandler(docs, summaries, artifacts)
	e := newTestEngine()
	g := e.Group("/quotes")
	g.POST("", h.Create)
	g.GET("/summary", h.Summary)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/convert", h.Convert)
	g.GET("/:id/artifact", h.Artifact)
	return e
}

func TestQuoteHandler_CreateUsesQuoteKind(t *testing.T) {
	docs := new(MockDocumentService)
	e := newQuoteEngine(docs, new(MockSummaryService), new(MockArtifactService))
	tenantID := uuid.New()
	quoteID := uuid.New()

	docs.On("CreateDocument", mock.Anything, invoicing.KindQuote, tenantID, uuid.Nil, mock.Anything).
		Return(&appinv.DocumentResponse{ID: quoteID, Kind: "quote", Status: "draft"}, nil)

	w := perform(t, e, http.MethodPost, "/quotes", validDocumentBody(uuid.New()), tenantID)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataMap(t, decodeResponse(t, w))
	assert.Equal(t, "quote", data["kind"])
	assert.Nil(t, data["credit"], "quotes carry no credit")
	docs.AssertExpectations(t)
}

func TestQuoteHandler_Convert(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates invoice", func(t *testing.T) {
		docs := new(MockDocumentService)
		e := newQuoteEngine(docs, new(MockSummaryService), new(MockArtifactService))
		quoteID := uuid.New()
		invoiceID := uuid.New()

		docs.On("ConvertQuote", mock.Anything, tenantID, uuid.Nil, quoteID).
			Return(&appinv.DocumentResponse{ID: invoiceID, Kind: "invoice", ConvertedQuoteID: &quoteID}, nil)

		w := perform(t, e, http.MethodPost, "/quotes/"+quoteID.String()+"/convert", nil, tenantID)

		assert.Equal(t, http.StatusCreated, w.Code)
		data := dataMap(t, decodeResponse(t, w))
		assert.Equal(t, invoiceID.String(), data["id"])
		assert.Equal(t, quoteID.String(), data["converted_quote_id"])
	})

	t.Run("already converted", func(t *testing.T) {
		docs := new(MockDocumentService)
		e := newQuoteEngine(docs, new(MockSummaryService), new(MockArtifactService))
		quoteID := uuid.New()

		docs.On("ConvertQuote", mock.Anything, tenantID, uuid.Nil, quoteID).
			Return(nil, shared.NewDomainError(shared.CodeInvalidState, "Quote is already converted"))

		w := perform(t, e, http.MethodPost, "/quotes/"+quoteID.String()+"/convert", nil, tenantID)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidState, decodeResponse(t, w).Error.Code)
	})
}

func TestQuoteHandler_Summary(t *testing.T) {
	summaries := new(MockSummaryService)
	e := newQuoteEngine(new(MockDocumentService), summaries, new(MockArtifactService))
	tenantID := uuid.New()

	summaries.On("QuoteSummary", mock.Anything, tenantID, "week").
		Return(&appinv.QuoteSummaryResponse{Period: "week", Count: 4, Performance: []appinv.StatusPerformance{
			{Status: "accepted", Count: 1, Percentage: 25},
		}}, nil)

	w := perform(t, e, http.MethodGet, "/quotes/summary?type=week", nil, tenantID)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, decodeResponse(t, w))
	assert.Equal(t, float64(4), data["count"])
	assert.Len(t, data["performance"], 1)
}

func TestQuoteHandler_DeleteAndArtifact(t *testing.T) {
	docs := new(MockDocumentService)
	artifacts := new(MockArtifactService)
	e := newQuoteEngine(docs, new(MockSummaryService), artifacts)
	tenantID := uuid.New()
	id := uuid.New()

	docs.On("RemoveDocument", mock.Anything, invoicing.KindQuote, tenantID, id).Return(nil)
	artifacts.On("Artifact", mock.Anything, invoicing.KindQuote, tenantID, id).Return(nil, shared.ErrNotFound)

	w := perform(t, e, http.MethodDelete, "/quotes/"+id.String(), nil, tenantID)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(t, e, http.MethodGet, "/quotes/"+id.String()+"/artifact", nil, tenantID)
	assert.Equal(t, http.StatusNotFound, w.Code)

	docs.AssertExpectations(t)
	artifacts.AssertExpectations(t)
}
