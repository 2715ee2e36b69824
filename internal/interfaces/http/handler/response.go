package handler

import (
	appinv "github.com/erp/ledger/internal/application/invoicing"
	"github.com/erp/ledger/internal/interfaces/http/dto"
)

// APIResponse represents a generic API response for OpenAPI documentation
// @Description Standard API response wrapper with typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// ErrorResponse represents an error API response for OpenAPI documentation
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// SuccessResponse represents a simple success API response for OpenAPI documentation
// @Description Simple success response without data
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// Response payloads returned by the ledger services
type (
	DocumentResponse       = appinv.DocumentResponse
	PaymentResponse        = appinv.PaymentResponse
	ReconcileResponse      = appinv.ReconcileResponse
	ArtifactResponse       = appinv.ArtifactResponse
	InvoiceSummaryResponse = appinv.InvoiceSummaryResponse
	QuoteSummaryResponse   = appinv.QuoteSummaryResponse
	PaymentSummaryResponse = appinv.PaymentSummaryResponse
)
