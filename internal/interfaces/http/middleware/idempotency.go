package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader carries the client's retry key
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 255

// IdempotencyConfig configures Idempotency
type IdempotencyConfig struct {
	Store  shared.IdempotencyStore
	TTL    time.Duration
	Logger *zap.Logger
}

// Idempotency lets a create run at most once per key. The key is claimed
// before the handler runs and is scoped by tenant and route. A request that
// ends in an error releases its key so the client may retry with it.
// Requests without the header pass through.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if key == "" || cfg.Store == nil {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeBadRequest, IdempotencyKeyHeader+" is too long", GetRequestID(c)))
			return
		}

		tenantID, _ := GetTenantID(c)
		scoped := tenantID.String() + ":" + c.Request.Method + ":" + c.FullPath() + ":" + key

		claimed, err := cfg.Store.Claim(c.Request.Context(), scoped, ttl)
		if err != nil {
			log.Error("Idempotency claim failed", zap.String("request_id", GetRequestID(c)), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeStorageFailure, "Idempotency store unavailable", GetRequestID(c)))
			return
		}
		if !claimed {
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeDuplicateRequest, "A request with this "+IdempotencyKeyHeader+" was already processed", GetRequestID(c)))
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			ctx := context.WithoutCancel(c.Request.Context())
			if err := cfg.Store.Release(ctx, scoped); err != nil {
				log.Warn("Idempotency release failed", zap.String("request_id", GetRequestID(c)), zap.Error(err))
			}
		}
	}
}
