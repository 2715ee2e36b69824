package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/erp/ledger/internal/infrastructure/auth"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Identity headers and context keys
const (
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
	TenantIDHeader = "X-Tenant-ID"
	UserIDHeader   = "X-User-ID"

	TenantIDKey = "tenant_id"
	UserIDKey   = "user_id"
)

// IdentityConfig selects where the caller identity comes from. With a
// Verifier the bearer token is required; without one the X-Tenant-ID and
// X-User-ID headers are trusted, which only suits a gateway that already
// authenticated the caller.
type IdentityConfig struct {
	Verifier *auth.TokenVerifier
	Logger   *zap.Logger
}

// Identity resolves tenant and user for every request under it
func Identity(cfg IdentityConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		var tenantID, userID uuid.UUID

		if cfg.Verifier != nil {
			header := c.GetHeader(AuthHeaderKey)
			token, ok := strings.CutPrefix(header, BearerPrefix)
			if !ok || token == "" {
				abortUnauthorized(c, dto.ErrCodeUnauthorized, "Missing bearer token")
				return
			}
			id, _, err := cfg.Verifier.Verify(token)
			if err != nil {
				code := dto.ErrCodeTokenInvalid
				if errors.Is(err, auth.ErrExpiredToken) {
					code = dto.ErrCodeTokenExpired
				}
				log.Debug("Token rejected", zap.String("request_id", GetRequestID(c)), zap.Error(err))
				abortUnauthorized(c, code, err.Error())
				return
			}
			tenantID, userID = id.TenantID, id.UserID
		} else {
			var err error
			tenantID, err = uuid.Parse(c.GetHeader(TenantIDHeader))
			if err != nil || tenantID == uuid.Nil {
				abortUnauthorized(c, dto.ErrCodeUnauthorized, "Missing or malformed "+TenantIDHeader+" header")
				return
			}
			if raw := c.GetHeader(UserIDHeader); raw != "" {
				if userID, err = uuid.Parse(raw); err != nil {
					abortUnauthorized(c, dto.ErrCodeUnauthorized, "Malformed "+UserIDHeader+" header")
					return
				}
			}
		}

		c.Set(TenantIDKey, tenantID)
		c.Set(UserIDKey, userID)

		ctx := logger.WithTenantID(c.Request.Context(), tenantID.String())
		if userID != uuid.Nil {
			ctx = logger.WithUserID(ctx, userID.String())
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetTenantID returns the tenant resolved by Identity
func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(TenantIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// GetUserID returns the user resolved by Identity; uuid.Nil when unknown
func GetUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}
