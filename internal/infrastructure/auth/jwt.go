// Package auth verifies the bearer tokens that carry the ledger caller's
// tenant and user. Tokens are minted by the identity service.
package auth

import (
	"errors"

	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess is the only token type accepted by the ledger
const TokenTypeAccess = "access"

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrMissingTenantID  = errors.New("missing or malformed tenant_id in claims")
	ErrMissingUserID    = errors.New("missing or malformed user_id in claims")
)

// Claims are the token fields the ledger reads
type Claims struct {
	jwt.RegisteredClaims
	TenantID  string `json:"tenant_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username,omitempty"`
	TokenType string `json:"token_type"`
}

// Identity is the verified caller
type Identity struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	Username string
}

// TokenVerifier checks HS256 access tokens
type TokenVerifier struct {
	secret []byte
	issuer string
}

// NewTokenVerifier creates a verifier for cfg.Secret. A non-empty cfg.Issuer
// must match the iss claim.
func NewTokenVerifier(cfg config.JWTConfig) *TokenVerifier {
	return &TokenVerifier{secret: []byte(cfg.Secret), issuer: cfg.Issuer}
}

// Verify parses tokenString and returns the caller identity
func (v *TokenVerifier) Verify(tokenString string) (*Identity, *Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, nil, ErrTokenNotYetValid
		default:
			return nil, nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, nil, ErrInvalidToken
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, nil, ErrInvalidTokenType
	}

	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil || tenantID == uuid.Nil {
		return nil, nil, ErrMissingTenantID
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil || userID == uuid.Nil {
		return nil, nil, ErrMissingUserID
	}

	return &Identity{TenantID: tenantID, UserID: userID, Username: claims.Username}, claims, nil
}
