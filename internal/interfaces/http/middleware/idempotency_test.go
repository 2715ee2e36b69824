package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/erp/ledger/internal/infrastructure/cache"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Claim(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("redis: connection refused")
}

func (failingStore) Release(context.Context, string) error { return nil }

func idempotencyEngine(store *cache.InMemoryIdempotencyStore, status *int, calls *int) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Identity(IdentityConfig{}), Idempotency(IdempotencyConfig{Store: store, TTL: time.Hour}))
	r.POST("/payments", func(c *gin.Context) {
		*calls++
		c.JSON(*status, gin.H{"n": *calls})
	})
	return r
}

func TestIdempotency(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	defer store.Close()

	status := http.StatusCreated
	calls := 0
	r := idempotencyEngine(store, &status, &calls)

	tenant := uuid.NewString()
	headers := map[string]string{TenantIDHeader: tenant, IdempotencyKeyHeader: "pay-1"}

	w := perform(r, http.MethodPost, "/payments", `{}`, headers)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, http.MethodPost, "/payments", `{}`, headers)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_DUPLICATE_REQUEST")
	assert.Equal(t, 1, calls)

	t.Run("keys are scoped by tenant", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/payments", `{}`, map[string]string{TenantIDHeader: uuid.NewString(), IdempotencyKeyHeader: "pay-1"})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("no header passes through", func(t *testing.T) {
		before := calls
		perform(r, http.MethodPost, "/payments", `{}`, map[string]string{TenantIDHeader: tenant})
		perform(r, http.MethodPost, "/payments", `{}`, map[string]string{TenantIDHeader: tenant})
		assert.Equal(t, before+2, calls)
	})

	t.Run("failed request releases its key", func(t *testing.T) {
		status = http.StatusUnprocessableEntity
		h := map[string]string{TenantIDHeader: tenant, IdempotencyKeyHeader: "pay-2"}
		w := perform(r, http.MethodPost, "/payments", `{}`, h)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		status = http.StatusCreated
		w = perform(r, http.MethodPost, "/payments", `{}`, h)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("oversize key", func(t *testing.T) {
		long := make([]byte, 300)
		for i := range long {
			long[i] = 'k'
		}
		w := perform(r, http.MethodPost, "/payments", `{}`, map[string]string{TenantIDHeader: tenant, IdempotencyKeyHeader: string(long)})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIdempotency_StoreFailure(t *testing.T) {
	r := gin.New()
	r.Use(Identity(IdentityConfig{}), Idempotency(IdempotencyConfig{Store: failingStore{}}))
	r.POST("/payments", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := perform(r, http.MethodPost, "/payments", `{}`, map[string]string{TenantIDHeader: uuid.NewString(), IdempotencyKeyHeader: "k"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_STORAGE_FAILURE")
}
