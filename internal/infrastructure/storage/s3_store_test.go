package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testS3Config(endpoint string) config.StorageConfig {
	return config.StorageConfig{
		Driver:          "s3",
		Bucket:          "ledger-artifacts",
		Region:          "us-east-1",
		Endpoint:        endpoint,
		AccessKeyID:     "minio",
		SecretAccessKey: "minio-secret",
		UsePathStyle:    true,
		URLExpiry:       15 * time.Minute,
	}
}

func TestNewS3ArtifactStore_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket is required", func(t *testing.T) {
		cfg := testS3Config("http://localhost:9000")
		cfg.Bucket = ""
		_, err := NewS3ArtifactStore(ctx, cfg)
		assert.ErrorContains(t, err, "bucket")
	})

	t.Run("keys must come in pairs", func(t *testing.T) {
		cfg := testS3Config("http://localhost:9000")
		cfg.SecretAccessKey = ""
		_, err := NewS3ArtifactStore(ctx, cfg)
		assert.ErrorContains(t, err, "must be set together")
	})

	t.Run("defaults expiry", func(t *testing.T) {
		cfg := testS3Config("http://localhost:9000")
		cfg.URLExpiry = 0
		store, err := NewS3ArtifactStore(ctx, cfg)
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, store.expiry)
		assert.Equal(t, "ledger-artifacts", store.Bucket())
	})
}

func TestS3ArtifactStore_PresignedURLs(t *testing.T) {
	ctx := context.Background()
	store, err := NewS3ArtifactStore(ctx, testS3Config("http://localhost:9000"))
	require.NoError(t, err)

	key := "tenant-1/invoice/invoice-7.pdf"

	download, err := store.DownloadURL(ctx, key, 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(download, "http://localhost:9000/ledger-artifacts/tenant-1/invoice/invoice-7.pdf?"), download)
	assert.Contains(t, download, "X-Amz-Expires=600")
	assert.Contains(t, download, "X-Amz-Signature=")

	upload, err := store.UploadURL(ctx, key, "application/pdf", 0)
	require.NoError(t, err)
	assert.Contains(t, upload, "/ledger-artifacts/tenant-1/invoice/invoice-7.pdf?")
	assert.Contains(t, upload, "X-Amz-Expires=900", "falls back to the configured expiry")

	_, err = store.DownloadURL(ctx, "", time.Minute)
	assert.Error(t, err)
	_, err = store.UploadURL(ctx, "", "application/pdf", time.Minute)
	assert.Error(t, err)
}

func TestS3ArtifactStore_Exists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/ledger-artifacts/t/invoice/present.pdf":
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Length", "0")
			w.WriteHeader(http.StatusOK)
		case "/ledger-artifacts/t/invoice/forbidden.pdf":
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	store, err := NewS3ArtifactStore(ctx, testS3Config(srv.URL))
	require.NoError(t, err)

	ok, err := store.Exists(ctx, "t/invoice/present.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "t/invoice/absent.pdf")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Exists(ctx, "t/invoice/forbidden.pdf")
	assert.Error(t, err)

	_, err = store.Exists(ctx, "")
	assert.Error(t, err)
}
