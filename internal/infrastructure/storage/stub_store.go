package storage

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	appinv "github.com/erp/ledger/internal/application/invoicing"
)

var _ appinv.ArtifactStore = (*StubArtifactStore)(nil)

// StubArtifactStore hands out unsigned URLs under BaseURL. It is meant for
// development setups without an object store.
type StubArtifactStore struct {
	BaseURL string
	// Missing lists keys Exists reports as not uploaded
	Missing map[string]bool
	now     func() time.Time
}

// NewStubArtifactStore creates a StubArtifactStore
func NewStubArtifactStore(baseURL string) *StubArtifactStore {
	if baseURL == "" {
		baseURL = "http://localhost:8080/artifacts"
	}
	return &StubArtifactStore{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Missing: make(map[string]bool),
		now:     time.Now,
	}
}

// DownloadURL returns BaseURL/download/<key>
func (s *StubArtifactStore) DownloadURL(_ context.Context, key string, expires time.Duration) (string, error) {
	return s.url("download", key, expires)
}

// UploadURL returns BaseURL/upload/<key>
func (s *StubArtifactStore) UploadURL(_ context.Context, key, _ string, expires time.Duration) (string, error) {
	return s.url("upload", key, expires)
}

// Exists is true unless key was marked missing
func (s *StubArtifactStore) Exists(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("artifact key is required")
	}
	return !s.Missing[key], nil
}

func (s *StubArtifactStore) url(action, key string, expires time.Duration) (string, error) {
	if key == "" {
		return "", errors.New("artifact key is required")
	}
	q := url.Values{}
	q.Set("expires", s.now().Add(expires).UTC().Format(time.RFC3339))
	return s.BaseURL + "/" + action + "/" + key + "?" + q.Encode(), nil
}
