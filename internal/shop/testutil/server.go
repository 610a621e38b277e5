package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/ytsandesh670-cpu/Shopping/internal/shop/catalog"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/httpserver"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithBasePath sets a custom base path for the catalog routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// WithStore serves a custom product catalog.
func WithStore(store *catalog.Store) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Store = store
	}
}

// WithPageSize overrides the number of cards per page.
func WithPageSize(size int) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.PageSize = size
	}
}

// NewServer constructs an httptest server running the catalog HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:         ":0",
		BasePath:        "/catalog",
		Environment:     "Test",
		Store:           catalog.NewStaticStore(),
		PageSize:        catalog.DefaultPageSize,
		Locale:          "en-IN",
		SessionHashKey:  []byte("0123456789ABCDEF0123456789ABCDEF"),
		SessionBlockKey: []byte("ABCDEF0123456789ABCDEF0123456789"),
		CSRFCookieName:  "csrf_token",
		CSRFHeaderName:  "X-CSRF-Token",
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	handler, err := httpserver.NewHandler(cfg)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}
