package httpserver

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ytsandesh670-cpu/Shopping/internal/shop/catalog"
	custommw "github.com/ytsandesh670-cpu/Shopping/internal/shop/httpserver/middleware"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/httpserver/ui"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/observability"
	appsession "github.com/ytsandesh670-cpu/Shopping/internal/shop/session"
	catalogtpl "github.com/ytsandesh670-cpu/Shopping/internal/shop/templates/catalog"
	"github.com/ytsandesh670-cpu/Shopping/public"
)

const defaultBasePath = "/catalog"

// Config holds runtime options for the catalog HTTP server.
type Config struct {
	Address     string
	BasePath    string
	Environment string

	Store      *catalog.Store
	PageSize   int
	Locale     string
	Disclosure template.HTML

	SessionCookieName string
	SessionHashKey    []byte
	SessionBlockKey   []byte
	SessionIdle       time.Duration
	SessionLifetime   time.Duration
	CookieSecure      bool

	CSRFCookieName string
	CSRFHeaderName string

	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

// NewHandler builds the routed handler without binding an address.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("embed static: %w", err)
	}

	sessions, err := appsession.NewManager(appsession.Config{
		CookieName:   cfg.SessionCookieName,
		HashKey:      cfg.SessionHashKey,
		BlockKey:     cfg.SessionBlockKey,
		CookieSecure: cfg.CookieSecure,
		PageSize:     cfg.PageSize,
		IdleTimeout:  cfg.SessionIdle,
		Lifetime:     cfg.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("session manager: %w", err)
	}

	opts := catalogtpl.Options{
		Locale:     strings.TrimSpace(cfg.Locale),
		Disclosure: cfg.Disclosure,
	}

	handlers := ui.NewHandlers(ui.Dependencies{
		Store:   cfg.Store,
		Options: opts,
		Metrics: cfg.Metrics,
	})

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLogger(logger))
	router.Use(observability.RequestLogger())
	router.Use(observability.Recovery())
	router.Use(chimw.Timeout(60 * time.Second))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))

	basePath := normalizeBasePath(cfg.BasePath)
	mountCatalogRoutes(router, basePath, handlers, routeOptions{
		Sessions:    sessions,
		Environment: cfg.Environment,
		CSRF: custommw.CSRFConfig{
			CookieName: cfg.CSRFCookieName,
			CookiePath: basePath,
			HeaderName: cfg.CSRFHeaderName,
			Secure:     cfg.CookieSecure,
		},
	})

	return router, nil
}

type routeOptions struct {
	Sessions    custommw.SessionStore
	Environment string
	CSRF        custommw.CSRFConfig
}

func mountCatalogRoutes(router chi.Router, base string, h *ui.Handlers, opts routeOptions) {
	routes := func(r chi.Router) {
		r.Use(custommw.RequestInfoMiddleware(base))
		r.Use(custommw.Environment(opts.Environment))
		r.Use(custommw.HTMX())
		r.Use(custommw.NoStore())
		r.Use(custommw.Session(opts.Sessions))
		r.Use(custommw.CSRF(opts.CSRF))

		r.Get("/", h.CatalogPage)
		RegisterFragment(r, "/grid", h.CatalogGrid)

		r.Post("/search", h.CatalogSearch)
		r.Post("/search/clear", h.CatalogClearSearch)
		r.Post("/category", h.CatalogCategory)
		r.Post("/sort", h.CatalogSort)
		r.Post("/reset", h.CatalogReset)
		r.Post("/page/prev", h.CatalogPrevPage)
		r.Post("/page/next", h.CatalogNextPage)

		r.Post("/products/{productID}/overlay", h.OverlayOpen)
		r.Post("/overlay/close", h.OverlayClose)
	}

	if base == "/" {
		router.Group(routes)
		return
	}

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, base, http.StatusFound)
	})
	router.Route(base, routes)
}

func normalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return defaultBasePath
	}
	return custommw.NormaliseBase(p)
}

// RegisterFragment registers a GET handler intended for htmx fragment rendering.
func RegisterFragment(r chi.Router, pattern string, handler http.HandlerFunc) {
	r.With(custommw.RequireHTMX()).Get(pattern, handler)
}
