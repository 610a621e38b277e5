package ui

import (
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/ytsandesh670-cpu/Shopping/internal/shop/catalog"
	custommw "github.com/ytsandesh670-cpu/Shopping/internal/shop/httpserver/middleware"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/observability"
	appsession "github.com/ytsandesh670-cpu/Shopping/internal/shop/session"
	catalogtpl "github.com/ytsandesh670-cpu/Shopping/internal/shop/templates/catalog"
)

const (
	triggerOverlayOpened = "overlay:opened"
	triggerOverlayClosed = "overlay:closed"
	triggerPaged         = "catalog:paged"
)

// Dependencies collects the services required by the UI handlers.
type Dependencies struct {
	Store   *catalog.Store
	Options catalogtpl.Options
	Metrics *observability.Metrics
}

// Handlers exposes HTTP handlers for the catalog page and its fragments.
type Handlers struct {
	store   *catalog.Store
	opts    catalogtpl.Options
	metrics *observability.Metrics
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	store := deps.Store
	if store == nil {
		store = catalog.NewStaticStore()
	}
	return &Handlers{
		store:   store,
		opts:    deps.Options,
		metrics: deps.Metrics,
	}
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			observability.FromContext(r.Context()).Error("render failed", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}

func requireSession(w http.ResponseWriter, r *http.Request) (*appsession.Session, bool) {
	sess, ok := custommw.SessionFromContext(r.Context())
	if !ok {
		observability.FromContext(r.Context()).Error("session missing from request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}

// redirectToPage finishes a plain form submission by sending the browser back to the catalog page.
func redirectToPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, catalogtpl.BuildEndpoints(custommw.BasePathFromContext(r.Context())).Page, http.StatusSeeOther)
}

func formValue(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	if err := r.ParseForm(); err != nil {
		observability.FromContext(r.Context()).Debug("form parse failed", zap.Error(err))
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return "", false
	}
	return r.PostForm.Get(key), true
}
