package ui

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	custommw "github.com/ytsandesh670-cpu/Shopping/internal/shop/httpserver/middleware"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/observability"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/overlay"
	catalogtpl "github.com/ytsandesh670-cpu/Shopping/internal/shop/templates/catalog"
)

// OverlayOpen shows the detail overlay for the product in the URL. Unknown ids
// leave the overlay untouched and answer 204 so htmx performs no swap.
func (h *Handlers) OverlayOpen(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	id := chi.URLParam(r, "productID")
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}

	ctrl := overlay.Restore(sess.OverlayProductID())
	product, opened := ctrl.Open(id, h.store)
	if !opened {
		logger.Debug("overlay open ignored", zap.String("product_id", id))
		if custommw.IsHTMXRequest(ctx) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		redirectToPage(w, r)
		return
	}

	current, _ := ctrl.Current()
	sess.SetOverlayProductID(current)
	h.metrics.RecordOverlayOpen(ctx, product.ID)
	logger.Debug("overlay opened", zap.String("product_id", product.ID))

	if !custommw.IsHTMXRequest(ctx) {
		redirectToPage(w, r)
		return
	}

	basePath := custommw.BasePathFromContext(ctx)
	csrf := custommw.CSRFTokenFromContext(ctx)
	w.Header().Set("HX-Trigger", triggerOverlayOpened)
	h.render(w, r, catalogtpl.Overlay(catalogtpl.BuildOverlay(basePath, csrf, product, h.opts)))
}

// OverlayClose hides the detail overlay. Closing an already closed overlay is a no-op.
func (h *Handlers) OverlayClose(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	ctrl := overlay.Restore(sess.OverlayProductID())
	wasOpen := ctrl.IsOpen()
	ctrl.Close()
	sess.SetOverlayProductID("")
	if wasOpen {
		observability.FromContext(ctx).Debug("overlay closed")
	}

	if !custommw.IsHTMXRequest(ctx) {
		redirectToPage(w, r)
		return
	}

	basePath := custommw.BasePathFromContext(ctx)
	csrf := custommw.CSRFTokenFromContext(ctx)
	w.Header().Set("HX-Trigger", triggerOverlayClosed)
	h.render(w, r, catalogtpl.Overlay(catalogtpl.ClosedOverlay(basePath, csrf)))
}
