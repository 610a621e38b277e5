package ui

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ytsandesh670-cpu/Shopping/internal/shop/catalog"
	custommw "github.com/ytsandesh670-cpu/Shopping/internal/shop/httpserver/middleware"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/observability"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/overlay"
	catalogtpl "github.com/ytsandesh670-cpu/Shopping/internal/shop/templates/catalog"
)

// transition derives the next view state from the current (clamped) state and its page count.
type transition func(state catalog.State, totalPages int) catalog.State

// CatalogPage renders the full catalog document with SSR.
func (h *Handlers) CatalogPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	basePath := custommw.BasePathFromContext(ctx)
	csrf := custommw.CSRFTokenFromContext(ctx)

	page, state := catalog.Browse(h.store, sess.View())
	sess.SetView(state)

	overlayData := catalogtpl.ClosedOverlay(basePath, csrf)
	ctrl := overlay.Restore(sess.OverlayProductID())
	if product, found := ctrl.Product(h.store); found {
		overlayData = catalogtpl.BuildOverlay(basePath, csrf, product, h.opts)
	} else if ctrl.IsOpen() {
		ctrl.Close()
		sess.SetOverlayProductID("")
	}

	data := catalogtpl.BuildPageData(basePath, csrf,
		catalogtpl.BuildFilters(basePath, csrf, h.store.Categories(), state, h.opts),
		catalogtpl.BuildGrid(basePath, csrf, state, page, h.opts),
		overlayData,
	)
	data.Environment = custommw.EnvironmentFromContext(ctx)

	h.render(w, r, catalogtpl.Page(data))
}

// CatalogGrid renders the grid fragment for the stored view state.
func (h *Handlers) CatalogGrid(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	page, state := catalog.Browse(h.store, sess.View())
	sess.SetView(state)
	h.renderGrid(w, r, state, page, false)
}

// CatalogSearch replaces the free-text query.
func (h *Handlers) CatalogSearch(w http.ResponseWriter, r *http.Request) {
	query, ok := formValue(w, r, "q")
	if !ok {
		return
	}
	h.applyEvent(w, r, "search", func(state catalog.State, _ int) catalog.State {
		return state.WithQuery(query)
	}, false)
}

// CatalogClearSearch empties the query and refreshes the toolbar.
func (h *Handlers) CatalogClearSearch(w http.ResponseWriter, r *http.Request) {
	h.applyEvent(w, r, "search.clear", func(state catalog.State, _ int) catalog.State {
		return state.ClearQuery()
	}, true)
}

// CatalogCategory selects a category filter.
func (h *Handlers) CatalogCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := formValue(w, r, "category")
	if !ok {
		return
	}
	h.applyEvent(w, r, "category", func(state catalog.State, _ int) catalog.State {
		return state.WithCategory(category)
	}, false)
}

// CatalogSort changes the ordering.
func (h *Handlers) CatalogSort(w http.ResponseWriter, r *http.Request) {
	raw, ok := formValue(w, r, "sort")
	if !ok {
		return
	}
	mode := catalog.ParseSortMode(raw)
	h.applyEvent(w, r, "sort", func(state catalog.State, _ int) catalog.State {
		return state.WithSort(mode)
	}, false)
}

// CatalogReset restores every filter to its default and refreshes the toolbar.
func (h *Handlers) CatalogReset(w http.ResponseWriter, r *http.Request) {
	h.applyEvent(w, r, "reset", func(state catalog.State, _ int) catalog.State {
		return state.Reset()
	}, true)
}

// CatalogPrevPage moves one page back.
func (h *Handlers) CatalogPrevPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("HX-Trigger", triggerPaged)
	h.applyEvent(w, r, "page.prev", func(state catalog.State, _ int) catalog.State {
		return state.PrevPage()
	}, false)
}

// CatalogNextPage moves one page forward.
func (h *Handlers) CatalogNextPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("HX-Trigger", triggerPaged)
	h.applyEvent(w, r, "page.next", func(state catalog.State, totalPages int) catalog.State {
		return state.NextPage(totalPages)
	}, false)
}

// applyEvent runs one user event: load state, transition, recompute, store, render.
func (h *Handlers) applyEvent(w http.ResponseWriter, r *http.Request, kind string, next transition, refreshFilters bool) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	current, state := catalog.Browse(h.store, sess.View())
	page, state := catalog.Browse(h.store, next(state, current.TotalPages))
	sess.SetView(state)

	observability.FromContext(ctx).Debug("catalog event",
		zap.String("kind", kind),
		zap.String("session_id", sess.ID()),
		zap.Int("page", state.Page),
		zap.Int("matches", page.Total),
	)
	h.metrics.RecordEvent(ctx, kind, page.Total)

	if !custommw.IsHTMXRequest(ctx) {
		w.Header().Del("HX-Trigger")
		redirectToPage(w, r)
		return
	}
	h.renderGrid(w, r, state, page, refreshFilters)
}

func (h *Handlers) renderGrid(w http.ResponseWriter, r *http.Request, state catalog.State, page catalog.Page, refreshFilters bool) {
	ctx := r.Context()
	basePath := custommw.BasePathFromContext(ctx)
	csrf := custommw.CSRFTokenFromContext(ctx)

	grid := catalogtpl.BuildGrid(basePath, csrf, state, page, h.opts)
	if refreshFilters {
		filters := catalogtpl.BuildFilters(basePath, csrf, h.store.Categories(), state, h.opts)
		filters.OutOfBand = true
		grid.Filters = &filters
	}
	h.render(w, r, catalogtpl.Grid(grid))
}
