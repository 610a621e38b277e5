package catalog

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	shopcatalog "github.com/ytsandesh670-cpu/Shopping/internal/shop/catalog"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/templates/helpers"
)

const (
	defaultBuyLabel       = "Buy on Amazon"
	defaultOverlayBuy     = "Buy Now on Amazon"
	defaultEmptyMessage   = "No products found. Try a different search or reset filters."
	defaultDisclosureText = "Affiliate disclosure: we may earn a commission from qualifying purchases."

	// GridTarget is the element id swapped by grid fragments.
	GridTarget = "catalog-grid"
	// OverlayTarget is the element id swapped by overlay fragments.
	OverlayTarget = "product-overlay"
	// FiltersTarget is the element id of the filter toolbar.
	FiltersTarget = "catalog-filters"
)

// Options carries presentation settings shared by every projection.
type Options struct {
	Locale string
	// Disclosure is pre-sanitised HTML shown at the bottom of the overlay.
	Disclosure template.HTML
}

// Endpoints lists the routes the rendered controls post to.
type Endpoints struct {
	Page         string
	Grid         string
	Search       string
	ClearSearch  string
	Category     string
	Sort         string
	Reset        string
	PrevPage     string
	NextPage     string
	CloseOverlay string
}

// PageData is the payload for the full catalog page.
type PageData struct {
	Title       string
	Description string
	Environment string
	CSRFToken   string
	Endpoints   Endpoints
	Filters     FiltersData
	Grid        GridData
	Overlay     OverlayData
}

// FiltersData drives the search box and select controls.
type FiltersData struct {
	Query      string
	Categories []SelectOption
	Sorts      []SelectOption
	HasActive  bool
	CSRFToken  string
	Endpoints  Endpoints
	// QueryMaxLength mirrors the state's query bound on the search input.
	QueryMaxLength int
	// OutOfBand marks the toolbar for an htmx out-of-band swap.
	OutOfBand bool
}

// SelectOption represents a select menu option.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// GridData is the payload for the grid fragment: cards, summary and pagination.
type GridData struct {
	Cards         []CardData
	Summary       string
	PageIndicator string
	Page          int
	TotalPages    int
	Total         int
	PrevDisabled  bool
	NextDisabled  bool
	EmptyMessage  string
	CSRFToken     string
	Endpoints     Endpoints
	// Filters is set when the toolbar must be refreshed alongside the grid.
	Filters *FiltersData
}

// CardData is a single product card.
type CardData struct {
	ID            string
	Title         string
	TitleSegments []helpers.HighlightSegment
	Category      string
	CategoryLabel string
	Price         string
	ImageURL      string
	ImageAlt      string
	BuyURL        string
	BuyLabel      string
	OverlayURL    string
	CSRFToken     string
}

// OverlayData is the payload for the detail overlay. The zero value renders a closed overlay.
type OverlayData struct {
	Open        bool
	ProductID   string
	Title       string
	Description string
	Price       string
	ImageURL    string
	ImageAlt    string
	BuyURL      string
	BuyLabel    string
	Disclosure  template.HTML
	CloseURL    string
	CSRFToken   string
	LockScroll  bool
	Autofocus   bool
}

// BuildEndpoints resolves every control route under basePath.
func BuildEndpoints(basePath string) Endpoints {
	return Endpoints{
		Page:         joinBase(basePath, "/"),
		Grid:         joinBase(basePath, "/grid"),
		Search:       joinBase(basePath, "/search"),
		ClearSearch:  joinBase(basePath, "/search/clear"),
		Category:     joinBase(basePath, "/category"),
		Sort:         joinBase(basePath, "/sort"),
		Reset:        joinBase(basePath, "/reset"),
		PrevPage:     joinBase(basePath, "/page/prev"),
		NextPage:     joinBase(basePath, "/page/next"),
		CloseOverlay: joinBase(basePath, "/overlay/close"),
	}
}

// OverlayURL returns the route that opens the overlay for productID.
func OverlayURL(basePath, productID string) string {
	return joinBase(basePath, "/products/"+url.PathEscape(productID)+"/overlay")
}

// BuildPageData assembles the full SSR payload.
func BuildPageData(basePath, csrfToken string, filters FiltersData, grid GridData, overlay OverlayData) PageData {
	return PageData{
		Title:       "Shop Catalog",
		Description: "Browse, filter and compare products.",
		CSRFToken:   csrfToken,
		Endpoints:   BuildEndpoints(basePath),
		Filters:     filters,
		Grid:        grid,
		Overlay:     overlay,
	}
}

// BuildFilters prepares the toolbar controls for the current state.
func BuildFilters(basePath, csrfToken string, categories []string, state shopcatalog.State, opts Options) FiltersData {
	state = state.Normalize()

	options := make([]SelectOption, 0, len(categories)+1)
	options = append(options, SelectOption{
		Value:    shopcatalog.AllCategories,
		Label:    "All categories",
		Selected: state.Category == shopcatalog.AllCategories,
	})
	for _, category := range categories {
		options = append(options, SelectOption{
			Value:    category,
			Label:    helpers.CategoryLabel(category, opts.Locale),
			Selected: state.Category == category,
		})
	}

	sorts := []SelectOption{
		{Value: string(shopcatalog.SortRelevance), Label: "Relevance"},
		{Value: string(shopcatalog.SortPriceAsc), Label: "Price: Low to High"},
		{Value: string(shopcatalog.SortPriceDesc), Label: "Price: High to Low"},
	}
	for i := range sorts {
		sorts[i].Selected = sorts[i].Value == string(state.Sort)
	}

	return FiltersData{
		Query:          state.Query,
		QueryMaxLength: shopcatalog.MaxQueryLength,
		Categories:     options,
		Sorts:          sorts,
		HasActive:      state.HasFilters(),
		CSRFToken:      csrfToken,
		Endpoints:      BuildEndpoints(basePath),
	}
}

// BuildGrid projects the current page into cards and status strings.
func BuildGrid(basePath, csrfToken string, state shopcatalog.State, page shopcatalog.Page, opts Options) GridData {
	cards := make([]CardData, 0, len(page.Items))
	for _, product := range page.Items {
		cards = append(cards, toCard(basePath, csrfToken, state.Query, product, opts))
	}

	empty := ""
	if page.Total == 0 {
		empty = defaultEmptyMessage
	}

	return GridData{
		Cards:         cards,
		Summary:       Summary(page),
		PageIndicator: PageIndicator(page),
		Page:          page.Number,
		TotalPages:    page.TotalPages,
		Total:         page.Total,
		PrevDisabled:  !page.HasPrev,
		NextDisabled:  !page.HasNext,
		EmptyMessage:  empty,
		CSRFToken:     csrfToken,
		Endpoints:     BuildEndpoints(basePath),
	}
}

// Summary renders "Showing A - B of N products" for page.
func Summary(page shopcatalog.Page) string {
	total := page.Total
	first := min(total, page.Start+1)
	last := min(total, page.Start+page.PageSize)
	return fmt.Sprintf("Showing %d - %d of %d products", first, last, total)
}

// PageIndicator renders "Page P / T" for page.
func PageIndicator(page shopcatalog.Page) string {
	return fmt.Sprintf("Page %d / %d", page.Number, page.TotalPages)
}

// BuildOverlay projects a product into the open overlay payload.
func BuildOverlay(basePath, csrfToken string, product shopcatalog.Product, opts Options) OverlayData {
	disclosure := opts.Disclosure
	if strings.TrimSpace(string(disclosure)) == "" {
		disclosure = template.HTML(template.HTMLEscapeString(defaultDisclosureText))
	}
	return OverlayData{
		Open:        true,
		ProductID:   product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       helpers.Currency(product.Price, product.Currency, opts.Locale),
		ImageURL:    product.ImageURL,
		ImageAlt:    product.Title,
		BuyURL:      product.DetailURL,
		BuyLabel:    defaultOverlayBuy,
		Disclosure:  disclosure,
		CloseURL:    BuildEndpoints(basePath).CloseOverlay,
		CSRFToken:   csrfToken,
		LockScroll:  true,
		Autofocus:   true,
	}
}

// ClosedOverlay returns the payload for an empty, hidden overlay.
func ClosedOverlay(basePath, csrfToken string) OverlayData {
	return OverlayData{
		CloseURL:  BuildEndpoints(basePath).CloseOverlay,
		CSRFToken: csrfToken,
	}
}

func toCard(basePath, csrfToken, query string, product shopcatalog.Product, opts Options) CardData {
	return CardData{
		ID:            product.ID,
		Title:         product.Title,
		TitleSegments: helpers.HighlightSegments(product.Title, query),
		Category:      product.Category,
		CategoryLabel: helpers.CategoryLabel(product.Category, opts.Locale),
		Price:         helpers.Currency(product.Price, product.Currency, opts.Locale),
		ImageURL:      product.ImageURL,
		ImageAlt:      product.Title,
		BuyURL:        product.DetailURL,
		BuyLabel:      defaultBuyLabel,
		OverlayURL:    OverlayURL(basePath, product.ID),
		CSRFToken:     csrfToken,
	}
}

func joinBase(basePath, suffix string) string {
	base := strings.TrimSpace(basePath)
	if base == "" {
		base = "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	base = strings.TrimRight(base, "/")
	if suffix == "/" {
		if base == "" {
			return "/"
		}
		return base
	}
	if !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	return base + suffix
}
