package catalog

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	shopcatalog "github.com/ytsandesh670-cpu/Shopping/internal/shop/catalog"
)

var testOptions = Options{Locale: "en-IN"}

func render(t *testing.T, component templ.Component) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, component.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func gridFor(t *testing.T, store *shopcatalog.Store, state shopcatalog.State) GridData {
	t.Helper()

	page, state := shopcatalog.Browse(store, state)
	return BuildGrid("/catalog", "tok", state, page, testOptions)
}

func TestBuildGridDefaultState(t *testing.T) {
	t.Parallel()

	grid := gridFor(t, shopcatalog.NewStaticStore(), shopcatalog.DefaultState(8))

	require.Equal(t, "Showing 1 - 4 of 4 products", grid.Summary)
	require.Equal(t, "Page 1 / 1", grid.PageIndicator)
	require.True(t, grid.PrevDisabled)
	require.True(t, grid.NextDisabled)
	require.Empty(t, grid.EmptyMessage)
	require.Len(t, grid.Cards, 4)

	card := grid.Cards[2]
	require.Equal(t, "e1", card.ID)
	require.Equal(t, "₹52,999", card.Price)
	require.Equal(t, "Electronics", card.CategoryLabel)
	require.Equal(t, "/catalog/products/e1/overlay", card.OverlayURL)
}

func TestBuildGridCategoryFilter(t *testing.T) {
	t.Parallel()

	grid := gridFor(t, shopcatalog.NewStaticStore(), shopcatalog.DefaultState(8).WithCategory("mens"))

	require.Equal(t, "Showing 1 - 1 of 1 products", grid.Summary)
	require.Len(t, grid.Cards, 1)
	require.Equal(t, "₹899", grid.Cards[0].Price)
}

func TestBuildGridEmpty(t *testing.T) {
	t.Parallel()

	grid := gridFor(t, shopcatalog.NewStaticStore(), shopcatalog.DefaultState(8).WithQuery("nothing"))

	require.Equal(t, "Showing 0 - 0 of 0 products", grid.Summary)
	require.Equal(t, "Page 1 / 1", grid.PageIndicator)
	require.NotEmpty(t, grid.EmptyMessage)
	require.Empty(t, grid.Cards)

	doc := render(t, Grid(grid))
	require.Equal(t, 0, doc.Find(".card").Length())
	require.Equal(t, 1, doc.Find(".empty-state").Length())
}

func TestBuildGridSecondPage(t *testing.T) {
	t.Parallel()

	var products []shopcatalog.Product
	for i := 0; i < 10; i++ {
		products = append(products, shopcatalog.Product{ID: string(rune('a' + i)), Title: "Item", Price: int64(i), Currency: "INR"})
	}
	store, err := shopcatalog.NewStore(products)
	require.NoError(t, err)

	state := shopcatalog.DefaultState(4)
	state.Page = 3
	grid := gridFor(t, store, state)

	require.Equal(t, "Showing 9 - 10 of 10 products", grid.Summary)
	require.Equal(t, "Page 3 / 3", grid.PageIndicator)
	require.False(t, grid.PrevDisabled)
	require.True(t, grid.NextDisabled)
}

func TestGridRendersControls(t *testing.T) {
	t.Parallel()

	doc := render(t, Grid(gridFor(t, shopcatalog.NewStaticStore(), shopcatalog.DefaultState(8))))

	require.Equal(t, "Showing 1 - 4 of 4 products", doc.Find("#resultsCount").Text())
	require.Equal(t, "Page 1 / 1", doc.Find("#pageInfo").Text())
	require.Equal(t, 4, doc.Find("article.card").Length())

	_, prevDisabled := doc.Find("#prevPage").Attr("disabled")
	_, nextDisabled := doc.Find("#nextPage").Attr("disabled")
	require.True(t, prevDisabled)
	require.True(t, nextDisabled)
	aria, _ := doc.Find("#prevPage").Attr("aria-disabled")
	require.Equal(t, "true", aria)

	buy := doc.Find("article.card").First().Find("a.buy")
	target, _ := buy.Attr("target")
	rel, _ := buy.Attr("rel")
	href, _ := buy.Attr("href")
	require.Equal(t, "_blank", target)
	require.Contains(t, rel, "noopener")
	require.Contains(t, rel, "noreferrer")
	require.Equal(t, "https://www.amazon.in/dp/B09V3J2WXX?tag=YOUR-AFFILIATE-ID", href)

	details := doc.Find("article.card").First().Find("button.details")
	hxPost, _ := details.Attr("hx-post")
	require.Equal(t, "/catalog/products/m1/overlay", hxPost)
}

func TestGridEscapesCatalogText(t *testing.T) {
	t.Parallel()

	store, err := shopcatalog.NewStore([]shopcatalog.Product{{
		ID:          "x1",
		Title:       "<script>alert('x')</script>",
		Description: `"quoted" & <b>bold</b>`,
		Category:    "mens",
		Price:       10,
		Currency:    "INR",
		DetailURL:   "javascript:alert(1)",
	}})
	require.NoError(t, err)

	grid := gridFor(t, store, shopcatalog.DefaultState(8))

	var buf bytes.Buffer
	require.NoError(t, Grid(grid).Render(context.Background(), &buf))
	raw := buf.String()
	require.NotContains(t, raw, "<script>")
	require.Contains(t, raw, "&lt;script&gt;")
	require.NotContains(t, raw, "javascript:alert")

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	require.Equal(t, 0, doc.Find("#catalog-grid script").Length())
	require.Equal(t, "<script>alert('x')</script>", doc.Find("article.card h3").Text())

	product, _ := store.Lookup("x1")
	overlayDoc := render(t, Overlay(BuildOverlay("/catalog", "tok", product, testOptions)))
	require.Equal(t, 0, overlayDoc.Find("#product-overlay b").Length())
	require.Equal(t, `"quoted" & <b>bold</b>`, overlayDoc.Find(".description").Text())
}

func TestCardHighlightsQuery(t *testing.T) {
	t.Parallel()

	doc := render(t, Grid(gridFor(t, shopcatalog.NewStaticStore(), shopcatalog.DefaultState(8).WithQuery("shirt"))))

	require.Equal(t, 2, doc.Find("article.card").Length())
	require.Equal(t, "Shirt", doc.Find("article.card").First().Find("h3 mark").Text())
}

func TestBuildOverlay(t *testing.T) {
	t.Parallel()

	product, ok := shopcatalog.NewStaticStore().Lookup("e1")
	require.True(t, ok)

	overlay := BuildOverlay("/catalog", "tok", product, testOptions)
	require.True(t, overlay.Open)
	require.True(t, overlay.LockScroll)
	require.True(t, overlay.Autofocus)
	require.Equal(t, "₹52,999", overlay.Price)
	require.Equal(t, "/catalog/overlay/close", overlay.CloseURL)
	require.Contains(t, string(overlay.Disclosure), "Affiliate disclosure")

	doc := render(t, Overlay(overlay))
	require.Equal(t, "Apple iPhone 13 (128GB) — Verified Seller", doc.Find("#modalTitle").Text())
	require.Equal(t, "₹52,999", doc.Find("#product-overlay .price").Text())
	lock, _ := doc.Find("#product-overlay").Attr("data-scroll-lock")
	require.Equal(t, "true", lock)
	_, hidden := doc.Find("#product-overlay").Attr("hidden")
	require.False(t, hidden)
}

func TestClosedOverlayRendersHidden(t *testing.T) {
	t.Parallel()

	doc := render(t, Overlay(ClosedOverlay("/catalog", "tok")))
	overlay := doc.Find("#product-overlay")
	require.Equal(t, 1, overlay.Length())
	_, hidden := overlay.Attr("hidden")
	require.True(t, hidden)
	require.Equal(t, 0, overlay.Children().Length())
}

func TestBuildFilters(t *testing.T) {
	t.Parallel()

	store := shopcatalog.NewStaticStore()
	filters := BuildFilters("/catalog", "tok", store.Categories(), shopcatalog.DefaultState(8).WithCategory("kids").WithSort(shopcatalog.SortPriceAsc), testOptions)

	require.Len(t, filters.Categories, 5)
	require.Equal(t, "all", filters.Categories[0].Value)
	require.False(t, filters.Categories[0].Selected)
	require.Equal(t, "Kids", filters.Categories[4].Label)
	require.True(t, filters.Categories[4].Selected)
	require.True(t, filters.Sorts[1].Selected)
	require.True(t, filters.HasActive)

	doc := render(t, Filters(filters))
	require.Equal(t, "kids", doc.Find("#categorySelect option[selected]").AttrOr("value", ""))
	require.Equal(t, "price-asc", doc.Find("#sortSelect option[selected]").AttrOr("value", ""))
	require.Equal(t, "256", doc.Find("#searchInput").AttrOr("maxlength", ""))
}

func TestPageRendersWholeDocument(t *testing.T) {
	t.Parallel()

	store := shopcatalog.NewStaticStore()
	state := shopcatalog.DefaultState(8)
	page, state := shopcatalog.Browse(store, state)
	product, _ := store.Lookup("k1")

	data := BuildPageData("/catalog", "tok",
		BuildFilters("/catalog", "tok", store.Categories(), state, testOptions),
		BuildGrid("/catalog", "tok", state, page, testOptions),
		BuildOverlay("/catalog", "tok", product, testOptions),
	)

	doc := render(t, Page(data))
	require.Equal(t, "Shop Catalog", doc.Find("title").Text())
	require.Equal(t, "tok", doc.Find(`meta[name="csrf-token"]`).AttrOr("content", ""))
	require.True(t, doc.Find("body").HasClass("no-scroll"))
	require.Equal(t, 4, doc.Find("#catalog-grid article.card").Length())
	require.Equal(t, "k1", doc.Find("#product-overlay").AttrOr("data-product-id", ""))
}

func TestJoinBase(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/catalog/grid", joinBase("/catalog/", "grid"))
	require.Equal(t, "/grid", joinBase("/", "/grid"))
	require.Equal(t, "/", joinBase("", "/"))
	require.Equal(t, "/shop", joinBase("shop", "/"))
}
