package catalog

import (
	"embed"
	"html/template"
	"time"

	"github.com/a-h/templ"
)

//go:embed *.tmpl
var files embed.FS

var views = template.Must(template.New("catalog").Funcs(template.FuncMap{
	"year": func() int { return time.Now().Year() },
}).ParseFS(files, "*.tmpl"))

// Page renders the full catalog document.
func Page(data PageData) templ.Component {
	return templ.FromGoHTML(views.Lookup("page"), data)
}

// Grid renders the grid fragment swapped into #catalog-grid.
func Grid(data GridData) templ.Component {
	return templ.FromGoHTML(views.Lookup("grid"), data)
}

// Filters renders the filter toolbar.
func Filters(data FiltersData) templ.Component {
	return templ.FromGoHTML(views.Lookup("filters"), data)
}

// Overlay renders the overlay fragment swapped into #product-overlay.
func Overlay(data OverlayData) templ.Component {
	return templ.FromGoHTML(views.Lookup("overlay"), data)
}
