// Package overlay tracks which product, if any, is shown in the detail overlay.
package overlay

import (
	"strings"

	"github.com/ytsandesh670-cpu/Shopping/internal/shop/catalog"
)

// State is the overlay lifecycle state.
type State int

const (
	// Closed is the initial state; no product is shown.
	Closed State = iota
	// Open means a single product is shown.
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Lookup resolves a product by identifier.
type Lookup interface {
	Lookup(id string) (catalog.Product, bool)
}

// Controller is the overlay state machine. The zero value is Closed.
type Controller struct {
	productID string
}

// Restore rebuilds a controller from a previously persisted product id.
// An empty id yields a Closed controller.
func Restore(productID string) *Controller {
	return &Controller{productID: strings.TrimSpace(productID)}
}

// Open shows the product with the given id. When the id is unknown the
// transition is declined and the controller keeps its current state.
func (c *Controller) Open(id string, products Lookup) (catalog.Product, bool) {
	if products == nil {
		return catalog.Product{}, false
	}
	product, ok := products.Lookup(id)
	if !ok {
		return catalog.Product{}, false
	}
	c.productID = product.ID
	return product, true
}

// Close hides the overlay regardless of which product was shown.
func (c *Controller) Close() {
	c.productID = ""
}

// Current returns the id of the shown product.
func (c *Controller) Current() (string, bool) {
	return c.productID, c.productID != ""
}

// State reports the lifecycle state.
func (c *Controller) State() State {
	if c.productID == "" {
		return Closed
	}
	return Open
}

// IsOpen reports whether a product is shown.
func (c *Controller) IsOpen() bool {
	return c.State() == Open
}

// Product resolves the shown product. It reports false when the overlay is
// closed or the persisted id no longer exists in the catalog.
func (c *Controller) Product(products Lookup) (catalog.Product, bool) {
	if c.productID == "" || products == nil {
		return catalog.Product{}, false
	}
	return products.Lookup(c.productID)
}
