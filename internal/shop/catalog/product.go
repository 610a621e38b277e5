package catalog

import "errors"

// AllCategories is the category sentinel that disables category filtering.
const AllCategories = "all"

var (
	// ErrDuplicateID indicates two catalog entries share the same identifier.
	ErrDuplicateID = errors.New("duplicate product id")
	// ErrInvalidProduct indicates a catalog entry is missing required fields.
	ErrInvalidProduct = errors.New("invalid product")
)

// Product represents a single catalog entry. Products are immutable once loaded.
type Product struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	// Price is expressed in whole currency units.
	Price     int64  `yaml:"price"`
	Currency  string `yaml:"currency"`
	ImageURL  string `yaml:"image_url"`
	DetailURL string `yaml:"detail_url"`
}
