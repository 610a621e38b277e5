package catalog

import (
	"strings"
	"unicode/utf8"
)

// DefaultPageSize is the number of cards shown per page when none is configured.
const DefaultPageSize = 8

// MaxQueryLength bounds the free-text query in runes. The whole state travels
// in the session cookie, which must stay under the 4 KiB cookie limit.
const MaxQueryLength = 256

// MaxCategoryLength bounds the category tag in runes for the same reason.
const MaxCategoryLength = 64

// SortMode describes the requested ordering of the filtered catalog.
type SortMode string

const (
	// SortRelevance keeps catalog order.
	SortRelevance SortMode = "relevance"
	// SortPriceAsc orders by price, cheapest first.
	SortPriceAsc SortMode = "price-asc"
	// SortPriceDesc orders by price, most expensive first.
	SortPriceDesc SortMode = "price-desc"
)

// ParseSortMode normalises user input into a SortMode. Unknown values map to SortRelevance.
func ParseSortMode(raw string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(raw))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortRelevance
	}
}

// State captures the user-controlled filter, sort and page selections.
// Transitions return a new value; the caller owns the single live instance.
type State struct {
	Query    string   `json:"q,omitempty"`
	Category string   `json:"category,omitempty"`
	Sort     SortMode `json:"sort,omitempty"`
	Page     int      `json:"page,omitempty"`
	PageSize int      `json:"pageSize,omitempty"`
}

// DefaultState returns the initial state for a new session.
func DefaultState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{
		Category: AllCategories,
		Sort:     SortRelevance,
		Page:     1,
		PageSize: pageSize,
	}
}

// Normalize fills zero values with their defaults and bounds the query length.
func (s State) Normalize() State {
	s.Query = truncateRunes(s.Query, MaxQueryLength)
	s.Category = truncateRunes(s.Category, MaxCategoryLength)
	if strings.TrimSpace(s.Category) == "" {
		s.Category = AllCategories
	}
	s.Sort = ParseSortMode(string(s.Sort))
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	return s
}

// WithQuery replaces the free-text query and returns to the first page.
// Queries longer than MaxQueryLength runes are truncated.
func (s State) WithQuery(query string) State {
	s.Query = truncateRunes(query, MaxQueryLength)
	s.Page = 1
	return s
}

// ClearQuery empties the free-text query and returns to the first page.
func (s State) ClearQuery() State {
	return s.WithQuery("")
}

// WithCategory selects a category (or AllCategories) and returns to the first page.
func (s State) WithCategory(category string) State {
	category = strings.TrimSpace(category)
	if category == "" {
		category = AllCategories
	}
	s.Category = truncateRunes(category, MaxCategoryLength)
	s.Page = 1
	return s
}

// WithSort changes the ordering and returns to the first page.
func (s State) WithSort(mode SortMode) State {
	s.Sort = ParseSortMode(string(mode))
	s.Page = 1
	return s
}

// Reset restores every selection to its default while keeping the page size.
func (s State) Reset() State {
	return DefaultState(s.PageSize)
}

// PrevPage moves one page back. It is a no-op on the first page.
func (s State) PrevPage() State {
	if s.Page > 1 {
		s.Page--
	}
	return s
}

// NextPage moves one page forward. It is a no-op on the last page.
func (s State) NextPage(totalPages int) State {
	if s.Page < totalPages {
		s.Page++
	}
	return s
}

// Clamp bounds Page to [1, totalPages].
func (s State) Clamp(totalPages int) State {
	if totalPages < 1 {
		totalPages = 1
	}
	if s.Page > totalPages {
		s.Page = totalPages
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return s
}

// HasFilters reports whether any filter or non-default sort is active.
func (s State) HasFilters() bool {
	return strings.TrimSpace(s.Query) != "" ||
		(s.Category != "" && s.Category != AllCategories) ||
		(s.Sort != "" && s.Sort != SortRelevance)
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit])
}
