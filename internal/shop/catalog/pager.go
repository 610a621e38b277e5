package catalog

// Page is one window over a filtered product sequence.
type Page struct {
	Items      []Product
	Number     int
	TotalPages int
	Total      int
	PageSize   int
	Start      int
	End        int
	HasPrev    bool
	HasNext    bool
}

// TotalPages returns max(1, ceil(total / pageSize)).
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate returns the requested page of items, clamping page into range.
func Paginate(items []Product, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := TotalPages(total, pageSize)

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      append([]Product(nil), items[start:end]...),
		Number:     page,
		TotalPages: totalPages,
		Total:      total,
		PageSize:   pageSize,
		Start:      start,
		End:        end,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Browse runs the query and pagination for state and returns the page along
// with the state clamped to the resulting page range.
func Browse(store *Store, state State) (Page, State) {
	state = state.Normalize()
	matches := Query(store.Products(), state)
	state = state.Clamp(TotalPages(len(matches), state.PageSize))
	return Paginate(matches, state.Page, state.PageSize), state
}
