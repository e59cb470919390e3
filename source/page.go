package source

// Page is one page of a paginated listing.
type Page[T any] struct {
	CurrentPage int  `json:"currentPage"`
	HasNextPage bool `json:"hasNextPage"`
	Results     []T  `json:"results"`
}

// NextPage returns the page number to request next, or 0 when there is none.
func (p *Page[T]) NextPage() int {
	if !p.HasNextPage {
		return 0
	}
	return p.CurrentPage + 1
}

// PrevPage returns the previous page number, or 0 on the first page.
func (p *Page[T]) PrevPage() int {
	if p.CurrentPage <= 1 {
		return 0
	}
	return p.CurrentPage - 1
}
