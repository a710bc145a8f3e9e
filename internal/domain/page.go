package domain

// PageParams carries page/size values from the HTTP layer to the repo layer.
// Page is 1-indexed. Size is capped at 100 by NewPageParams.
type PageParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Size is the maximum number of items to return.
	Size int
}

// NewPageParams builds a PageParams from raw HTTP query values.
// Zero or negative inputs fall back to sane defaults (page=1, size=10) so the
// repositories never see a negative offset. The size is capped at 100 to
// prevent runaway queries.
func NewPageParams(page, size int) PageParams {
	p := PageParams{Page: 1, Size: 10}
	if page >= 1 {
		p.Page = page
	}
	if size >= 1 {
		p.Size = size
		if p.Size > 100 {
			p.Size = 100
		}
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Size
}
