package domain

// PaginationParams carries limit/offset values from the HTTP layer to the
// repo layer. Offset is zero-based; Limit is capped at 100 by
// NewPaginationParams.
type PaginationParams struct {
	// Limit is the maximum number of items to return.
	Limit int
	// Offset is the number of items to skip, starting at 0.
	Offset int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query
// params. Nil pointers fall back to defaults (limit=10, offset=0).
// The limit is capped at 100 to prevent runaway queries.
func NewPaginationParams(limit, offset *int) PaginationParams {
	p := PaginationParams{Limit: 10}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	if offset != nil && *offset >= 0 {
		p.Offset = *offset
	}
	return p
}
