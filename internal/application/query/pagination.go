package query

// PageQuery selects one page of a listing. Page is 1-based.
type PageQuery struct {
	Page     int
	PageSize int
}

// Normalize clamps out-of-range values to usable defaults.
func (p PageQuery) Normalize(defaultPageSize int) PageQuery {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	return p
}

func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paginated is one page of a listing together with the exact total count.
type Paginated[T any] struct {
	Items      []T
	TotalCount int
	Page       int
	PageSize   int
}

func NewPaginated[T any](items []T, total int, page PageQuery) *Paginated[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &Paginated[T]{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}

// TotalPages is never below 1, so an empty collection still has one page.
func (p *Paginated[T]) TotalPages() int {
	if p.TotalCount <= 0 {
		return 1
	}
	pages := (p.TotalCount + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}
