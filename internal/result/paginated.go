package result

import "math"

// Paginated wraps one page of a longer listing together with the metadata
// needed to build a pages navigator.
type Paginated[T any] struct {
	pageSize  int
	page      int
	totalHits int
	hits      T
}

func NewPaginated[T any](pageSize, page, totalHits int, hits T) Paginated[T] {
	return Paginated[T]{
		pageSize:  pageSize,
		page:      page,
		totalHits: totalHits,
		hits:      hits,
	}
}

func (p Paginated[T]) Page() int {
	return p.page
}

func (p Paginated[T]) Hits() T {
	return p.hits
}

func (p Paginated[T]) TotalPages() int {
	if p.pageSize == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.totalHits) / float64(p.pageSize)))
}
