package result

// Paginated holds one page of a list of results, as well as some related metadata
type Paginated[T any] struct {
	maxResultsPerPage int
	page              int
	hits              T
	totalHits         int
}

func NewPaginated[T any](maxResultsPerPage, page, totalHits int, hits T) Paginated[T] {
	return Paginated[T]{
		maxResultsPerPage: maxResultsPerPage,
		page:              page,
		totalHits:         totalHits,
		hits:              hits,
	}
}

// Page is 1-based.
func (P Paginated[T]) Page() int {
	return P.page
}

func (P Paginated[T]) Hits() T {
	return P.hits
}

func (P Paginated[T]) TotalHits() int {
	return P.totalHits
}

// Offset is the index of the first hit of the current page in the whole list
func (P Paginated[T]) Offset() int {
	if P.page < 1 {
		return 0
	}
	return (P.page - 1) * P.maxResultsPerPage
}

func (P Paginated[T]) HasPrevious() bool {
	return P.page > 1
}

func (P Paginated[T]) HasNext() bool {
	if P.maxResultsPerPage == 0 {
		return false
	}
	return P.Offset()+P.maxResultsPerPage < P.totalHits
}
