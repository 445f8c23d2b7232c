package usecases

const DefaultPageSize = 8

// Page is one slice of a client-side paginated list.
type Page[T any] struct {
	Items      []T
	Page       int
	Size       int
	Total      int
	TotalPages int
}

// Paginate cuts items into pages of size and returns the requested one.
// The page number is clamped into 1..TotalPages.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + size - 1) / size
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	start := min((page-1)*size, total)
	end := min(start+size, total)
	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PageNumbers lists 1..TotalPages.
func (p Page[T]) PageNumbers() []int {
	pages := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}

func (p Page[T]) HasPrev() bool { return p.Page > 1 }
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }
func (p Page[T]) Prev() int     { return max(p.Page-1, 1) }
func (p Page[T]) Next() int     { return min(p.Page+1, max(p.TotalPages, 1)) }
