// Package pagination holds the page arithmetic shared by the admin list views.
package pagination

const (
	// DefaultPageSize for list views.
	DefaultPageSize = 25
	// MaxPageSize caps client supplied page sizes.
	MaxPageSize = 100
)

// Page describes one slice of a listing.
type Page struct {
	Number     int
	Size       int
	TotalItems int64
	TotalPages int
}

// New clamps number and size and computes the page count for total items.
// An empty listing still has one (empty) page.
func New(number, size int, total int64) Page {
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages == 0 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	}

	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// Offset is the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// Prev is the previous page number.
func (p Page) Prev() int {
	return p.Number - 1
}

// Next is the next page number.
func (p Page) Next() int {
	return p.Number + 1
}
