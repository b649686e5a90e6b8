package helpers

import (
	"github.com/yigit/alumniconnect/internal/app/models/dto"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1 // Pages are 1-based
)

// NormalizePage clamps page and size into their valid ranges.
func NormalizePage(page, size int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return page, size
}

// sliceIndices returns the bounds of page within a slice of totalItems.
// Pages past the end yield an empty range.
func sliceIndices(page, size, totalItems int) (start, end int) {
	page, size = NormalizePage(page, size)
	if page-1 > totalItems/size {
		return totalItems, totalItems
	}

	start = (page - 1) * size
	end = start + size

	if start >= totalItems {
		return totalItems, totalItems
	}
	if end > totalItems {
		end = totalItems
	}
	return start, end
}

// totalPages returns how many pages of size hold totalItems. An empty list still has one page.
func totalPages(totalItems, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if totalItems == 0 {
		return 1
	}
	return (totalItems + size - 1) / size
}

// Paginate cuts one page out of items.
func Paginate[T any](items []T, page, size int) dto.Page[T] {
	page, size = NormalizePage(page, size)
	start, end := sliceIndices(page, size, len(items))

	out := make([]T, end-start)
	copy(out, items[start:end])
	return dto.Page[T]{
		Items:      out,
		Total:      len(items),
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages(len(items), size),
	}
}
