package store

import (
	"math" // Offset clamp

	"gorm.io/gorm" // GORM ORM library
)

// Page selects one window of a list ordered by id. The zero Page selects
// every row.
type Page struct {
	Number int // 1-based page number
	Size   int // Rows per page, 0 means no limit
}

// Offset returns the number of rows before the page. It saturates instead
// of overflowing for page numbers far past the end.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt32/p.Size {
		return math.MaxInt32
	}
	return (p.Number - 1) * p.Size
}

// findPage counts the rows query matches and loads the window p selects
// into dest. query must carry its Model and filters.
func findPage(query *gorm.DB, p Page, total *int64, dest any) error {
	// Fetch total count of rows matching the filters
	if err := query.Count(total).Error; err != nil {
		return err
	}
	if p.Size > 0 {
		query = query.Offset(p.Offset()).Limit(p.Size) // Apply offset and limit for pagination
	}
	return query.Order("id").Find(dest).Error
}
