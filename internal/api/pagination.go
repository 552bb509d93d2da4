package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"capshop/internal/store" // Page window

	"github.com/gin-gonic/gin" // Gin web framework
)

const (
	defaultPageSize = 20  // Page size when none is given
	maxPageSize     = 100 // Upper bound for page_size
)

// pageParams reads page and page_size from the query string. Invalid values
// fall back to the defaults.
func pageParams(c *gin.Context) store.Page {
	page := 1                   // Default page number
	pageSize := defaultPageSize // Default page size
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	// Check and set page size within limits
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= maxPageSize {
			pageSize = v // Set page size
		}
	}
	return store.Page{Number: page, Size: pageSize}
}

// respondPage writes one page of items under key together with the paging totals
func respondPage[T any](c *gin.Context, key string, p store.Page, items []T, total int64) {
	size := int64(p.Size)
	totalPages := (total + size - 1) / size // Calculate total pages
	c.JSON(http.StatusOK, gin.H{
		key:           items,      // Items on this page
		"page":        p.Number,   // Current page
		"page_size":   p.Size,     // Page size
		"total":       total,      // Total number of items
		"total_pages": totalPages, // Total pages
	})
}
