package api

import (
	"context"  // Lookup context
	"net/http" // HTTP status codes

	"capshop/internal/domain" // Typed records
	"capshop/internal/store"  // Data access

	"github.com/gin-gonic/gin" // Gin web framework
)

// CapRequest is the body of a cap save
type CapRequest struct {
	Name        string  `json:"name" binding:"required,max=40"`         // Product name
	Price       float64 `json:"price" binding:"required,gt=0"`          // Unit price
	Description string  `json:"description" binding:"required,max=512"` // Long description
	ImageURL    string  `json:"image_url" binding:"required,max=96"`    // Image reference
	SupplierID  int64   `json:"supplier_id" binding:"required,gt=0"`    // Existing supplier
	CategoryID  int64   `json:"category_id" binding:"required,gt=0"`    // Existing category
	ColourIDs   []int64 `json:"colour_ids" binding:"dive,gt=0"`         // Replaces the colour set
}

func (r CapRequest) fields() domain.CapFields {
	return domain.CapFields{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		SupplierID:  r.SupplierID,
		CategoryID:  r.CategoryID,
		ColourIDs:   r.ColourIDs,
	}
}

// ListCapsHandler returns one page of caps, optionally within ?category=
func ListCapsHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categoryID *int64 // Optional category filter
		if raw := c.Query("category"); raw != "" {
			id, ok := ParseID(raw)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			categoryID = &id
		}
		p := pageParams(c)
		caps, total, err := s.ListCapsPage(c.Request.Context(), categoryID, p)
		if err != nil {
			internalError(c, "Failed to fetch caps", err)
			return
		}
		respondPage(c, "caps", p, caps, total)
	}
}

// GetCapHandler returns one cap with its colours
func GetCapHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "Cap")
		if !ok {
			return
		}
		cp, err := s.GetCapByID(c.Request.Context(), id)
		if err != nil {
			internalError(c, "Failed to fetch cap", err)
			return
		}
		if cp == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cap not found"})
			return
		}
		c.JSON(http.StatusOK, cp)
	}
}

// SaveCapHandler updates the cap named by :id, or adds one. Unknown
// supplier, category or colour ids surface as a failed write.
func SaveCapHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CapRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		saver{
			entity: "cap",
			exists: func(ctx context.Context, id int64) (bool, error) {
				cp, err := s.GetCapByID(ctx, id)
				return cp != nil, err
			},
			update: func(ctx context.Context, id int64) error {
				return s.UpdateCap(ctx, id, req.fields())
			},
			add: func(ctx context.Context) (int64, error) {
				return s.AddCap(ctx, req.fields())
			},
		}.save(c, c.Param("id"))
	}
}
