package api

import (
	"context"  // Lookup context
	"net/http" // HTTP status codes

	"capshop/internal/store" // Data access

	"github.com/gin-gonic/gin" // Gin web framework
)

// CategoryRequest is the body of a category save
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=40"` // Category name
}

// ColourRequest is the body of a colour save
type ColourRequest struct {
	Name string `json:"name" binding:"required,max=24"` // Colour name
}

// ListCategoriesHandler returns one page of categories
func ListCategoriesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParams(c)
		categories, total, err := s.ListCategoriesPage(c.Request.Context(), p)
		if err != nil {
			internalError(c, "Failed to fetch categories", err)
			return
		}
		respondPage(c, "categories", p, categories, total)
	}
}

// GetCategoryHandler returns one category
func GetCategoryHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "Category")
		if !ok {
			return
		}
		category, err := s.GetCategoryByID(c.Request.Context(), id)
		if err != nil {
			internalError(c, "Failed to fetch category", err)
			return
		}
		if category == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// SaveCategoryHandler updates the category named by :id, or adds one
func SaveCategoryHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		saver{
			entity: "category",
			exists: func(ctx context.Context, id int64) (bool, error) {
				category, err := s.GetCategoryByID(ctx, id)
				return category != nil, err
			},
			update: func(ctx context.Context, id int64) error {
				return s.UpdateCategory(ctx, id, req.Name)
			},
			add: func(ctx context.Context) (int64, error) {
				return s.AddCategory(ctx, req.Name)
			},
		}.save(c, c.Param("id"))
	}
}

// ListColoursHandler returns one page of colours
func ListColoursHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParams(c)
		colours, total, err := s.ListColoursPage(c.Request.Context(), p)
		if err != nil {
			internalError(c, "Failed to fetch colours", err)
			return
		}
		respondPage(c, "colours", p, colours, total)
	}
}

// GetColourHandler returns one colour
func GetColourHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "Colour")
		if !ok {
			return
		}
		colour, err := s.GetColourByID(c.Request.Context(), id)
		if err != nil {
			internalError(c, "Failed to fetch colour", err)
			return
		}
		if colour == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Colour not found"})
			return
		}
		c.JSON(http.StatusOK, colour)
	}
}

// SaveColourHandler updates the colour named by :id, or adds one
func SaveColourHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ColourRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		saver{
			entity: "colour",
			exists: func(ctx context.Context, id int64) (bool, error) {
				colour, err := s.GetColourByID(ctx, id)
				return colour != nil, err
			},
			update: func(ctx context.Context, id int64) error {
				return s.UpdateColour(ctx, id, req.Name)
			},
			add: func(ctx context.Context) (int64, error) {
				return s.AddColour(ctx, req.Name)
			},
		}.save(c, c.Param("id"))
	}
}
