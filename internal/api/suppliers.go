package api

import (
	"context"  // Lookup context
	"net/http" // HTTP status codes

	"capshop/internal/store" // Data access

	"github.com/gin-gonic/gin" // Gin web framework
)

// SupplierRequest is the body of a supplier save
type SupplierRequest struct {
	Name          string `json:"name" binding:"required,max=32"`             // Supplier name
	ContactNumber string `json:"contact_number" binding:"required,landline"` // Contact phone number
	Email         string `json:"email" binding:"required,email,max=64"`      // Email address
}

// ListSuppliersHandler returns one page of suppliers
func ListSuppliersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParams(c)
		suppliers, total, err := s.ListSuppliersPage(c.Request.Context(), p)
		if err != nil {
			internalError(c, "Failed to fetch suppliers", err)
			return
		}
		respondPage(c, "suppliers", p, suppliers, total)
	}
}

// GetSupplierHandler returns one supplier
func GetSupplierHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "Supplier")
		if !ok {
			return
		}
		supplier, err := s.GetSupplierByID(c.Request.Context(), id)
		if err != nil {
			internalError(c, "Failed to fetch supplier", err)
			return
		}
		if supplier == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusOK, supplier)
	}
}

// SaveSupplierHandler updates the supplier named by :id, or adds one
func SaveSupplierHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SupplierRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		saver{
			entity: "supplier",
			exists: func(ctx context.Context, id int64) (bool, error) {
				supplier, err := s.GetSupplierByID(ctx, id)
				return supplier != nil, err
			},
			update: func(ctx context.Context, id int64) error {
				return s.UpdateSupplier(ctx, id, req.Name, req.ContactNumber, req.Email)
			},
			add: func(ctx context.Context) (int64, error) {
				return s.AddSupplier(ctx, req.Name, req.ContactNumber, req.Email)
			},
		}.save(c, c.Param("id"))
	}
}
