package api

import (
	"context"  // Lookup context
	"net/http" // HTTP status codes

	"capshop/internal/auth"   // Password hashing
	"capshop/internal/domain" // Typed records
	"capshop/internal/store"  // Data access

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// CustomerSaveRequest is the body of an admin customer save. The password
// is only read when the save adds a new customer.
type CustomerSaveRequest struct {
	CustomerRequest
	Password string `json:"password" binding:"omitempty,min=8,max=64"` // Required on add only
}

// PasswordRequest is the body of a password change
type PasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=64"` // New plaintext password
}

// ListCustomersHandler returns one page of customers. active=true hides
// disabled accounts.
func ListCustomersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParams(c)
		activeOnly := c.Query("active") == "true"
		customers, total, err := s.ListCustomersPage(c.Request.Context(), activeOnly, p)
		if err != nil {
			internalError(c, "Failed to fetch customers", err)
			return
		}
		respondPage(c, "customers", p, customers, total)
	}
}

// GetCustomerHandler returns one customer
func GetCustomerHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := loadCustomer(c, s)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// SaveCustomerHandler updates the customer named by :id, or adds one. An
// update never changes the password.
func SaveCustomerHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CustomerSaveRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		saver{
			entity: "customer",
			exists: func(ctx context.Context, id int64) (bool, error) {
				customer, err := s.GetCustomerByID(ctx, id)
				return customer != nil, err
			},
			update: func(ctx context.Context, id int64) error {
				return s.UpdateCustomer(ctx, id, req.profile())
			},
			add: func(ctx context.Context) (int64, error) {
				if req.Password == "" {
					return 0, errPasswordRequired
				}
				hash, err := auth.HashPassword(req.Password)
				if err != nil {
					return 0, err
				}
				return s.AddCustomer(ctx, domain.NewCustomer{CustomerProfile: req.profile(), PasswordHash: hash})
			},
		}.save(c, c.Param("id"))
	}
}

// SetCustomerPasswordHandler replaces a customer's password
func SetCustomerPasswordHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		customer, ok := loadCustomer(c, s)
		if !ok {
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			internalError(c, "Failed to hash password", err)
			return
		}
		if err := s.UpdateCustomerPassword(c.Request.Context(), customer.ID, hash); err != nil {
			internalError(c, "Failed to update password", err)
			return
		}
		logrus.WithField("customer_id", customer.ID).Info("Customer password changed")
		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}

// DisableCustomerHandler soft-deletes a customer
func DisableCustomerHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := loadCustomer(c, s)
		if !ok {
			return
		}
		if err := s.DisableCustomer(c.Request.Context(), customer.ID); err != nil {
			internalError(c, "Failed to disable customer", err)
			return
		}
		logrus.WithField("customer_id", customer.ID).Info("Customer disabled")
		c.JSON(http.StatusOK, gin.H{"message": "Customer disabled"})
	}
}

// loadCustomer resolves :id and writes the 404 or 500 itself
func loadCustomer(c *gin.Context, s *store.Store) (*domain.Customer, bool) {
	id, ok := pathID(c, "Customer")
	if !ok {
		return nil, false
	}
	customer, err := s.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		internalError(c, "Failed to fetch customer", err)
		return nil, false
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return nil, false
	}
	return customer, true
}
