package middleware

import (
	"context"  // Lookup context
	"net/http" // HTTP status codes

	"capshop/internal/domain" // User variants

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// AdministratorLookup resolves an administrator by id
type AdministratorLookup interface {
	GetAdministratorByID(ctx context.Context, id int64) (*domain.Administrator, error)
}

// CustomerLookup resolves a customer by id
type CustomerLookup interface {
	GetCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// AdminOnlyMiddleware lets a request through only when its session belongs
// to an administrator that still exists in the store
func AdminOnlyMiddleware(admins AdministratorLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := CurrentSession(c)
		// Check if a session was attached
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if session.UserType != domain.UserTypeAdministrator {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// Fetch the administrator on each request so removed accounts lose access
		admin, err := admins.GetAdministratorByID(c.Request.Context(), session.UserID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": session.UserID, // User ID
				"error":   err.Error(),    // Error message
			}).Error("Failed to load administrator")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check access"})
			return
		}
		if admin == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CustomerOnlyMiddleware lets a request through only for sessions of a
// customer that still exists and is not disabled
func CustomerOnlyMiddleware(customers CustomerLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if session.UserType != domain.UserTypeCustomer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Customer access required"})
			return
		}
		// Disabling a customer ends access for sessions opened before it
		customer, err := customers.GetCustomerByID(c.Request.Context(), session.UserID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": session.UserID, // User ID
				"error":   err.Error(),    // Error message
			}).Error("Failed to load customer")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check access"})
			return
		}
		if customer == nil || customer.IsDisabled {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Customer access required"})
			return
		}
		c.Next()
	}
}
