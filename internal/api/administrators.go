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

// AdministratorRequest is the body of an administrator save
type AdministratorRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=64"`     // Unique login
	Email    string `json:"email" binding:"required,email,max=100"`    // Email address
	Password string `json:"password" binding:"omitempty,min=8,max=64"` // Required on add only
}

// ListAdministratorsHandler returns one page of administrators
func ListAdministratorsHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParams(c)
		admins, total, err := s.ListAdministratorsPage(c.Request.Context(), p)
		if err != nil {
			internalError(c, "Failed to fetch administrators", err)
			return
		}
		respondPage(c, "administrators", p, admins, total)
	}
}

// GetAdministratorHandler returns one administrator
func GetAdministratorHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := loadAdministrator(c, s)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, admin)
	}
}

// SaveAdministratorHandler updates the administrator named by :id, or adds one
func SaveAdministratorHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdministratorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		saver{
			entity: "administrator",
			exists: func(ctx context.Context, id int64) (bool, error) {
				admin, err := s.GetAdministratorByID(ctx, id)
				return admin != nil, err
			},
			update: func(ctx context.Context, id int64) error {
				return s.UpdateAdministrator(ctx, id, req.Login, req.Email)
			},
			add: func(ctx context.Context) (int64, error) {
				if req.Password == "" {
					return 0, errPasswordRequired
				}
				hash, err := auth.HashPassword(req.Password)
				if err != nil {
					return 0, err
				}
				return s.AddAdministrator(ctx, req.Login, req.Email, hash)
			},
		}.save(c, c.Param("id"))
	}
}

// SetAdministratorPasswordHandler replaces an administrator's password
func SetAdministratorPasswordHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		admin, ok := loadAdministrator(c, s)
		if !ok {
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			internalError(c, "Failed to hash password", err)
			return
		}
		if err := s.UpdateAdministratorPassword(c.Request.Context(), admin.ID, hash); err != nil {
			internalError(c, "Failed to update password", err)
			return
		}
		logrus.WithField("admin_id", admin.ID).Info("Administrator password changed")
		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}

func loadAdministrator(c *gin.Context, s *store.Store) (*domain.Administrator, bool) {
	id, ok := pathID(c, "Administrator")
	if !ok {
		return nil, false
	}
	admin, err := s.GetAdministratorByID(c.Request.Context(), id)
	if err != nil {
		internalError(c, "Failed to fetch administrator", err)
		return nil, false
	}
	if admin == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Administrator not found"})
		return nil, false
	}
	return admin, true
}
