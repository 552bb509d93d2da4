package api

import (
	"errors"   // errors.Is on auth sentinels
	"net/http" // HTTP status codes

	"capshop/internal/auth"       // Sessions and password hashing
	"capshop/internal/domain"     // User variants
	"capshop/internal/middleware" // Bearer token extraction
	"capshop/internal/store"      // Data access

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Request struct for login
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`    // Login must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token    string          `json:"token"`     // JWT token
	UserID   int64           `json:"user_id"`   // Logged in user
	UserType domain.UserType `json:"user_type"` // Customer or administrator
}

// CustomerRequest carries a customer's profile. At least one of the three
// numbers must be present.
type CustomerRequest struct {
	Login         string `json:"login" binding:"required,min=3,max=64"`                                       // Unique login
	Email         string `json:"email" binding:"required,email,max=100"`                                      // Email address
	FirstName     string `json:"first_name" binding:"required,max=32"`                                        // First name
	LastName      string `json:"last_name" binding:"required,max=32"`                                         // Last name
	HomeNumber    string `json:"home_number" binding:"required_without_all=WorkNumber MobileNumber,landline"` // Home number
	WorkNumber    string `json:"work_number" binding:"required_without_all=HomeNumber MobileNumber,landline"` // Work number
	MobileNumber  string `json:"mobile_number" binding:"required_without_all=HomeNumber WorkNumber,mobile"`   // Mobile number
	StreetAddress string `json:"street_address" binding:"required,max=64"`                                    // Street address
	Suburb        string `json:"suburb" binding:"required,max=24"`                                            // Suburb
	City          string `json:"city" binding:"required,max=16"`                                              // City
}

func (r CustomerRequest) profile() domain.CustomerProfile {
	return domain.CustomerProfile{
		Login:         r.Login,
		Email:         r.Email,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		HomeNumber:    r.HomeNumber,
		WorkNumber:    r.WorkNumber,
		MobileNumber:  r.MobileNumber,
		StreetAddress: r.StreetAddress,
		Suburb:        r.Suburb,
		City:          r.City,
	}
}

// Request struct for registration
type RegisterRequest struct {
	CustomerRequest
	Password string `json:"password" binding:"required,min=8,max=64"` // Plaintext, hashed before storage
}

// LoginHandler authenticates one user variant and returns a session token
func LoginHandler(a *auth.Authenticator, userType domain.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		ctx := c.Request.Context()
		token, session, err := a.Login(ctx, userType, req.Login, req.Password)
		if err != nil {
			// A failed login ends whatever session the caller still holds
			if prev := middleware.BearerToken(c); prev != "" {
				if aerr := a.Abandon(ctx, prev); aerr != nil {
					logrus.WithField("error", aerr.Error()).Warn("Failed to abandon session")
				}
			}
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			internalError(c, "Login failed", err)
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token, UserID: session.UserID, UserType: session.UserType})
	}
}

// LogoutHandler ends the session behind the bearer token
func LogoutHandler(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.Abandon(c.Request.Context(), middleware.BearerToken(c)); err != nil {
			internalError(c, "Failed to end session", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// RegisterHandler creates a customer account from the public sign-up form
func RegisterHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		// Hash the password before it reaches the store
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			internalError(c, "Failed to hash password", err)
			return
		}
		id, err := s.AddCustomer(c.Request.Context(), domain.NewCustomer{
			CustomerProfile: req.profile(),
			PasswordHash:    hash,
		})
		if err != nil {
			// Duplicate login is the usual cause
			writeFailed(c, "Login already exists", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"customer_id": id,        // New customer
			"login":       req.Login, // Chosen login
		}).Info("Customer registered")
		c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Customer registered successfully"})
	}
}
