package api

import (
	"capshop/internal/auth"       // Sessions
	"capshop/internal/domain"     // User variants
	"capshop/internal/middleware" // Session and role checks
	"capshop/internal/store"      // Data access

	"github.com/gin-gonic/gin" // Gin web framework
)

// NewRouter wires every back office route onto a fresh gin engine
func NewRouter(s *store.Store, a *auth.Authenticator) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, err
	}

	// Auth routes
	r.POST("/login/admin", LoginHandler(a, domain.UserTypeAdministrator)) // Administrator login
	r.POST("/login/customer", LoginHandler(a, domain.UserTypeCustomer))   // Customer login
	r.POST("/logout", LogoutHandler(a))                                   // End session
	r.POST("/customers", RegisterHandler(s))                              // Customer sign-up

	// Admin routes (session + administrator only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.SessionAuthMiddleware(a), middleware.AdminOnlyMiddleware(s))

	adminGroup.GET("/suppliers", ListSuppliersHandler(s))    // List suppliers
	adminGroup.GET("/suppliers/:id", GetSupplierHandler(s))  // Supplier by id
	adminGroup.PUT("/suppliers/:id", SaveSupplierHandler(s)) // Update or add supplier

	adminGroup.GET("/categories", ListCategoriesHandler(s))   // List categories
	adminGroup.GET("/categories/:id", GetCategoryHandler(s))  // Category by id
	adminGroup.PUT("/categories/:id", SaveCategoryHandler(s)) // Update or add category

	adminGroup.GET("/colours", ListColoursHandler(s))    // List colours
	adminGroup.GET("/colours/:id", GetColourHandler(s))  // Colour by id
	adminGroup.PUT("/colours/:id", SaveColourHandler(s)) // Update or add colour

	adminGroup.GET("/customers", ListCustomersHandler(s))                    // List customers
	adminGroup.GET("/customers/:id", GetCustomerHandler(s))                  // Customer by id
	adminGroup.PUT("/customers/:id", SaveCustomerHandler(s))                 // Update or add customer
	adminGroup.PUT("/customers/:id/password", SetCustomerPasswordHandler(s)) // Change password
	adminGroup.DELETE("/customers/:id", DisableCustomerHandler(s))           // Soft delete

	adminGroup.GET("/administrators", ListAdministratorsHandler(s))                    // List administrators
	adminGroup.GET("/administrators/:id", GetAdministratorHandler(s))                  // Administrator by id
	adminGroup.PUT("/administrators/:id", SaveAdministratorHandler(s))                 // Update or add administrator
	adminGroup.PUT("/administrators/:id/password", SetAdministratorPasswordHandler(s)) // Change password

	adminGroup.GET("/caps", ListCapsHandler(s))    // List caps
	adminGroup.GET("/caps/:id", GetCapHandler(s))  // Cap by id
	adminGroup.PUT("/caps/:id", SaveCapHandler(s)) // Update or add cap

	adminGroup.GET("/orders", ListOrdersHandler(s))                // List orders
	adminGroup.GET("/orders/:id", GetOrderHandler(s))              // Order by id
	adminGroup.PUT("/orders/:id/status", SetOrderStatusHandler(s)) // Change status

	// Customer routes (session + customer only)
	meGroup := r.Group("/me")
	meGroup.Use(middleware.SessionAuthMiddleware(a), middleware.CustomerOnlyMiddleware(s))
	meGroup.GET("/orders", MyOrdersHandler(s))    // Own orders
	meGroup.POST("/orders", PlaceOrderHandler(s)) // New order

	return r, nil
}
