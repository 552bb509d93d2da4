package api

import (
	"net/http" // HTTP status codes

	"capshop/internal/domain"     // Typed records
	"capshop/internal/middleware" // Current session
	"capshop/internal/store"      // Data access

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// OrderItemRequest is one line of a new order
type OrderItemRequest struct {
	CapID    int64 `json:"cap_id" binding:"required,gt=0"`    // Existing cap
	ColourID int64 `json:"colour_id" binding:"required,gt=0"` // Existing colour
	Quantity int   `json:"quantity" binding:"required,min=1"` // Number of caps
}

// OrderRequest is the body of a new order
type OrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"` // At least one line
}

// StatusRequest is the body of an order status change
type StatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required,oneof=waiting placed fulfilled"` // New status
}

// ListOrdersHandler returns one page of every order
func ListOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParams(c)
		orders, total, err := s.ListOrdersPage(c.Request.Context(), nil, p)
		if err != nil {
			internalError(c, "Failed to fetch orders", err)
			return
		}
		respondPage(c, "orders", p, orders, total)
	}
}

// GetOrderHandler returns one order with its items
func GetOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := loadOrder(c, s)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// SetOrderStatusHandler moves an order to a new status
func SetOrderStatusHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		order, ok := loadOrder(c, s)
		if !ok {
			return
		}
		if err := s.UpdateOrderStatus(c.Request.Context(), order.ID, req.Status); err != nil {
			internalError(c, "Failed to update order", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"order_id": order.ID,     // Order
			"from":     order.Status, // Previous status
			"to":       req.Status,   // New status
		}).Info("Order status changed")
		c.JSON(http.StatusOK, gin.H{"id": order.ID, "status": req.Status})
	}
}

// MyOrdersHandler returns the orders of the logged in customer
func MyOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := middleware.CurrentSession(c)
		p := pageParams(c)
		orders, total, err := s.ListOrdersPage(c.Request.Context(), &session.UserID, p)
		if err != nil {
			internalError(c, "Failed to fetch orders", err)
			return
		}
		respondPage(c, "orders", p, orders, total)
	}
}

// PlaceOrderHandler creates a waiting order for the logged in customer
func PlaceOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		session, _ := middleware.CurrentSession(c)
		items := make([]domain.OrderItem, len(req.Items))
		for i, it := range req.Items {
			items[i] = domain.OrderItem{CapID: it.CapID, ColourID: it.ColourID, Quantity: it.Quantity}
		}
		id, err := s.AddOrder(c.Request.Context(), session.UserID, items)
		if err != nil {
			// Unknown cap or colour, or a repeated line
			writeFailed(c, "Failed to place order", err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"order_id": id,             // New order
			"user_id":  session.UserID, // Owner
			"lines":    len(items),     // Item count
		}).Info("Order placed")
		c.JSON(http.StatusCreated, gin.H{"id": id, "status": domain.OrderStatusWaiting})
	}
}

func loadOrder(c *gin.Context, s *store.Store) (*domain.Order, bool) {
	id, ok := pathID(c, "Order")
	if !ok {
		return nil, false
	}
	order, err := s.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		internalError(c, "Failed to fetch order", err)
		return nil, false
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return nil, false
	}
	return order, true
}
