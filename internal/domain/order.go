package domain

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusWaiting   OrderStatus = "waiting"   // Cart, not yet placed
	OrderStatusPlaced    OrderStatus = "placed"    // Submitted by the customer
	OrderStatusFulfilled OrderStatus = "fulfilled" // Shipped
)

// Valid reports whether s is a known status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusWaiting, OrderStatusPlaced, OrderStatusFulfilled:
		return true
	}
	return false
}

// Order Model
type Order struct {
	ID     int64       `json:"id"`      // Assigned by the store
	UserID int64       `json:"user_id"` // Foreign key to the owning user
	Status OrderStatus `json:"status"`  // waiting, placed or fulfilled
	Items  []OrderItem `json:"items"`   // Rows keyed by (order, cap, colour)
}

// OrderItem Model
type OrderItem struct {
	CapID    int64 `json:"cap_id"`    // Foreign key to Cap
	ColourID int64 `json:"colour_id"` // Foreign key to Colour
	Quantity int   `json:"quantity"`  // Number of caps
}
