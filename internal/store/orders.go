package store

import (
	"context" // Per-operation contexts

	"capshop/internal/db"     // Row models
	"capshop/internal/domain" // Typed records

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Association clauses
)

// AddOrder inserts a waiting order for userID together with its items,
// in one transaction, and returns the assigned id
func (s *Store) AddOrder(ctx context.Context, userID int64, items []domain.OrderItem) (int64, error) {
	row := db.CustomerOrder{UserID: userID, Status: string(domain.OrderStatusWaiting)}
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		lines := make([]db.OrderItem, len(items))
		for i, item := range items {
			lines[i] = db.OrderItem{
				OrderID:  row.ID,        // Owning order
				CapID:    item.CapID,    // Ordered cap
				ColourID: item.ColourID, // Ordered colour
				Quantity: item.Quantity, // Number of caps
			}
		}
		return tx.Omit(clause.Associations).Create(&lines).Error
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// GetOrderByID returns order id with its items, or nil if there is none
func (s *Store) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	var row db.CustomerOrder
	var lines []db.OrderItem
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		if err := conn.Where("id = ?", id).Take(&row).Error; err != nil {
			return err
		}
		return conn.Where("orderId = ?", id).Find(&lines).Error
	})
	if err != nil {
		return nil, absent(err)
	}
	order := toOrder(row, lines)
	return &order, nil
}

// ListOrders returns every order without items
func (s *Store) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, _, err := s.ListOrdersPage(ctx, nil, Page{})
	return orders, err
}

// ListOrdersForUser returns the orders owned by userID, without items
func (s *Store) ListOrdersForUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, _, err := s.ListOrdersPage(ctx, &userID, Page{})
	return orders, err
}

// ListOrdersPage returns one page of orders without items and the total
// count. A non-nil userID restricts the list to that user's orders.
func (s *Store) ListOrdersPage(ctx context.Context, userID *int64, p Page) ([]domain.Order, int64, error) {
	var rows []db.CustomerOrder
	var total int64
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		query := conn.Model(&db.CustomerOrder{})
		if userID != nil {
			query = query.Where("userId = ?", *userID)
		}
		return findPage(query, p, &total, &rows)
	})
	if err != nil {
		return nil, 0, err
	}
	orders := make([]domain.Order, len(rows))
	for i, row := range rows {
		orders[i] = toOrder(row, nil)
	}
	return orders, total, nil
}

// UpdateOrderStatus sets the status of order id
func (s *Store) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	return s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Model(&db.CustomerOrder{}).Where("id = ?", id).Update("status", string(status)).Error
	})
}

func toOrder(row db.CustomerOrder, lines []db.OrderItem) domain.Order {
	items := make([]domain.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = domain.OrderItem{CapID: line.CapID, ColourID: line.ColourID, Quantity: line.Quantity}
	}
	return domain.Order{
		ID:     row.ID,
		UserID: row.UserID,
		Status: domain.OrderStatus(row.Status),
		Items:  items,
	}
}
