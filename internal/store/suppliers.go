package store

import (
	"context" // Per-operation contexts

	"capshop/internal/db"     // Row models
	"capshop/internal/domain" // Typed records

	"gorm.io/gorm" // GORM ORM library
)

// ListSuppliers returns every supplier
func (s *Store) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, _, err := s.ListSuppliersPage(ctx, Page{})
	return suppliers, err
}

// ListSuppliersPage returns one page of suppliers and the total count
func (s *Store) ListSuppliersPage(ctx context.Context, p Page) ([]domain.Supplier, int64, error) {
	var rows []db.Supplier
	var total int64
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return findPage(conn.Model(&db.Supplier{}), p, &total, &rows)
	})
	if err != nil {
		return nil, 0, err
	}
	suppliers := make([]domain.Supplier, len(rows))
	for i, row := range rows {
		suppliers[i] = toSupplier(row)
	}
	return suppliers, total, nil
}

// GetSupplierByID returns the supplier with id, or nil if there is none
func (s *Store) GetSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	var row db.Supplier
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Where("id = ?", id).Take(&row).Error
	})
	if err != nil {
		return nil, absent(err)
	}
	supplier := toSupplier(row)
	return &supplier, nil
}

// AddSupplier inserts a supplier and returns the assigned id
func (s *Store) AddSupplier(ctx context.Context, name, contactNumber, email string) (int64, error) {
	row := db.Supplier{Name: name, ContactNumber: contactNumber, EmailAddress: email}
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Create(&row).Error
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// UpdateSupplier overwrites name, contact number and email of supplier id
func (s *Store) UpdateSupplier(ctx context.Context, id int64, name, contactNumber, email string) error {
	return s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Model(&db.Supplier{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"name":          name,
				"contactNumber": contactNumber,
				"emailAddress":  email,
			}).Error
	})
}

func toSupplier(row db.Supplier) domain.Supplier {
	return domain.Supplier{
		ID:            row.ID,
		Name:          row.Name,
		ContactNumber: row.ContactNumber,
		Email:         row.EmailAddress,
	}
}
