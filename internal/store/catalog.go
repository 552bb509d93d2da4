package store

import (
	"context" // Per-operation contexts

	"capshop/internal/db"     // Row models
	"capshop/internal/domain" // Typed records

	"gorm.io/gorm" // GORM ORM library
)

// ListCategories returns every category
func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, _, err := s.ListCategoriesPage(ctx, Page{})
	return categories, err
}

// ListCategoriesPage returns one page of categories and the total count
func (s *Store) ListCategoriesPage(ctx context.Context, p Page) ([]domain.Category, int64, error) {
	var rows []db.Category
	var total int64
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return findPage(conn.Model(&db.Category{}), p, &total, &rows)
	})
	if err != nil {
		return nil, 0, err
	}
	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = domain.Category{ID: row.ID, Name: row.Name}
	}
	return categories, total, nil
}

// GetCategoryByID returns the category with id, or nil if there is none
func (s *Store) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	var row db.Category
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Where("id = ?", id).Take(&row).Error
	})
	if err != nil {
		return nil, absent(err)
	}
	return &domain.Category{ID: row.ID, Name: row.Name}, nil
}

// AddCategory inserts a category and returns the assigned id
func (s *Store) AddCategory(ctx context.Context, name string) (int64, error) {
	row := db.Category{Name: name}
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Create(&row).Error
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// UpdateCategory renames category id
func (s *Store) UpdateCategory(ctx context.Context, id int64, name string) error {
	return s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Model(&db.Category{}).Where("id = ?", id).Update("name", name).Error
	})
}

// ListColours returns every colour
func (s *Store) ListColours(ctx context.Context) ([]domain.Colour, error) {
	colours, _, err := s.ListColoursPage(ctx, Page{})
	return colours, err
}

// ListColoursPage returns one page of colours and the total count
func (s *Store) ListColoursPage(ctx context.Context, p Page) ([]domain.Colour, int64, error) {
	var rows []db.Colour
	var total int64
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return findPage(conn.Model(&db.Colour{}), p, &total, &rows)
	})
	if err != nil {
		return nil, 0, err
	}
	colours := make([]domain.Colour, len(rows))
	for i, row := range rows {
		colours[i] = domain.Colour{ID: row.ID, Name: row.Name}
	}
	return colours, total, nil
}

// GetColourByID returns the colour with id, or nil if there is none
func (s *Store) GetColourByID(ctx context.Context, id int64) (*domain.Colour, error) {
	var row db.Colour
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Where("id = ?", id).Take(&row).Error
	})
	if err != nil {
		return nil, absent(err)
	}
	return &domain.Colour{ID: row.ID, Name: row.Name}, nil
}

// AddColour inserts a colour and returns the assigned id
func (s *Store) AddColour(ctx context.Context, name string) (int64, error) {
	row := db.Colour{Name: name}
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Create(&row).Error
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// UpdateColour renames colour id
func (s *Store) UpdateColour(ctx context.Context, id int64, name string) error {
	return s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Model(&db.Colour{}).Where("id = ?", id).Update("name", name).Error
	})
}
