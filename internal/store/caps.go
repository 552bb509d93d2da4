package store

import (
	"context" // Per-operation contexts

	"capshop/internal/db"     // Row models
	"capshop/internal/domain" // Typed records

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Association clauses
)

// ListCaps returns every cap with its colours
func (s *Store) ListCaps(ctx context.Context) ([]domain.Cap, error) {
	caps, _, err := s.ListCapsPage(ctx, nil, Page{})
	return caps, err
}

// ListCapsByCategory returns the caps of one category
func (s *Store) ListCapsByCategory(ctx context.Context, categoryID int64) ([]domain.Cap, error) {
	caps, _, err := s.ListCapsPage(ctx, &categoryID, Page{})
	return caps, err
}

// ListCapsPage returns one page of caps with their colours and the total
// count. A non-nil categoryID restricts the list to that category.
func (s *Store) ListCapsPage(ctx context.Context, categoryID *int64, p Page) ([]domain.Cap, int64, error) {
	var rows []db.Cap
	var links []db.CapColour
	var total int64
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		query := conn.Model(&db.Cap{})
		if categoryID != nil {
			query = query.Where("categoryId = ?", *categoryID)
		}
		if err := findPage(query, p, &total, &rows); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		ids := make([]int64, len(rows))
		for i, row := range rows {
			ids[i] = row.ID
		}
		return conn.Where("capId IN ?", ids).Find(&links).Error
	})
	if err != nil {
		return nil, 0, err
	}
	colours := make(map[int64][]int64, len(rows)) // Colour ids per cap
	for _, link := range links {
		colours[link.CapID] = append(colours[link.CapID], link.ColourID)
	}
	caps := make([]domain.Cap, len(rows))
	for i, row := range rows {
		caps[i] = toCap(row, colours[row.ID])
	}
	return caps, total, nil
}

// GetCapByID returns the cap with id and its colours, or nil if there is none
func (s *Store) GetCapByID(ctx context.Context, id int64) (*domain.Cap, error) {
	var row db.Cap
	var colourIDs []int64
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		if err := conn.Where("id = ?", id).Take(&row).Error; err != nil {
			return err
		}
		return conn.Model(&db.CapColour{}).Where("capId = ?", id).Pluck("colourId", &colourIDs).Error
	})
	if err != nil {
		return nil, absent(err)
	}
	c := toCap(row, colourIDs)
	return &c, nil
}

// AddCap inserts a cap and its colour links in one transaction and
// returns the assigned id
func (s *Store) AddCap(ctx context.Context, f domain.CapFields) (int64, error) {
	row := db.Cap{
		Name:        f.Name,        // Product name
		Price:       f.Price,       // Unit price
		Description: f.Description, // Long description
		ImageURL:    f.ImageURL,    // Image reference
		SupplierID:  f.SupplierID,  // Foreign key to Supplier
		CategoryID:  f.CategoryID,  // Foreign key to Category
	}
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}
		return linkColours(tx, row.ID, f.ColourIDs)
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// UpdateCap overwrites the fields of cap id and replaces its colour set,
// in one transaction
func (s *Store) UpdateCap(ctx context.Context, id int64, f domain.CapFields) error {
	return s.withTx(ctx, func(tx *gorm.DB) error {
		err := tx.Model(&db.Cap{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"name":        f.Name,
				"price":       f.Price,
				"description": f.Description,
				"imageUrl":    f.ImageURL,
				"supplierId":  f.SupplierID,
				"categoryId":  f.CategoryID,
			}).Error
		if err != nil {
			return err
		}
		if err := tx.Where("capId = ?", id).Delete(&db.CapColour{}).Error; err != nil {
			return err
		}
		return linkColours(tx, id, f.ColourIDs)
	})
}

func linkColours(tx *gorm.DB, capID int64, colourIDs []int64) error {
	if len(colourIDs) == 0 {
		return nil
	}
	links := make([]db.CapColour, len(colourIDs))
	for i, colourID := range colourIDs {
		links[i] = db.CapColour{CapID: capID, ColourID: colourID}
	}
	return tx.Omit(clause.Associations).Create(&links).Error
}

func toCap(row db.Cap, colourIDs []int64) domain.Cap {
	if colourIDs == nil {
		colourIDs = []int64{}
	}
	return domain.Cap{
		ID:          row.ID,
		Name:        row.Name,
		Price:       row.Price,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		SupplierID:  row.SupplierID,
		CategoryID:  row.CategoryID,
		ColourIDs:   colourIDs,
	}
}
