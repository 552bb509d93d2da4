package db

import (
	"context" // Context for bootstrap statements

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// DefaultColours are inserted when the Colour table is empty
var DefaultColours = []string{"Black", "White", "Blue", "Green", "Red", "Pink", "Yellow", "Orange", "Grey"}

// DefaultCategories are inserted when the Category table is empty
var DefaultCategories = []string{"Business Caps", "Women's Caps", "Men's Caps", "Children's Caps"}

// Seed describes the administrator created on an empty user table
type Seed struct {
	AdminLogin        string // Login of the default administrator
	AdminEmail        string // Email of the default administrator
	AdminPasswordHash string // Pre-hashed password, never plaintext
}

// Bootstrap creates any missing table and inserts the seed rows. Every step
// is guarded by an existence check, so running it on each start is safe.
func Bootstrap(ctx context.Context, db *gorm.DB, seed Seed) error {
	db = db.WithContext(ctx)
	migrator := db.Migrator()
	// Create tables in dependency order so foreign key targets exist first
	for _, model := range Tables() {
		if migrator.HasTable(model) {
			continue // Table already present
		}
		if err := migrator.CreateTable(model); err != nil {
			logrus.WithFields(logrus.Fields{
				"table": tableName(db, model), // Table being created
				"error": err.Error(),          // Error message
			}).Error("Failed to create table")
			return err
		}
		logrus.WithField("table", tableName(db, model)).Info("Created table")
	}

	colours := make([]Colour, len(DefaultColours))
	for i, name := range DefaultColours {
		colours[i] = Colour{Name: name}
	}
	if err := seedIfEmpty(db, &Colour{}, &colours); err != nil {
		return err
	}

	categories := make([]Category, len(DefaultCategories))
	for i, name := range DefaultCategories {
		categories[i] = Category{Name: name}
	}
	if err := seedIfEmpty(db, &Category{}, &categories); err != nil {
		return err
	}

	admin := SiteUser{
		Login:        seed.AdminLogin,        // Default admin login
		PasswordHash: seed.AdminPasswordHash, // Pre-hashed password
		UserType:     "A",                    // Administrator discriminator
		EmailAddress: seed.AdminEmail,        // Default admin email
	}
	return seedIfEmpty(db, &SiteUser{}, &admin)
}

// seedIfEmpty inserts rows into model's table when it holds no rows. The
// count and the insert share one transaction.
func seedIfEmpty(db *gorm.DB, model, rows any) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(model).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil // Already seeded
		}
		if err := tx.Create(rows).Error; err != nil {
			return err
		}
		logrus.WithField("table", tableName(tx, model)).Info("Inserted seed rows")
		return nil
	})
}

func tableName(db *gorm.DB, model any) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return "?"
	}
	return stmt.Schema.Table
}
