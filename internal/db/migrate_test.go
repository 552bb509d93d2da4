package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testSeed() Seed {
	return Seed{AdminLogin: "admin", AdminEmail: "admin@example.com", AdminPasswordHash: "$2a$10$notarealhash"}
}

// openTestDB opens a fresh SQLite database with foreign keys enforced.
func openTestDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "shop.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := Open("sqlite", dsn, PoolOptions{MaxOpen: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db, dsn
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestOpen_RejectsBadConfiguration(t *testing.T) {
	_, err := Open("sqlite", "", PoolOptions{})
	assert.ErrorIs(t, err, ErrEmptyDSN)

	_, err = Open("oracle", "whatever", PoolOptions{})
	assert.Error(t, err)
}

func TestBootstrap_CreatesSchemaAndSeeds(t *testing.T) {
	db, _ := openTestDB(t)
	require.NoError(t, Bootstrap(context.Background(), db, testSeed()))

	for _, model := range Tables() {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
	}
	assert.Equal(t, int64(len(DefaultColours)), countRows(t, db, &Colour{}))
	assert.Equal(t, int64(len(DefaultCategories)), countRows(t, db, &Category{}))

	var admin SiteUser
	require.NoError(t, db.Where("login = ?", "admin").Take(&admin).Error)
	assert.Equal(t, "A", admin.UserType)
	assert.Equal(t, "$2a$10$notarealhash", admin.PasswordHash)
	assert.False(t, admin.IsDisabled)
	assert.Nil(t, admin.FirstName)
}

func TestBootstrap_Idempotent(t *testing.T) {
	db, dsn := openTestDB(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, Bootstrap(context.Background(), db, testSeed()), "iteration %d", i)
	}

	// A second process start against the same file behaves the same way
	reopened, err := Open("sqlite", dsn, PoolOptions{})
	require.NoError(t, err)
	defer Close(reopened)
	require.NoError(t, Bootstrap(context.Background(), reopened, testSeed()))

	assert.Equal(t, int64(1), countRows(t, db, &SiteUser{}))
	assert.Equal(t, int64(len(DefaultColours)), countRows(t, db, &Colour{}))
	assert.Equal(t, int64(len(DefaultCategories)), countRows(t, db, &Category{}))
}

func TestBootstrap_SkipsAdminWhenUsersExist(t *testing.T) {
	db, _ := openTestDB(t)
	require.NoError(t, Bootstrap(context.Background(), db, testSeed()))

	other := testSeed()
	other.AdminLogin = "second"
	require.NoError(t, Bootstrap(context.Background(), db, other))

	var n int64
	require.NoError(t, db.Model(&SiteUser{}).Where("login = ?", "second").Count(&n).Error)
	assert.Zero(t, n)
}

func TestBootstrap_EnforcesForeignKeys(t *testing.T) {
	db, _ := openTestDB(t)
	require.NoError(t, Bootstrap(context.Background(), db, testSeed()))

	err := db.Omit("Supplier", "Category").Create(&Cap{
		Name: "Orphan", Price: 10, Description: "d", ImageURL: "i.png", SupplierID: 999, CategoryID: 999,
	}).Error
	assert.Error(t, err)
}
