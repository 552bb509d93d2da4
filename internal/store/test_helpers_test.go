package store

import (
	"context"
	"path/filepath"
	"testing"

	"capshop/internal/db"
	"capshop/internal/domain"

	"github.com/stretchr/testify/require"
)

const seededAdminLogin = "admin"

// createTestStore opens a bootstrapped SQLite store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "shop.db") + "?_foreign_keys=on&_busy_timeout=5000"
	gdb, err := db.Open("sqlite", dsn, db.PoolOptions{MaxOpen: 4})
	require.NoError(t, err)
	seed := db.Seed{AdminLogin: seededAdminLogin, AdminEmail: "admin@example.com", AdminPasswordHash: "seed-hash"}
	require.NoError(t, db.Bootstrap(context.Background(), gdb, seed))
	s := New(gdb, Options{})
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleCustomer(login string) domain.NewCustomer {
	return domain.NewCustomer{
		CustomerProfile: domain.CustomerProfile{
			Login:         login,
			Email:         login + "@x.com",
			FirstName:     "Jane",
			LastName:      "Doe",
			HomeNumber:    "092345678",
			WorkNumber:    "",
			MobileNumber:  "0211234567",
			StreetAddress: "1 Queen Street",
			Suburb:        "CBD",
			City:          "Auckland",
		},
		PasswordHash: "hash-" + login,
	}
}
