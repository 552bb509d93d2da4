// Package store is the data-access gateway of the back office. Every
// operation checks out one pooled connection, runs parameterized
// statements against it and hands the connection back before returning.
//
// Reads that match no row return a nil record and a nil error. Driver,
// connectivity and constraint errors are returned to the caller as-is.
package store

import (
	"context" // Per-operation contexts
	"errors"  // errors.Is on GORM sentinels
	"time"    // Operation timeout

	"capshop/internal/db" // Pool lifecycle

	"gorm.io/gorm" // GORM ORM library
)

// Options tunes a Store
type Options struct {
	QueryTimeout time.Duration // Upper bound for one operation, 0 disables it
}

// Store owns the connection pool and exposes per-entity operations
type Store struct {
	db      *gorm.DB
	timeout time.Duration
}

// New wraps an opened and bootstrapped database handle
func New(gdb *gorm.DB, opts Options) *Store {
	return &Store{db: gdb, timeout: opts.QueryTimeout}
}

// Close releases the pool. The Store must not be used afterwards.
func (s *Store) Close() error {
	return db.Close(s.db)
}

// withConn runs fn on a single connection checked out of the pool. The
// connection goes back to the pool on every return path.
func (s *Store) withConn(ctx context.Context, fn func(conn *gorm.DB) error) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		// A Session keeps chained queries on conn from sharing conditions
		return fn(conn.Session(&gorm.Session{}))
	})
}

// withTx runs fn inside a transaction on a single checked-out connection
func (s *Store) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Transaction(fn)
	})
}

// absent maps GORM's not-found error to an empty result
func absent(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func nullable(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
