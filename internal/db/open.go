package db

import (
	"errors" // Sentinel errors
	"fmt"    // Error wrapping
	"time"   // Pool and logger durations

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger interface
)

// ErrEmptyDSN is returned when no connection string was configured
var ErrEmptyDSN = errors.New("db: empty connection string")

// PoolOptions sizes the connection pool
type PoolOptions struct {
	MaxOpen     int           // Maximum open connections, 0 means unlimited
	MaxIdle     int           // Maximum idle connections
	MaxLifetime time.Duration // Recycle connections after this long, 0 keeps them
}

// Open connects to the database named by driver and dsn, verifies it is
// reachable and configures the pool. Callers treat any error as fatal.
func Open(driver, dsn string, pool PoolOptions) (*gorm.DB, error) {
	if dsn == "" {
		return nil, ErrEmptyDSN
	}
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn) // MySQL in production
	case "sqlite":
		dialector = sqlite.Open(dsn) // SQLite for local runs and tests
	default:
		return nil, fmt.Errorf("db: unsupported driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger()})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB() // Underlying pool
	if err != nil {
		return nil, err
	}
	if pool.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpen)
	}
	if pool.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdle)
	}
	if pool.MaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.MaxLifetime)
	}
	// Unreachable databases fail here rather than on the first request
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Close releases the pool behind db
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newLogger routes GORM's warnings and slow queries through logrus
func newLogger() logger.Interface {
	return logger.New(logrus.StandardLogger(), logger.Config{
		SlowThreshold:             200 * time.Millisecond, // Log statements slower than this
		LogLevel:                  logger.Warn,            // Errors and slow queries only
		IgnoreRecordNotFoundError: true,                   // Not found is a normal outcome
		ParameterizedQueries:      true,                   // Never print bound values
	})
}
