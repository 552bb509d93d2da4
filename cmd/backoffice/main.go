package main

import (
	"os"   // Exit codes
	"time" // Connection lifetime

	"capshop/internal/config" // Environment configuration
	"capshop/internal/db"     // Pool and bootstrap

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"github.com/spf13/cobra"     // CLI commands
	"gorm.io/gorm"               // GORM ORM library
)

// Main entry point for the back office binary
func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "backoffice",
		Short:         "Cap shop back office",
		Long:          "Serves the cap shop back office API and manages its database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newHashPasswordCommand())
	return cmd
}

// setupLogger applies the configured level and format
func setupLogger(cfg *config.Config) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithField("level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// openDatabase connects and bootstraps the schema. Any failure is fatal:
// the process cannot do anything useful without its tables.
func openDatabase(cmd *cobra.Command, cfg *config.Config) *gorm.DB {
	gdb, err := db.Open(cfg.DBDriver, cfg.ConnectionString(), db.PoolOptions{
		MaxOpen:     cfg.DBMaxOpen, // Pool size
		MaxIdle:     cfg.DBMaxIdle, // Idle connections
		MaxLifetime: time.Hour,     // Recycle connections hourly
	})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	seed := db.Seed{
		AdminLogin:        cfg.AdminLogin,        // Default admin login
		AdminEmail:        cfg.AdminEmail,        // Default admin email
		AdminPasswordHash: cfg.AdminPasswordHash, // Pre-hashed password
	}
	if err := db.Bootstrap(cmd.Context(), gdb, seed); err != nil {
		logrus.Fatalf("failed to bootstrap DB: %v", err)
	}
	return gdb
}
