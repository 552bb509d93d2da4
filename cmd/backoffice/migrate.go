package main

import (
	"capshop/internal/config" // Environment configuration
	"capshop/internal/db"     // Pool lifecycle

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"github.com/spf13/cobra"     // CLI commands
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and seed rows, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig() // Load configuration
			setupLogger(cfg)
			if err := cfg.ValidateDatabase(); err != nil {
				logrus.Fatalf("invalid configuration: %v", err)
			}
			gdb := openDatabase(cmd, cfg)
			logrus.Info("Migration completed successfully")
			return db.Close(gdb)
		},
	}
}
