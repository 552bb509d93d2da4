package main

import (
	"capshop/internal/api"    // HTTP handlers
	"capshop/internal/auth"   // Sessions
	"capshop/internal/config" // Environment configuration
	"capshop/internal/store"  // Data access

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"github.com/spf13/cobra"       // CLI commands
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Bootstrap the database and serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig() // Load configuration
			setupLogger(cfg)
			if err := cfg.Validate(); err != nil {
				logrus.Fatalf("invalid configuration: %v", err)
			}

			s := store.New(openDatabase(cmd, cfg), store.Options{QueryTimeout: cfg.QueryTimeout})
			defer s.Close()

			// Setup Redis client
			redisClient := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr, // Redis server address
				Password: cfg.RedisPass, // Redis password
				DB:       cfg.RedisDB,   // Redis database number
			})
			defer redisClient.Close()

			// Test Redis connection
			if _, err := redisClient.Ping(cmd.Context()).Result(); err != nil {
				logrus.Fatalf("failed to connect to Redis: %v", err)
			}

			// Set Mode to Release if in production
			if cfg.IsProd {
				gin.SetMode(gin.ReleaseMode)
			}

			authenticator := auth.NewAuthenticator(s, redisClient, cfg.JWTSecret, cfg.SessionTTL)
			r, err := api.NewRouter(s, authenticator)
			if err != nil {
				return err
			}

			logrus.WithField("port", cfg.AppPort).Info("Server running") // Log server start
			return r.Run(":" + cfg.AppPort)                              // Start the server on port cfg.AppPort
		},
	}
}
