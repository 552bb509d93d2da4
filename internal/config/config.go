package config

import (
	"errors"  // Sentinel errors
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // Durations

	"github.com/joho/godotenv" // For loading .env files
)

var (
	ErrMissingConnectionString = errors.New("config: no database connection string (set DB_DSN or DB_HOST/DB_NAME)")
	ErrUnsupportedDriver       = errors.New("config: DB_DRIVER must be mysql or sqlite")
	ErrMissingJWTSecret        = errors.New("config: JWT_SECRET is required")
	ErrMissingAdminPassword    = errors.New("config: ADMIN_PASSWORD_HASH is required to seed the default administrator")
)

// Config holds the application configuration
type Config struct {
	AppPort      string        // Application port
	DBDriver     string        // mysql or sqlite
	DBDSN        string        // Full connection string, wins over the split fields
	DBUser       string        // Database user
	DBPassword   string        // Database password
	DBHost       string        // Database host
	DBPort       string        // Database port
	DBName       string        // Database name
	DBMaxOpen    int           // Pool size, 0 means driver default
	DBMaxIdle    int           // Idle connections kept in the pool
	QueryTimeout time.Duration // Per-operation timeout, 0 disables it
	JWTSecret    string        // JWT secret key
	SessionTTL   time.Duration // Lifetime of a login session
	RedisAddr    string        // Redis server address
	RedisPass    string        // Redis password
	RedisDB      int           // Redis database number
	IsProd       bool          // Is production environment
	LogLevel     string        // logrus level name

	AdminLogin        string // Login of the seeded administrator
	AdminEmail        string // Email of the seeded administrator
	AdminPasswordHash string // bcrypt hash of the seeded administrator's password
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:      getEnv("APP_PORT", "8080"),               // Application port
		DBDriver:     getEnv("DB_DRIVER", "mysql"),             // Database driver
		DBDSN:        os.Getenv("DB_DSN"),                      // Connection string
		DBUser:       os.Getenv("DB_USER"),                     // Database user
		DBPassword:   os.Getenv("DB_PASSWORD"),                 // Database password
		DBHost:       os.Getenv("DB_HOST"),                     // Database host
		DBPort:       getEnv("DB_PORT", "3306"),                // Database port
		DBName:       os.Getenv("DB_NAME"),                     // Database name
		DBMaxOpen:    getInt("DB_MAX_OPEN_CONNS", 10),          // Pool size
		DBMaxIdle:    getInt("DB_MAX_IDLE_CONNS", 5),           // Idle pool size
		QueryTimeout: getDuration("DB_QUERY_TIMEOUT", 0),       // Per-operation timeout
		JWTSecret:    os.Getenv("JWT_SECRET"),                  // JWT secret key
		SessionTTL:   getDuration("SESSION_TTL", 24*time.Hour), // Session lifetime
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),   // Redis server address
		RedisPass:    os.Getenv("REDIS_PASS"),                  // Redis password
		RedisDB:      getInt("REDIS_DB", 0),                    // Redis database number
		IsProd:       os.Getenv("IS_PROD") == "true",           // Is production environment
		LogLevel:     getEnv("LOG_LEVEL", "info"),              // Log level

		AdminLogin:        getEnv("ADMIN_LOGIN", "admin"),                     // Seeded admin login
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@capshop.example.com"), // Seeded admin email
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),                   // Seeded admin password hash
	}
}

// ConnectionString returns DB_DSN, or a MySQL DSN assembled from the split fields
func (c *Config) ConnectionString() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	if c.DBDriver != "mysql" || c.DBHost == "" || c.DBName == "" {
		return ""
	}
	// Data Source Name for the MySQL driver
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// ValidateDatabase checks the settings needed to open and bootstrap the store
func (c *Config) ValidateDatabase() error {
	if c.DBDriver != "mysql" && c.DBDriver != "sqlite" {
		return ErrUnsupportedDriver
	}
	if c.ConnectionString() == "" {
		return ErrMissingConnectionString
	}
	if c.AdminPasswordHash == "" {
		return ErrMissingAdminPassword
	}
	return nil
}

// Validate checks everything the server needs
func (c *Config) Validate() error {
	if err := c.ValidateDatabase(); err != nil {
		return err
	}
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
