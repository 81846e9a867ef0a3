package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // ANNOUNCE_TIMEZONE must resolve in minimal containers

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	LogDir      string // session log files; empty logs to stdout only
	APIKey      string // API key for authentication

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	ItemsConfigPath string
	CatalogCacheTTL time.Duration

	// AnnounceCron is a standard five-field cron spec evaluated in AnnounceTimezone.
	// Empty disables the daily announcement.
	AnnounceCron     string
	AnnounceTimezone string

	// Defaults used until an admin saves game settings
	ItemDropRate     float64
	CurrencyPerSolve int

	WorkerCount     int
	WorkerQueueSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		APIKey:      getEnv("API_KEY", ""),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		ItemsConfigPath: getEnv("ITEMS_CONFIG_PATH", ConfigPathItems),
		CatalogCacheTTL: getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogCacheTTL),

		AnnounceCron:     getEnv("ANNOUNCE_CRON", DefaultAnnounceCron),
		AnnounceTimezone: getEnv("ANNOUNCE_TIMEZONE", DefaultAnnounceTimezone),

		ItemDropRate:     getEnvAsFloat("ITEM_DROP_RATE", domain.DefaultItemDropRate),
		CurrencyPerSolve: getEnvAsInt("CURRENCY_PER_SOLVE", domain.DefaultCurrencyPerSolve),

		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// Validate checks ranges that Load leaves to the caller
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT %d is outside 1-65535", c.Port)
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", c.DBMaxConns)
	}
	if c.ItemDropRate < 0 || c.ItemDropRate > 1 {
		return fmt.Errorf("ITEM_DROP_RATE must be within [0, 1], got %v", c.ItemDropRate)
	}
	if c.CurrencyPerSolve < 0 {
		return fmt.Errorf("CURRENCY_PER_SOLVE must not be negative, got %d", c.CurrencyPerSolve)
	}
	if c.WorkerCount < 1 || c.WorkerQueueSize < 1 {
		return fmt.Errorf("WORKER_COUNT and WORKER_QUEUE_SIZE must be at least 1, got %d and %d", c.WorkerCount, c.WorkerQueueSize)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.AnnounceCron != "" {
		if _, err := cron.ParseStandard(c.AnnounceCron); err != nil {
			return fmt.Errorf("invalid ANNOUNCE_CRON %q: %w", c.AnnounceCron, err)
		}
	}
	return nil
}

// Location resolves AnnounceTimezone; it also decides what "today" means
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.AnnounceTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid ANNOUNCE_TIMEZONE %q: %w", c.AnnounceTimezone, err)
	}
	return loc, nil
}

// GameSettings returns the configured economy defaults
func (c *Config) GameSettings() domain.GameSettings {
	return domain.GameSettings{
		ItemDropRate:     c.ItemDropRate,
		CurrencyPerSolve: c.CurrencyPerSolve,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsDevelopment reports whether the environment is a local one
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// GetDBConnString returns the PostgreSQL connection URL with credentials escaped
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
