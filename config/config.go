package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config is read from the environment and, if present, a .env file
type Config struct {
	Env      string
	Port     int
	GinMode  string
	LogLevel string

	CatalogStore string
	SQLiteDSN    string

	JWTSecret     string
	JWTIssuer     string
	JWTExpiration time.Duration

	AllowedOrigins []string

	LoginRatePerMinute int
	LoginBurst         int
}

func (c *Config) IsDevelopment() bool { return c.Env == "development" }

func (c *Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", 8080)
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CATALOG_STORE", StoreSQLite)
	v.SetDefault("SQLITE_DSN", ":memory:")
	v.SetDefault("JWT_SECRET", "taste_toffel_dev_secret")
	v.SetDefault("JWT_ISSUER", "taste-toffel")
	v.SetDefault("JWT_EXPIRATION_MINUTES", 24*60)
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	v.SetDefault("LOGIN_BURST", 5)
}

// Load reads the configuration. Environment variables win over .env.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}
	v.AutomaticEnv()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:                v.GetString("APP_ENV"),
		Port:               v.GetInt("PORT"),
		GinMode:            v.GetString("GIN_MODE"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		CatalogStore:       strings.ToLower(v.GetString("CATALOG_STORE")),
		SQLiteDSN:          v.GetString("SQLITE_DSN"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		JWTExpiration:      time.Duration(v.GetInt("JWT_EXPIRATION_MINUTES")) * time.Minute,
		AllowedOrigins:     splitList(v.GetString("ALLOWED_ORIGINS")),
		LoginRatePerMinute: v.GetInt("LOGIN_RATE_PER_MINUTE"),
		LoginBurst:         v.GetInt("LOGIN_BURST"),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.CatalogStore != StoreSQLite && cfg.CatalogStore != StoreMemory {
		return nil, fmt.Errorf("invalid CATALOG_STORE %q: must be %s or %s", cfg.CatalogStore, StoreSQLite, StoreMemory)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.JWTExpiration <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRATION_MINUTES must be positive")
	}
	if cfg.LoginRatePerMinute <= 0 || cfg.LoginBurst <= 0 {
		return nil, fmt.Errorf("LOGIN_RATE_PER_MINUTE and LOGIN_BURST must be positive")
	}
	if len(cfg.AllowedOrigins) == 0 && cfg.IsDevelopment() {
		cfg.AllowedOrigins = []string{"*"}
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// OpenDB opens the sqlite database behind the catalog. A single connection
// keeps an in-memory database alive and shared.
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
