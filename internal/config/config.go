package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Token    TokenConfig
	Admin    AdminConfig
	Wage     WageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	// Timezone is the civil timezone all day boundaries are evaluated in.
	Timezone string
}

// TokenConfig holds QR token configuration
type TokenConfig struct {
	// Secret signs day-bound QR tokens. Required: without it no link can be
	// minted or verified, so a missing value is fatal at startup.
	Secret  string
	BaseURL string
}

// AdminConfig holds the shared-secret admin gate
type AdminConfig struct {
	// Password may be plain text or a bcrypt hash ($2 prefix).
	Password          string
	SessionExpiration string
}

// WageConfig holds the wage policy. The reference deployment pays a flat
// per-hour rate on billed hours plus a base bonus per completed session.
type WageConfig struct {
	PerHour           int
	BaseBonus         int
	DefaultHourlyRate int
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("TIMEZONE", "Asia/Seoul"),
	}

	config.Token = TokenConfig{
		Secret:  getEnv("SECRET", ""),
		BaseURL: getEnv("BASE_URL", "http://localhost:3000"),
	}

	// Default password is a known placeholder; flagged at startup so
	// operators notice before exposing the admin surface.
	config.Admin = AdminConfig{
		Password:          getEnv("ADMIN_PASSWORD", "admin1234"),
		SessionExpiration: getEnv("ADMIN_SESSION_EXPIRATION", "12h"),
	}

	wagePerHour, err := strconv.Atoi(getEnv("WAGE_PER_HOUR", "10000"))
	if err != nil {
		return nil, fmt.Errorf("invalid WAGE_PER_HOUR: %w", err)
	}
	wageBaseBonus, err := strconv.Atoi(getEnv("WAGE_BASE_BONUS", "10000"))
	if err != nil {
		return nil, fmt.Errorf("invalid WAGE_BASE_BONUS: %w", err)
	}
	defaultHourlyRate, err := strconv.Atoi(getEnv("DEFAULT_HOURLY_RATE", "20000"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_HOURLY_RATE: %w", err)
	}

	config.Wage = WageConfig{
		PerHour:           wagePerHour,
		BaseBonus:         wageBaseBonus,
		DefaultHourlyRate: defaultHourlyRate,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Token.Secret == "" {
		return fmt.Errorf("SECRET is required")
	}
	return nil
}

// UsingDefaultAdminPassword reports whether the admin gate still carries the
// shipped placeholder password.
func (c *Config) UsingDefaultAdminPassword() bool {
	return c.Admin.Password == "admin1234"
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
