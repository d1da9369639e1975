package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// ReportConfig holds the attribution and bucketing parameters used by the
// analytics engine
type ReportConfig struct {
	MatchRadiusKm  float64
	UTCOffsetHours int
	LateCutoffHour int
	FirstHourLabel int
	LastHourLabel  int
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

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
		Name:     getEnv("DB_NAME", "checkin-analytics"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:8888"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Report configuration
	radiusKm, err := strconv.ParseFloat(getEnv("MATCH_RADIUS_KM", "1.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MATCH_RADIUS_KM: %w", err)
	}

	utcOffset, err := strconv.Atoi(getEnv("LOCAL_UTC_OFFSET_HOURS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCAL_UTC_OFFSET_HOURS: %w", err)
	}

	cutoffHour, err := strconv.Atoi(getEnv("LATE_CUTOFF_HOUR", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_CUTOFF_HOUR: %w", err)
	}

	firstHour, err := strconv.Atoi(getEnv("FIRST_HOUR_LABEL", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid FIRST_HOUR_LABEL: %w", err)
	}

	lastHour, err := strconv.Atoi(getEnv("LAST_HOUR_LABEL", "13"))
	if err != nil {
		return nil, fmt.Errorf("invalid LAST_HOUR_LABEL: %w", err)
	}

	config.Report = ReportConfig{
		MatchRadiusKm:  radiusKm,
		UTCOffsetHours: utcOffset,
		LateCutoffHour: cutoffHour,
		FirstHourLabel: firstHour,
		LastHourLabel:  lastHour,
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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Report.MatchRadiusKm <= 0 {
		return fmt.Errorf("MATCH_RADIUS_KM must be positive")
	}
	if c.Report.LateCutoffHour < 0 || c.Report.LateCutoffHour > 23 {
		return fmt.Errorf("LATE_CUTOFF_HOUR must be between 0 and 23")
	}
	if c.Report.FirstHourLabel > c.Report.LastHourLabel {
		return fmt.Errorf("FIRST_HOUR_LABEL must not be after LAST_HOUR_LABEL")
	}
	return nil
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
