package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Policy   PolicyConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds token verification configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PolicyConfig holds the working-time and leave policy knobs.
type PolicyConfig struct {
	// StandardDailyHours is the daily threshold above which worked time
	// counts as overtime.
	StandardDailyHours decimal.Decimal

	// AnnualLeaveAllowance is the number of business days of leave an
	// employee may take per calendar year.
	AnnualLeaveAllowance int
}

func Load() (*Config, error) {
	// .env is optional; deployments usually set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffhub"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	standardHours, err := decimal.NewFromString(getEnv("POLICY_STANDARD_DAILY_HOURS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid POLICY_STANDARD_DAILY_HOURS: %w", err)
	}

	allowance, err := strconv.Atoi(getEnv("POLICY_ANNUAL_LEAVE_ALLOWANCE", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid POLICY_ANNUAL_LEAVE_ALLOWANCE: %w", err)
	}

	config.Policy = PolicyConfig{
		StandardDailyHours:   standardHours,
		AnnualLeaveAllowance: allowance,
	}

	return config, nil
}

// DatabaseURL builds the postgres DSN from the database configuration.
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
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
