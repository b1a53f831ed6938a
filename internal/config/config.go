package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Pay      PayPolicyConfig
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
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
	PayrollCron    bool
}

// PayPolicyConfig holds the farm's payment policy. The defaults are the
// rates the farm has always operated with: pluckers are paid KES 8/kg and
// factories withhold KES 3/kg for transport.
type PayPolicyConfig struct {
	WorkerRatePerKg         decimal.Decimal
	TransportDeductionPerKg decimal.Decimal
	FertilizerCostPerBag    decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional; deployments may set the environment directly.
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
		Name:     getEnv("DB_NAME", "sambu-farm"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		PayrollCron:    getEnv("PAYROLL_CRON_ENABLED", "false") == "true",
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Pay policy configuration
	workerRate, err := getEnvDecimal("PAY_WORKER_RATE_PER_KG", "8.0")
	if err != nil {
		return nil, err
	}
	transportDeduction, err := getEnvDecimal("PAY_TRANSPORT_DEDUCTION_PER_KG", "3.0")
	if err != nil {
		return nil, err
	}
	fertilizerCost, err := getEnvDecimal("PAY_FERTILIZER_COST_PER_BAG", "2500.0")
	if err != nil {
		return nil, err
	}
	config.Pay = PayPolicyConfig{
		WorkerRatePerKg:         workerRate,
		TransportDeductionPerKg: transportDeduction,
		FertilizerCostPerBag:    fertilizerCost,
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
	if !c.Pay.WorkerRatePerKg.IsPositive() {
		return fmt.Errorf("PAY_WORKER_RATE_PER_KG must be positive")
	}
	if c.Pay.TransportDeductionPerKg.IsNegative() {
		return fmt.Errorf("PAY_TRANSPORT_DEDUCTION_PER_KG must be non-negative")
	}
	if !c.Pay.FertilizerCostPerBag.IsPositive() {
		return fmt.Errorf("PAY_FERTILIZER_COST_PER_BAG must be positive")
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

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	value := getEnv(key, fallback)
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
