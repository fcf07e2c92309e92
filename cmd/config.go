package cmd

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded from a .env file in development.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	StaleOrderTTLHours int `envconfig:"STALE_ORDER_TTL_HOURS" default:"72"`
}

// LoadConfig reads configuration from the environment. A missing .env file
// is fine, real deployments set variables directly.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("failed to process configuration: %w", err)
	}

	return config, nil
}

// DatabaseDSN builds the postgres connection string.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// StaleOrderMaxAge returns how long a Pending order may linger before the
// sweep cancels it.
func (c Config) StaleOrderMaxAge() time.Duration {
	return time.Duration(c.StaleOrderTTLHours) * time.Hour
}
