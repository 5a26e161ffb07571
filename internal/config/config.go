package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration, loaded from the environment.
// Callers load a .env file first (godotenv) so local development works
// without exporting anything.
type Config struct {
	Port string `envconfig:"PORT" default:"3000"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"salary"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	RedisAddr   string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	KafkaBroker string `envconfig:"KAFKA_BROKER"`

	ReportDir string `envconfig:"REPORT_DIR" default:"reports"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
