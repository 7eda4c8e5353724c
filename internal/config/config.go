package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local" validate:"oneof=local dev prod"`
	HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Database   Database   `yaml:"database"`
	Validation Validation `yaml:"validation"`
	RateLimit  RateLimit  `yaml:"rate_limit"`
	Tracing    Tracing    `yaml:"tracing"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:5000" validate:"required"`
	Timeout         time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory" validate:"oneof=memory postgres"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"trip_booker"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

// Validation.Strict turns on request body validation. Off by default: names,
// emails, dates and statuses are accepted as sent.
type Validation struct {
	Strict bool `yaml:"strict" env:"VALIDATION_STRICT" env-default:"false"`
}

type RateLimit struct {
	Enabled bool    `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"false"`
	RPS     float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"10" validate:"gt=0"`
	Burst   int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"20" validate:"gt=0"`
}

type Tracing struct {
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"trip-booker"`
}

// MustLoad reads the config file named by CONFIG_PATH, or only the
// environment when CONFIG_PATH is unset. A .env file is loaded first if present.
func MustLoad() *Config {
	_ = godotenv.Load()

	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read env: %w", err)
		}
	} else {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
