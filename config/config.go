package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Application struct {
	GracefulShutdownTimeout time.Duration
}

type HTTPServer struct {
	Port int
}

type Database struct {
	// URL takes precedence over the discrete fields when set
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
}

type Redis struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type Logger struct {
	Level string
	Mode  string // development or production
}

type Swagger struct {
	Enabled bool `json:"enabled"`
}

type OTP struct {
	Store          string // memory or redis
	ExpirationTime time.Duration
	SweepInterval  time.Duration
}

type Config struct {
	Application Application
	HTTPServer  HTTPServer
	Database    Database
	SMTP        SMTP
	Redis       Redis
	Logger      Logger
	Swagger     Swagger
	OTP         OTP
	AdminEmail  string
}

func Load() (*Config, error) {
	cfg := &Config{
		Application: Application{
			GracefulShutdownTimeout: parseDurationWithDefault("APPLICATION_GRACEFUL_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		HTTPServer: HTTPServer{
			Port: parseIntWithDefault("PORT", 5000),
		},
		Database: Database{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnvWithDefault("DATABASE_HOST", "localhost"),
			Port:     parseIntWithDefault("DATABASE_PORT", 5432),
			User:     getEnvWithDefault("DATABASE_USER", "trustkeyper"),
			Password: getEnvWithDefault("DATABASE_PASSWORD", "trustkeyper"),
			Name:     getEnvWithDefault("DATABASE_NAME", "trustkeyper"),
			// require gives TLS without server certificate verification
			SSLMode: getEnvWithDefault("DATABASE_SSL_MODE", "require"),
		},
		SMTP: SMTP{
			Host:     getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:     parseIntWithDefault("SMTP_PORT", 587),
			User:     getEnvWithDefault("EMAIL_USER", ""),
			Password: getEnvWithDefault("EMAIL_PASS", ""),
		},
		Logger: Logger{
			Level: getEnvWithDefault("LOGGER_LEVEL", "info"),
			Mode:  getEnvWithDefault("LOGGER_MODE", "production"),
		},
		Swagger: Swagger{
			Enabled: getEnvBoolWithDefault("SWAGGER_ENABLED", true),
		},
		OTP: OTP{
			Store:          getEnvWithDefault("OTP_STORE", "memory"),
			ExpirationTime: parseDurationWithDefault("OTP_EXPIRATION_TIME", 5*time.Minute),
			SweepInterval:  parseDurationWithDefault("OTP_SWEEP_INTERVAL", time.Minute),
		},
		Redis: Redis{
			Host:     getEnvWithDefault("REDIS_HOST", "redis"),
			Port:     parseIntWithDefault("REDIS_PORT", 6379),
			Password: getEnvWithDefault("REDIS_PASSWORD", ""),
			DB:       parseIntWithDefault("REDIS_DB", 0),
		},
		AdminEmail: getEnvWithDefault("ADMIN_EMAIL", "rakshithazrati@gmail.com"),
	}

	if cfg.OTP.Store != "memory" && cfg.OTP.Store != "redis" {
		return nil, fmt.Errorf("unknown OTP_STORE %q (expected memory or redis)", cfg.OTP.Store)
	}

	return cfg, nil
}

// DSN returns the postgres connection string, preferring DATABASE_URL
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func parseDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
