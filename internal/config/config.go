// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
	Storage  StorageConfig  `yaml:"storage"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port           int      `yaml:"port" env:"SERVER_PORT"`
	Mode           string   `yaml:"mode" env:"SERVER_MODE"`
	BaseURL        string   `yaml:"baseUrl" env:"SERVER_BASE_URL"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// DatabaseConfig controls the PostgreSQL pool.
type DatabaseConfig struct {
	Host            string `yaml:"host" env:"DB_HOST"`
	Port            int    `yaml:"port" env:"DB_PORT"`
	User            string `yaml:"user" env:"DB_USER"`
	Password        string `yaml:"password" env:"DB_PASSWORD"`
	Name            string `yaml:"name" env:"DB_NAME"`
	SSLMode         string `yaml:"sslMode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `yaml:"maxOpenConns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `yaml:"maxIdleConns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime string `yaml:"connMaxLifetime" env:"DB_CONN_MAX_LIFETIME"`
	MigrationsPath  string `yaml:"migrationsPath" env:"DB_MIGRATIONS_PATH"`
}

// AuthConfig controls session tokens.
type AuthConfig struct {
	SecretKey        string        `yaml:"secretKey" env:"AUTH_SECRET_KEY"`
	SessionExpiresIn time.Duration `yaml:"sessionExpiresIn" env:"AUTH_SESSION_EXPIRES_IN"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY"`
}

// StorageConfig controls upload storage on local disk.
type StorageConfig struct {
	Path string `yaml:"path" env:"STORAGE_PATH"`
}

// LoadConfig reads the YAML file at path, applies environment variable
// overrides, fills defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = fmt.Sprintf("http://localhost:%d", c.Server.Port)
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == "" {
		c.Database.ConnMaxLifetime = "30m"
	}
	if c.Database.MigrationsPath == "" {
		c.Database.MigrationsPath = "migrations"
	}
	if c.Auth.SessionExpiresIn == 0 {
		c.Auth.SessionExpiresIn = 24 * time.Hour
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "uploads"
	}
}

// Validate rejects configurations that cannot run.
func (c *Config) Validate() error {
	if c.Auth.SecretKey == "" {
		return fmt.Errorf("auth.secretKey is required (set AUTH_SECRET_KEY)")
	}
	if len(c.Auth.SecretKey) < 32 {
		return fmt.Errorf("auth.secretKey must be at least 32 characters")
	}
	if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
		return fmt.Errorf("database host, user and name are required")
	}
	if _, err := time.ParseDuration(c.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("database.connMaxLifetime is not a valid duration: %w", err)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test")
	}
	return nil
}

// GetPostgresConnectionString builds the pgx connection string.
func (c *Config) GetPostgresConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User, c.Database.Password, c.Database.Host,
		c.Database.Port, c.Database.Name, c.Database.SSLMode)
}
