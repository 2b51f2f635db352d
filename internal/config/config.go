package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they are mapped onto Config.
// ADBOARD_DATABASE_SSL_MODE becomes database.ssl_mode.
const EnvPrefix = "ADBOARD_"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration object
type Config struct {
	Env      string         `koanf:"env" validate:"required"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig holds connection parameters for either store backend
type DatabaseConfig struct {
	Driver   string `koanf:"driver" validate:"required,oneof=postgres sqlite"`
	Host     string `koanf:"host" validate:"required_if=Driver postgres"`
	Port     int    `koanf:"port" validate:"required_if=Driver postgres"`
	User     string `koanf:"user" validate:"required_if=Driver postgres"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode  string `koanf:"ssl_mode" validate:"required_if=Driver postgres"`

	// Path is the SQLite database file, or ":memory:"
	Path string `koanf:"path" validate:"required_if=Driver sqlite"`

	MaxConns       int32         `koanf:"max_conns" validate:"gte=1"`
	ConnectRetries int           `koanf:"connect_retries" validate:"gte=1"`
	RetryInterval  time.Duration `koanf:"retry_interval" validate:"gte=0"`
}

type SecurityConfig struct {
	BcryptCost int `koanf:"bcrypt_cost" validate:"gte=4,lte=31"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

// Default returns the configuration used when no environment overrides are set.
// The database defaults match the docker-compose Postgres used for local development.
func Default() Config {
	return Config{
		Env: "local",
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:         DriverPostgres,
			Host:           "127.0.0.1",
			Port:           5431,
			User:           "app",
			Password:       "secret",
			Name:           "app",
			SSLMode:        "disable",
			Path:           "adboard.db",
			MaxConns:       10,
			ConnectRetries: 5,
			RetryInterval:  2 * time.Second,
		},
		Security: SecurityConfig{BcryptCost: 12},
		Log:      LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads ADBOARD_* environment variables over Default and validates the result
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// envKey turns SERVER_READ_TIMEOUT into server.read_timeout: the first segment is the section.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// DSN builds the Postgres connection URL
func (d DatabaseConfig) DSN() string {
	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(d.User), url.QueryEscape(d.Password), hostPort, d.Name, d.SSLMode)
}

// SQLiteDSN builds the modernc sqlite data source name with the pragmas every connection needs
func (d DatabaseConfig) SQLiteDSN() string {
	return d.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
