package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"task-tracker/internal/repository/database"
	"task-tracker/internal/validation"
)

// Application environments
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// Config holds all configuration options for the task API
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver         string `mapstructure:"driver"`
	DSN            string `mapstructure:"dsn"`
	Dir            string `mapstructure:"dir"`
	Filename       string `mapstructure:"filename"`
	DirPermissions uint32 `mapstructure:"dir_permissions"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength       int `mapstructure:"title_max_length"`
	DescriptionMaxLength int `mapstructure:"description_max_length"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Env     string `mapstructure:"env"`
	Verbose bool   `mapstructure:"verbose"`
}

// DefaultDatabaseDir returns ~/.tasks, or ./.tasks when the home directory is unknown
func DefaultDatabaseDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".tasks"
	}
	return filepath.Join(homeDir, ".tasks")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:         string(database.DialectSQLite),
			Dir:            DefaultDatabaseDir(),
			Filename:       "tasks.db",
			DirPermissions: 0755,
		},
		Server: ServerConfig{
			Addr:            ":8000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Validation: ValidationConfig{
			TitleMaxLength:       validation.DefaultTitleMaxLength,
			DescriptionMaxLength: validation.DefaultDescriptionMaxLength,
		},
		Application: ApplicationConfig{
			Env:     EnvDevelopment,
			Verbose: false,
		},
	}
}

// Dialect returns the parsed database driver
func (c *Config) Dialect() (database.Dialect, error) {
	return database.ParseDialect(c.Database.Driver)
}

// GetDatabasePath returns the DSN if one is configured, otherwise the SQLite file path
func (c *Config) GetDatabasePath() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetEnvironment returns the application environment
func (c *Config) GetEnvironment() string {
	return c.Application.Env
}

// IsTesting reports whether the application runs in the testing environment
func (c *Config) IsTesting() bool {
	return c.Application.Env == EnvTesting
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	dialect, err := c.Dialect()
	if err != nil {
		return &ConfigError{Field: "db.driver", Message: "unsupported driver " + c.Database.Driver}
	}
	switch dialect {
	case database.DialectPostgres:
		if c.Database.DSN == "" && !c.IsTesting() {
			return &ConfigError{Field: "db.dsn", Message: "postgres requires a connection string"}
		}
	default:
		if c.Database.DSN == "" {
			if c.Database.Dir == "" {
				return &ConfigError{Field: "db.dir", Message: "database directory cannot be empty"}
			}
			if c.Database.Filename == "" {
				return &ConfigError{Field: "db.filename", Message: "database filename cannot be empty"}
			}
		}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ReadTimeout <= 0 {
		return &ConfigError{Field: "server.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Server.WriteTimeout <= 0 {
		return &ConfigError{Field: "server.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength > validation.DefaultTitleMaxLength {
		return &ConfigError{
			Field:   "validation.title_max_length",
			Message: fmt.Sprintf("title maximum length cannot exceed %d", validation.DefaultTitleMaxLength),
		}
	}
	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}

	// Validate application configuration
	switch c.Application.Env {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return &ConfigError{Field: "app.env", Message: "environment must be one of development, testing, production"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
