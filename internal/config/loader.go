package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads
const EnvPrefix = "TASKS"

// Loader handles loading configuration from multiple sources
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := NewConfig()
	v.SetDefault("db.driver", defaults.Database.Driver)
	v.SetDefault("db.dsn", defaults.Database.DSN)
	v.SetDefault("db.dir", defaults.Database.Dir)
	v.SetDefault("db.filename", defaults.Database.Filename)
	v.SetDefault("db.dir_permissions", fmt.Sprintf("%o", defaults.Database.DirPermissions))
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("server.read_timeout", defaults.Server.ReadTimeout.String())
	v.SetDefault("server.write_timeout", defaults.Server.WriteTimeout.String())
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout.String())
	v.SetDefault("validation.title_max_length", defaults.Validation.TitleMaxLength)
	v.SetDefault("validation.description_max_length", defaults.Validation.DescriptionMaxLength)
	v.SetDefault("app.env", defaults.Application.Env)
	v.SetDefault("app.verbose", defaults.Application.Verbose)

	return &Loader{v: v}
}

// SetConfigFile sets an optional YAML, TOML or JSON file read before the environment
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file, if one was given
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &ConfigError{Field: "config", Message: fmt.Sprintf("cannot read %s: %v", l.configFile, err)}
		}
	}

	config := l.build()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// build reads every key from viper; malformed values keep their defaults
func (l *Loader) build() *Config {
	defaults := NewConfig()
	return &Config{
		Database: DatabaseConfig{
			Driver:         l.v.GetString("db.driver"),
			DSN:            l.v.GetString("db.dsn"),
			Dir:            l.v.GetString("db.dir"),
			Filename:       l.v.GetString("db.filename"),
			DirPermissions: ParseUint32WithFallback(l.v.GetString("db.dir_permissions"), 8, defaults.Database.DirPermissions),
		},
		Server: ServerConfig{
			Addr:            l.v.GetString("server.addr"),
			ReadTimeout:     ParseDurationWithFallback(l.v.GetString("server.read_timeout"), defaults.Server.ReadTimeout),
			WriteTimeout:    ParseDurationWithFallback(l.v.GetString("server.write_timeout"), defaults.Server.WriteTimeout),
			ShutdownTimeout: ParseDurationWithFallback(l.v.GetString("server.shutdown_timeout"), defaults.Server.ShutdownTimeout),
		},
		Validation: ValidationConfig{
			TitleMaxLength:       ParseIntWithFallback(l.v.GetString("validation.title_max_length"), defaults.Validation.TitleMaxLength),
			DescriptionMaxLength: ParseIntWithFallback(l.v.GetString("validation.description_max_length"), defaults.Validation.DescriptionMaxLength),
		},
		Application: ApplicationConfig{
			Env:     strings.ToLower(strings.TrimSpace(l.v.GetString("app.env"))),
			Verbose: ParseBoolWithFallback(l.v.GetString("app.verbose"), defaults.Application.Verbose),
		},
	}
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDriver         *string
	DBDSN            *string
	DBDir            *string
	DBFilename       *string
	DBDirPermissions *uint32

	// Server overrides
	ServerAddr *string

	// Application overrides
	Env     *string
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Database overrides
	if overrides.DBDriver != nil {
		config.Database.Driver = *overrides.DBDriver
	}
	if overrides.DBDSN != nil {
		config.Database.DSN = *overrides.DBDSN
	}
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBDirPermissions != nil {
		config.Database.DirPermissions = *overrides.DBDirPermissions
	}

	// Server overrides
	if overrides.ServerAddr != nil {
		config.Server.Addr = *overrides.ServerAddr
	}

	// Application overrides
	if overrides.Env != nil {
		config.Application.Env = *overrides.Env
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
