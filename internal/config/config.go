// Package config loads runtime settings from configs/config.yml, a .env file
// and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port                     string
	LogLevel                 string
	LogFormat                string
	EnableGlobalErrorLogging bool
	DB                       DBConfig
	HTTP                     HTTPConfig
}

type DBConfig struct {
	Driver string
	Path   string // sqlite file, ":memory:" allowed
	DSN    string // postgres connection string
}

type HTTPConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// envBindings maps viper keys to the environment variable names operators use.
var envBindings = map[string]string{
	"port":                        "PORT",
	"log.level":                   "LOG_LEVEL",
	"log.format":                  "LOG_FORMAT",
	"enable_global_error_logging": "ENABLE_GLOBAL_ERROR_LOGGING",
	"db.driver":                   "DB_DRIVER",
	"db.path":                     "DB_PATH",
	"db.dsn":                      "DB_DSN",
	"http.read_header_timeout":    "HTTP_READ_HEADER_TIMEOUT",
	"http.write_timeout":          "HTTP_WRITE_TIMEOUT",
	"http.idle_timeout":           "HTTP_IDLE_TIMEOUT",
	"http.shutdown_timeout":       "HTTP_SHUTDOWN_TIMEOUT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("enable_global_error_logging", false)
	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "courses.db")
	v.SetDefault("db.dsn", "")
	v.SetDefault("http.read_header_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
}

// Load reads configuration. configDir is searched for config.yml; a missing
// file or .env is not an error.
func Load(configDir string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(configDir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	cfg := &Config{
		Port:                     v.GetString("port"),
		LogLevel:                 v.GetString("log.level"),
		LogFormat:                v.GetString("log.format"),
		EnableGlobalErrorLogging: v.GetBool("enable_global_error_logging"),
		DB: DBConfig{
			Driver: strings.ToLower(v.GetString("db.driver")),
			Path:   v.GetString("db.path"),
			DSN:    v.GetString("db.dsn"),
		},
		HTTP: HTTPConfig{
			ReadHeaderTimeout: v.GetDuration("http.read_header_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
			ShutdownTimeout:   v.GetDuration("http.shutdown_timeout"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.Path == "" {
			return errors.New("config: DB_PATH is required for sqlite")
		}
	case DriverPostgres:
		if c.DB.DSN == "" {
			return errors.New("config: DB_DSN is required for postgres")
		}
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.Port == "" {
		return errors.New("config: PORT is empty")
	}
	return nil
}

// DataSource returns the data source for the configured driver.
func (c DBConfig) DataSource() string {
	if c.Driver == DriverPostgres {
		return c.DSN
	}
	return c.Path
}
