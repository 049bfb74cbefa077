package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	sqlstore "github.com/boerenkompas/dashboard/pkg/store/sql"
	"github.com/rs/zerolog"
	"github.com/snowflakedb/gosnowflake"
	"github.com/spf13/viper"
)

const EnvPrefix = "BOERENKOMPAS"

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Database struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Path   string `mapstructure:"path"`
}

type Snowflake struct {
	Account   string `mapstructure:"account"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	Schema    string `mapstructure:"schema"`
	Warehouse string `mapstructure:"warehouse"`
	Role      string `mapstructure:"role"`
}

type Databricks struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	HTTPPath   string `mapstructure:"http_path"`
	Token      string `mapstructure:"token"`
	Profile    string `mapstructure:"profile"`
	ConfigFile string `mapstructure:"config_file"`
}

type Auth struct {
	UserHeader string `mapstructure:"user_header"`
}

type Debug struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Environment string     `mapstructure:"environment"`
	LogLevel    string     `mapstructure:"log_level"`
	Server      Server     `mapstructure:"server"`
	Database    Database   `mapstructure:"database"`
	Snowflake   Snowflake  `mapstructure:"snowflake"`
	Databricks  Databricks `mapstructure:"databricks"`
	Auth        Auth       `mapstructure:"auth"`
	Debug       Debug      `mapstructure:"debug"`
}

var defaults = map[string]any{
	"environment":             "development",
	"log_level":               "info",
	"server.host":             "0.0.0.0",
	"server.port":             8080,
	"server.shutdown_timeout": "10s",
	"database.driver":         sqlstore.DriverDuckDB,
	"database.dsn":            "",
	"database.path":           "boerenkompas.db",
	"snowflake.account":       "",
	"snowflake.user":          "",
	"snowflake.password":      "",
	"snowflake.database":      "",
	"snowflake.schema":        "",
	"snowflake.warehouse":     "",
	"snowflake.role":          "",
	"databricks.host":         "",
	"databricks.port":         443,
	"databricks.http_path":    "",
	"databricks.token":        "",
	"databricks.profile":      "",
	"databricks.config_file":  "",
	"auth.user_header":        "X-User-ID",
	"debug.enabled":           false,
}

// Load reads the optional config file at path and overlays BOERENKOMPAS_*
// environment variables, e.g. BOERENKOMPAS_DATABASE_DSN.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Database.Driver == sqlstore.DriverDatabricks {
		if err := cfg.Databricks.applyProfile(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case sqlstore.DriverPostgres, sqlstore.DriverDuckDB, sqlstore.DriverSnowflake, sqlstore.DriverDatabricks:
	default:
		errs = append(errs, fmt.Errorf("unsupported database.driver %q", c.Database.Driver))
	}

	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}
	if strings.TrimSpace(c.Auth.UserHeader) == "" {
		errs = append(errs, errors.New("auth.user_header must not be empty"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log_level %q", c.LogLevel))
	}

	return errors.Join(errs...)
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) StoreSettings() sqlstore.Settings {
	settings := sqlstore.Settings{
		Driver: c.Database.Driver,
		DSN:    c.Database.DSN,
		Path:   c.Database.Path,
		Databricks: sqlstore.DatabricksSettings{
			Host:     c.Databricks.Host,
			Port:     c.Databricks.Port,
			HTTPPath: c.Databricks.HTTPPath,
			Token:    c.Databricks.Token,
		},
	}

	if c.Database.Driver == sqlstore.DriverSnowflake {
		settings.Snowflake = &gosnowflake.Config{
			Account:   c.Snowflake.Account,
			User:      c.Snowflake.User,
			Password:  c.Snowflake.Password,
			Database:  c.Snowflake.Database,
			Schema:    c.Snowflake.Schema,
			Warehouse: c.Snowflake.Warehouse,
			Role:      c.Snowflake.Role,
		}
	}
	return settings
}
