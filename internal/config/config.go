package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the server configuration tree.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Database DatabaseConfig `mapstructure:"database"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	Sync     SyncConfig     `mapstructure:"sync"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	Mode               string        `mapstructure:"mode"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	MaxRequestBodySize int           `mapstructure:"max_request_body_size"`
}

// LogConfig configures slog.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	AddSource  bool   `mapstructure:"add_source"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`  // rotation threshold for file output
	MaxBackups int    `mapstructure:"max_backups"`  // rotated files to keep
	MaxAgeDays int    `mapstructure:"max_age_days"` // rotated file retention
}

// JWTConfig configures token signing.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// DatabaseConfig configures the sqlite store.
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// SheetsConfig selects the snapshot source.
type SheetsConfig struct {
	// Source is "http" (spreadsheet CSV export) or "xlsx" (local files).
	Source string `mapstructure:"source"`
	// BaseURL overrides the export endpoint; tests point it at a local
	// server. Empty means the public docs.google.com export URL.
	BaseURL string `mapstructure:"base_url"`
	// Dir is where the xlsx source looks for files named after the
	// spreadsheet id.
	Dir     string        `mapstructure:"dir"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SyncConfig configures the optional periodic re-synchronization.
type SyncConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"` // cron expression
}

// Load reads and validates the configuration file. Values may be
// overridden through SGP_-prefixed environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SGP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("database.path", "sgp.db")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("sheets.source", "http")
	v.SetDefault("sheets.timeout", 30*time.Second)
	v.SetDefault("sync.enabled", false)
	v.SetDefault("sync.schedule", "0 */6 * * *")
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server mode: %s, must be 'debug' or 'release'", c.Server.Mode)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'text'", c.Log.Format)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("jwt.secret must be at least 32 characters")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	switch c.Sheets.Source {
	case "http":
	case "xlsx":
		if c.Sheets.Dir == "" {
			return fmt.Errorf("sheets.dir is required for the xlsx source")
		}
	default:
		return fmt.Errorf("invalid sheets source: %s, must be 'http' or 'xlsx'", c.Sheets.Source)
	}

	if c.Sync.Enabled && c.Sync.Schedule == "" {
		return fmt.Errorf("sync.schedule is required when sync is enabled")
	}

	return nil
}

// GetServerAddr renders the listen address.
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetReadTimeout returns the read timeout, defaulting to 10s.
func (c *Config) GetReadTimeout() time.Duration {
	if c.Server.ReadTimeout <= 0 {
		return 10 * time.Second
	}
	return c.Server.ReadTimeout
}

// GetWriteTimeout returns the write timeout, defaulting to 30s.
func (c *Config) GetWriteTimeout() time.Duration {
	if c.Server.WriteTimeout <= 0 {
		return 30 * time.Second
	}
	return c.Server.WriteTimeout
}
