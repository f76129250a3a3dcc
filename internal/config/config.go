// Package config loads the service configuration from an optional config
// file and BRACELET_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the full service configuration.
type Config struct {
	Addr   string
	WebDir string

	Store    StoreConfig
	DeepSeek DeepSeekConfig
	Share    ShareConfig
}

// StoreConfig selects and parameterizes the persistence adapter.
type StoreConfig struct {
	Driver      string
	SQLitePath  string
	DatabaseURL string
}

// DeepSeekConfig parameterizes the enrichment gateway.
type DeepSeekConfig struct {
	Enabled bool
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// ShareConfig controls share-link expiry.
type ShareConfig struct {
	TTLDays       int
	SweepInterval time.Duration
}

// Load reads bracelet.yaml (if present) and the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("bracelet")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/bracelet")

	v.SetEnvPrefix("BRACELET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("web_dir", "web")
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.sqlite_path", "data/bracelet.db")
	v.SetDefault("deepseek.enabled", true)
	v.SetDefault("deepseek.base_url", "https://api.deepseek.com/v1")
	v.SetDefault("deepseek.model", "deepseek-chat")
	v.SetDefault("deepseek.timeout", "30s")
	v.SetDefault("share.ttl_days", 7)
	v.SetDefault("share.sweep_interval", "1h")

	// Conventional unprefixed names win for deployment compatibility.
	_ = v.BindEnv("store.database_url", "DATABASE_URL", "BRACELET_STORE_DATABASE_URL")
	_ = v.BindEnv("deepseek.api_key", "DEEPSEEK_API_KEY", "BRACELET_DEEPSEEK_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Addr:   v.GetString("addr"),
		WebDir: v.GetString("web_dir"),
		Store: StoreConfig{
			Driver:      v.GetString("store.driver"),
			SQLitePath:  v.GetString("store.sqlite_path"),
			DatabaseURL: v.GetString("store.database_url"),
		},
		DeepSeek: DeepSeekConfig{
			Enabled: v.GetBool("deepseek.enabled"),
			APIKey:  v.GetString("deepseek.api_key"),
			BaseURL: v.GetString("deepseek.base_url"),
			Model:   v.GetString("deepseek.model"),
			Timeout: v.GetDuration("deepseek.timeout"),
		},
		Share: ShareConfig{
			TTLDays:       v.GetInt("share.ttl_days"),
			SweepInterval: v.GetDuration("share.sweep_interval"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("store driver %q requires DATABASE_URL", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Share.TTLDays <= 0 {
		return fmt.Errorf("share.ttl_days must be > 0, got %d", c.Share.TTLDays)
	}
	if c.Share.SweepInterval <= 0 {
		return fmt.Errorf("share.sweep_interval must be > 0")
	}
	return nil
}

// TTL returns the share time-to-live as a duration.
func (c ShareConfig) TTL() time.Duration {
	return time.Duration(c.TTLDays) * 24 * time.Hour
}
