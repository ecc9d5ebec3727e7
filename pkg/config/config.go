package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"StockScope/pkg/util"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Provider struct {
		Mode    string        `yaml:"mode"` // mock or alphavantage
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"provider"`
	Cache struct {
		SeriesTTL     time.Duration `yaml:"series_ttl"`
		HistoricalTTL time.Duration `yaml:"historical_ttl"`
		Redis         struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Throttle struct {
		SearchWindow time.Duration `yaml:"search_window"`
		PriceWindow  time.Duration `yaml:"price_window"`
	} `yaml:"throttle"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("ALPHA_VANTAGE_API_KEY"); v != "" {
		c.Provider.APIKey = v
	}
	if v := os.Getenv("PROVIDER_MODE"); v != "" {
		c.Provider.Mode = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Enabled = true
		if host, port, ok := strings.Cut(v, ":"); ok {
			c.Cache.Redis.Host = host
			c.Cache.Redis.Port = util.ParseIntDefault(port, c.Cache.Redis.Port)
		} else {
			c.Cache.Redis.Host = v
		}
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		c.Metrics.Enabled = util.ParseBoolDefault(v, c.Metrics.Enabled)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Provider.Mode == "" {
		c.Provider.Mode = "mock"
	}
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = "https://www.alphavantage.co/query"
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = 30 * time.Second
	}
	if c.Cache.SeriesTTL == 0 {
		c.Cache.SeriesTTL = time.Hour
	}
	if c.Cache.HistoricalTTL == 0 {
		c.Cache.HistoricalTTL = time.Hour
	}
	if c.Cache.Redis.Port == 0 {
		c.Cache.Redis.Port = 6379
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "stockscope"
	}
	if c.Throttle.SearchWindow == 0 {
		c.Throttle.SearchWindow = 15 * time.Second
	}
	if c.Throttle.PriceWindow == 0 {
		c.Throttle.PriceWindow = time.Minute
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Provider.Mode != "mock" && c.Provider.Mode != "alphavantage" {
		return fmt.Errorf("provider.mode must be 'mock' or 'alphavantage', got '%s'", c.Provider.Mode)
	}
	if c.Provider.Mode == "alphavantage" && c.Provider.APIKey == "" {
		return fmt.Errorf("provider.api_key is required when provider.mode is 'alphavantage'")
	}
	return nil
}
