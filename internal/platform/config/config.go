package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures process-level configuration for the console.
type Config struct {
	Stats   StatsConfig   `yaml:"stats"`
	Redis   RedisConfig   `yaml:"redis"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
	Links   LinksConfig   `yaml:"links"`
}

// StatsConfig configures the pandemic statistics API client.
type StatsConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// RedisConfig configures the optional shared stats cache. An empty URL
// disables Redis and the in-process cache is used instead.
type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// MetricsConfig configures the Prometheus endpoint. Empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// LinksConfig controls browser launches after a verdict.
type LinksConfig struct {
	Open  bool          `yaml:"open"`
	Delay time.Duration `yaml:"delay"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Stats: StatsConfig{
			BaseURL:  "https://api.covid19api.com",
			Timeout:  10 * time.Second,
			CacheTTL: 5 * time.Minute,
		},
		Redis: RedisConfig{
			PoolSize:     4,
			MinIdleConns: 0,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "json",
		},
		Links: LinksConfig{
			Open:  true,
			Delay: 2 * time.Second,
		},
	}
}

// Load layers configuration: defaults, then the YAML file named by CERB_CONFIG
// (if set), then individual environment variables.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("CERB_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("CERB_STATS_BASE_URL"); v != "" {
		c.Stats.BaseURL = v
	}
	if v := getenv("CERB_REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
	if v := getenv("CERB_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
	if v := getenv("CERB_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("CERB_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"CERB_HTTP_TIMEOUT", &c.Stats.Timeout},
		{"CERB_STATS_CACHE_TTL", &c.Stats.CacheTTL},
		{"CERB_BROWSER_DELAY", &c.Links.Delay},
	}
	for _, d := range durations {
		v := getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if v := getenv("CERB_OPEN_LINKS"); v != "" {
		open, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CERB_OPEN_LINKS: %w", err)
		}
		c.Links.Open = open
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Stats.BaseURL == "" {
		return fmt.Errorf("stats.base_url is required")
	}
	if c.Stats.Timeout <= 0 {
		return fmt.Errorf("stats.timeout must be positive")
	}
	if c.Stats.CacheTTL < 0 {
		return fmt.Errorf("stats.cache_ttl must not be negative")
	}
	if c.Links.Delay < 0 {
		return fmt.Errorf("links.delay must not be negative")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}
