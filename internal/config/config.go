// Package config loads the spiget CLI configuration from a TOML file.
//
// The file is optional. Every key has a default, so an empty or missing
// file yields Default(). Example:
//
//	base_url = "https://api.spiget.org/v2/"
//	timeout  = "30s"
//	rate_limit = 2.5   # requests per second
//
//	[cache]
//	backend    = "redis"   # memory, file or redis
//	ttl        = "6h"
//	redis_addr = "localhost:6379"
//
//	[log]
//	level = "debug"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	apierr "github.com/matzehuels/spiget/pkg/errors"
	"github.com/matzehuels/spiget/pkg/integrations"
)

const appName = "spiget"

// Cache backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config is the CLI configuration.
type Config struct {
	BaseURL   string      `toml:"base_url"`
	UserAgent string      `toml:"user_agent"` // Empty means the built-in client identifier
	Timeout   Duration    `toml:"timeout"`
	RateLimit float64     `toml:"rate_limit"` // Requests per second; zero disables the limiter
	Cache     CacheConfig `toml:"cache"`
	Log       LogConfig   `toml:"log"`
}

// CacheConfig selects the second-tier response cache.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"` // File backend directory; empty means the XDG cache dir
	TTL       Duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
	RedisDB   int      `toml:"redis_db"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a string ("30s", "1h30m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		BaseURL: integrations.DefaultBaseURL,
		Timeout: Duration{integrations.DefaultTimeout},
		Cache: CacheConfig{
			Backend:   BackendFile,
			TTL:       Duration{integrations.DefaultTTL},
			RedisAddr: "localhost:6379",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the configuration at path on top of Default().
// With an empty path the default location is used, and a missing file
// there is not an error. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, apierr.Wrap(apierr.ErrCodeConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, apierr.New(apierr.ErrCodeConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the client cannot use.
func (c *Config) Validate() error {
	if err := apierr.ValidateURL(c.BaseURL); err != nil {
		return apierr.Wrap(apierr.ErrCodeConfig, err, "base_url")
	}
	if c.Timeout.Duration <= 0 {
		return apierr.New(apierr.ErrCodeConfig, "timeout must be positive, got %s", c.Timeout)
	}
	if c.RateLimit < 0 {
		return apierr.New(apierr.ErrCodeConfig, "rate_limit must not be negative, got %g", c.RateLimit)
	}
	switch c.Cache.Backend {
	case BackendMemory, BackendFile:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return apierr.New(apierr.ErrCodeConfig, "cache.redis_addr is required for the redis backend")
		}
		if c.Cache.RedisDB < 0 {
			return apierr.New(apierr.ErrCodeConfig, "cache.redis_db must not be negative")
		}
	default:
		return apierr.New(apierr.ErrCodeConfig, "unknown cache.backend %q (want memory, file or redis)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return apierr.New(apierr.ErrCodeConfig, "cache.ttl must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return apierr.Wrap(apierr.ErrCodeConfig, err, "log.level")
	}
	return nil
}

// LogLevel returns the configured level. Validate has already rejected
// unknown names, so this falls back to info only on unvalidated configs.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// CacheDir returns the file backend directory.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// DefaultPath returns $XDG_CONFIG_HOME/spiget/config.toml, falling back to
// ~/.config/spiget/config.toml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
