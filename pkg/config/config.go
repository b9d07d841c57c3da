// Package config loads depscope configuration from a YAML file with
// environment overrides.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/depscope/depscope/pkg/cache"
	"github.com/depscope/depscope/pkg/errors"
	"github.com/depscope/depscope/pkg/license"
)

// DefaultFileName is the config file looked up when no path is given.
const DefaultFileName = ".depscope.yaml"

// Config is the full depscope configuration.
type Config struct {
	// Licenses configures the classifier match lists.
	Licenses license.Config `yaml:"licenses"`

	// Ort configures the external CLI invocation.
	Ort OrtConfig `yaml:"ort"`

	// CacheDir is where result files are written and looked up.
	CacheDir string `yaml:"cache_dir"`

	// Diagnostics enables downstream diagnostic rendering.
	Diagnostics bool `yaml:"diagnostics"`

	// History configures the local run history store.
	History HistoryConfig `yaml:"history"`

	// Watch configures watch mode.
	Watch WatchConfig `yaml:"watch"`
}

// OrtConfig configures the ort CLI invocation.
type OrtConfig struct {
	Binary     string   `yaml:"binary"`
	Timeout    Duration `yaml:"timeout"`
	ConfigFile string   `yaml:"config_file,omitempty"`
	Advisors   []string `yaml:"advisors,omitempty"`
}

// HistoryConfig configures the sqlite run history.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Interval    Duration `yaml:"interval"`
	MetricsAddr string   `yaml:"metrics_addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Licenses:    license.DefaultConfig(),
		Ort:         OrtConfig{Binary: "ort", Timeout: Duration(30 * time.Minute), Advisors: []string{"OSV"}},
		CacheDir:    cache.DefaultDir(),
		Diagnostics: true,
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(cache.DefaultDir(), "history.db"),
		},
		Watch: WatchConfig{
			Interval:    Duration(30 * time.Second),
			MetricsAddr: ":9402",
		},
	}
}

// Load reads the configuration. A missing file at the default path is not an
// error (defaults apply); an explicitly given path must exist. A .env file in
// the working directory is loaded first, then environment variables override
// individual fields.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.E(op, errors.KindParse, "invalid config file", err)
		}
	case os.IsNotExist(err) && !explicit:
		// Defaults apply.
	default:
		return nil, errors.E(op, errors.KindNotFound, "cannot read config file", err)
	}

	cfg.applyEnv()
	if cfg.History.Path == "" {
		cfg.History.Path = filepath.Join(cfg.CacheDir, "history.db")
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	const op = "config.Save"

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.E(op, errors.KindInternal, "cannot marshal config", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.E(op, errors.KindStorage, "cannot write config file", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DEPSCOPE_ORT_BINARY"); v != "" {
		c.Ort.Binary = v
	}
	if v := os.Getenv("DEPSCOPE_CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv("DEPSCOPE_ORT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Ort.Timeout = Duration(d)
		}
	}
	if v := os.Getenv("DEPSCOPE_METRICS_ADDR"); v != "" {
		c.Watch.MetricsAddr = v
	}
}
