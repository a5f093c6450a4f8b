package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the bridge. The aggregate and
// traceback flags are resolved exactly once here at start-up and passed
// explicitly to the components that branch on them.
type Config struct {
	// AggregateErrors makes multi-failure scenarios raise one aggregate
	// error instead of only the first-recorded one.
	AggregateErrors bool
	// FilterTracebacks strips engine-internal frames from reported
	// stacks.
	FilterTracebacks bool

	// Output settings
	LogLevel string
	NoColor  bool
	Verbose  bool

	// Interactive opens the failure viewer after a run with failures.
	Interactive bool

	// NameFilter narrows which scenarios run/list.
	NameFilter string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags.
type Flags struct {
	Verbose            bool
	NoColor            bool
	Interactive        bool
	NameFilter         string
	NoAggregate        bool
	NoFilterTracebacks bool
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		AggregateErrors:  DefaultAggregateErrors,
		FilterTracebacks: DefaultFilterTracebacks,
		LogLevel:         DefaultLogLevel,
	}
}

// Load creates a config from defaults, the optional .env and YAML
// files, and finally the command flags, in that precedence order.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.loadEnv(DefaultEnvFile); err != nil {
		return nil, err
	}
	if err := cfg.loadFile(DefaultConfigFile); err != nil {
		return nil, err
	}
	cfg.applyFlags(flags)
	return cfg, nil
}

// loadEnv overlays UTB_* environment variables, loading the dotenv file
// first when it exists.
func (c *Config) loadEnv(envFile string) error {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	if v := os.Getenv("UTB_AGGREGATE_ERRORS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid UTB_AGGREGATE_ERRORS: %w", err)
		}
		c.AggregateErrors = b
	}
	if v := os.Getenv("UTB_FILTER_TRACEBACKS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid UTB_FILTER_TRACEBACKS: %w", err)
		}
		c.FilterTracebacks = b
	}
	if v := os.Getenv("UTB_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// fileConfig mirrors the YAML config file layout.
type fileConfig struct {
	AggregateErrors  *bool  `yaml:"aggregate_errors"`
	FilterTracebacks *bool  `yaml:"filter_tracebacks"`
	LogLevel         string `yaml:"log_level"`
	NoColor          *bool  `yaml:"no_color"`
}

// loadFile overlays the YAML config file when it exists.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if fc.AggregateErrors != nil {
		c.AggregateErrors = *fc.AggregateErrors
	}
	if fc.FilterTracebacks != nil {
		c.FilterTracebacks = *fc.FilterTracebacks
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.NoColor != nil {
		c.NoColor = *fc.NoColor
	}
	return nil
}

// applyFlags overlays command-line flags.
func (c *Config) applyFlags(flags Flags) {
	c.Flags = flags
	if flags.Verbose {
		c.Verbose = true
		c.LogLevel = "debug"
	}
	if flags.NoColor {
		c.NoColor = true
	}
	if flags.Interactive {
		c.Interactive = true
	}
	if flags.NameFilter != "" {
		c.NameFilter = flags.NameFilter
	}
	if flags.NoAggregate {
		c.AggregateErrors = false
	}
	if flags.NoFilterTracebacks {
		c.FilterTracebacks = false
	}
}
