// Package config handles application configuration from CLI flags and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the minimum level written to the stderr log.
	LogLevel string

	// Seed seeds the secret number generator. Zero seeds from the clock.
	Seed uint64
}

// Default values.
const (
	DefaultLogLevel        = "warn"
	DefaultSeed     uint64 = 0
)

// Environment variable names.
const (
	EnvLogLevel = "GUESS_LOG_LEVEL"
	EnvSeed     = "GUESS_SEED"
)

// Bind registers the configuration flags on fs and returns the Config they
// populate. Call Finalize after fs has been parsed.
func Bind(fs *pflag.FlagSet) *Config {
	cfg := &Config{}

	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel,
		"Minimum log level: debug, info, warn, error (env: "+EnvLogLevel+")")
	fs.Uint64Var(&cfg.Seed, "seed", DefaultSeed,
		"Seed for the secret number, 0 for time-based (env: "+EnvSeed+")")

	return cfg
}

// LoadWithDefaults returns a Config with default values without parsing flags.
// Useful for testing.
func LoadWithDefaults() *Config {
	cfg := &Config{
		LogLevel: DefaultLogLevel,
		Seed:     DefaultSeed,
	}
	cfg.applyEnvOverrides(nil)
	return cfg
}

// Finalize applies environment overrides to every flag not set explicitly
// on the command line, then validates the result.
func (c *Config) Finalize(fs *pflag.FlagSet) error {
	c.applyEnvOverrides(fs)

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c *Config) applyEnvOverrides(fs *pflag.FlagSet) {
	changed := func(name string) bool {
		return fs != nil && fs.Changed(name)
	}

	if v := os.Getenv(EnvLogLevel); v != "" && !changed("log-level") {
		if _, err := zapcore.ParseLevel(v); err == nil {
			c.LogLevel = v
		}
	}

	if v := os.Getenv(EnvSeed); v != "" && !changed("seed") {
		if s, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = s
		}
	}
}
