// Package config loads gramod settings from a TOML file.
//
// Every field has a default, so a missing file or an empty path yields a
// usable configuration:
//
//	base = 3
//	max_modulus = 100000
//
//	[server]
//	addr = ":8080"
//	read_timeout = "5s"
//	write_timeout = "30s"
//
//	[log]
//	level = "info"
package config

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gramod/pkg/errors"
)

// Defaults.
const (
	// DefaultBase is the base of Graham's number.
	DefaultBase = 3

	// DefaultMaxModulus caps the modulus accepted by the form frontend.
	// Work and memory grow linearly with the modulus.
	DefaultMaxModulus = 100000

	DefaultAddr         = ":8080"
	DefaultReadTimeout  = 5 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultLogLevel     = "info"
)

// Config is the top-level configuration.
type Config struct {
	Base       int    `toml:"base"`
	MaxModulus int    `toml:"max_modulus"`
	Server     Server `toml:"server"`
	Log        Log    `toml:"log"`
}

// Server configures the HTML form frontend.
type Server struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

// Log configures the logger.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Base:       DefaultBase,
		MaxModulus: DefaultMaxModulus,
		Server: Server{
			Addr:         DefaultAddr,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// Load reads the TOML file at path on top of [Default].
// An empty path returns the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := errors.ValidateBase(c.Base); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "base")
	}
	if c.MaxModulus < 2 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_modulus must be at least 2, got %d", c.MaxModulus)
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr cannot be empty")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server timeouts cannot be negative")
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts the configured level name.
func (l Log) ParseLevel() (log.Level, error) {
	if l.Level == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	return level, nil
}
