/*
Package config manages the TOML config of the utilx command.

	[calc]
	precision = 20

	[calc.currency]
	"$" = 100
	"€" = 110

	[format]
	extras = true
	locale = "tr"

	[format.aliases]
	code = "trim:upper:pad(8,-)"

	[log]
	level = "info"
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/hasbyte1/go-utils/calc"
)

// ErrInvalidCurrency is returned when a currency key is not a single
// character or its multiplier is not positive.
var ErrInvalidCurrency = errors.New("config: invalid currency entry")

// Config holds the entire config structure.
type Config struct {
	Calc   CalcConfig   `toml:"calc"`
	Format FormatConfig `toml:"format"`
	Log    LogConfig    `toml:"log"`
}

// CalcConfig holds calculator options.
type CalcConfig struct {
	Precision int32            `toml:"precision"`
	Currency  map[string]int64 `toml:"currency"`
}

// FormatConfig holds template formatter options.
type FormatConfig struct {
	Extras  bool              `toml:"extras"`
	Locale  string            `toml:"locale"`
	Aliases map[string]string `toml:"aliases"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Calc: CalcConfig{
			Precision: calc.DefaultOptions().DivisionPrecision,
			Currency:  map[string]int64{},
		},
		Format: FormatConfig{
			Extras:  true,
			Aliases: map[string]string{},
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultPath returns [UserConfigDir]/utilx/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "utilx", "config.toml"), nil
}

// LoadConfig loads a TOML file over the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigWithPriority loads config with priority:
//  1. Custom path from --config flag
//  2. Default path: [UserConfigDir]/utilx/config.toml
//  3. Builtin defaults
//
// It returns the path that was loaded, or "" for the defaults. A custom path
// that is missing or unreadable is an error; a broken default file is only
// logged.
func LoadConfigWithPriority(customPath string) (*Config, string, error) {
	if customPath != "" {
		cfg, err := LoadConfig(customPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, customPath, nil
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		log.Debugf("No default config directory: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	if _, statErr := os.Stat(defaultPath); statErr != nil {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// SaveConfig writes cfg as TOML, creating the parent directory.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// CurrencyTable converts the [calc.currency] table. Each key must be exactly
// one character and each multiplier positive.
func (c *Config) CurrencyTable() (calc.Currency, error) {
	table := make(calc.Currency, len(c.Calc.Currency))
	for sym, mult := range c.Calc.Currency {
		r, size := utf8.DecodeRuneInString(sym)
		if sym == "" || size != len(sym) || r == utf8.RuneError {
			return nil, fmt.Errorf("%w: symbol %q", ErrInvalidCurrency, sym)
		}
		table[r] = mult
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCurrency, err)
	}
	return table, nil
}

// CalcOptions returns calculator options built from the config.
func (c *Config) CalcOptions(logger *log.Logger) (calc.Options, error) {
	table, err := c.CurrencyTable()
	if err != nil {
		return calc.Options{}, err
	}
	return calc.Options{
		Currency:          table,
		DivisionPrecision: c.Calc.Precision,
		Logger:            logger,
	}, nil
}
