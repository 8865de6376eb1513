// Package config loads walletmoney settings from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/coinledger/money"
)

// EnvPrefix prefixes environment overrides, e.g. WALLETMONEY_LOGGING_LEVEL.
const EnvPrefix = "WALLETMONEY"

// Config represents the complete application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"    yaml:"logging"`
	Display    DisplayConfig    `mapstructure:"display"    yaml:"display"`
	Currencies []CurrencyConfig `mapstructure:"currencies" yaml:"currencies"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "json" or "console"
}

// DisplayConfig controls how values are rendered.
type DisplayConfig struct {
	IncludeSymbol bool `mapstructure:"include_symbol" yaml:"include_symbol"`
}

// CurrencyConfig describes a currency added on top of the built-in table.
type CurrencyConfig struct {
	Kind      string `mapstructure:"kind"       yaml:"kind"` // "fiat" or "crypto"
	Code      string `mapstructure:"code"       yaml:"code"`
	Name      string `mapstructure:"name"       yaml:"name"`
	Symbol    string `mapstructure:"symbol"     yaml:"symbol"`
	Precision int    `mapstructure:"precision"  yaml:"precision"`
	MinorUnit string `mapstructure:"minor_unit" yaml:"minor_unit"`
}

// Load reads the configuration.
// If path is empty, walletmoney.yaml is searched in the working directory and
// in ~/.walletmoney, and defaults are used when no file is found.
// If path is set, the file must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("walletmoney")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(homeDir(), ".walletmoney"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("display.include_symbol", true)
}

// ExtraCurrencies converts the configured currency entries.
func (c *Config) ExtraCurrencies() ([]money.Currency, error) {
	res := make([]money.Currency, 0, len(c.Currencies))
	for i, cc := range c.Currencies {
		curr, err := cc.Currency()
		if err != nil {
			return nil, fmt.Errorf("currencies[%d]: %w", i, err)
		}
		res = append(res, curr)
	}
	return res, nil
}

// Currency converts the entry to a currency.
func (cc CurrencyConfig) Currency() (money.Currency, error) {
	kind, err := money.ParseKind(cc.Kind)
	if err != nil {
		return money.Currency{}, err
	}
	if kind == money.Crypto {
		return money.NewCrypto(cc.Code, cc.Name, cc.Precision, cc.MinorUnit)
	}
	return money.NewFiat(cc.Code, cc.Name, cc.Symbol, cc.Precision)
}

// Registry returns the built-in registry extended with the configured currencies.
func (c *Config) Registry() (*money.Registry, error) {
	extra, err := c.ExtraCurrencies()
	if err != nil {
		return nil, err
	}
	return money.NewDefaultRegistry().With(extra...)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
