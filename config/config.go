// Package config provides Viper-based configuration for the bikeshare tool.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/andareed/siftly-bikeshare/filters"
)

const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Config represents the complete configuration
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Pager   PagerConfig   `mapstructure:"pager"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DataConfig says where trip tables come from.
type DataConfig struct {
	Dir        string            `mapstructure:"dir"`
	Source     string            `mapstructure:"source"`
	SQLitePath string            `mapstructure:"sqlite_path"`
	Cities     map[string]string `mapstructure:"cities"`
}

type PagerConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type OutputConfig struct {
	Colors  bool `mapstructure:"colors"`
	Timings bool `mapstructure:"timings"`
}

type LoggingConfig struct {
	File   string `mapstructure:"file"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Overrides carries command line values that win over file and environment.
type Overrides struct {
	DataDir  string
	LogFile  string
	NoColors bool
}

// Load reads configuration from file and environment variables
func Load(cfgFile string, o Overrides) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".bikeshare")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bikeshare")
	}

	v.SetEnvPrefix("BIKESHARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if o.DataDir != "" {
		v.Set("data.dir", o.DataDir)
	}
	if o.LogFile != "" {
		v.Set("logging.file", o.LogFile)
	}
	if o.NoColors {
		v.Set("output.colors", false)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", ".")
	v.SetDefault("data.source", SourceCSV)
	v.SetDefault("data.sqlite_path", "bikeshare.db")
	v.SetDefault("data.cities", map[string]string{
		filters.Chicago:     "chicago.csv",
		filters.NewYorkCity: "new_york_city.csv",
		filters.Washington:  "washington.csv",
	})

	v.SetDefault("pager.page_size", 5)

	v.SetDefault("output.colors", true)
	v.SetDefault("output.timings", true)

	v.SetDefault("logging.file", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	switch c.Data.Source {
	case SourceCSV:
		for _, city := range filters.Cities {
			if c.Data.Cities[city] == "" {
				return fmt.Errorf("no data file configured for city %q", city)
			}
		}
	case SourceSQLite:
		if c.Data.SQLitePath == "" {
			return errors.New("data.sqlite_path is required for the sqlite source")
		}
	default:
		return fmt.Errorf("invalid data source: %s (must be %s or %s)", c.Data.Source, SourceCSV, SourceSQLite)
	}

	if c.Pager.PageSize <= 0 {
		return fmt.Errorf("invalid pager.page_size: %d (must be positive)", c.Pager.PageSize)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be text or json)", c.Logging.Format)
	}
	return nil
}
