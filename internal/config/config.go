package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the anagrams command
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Search     SearchConfig     `mapstructure:"search"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig holds word list related configuration
type DictionaryConfig struct {
	Path     string `mapstructure:"path"`
	Encoding string `mapstructure:"encoding"`
}

// SearchConfig holds anagram search related configuration
type SearchConfig struct {
	MaxLength int  `mapstructure:"max_length"`
	MinLength int  `mapstructure:"min_length"`
	FoldCase  bool `mapstructure:"fold_case"`
	Limit     int  `mapstructure:"limit"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from file and environment variables.
// Environment variables are prefixed with RADIX, e.g. RADIX_SEARCH_MAX_LENGTH.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("radix")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "res/en.txt")
	v.SetDefault("dictionary.encoding", "")

	v.SetDefault("search.max_length", 20)
	v.SetDefault("search.min_length", 1)
	v.SetDefault("search.fold_case", true)
	v.SetDefault("search.limit", 0)

	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary path is required")
	}
	if c.Search.MinLength < 0 {
		return fmt.Errorf("invalid min length: %d", c.Search.MinLength)
	}
	if c.Search.MaxLength < 0 {
		return fmt.Errorf("invalid max length: %d", c.Search.MaxLength)
	}
	if c.Search.MaxLength < c.Search.MinLength {
		return fmt.Errorf("max length %d is smaller than min length %d", c.Search.MaxLength, c.Search.MinLength)
	}
	if c.Search.Limit < 0 {
		return fmt.Errorf("invalid limit: %d", c.Search.Limit)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}

	return nil
}

// ParseLevel returns the zerolog level named by the config
func (c *LogConfig) ParseLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return level, nil
}
