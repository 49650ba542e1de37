// Package config loads themer settings from defaults, a config file, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/themer/internal/colour"
)

// EnvPrefix is the prefix for environment overrides, e.g. THEMER_RAMP_LENGTH.
const EnvPrefix = "THEMER"

// Config keys.
const (
	KeySeedPrimary         = "seeds.primary"
	KeySeedBackground      = "seeds.background"
	KeySeedText            = "seeds.text"
	KeyRampLength          = "ramp.length"
	KeyRampFancy           = "ramp.fancy"
	KeyRampInverted        = "ramp.inverted"
	KeyThresholdText       = "thresholds.text"
	KeyThresholdBorder     = "thresholds.border"
	KeyThresholdHover      = "thresholds.hover"
	KeyThresholdBackground = "thresholds.background"
	KeyThemeIndex          = "theme.index"
	KeyCacheSize           = "cache.size"
)

// Config is the fully resolved themer configuration.
type Config struct {
	Seeds      SeedsConfig       `mapstructure:"seeds" yaml:"seeds"`
	Ramp       RampConfig        `mapstructure:"ramp" yaml:"ramp"`
	Thresholds colour.Thresholds `mapstructure:"thresholds" yaml:"thresholds"`
	Theme      ThemeConfig       `mapstructure:"theme" yaml:"theme"`
	Cache      CacheConfig       `mapstructure:"cache" yaml:"cache"`
}

// SeedsConfig holds the three seed colours as written by the user.
type SeedsConfig struct {
	Primary    string `mapstructure:"primary" yaml:"primary" validate:"required,colour"`
	Background string `mapstructure:"background" yaml:"background" validate:"required,colour"`
	Text       string `mapstructure:"text" yaml:"text" validate:"required,colour"`
}

// RampConfig controls ramp construction.
type RampConfig struct {
	Length   int  `mapstructure:"length" yaml:"length" validate:"gte=1,lte=4096"`
	Fancy    bool `mapstructure:"fancy" yaml:"fancy"`
	Inverted bool `mapstructure:"inverted" yaml:"inverted"`
}

// ThemeConfig selects the background shade. Out-of-range indices are clamped
// during derivation, so any integer is accepted.
type ThemeConfig struct {
	Index int `mapstructure:"index" yaml:"index"`
}

// CacheConfig sizes the engine memo cache.
type CacheConfig struct {
	Size int `mapstructure:"size" yaml:"size" validate:"gte=1"`
}

// New returns a viper instance with defaults and environment overrides set.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	seeds := colour.DefaultSeeds()
	v.SetDefault(KeySeedPrimary, seeds.Primary.String())
	v.SetDefault(KeySeedBackground, seeds.Background.String())
	v.SetDefault(KeySeedText, seeds.Text.String())

	v.SetDefault(KeyRampLength, colour.DefaultRampLength)
	v.SetDefault(KeyRampFancy, true)
	v.SetDefault(KeyRampInverted, false)

	th := colour.DefaultThresholds()
	v.SetDefault(KeyThresholdText, th.Text)
	v.SetDefault(KeyThresholdBorder, th.Border)
	v.SetDefault(KeyThresholdHover, th.Hover)
	v.SetDefault(KeyThresholdBackground, th.Background)

	v.SetDefault(KeyThemeIndex, 0)
	v.SetDefault(KeyCacheSize, colour.DefaultCacheSize)
}

// SearchPaths returns the directories searched for themer.yaml when no
// explicit config file is given.
func SearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "themer"))
	}
	return paths
}

// ReadFile reads the config file at path into v. With an empty path it looks
// for themer.yaml in SearchPaths and a missing file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("themer")
	v.SetConfigType("yaml")
	for _, p := range SearchPaths() {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// BindFlags binds command-line flags to config keys. Keys whose flag is not
// defined on flags are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, bindings map[string]string) error {
	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s to %s: %w", name, key, err)
		}
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with nothing but defaults applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

// ParsedSeeds parses the configured seed colours.
func (c *Config) ParsedSeeds() (colour.Seeds, error) {
	var seeds colour.Seeds
	var err error
	if seeds.Primary, err = colour.ParseColor(c.Seeds.Primary); err != nil {
		return seeds, fmt.Errorf("%s: %w", KeySeedPrimary, err)
	}
	if seeds.Background, err = colour.ParseColor(c.Seeds.Background); err != nil {
		return seeds, fmt.Errorf("%s: %w", KeySeedBackground, err)
	}
	if seeds.Text, err = colour.ParseColor(c.Seeds.Text); err != nil {
		return seeds, fmt.Errorf("%s: %w", KeySeedText, err)
	}
	return seeds, nil
}

// EngineOptions converts the ramp, threshold and cache settings.
func (c *Config) EngineOptions() colour.EngineOptions {
	return colour.EngineOptions{
		Length:     c.Ramp.Length,
		Fancy:      c.Ramp.Fancy,
		Inverted:   c.Ramp.Inverted,
		Thresholds: c.Thresholds,
		CacheSize:  c.Cache.Size,
	}
}
