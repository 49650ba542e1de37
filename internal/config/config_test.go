package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themer/internal/colour"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "#0078d4", cfg.Seeds.Primary)
	assert.Equal(t, "#ffffff", cfg.Seeds.Background)
	assert.Equal(t, "#333333", cfg.Seeds.Text)
	assert.Equal(t, colour.DefaultRampLength, cfg.Ramp.Length)
	assert.True(t, cfg.Ramp.Fancy)
	assert.False(t, cfg.Ramp.Inverted)
	assert.Equal(t, colour.DefaultThresholds(), cfg.Thresholds)
	assert.Equal(t, colour.DefaultCacheSize, cfg.Cache.Size)

	seeds, err := cfg.ParsedSeeds()
	require.NoError(t, err)
	assert.Equal(t, colour.DefaultSeeds(), seeds)

	opts := cfg.EngineOptions()
	assert.Equal(t, colour.DefaultEngineOptions(), opts)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themer.yaml")
	content := `
seeds:
  primary: "rgb(255, 0, 0)"
  background: "#1b1a19"
ramp:
  length: 21
  inverted: true
thresholds:
  text: 7
theme:
  index: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := New()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "rgb(255, 0, 0)", cfg.Seeds.Primary)
	assert.Equal(t, "#1b1a19", cfg.Seeds.Background)
	assert.Equal(t, "#333333", cfg.Seeds.Text, "unset keys keep defaults")
	assert.Equal(t, 21, cfg.Ramp.Length)
	assert.True(t, cfg.Ramp.Inverted)
	assert.True(t, cfg.Ramp.Fancy)
	assert.InDelta(t, 7.0, cfg.Thresholds.Text, 1e-9)
	assert.InDelta(t, colour.BorderContrast, cfg.Thresholds.Border, 1e-9)
	assert.Equal(t, 10, cfg.Theme.Index)

	seeds, err := cfg.ParsedSeeds()
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", seeds.Primary.String())
}

func TestReadFileMissing(t *testing.T) {
	v := New()
	err := ReadFile(v, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReadFileSearchWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	v := New()
	assert.NoError(t, ReadFile(v, ""))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("THEMER_SEEDS_TEXT", "#000000")
	t.Setenv("THEMER_RAMP_LENGTH", "33")
	t.Setenv("THEMER_RAMP_FANCY", "false")
	t.Setenv("THEMER_THRESHOLDS_HOVER", "1.4")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "#000000", cfg.Seeds.Text)
	assert.Equal(t, 33, cfg.Ramp.Length)
	assert.False(t, cfg.Ramp.Fancy)
	assert.InDelta(t, 1.4, cfg.Thresholds.Hover, 1e-9)
}

func TestBindFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("primary", "", "")
	flags.Int("length", 0, "")
	require.NoError(t, flags.Parse([]string{"--primary", "red"}))

	v := New()
	require.NoError(t, BindFlags(v, flags, map[string]string{
		KeySeedPrimary: "primary",
		KeyRampLength:  "length",
		KeyThemeIndex:  "index",
	}))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "red", cfg.Seeds.Primary)
	assert.Equal(t, colour.DefaultRampLength, cfg.Ramp.Length, "unchanged flags do not override defaults")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "bad seed", mutate: func(c *Config) { c.Seeds.Primary = "nope" }, wantKey: "seeds.primary"},
		{name: "non-finite seed", mutate: func(c *Config) { c.Seeds.Primary = "hsv(0, 50%, nan)" }, wantKey: "seeds.primary"},
		{name: "empty seed", mutate: func(c *Config) { c.Seeds.Text = "" }, wantKey: "seeds.text"},
		{name: "zero length", mutate: func(c *Config) { c.Ramp.Length = 0 }, wantKey: "ramp.length"},
		{name: "threshold too low", mutate: func(c *Config) { c.Thresholds.Border = 0.5 }, wantKey: "thresholds.border"},
		{name: "threshold too high", mutate: func(c *Config) { c.Thresholds.Text = 30 }, wantKey: "thresholds.text"},
		{name: "cache size", mutate: func(c *Config) { c.Cache.Size = 0 }, wantKey: "cache.size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}

	var nilCfg *Config
	assert.ErrorIs(t, nilCfg.Validate(), ErrInvalidConfig)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("THEMER_SEEDS_BACKGROUND", "not-a-colour")
	_, err := Load(New())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
