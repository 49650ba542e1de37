package cli

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themer/internal/colour"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		quiet   bool
		want    hclog.Level
	}{
		{name: "level", level: "info", want: hclog.Info},
		{name: "verbose", level: "warn", verbose: true, want: hclog.Debug},
		{name: "quiet", level: "trace", quiet: true, want: hclog.Error},
		{name: "verbose wins", level: "warn", verbose: true, quiet: true, want: hclog.Debug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(&buf, tt.level, tt.verbose, tt.quiet, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.GetLevel())
			assert.Equal(t, "themer", logger.Name())
		})
	}

	_, err := newLogger(&bytes.Buffer{}, "loud", false, false, false)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	got, err := parseFormat("format", "JSON", "table", "json")
	require.NoError(t, err)
	assert.Equal(t, "json", got)

	_, err = parseFormat("format", "xml", "table", "json")
	assert.ErrorContains(t, err, "invalid --format \"xml\" (valid: table, json)")
}

func TestPreviewerDisabled(t *testing.T) {
	pv := newPreviewer(&bytes.Buffer{}, false)
	assert.False(t, pv.enabled)
	assert.Empty(t, pv.Swatch(colour.White))
	assert.Equal(t, []string{"Slot"}, pv.headers("Slot"))
	assert.Equal(t, []string{"#ffffff"}, pv.row(colour.White, "#ffffff"))
}

func TestPreviewerForced(t *testing.T) {
	pv := newPreviewer(&bytes.Buffer{}, true)
	require.True(t, pv.enabled)

	swatch := pv.Swatch(colour.White)
	assert.Contains(t, swatch, "\x1b[")
	assert.Equal(t, []string{"", "Slot"}, pv.headers("Slot"))
	assert.Len(t, pv.row(colour.White, "#ffffff"), 2)
	assert.Contains(t, pv.Sample(colour.White, colour.White, "Aa"), "Aa")
}
