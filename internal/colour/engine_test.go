package colour

import (
	"bytes"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, logger hclog.Logger) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultEngineOptions(), logger)
	require.NoError(t, err)
	return e
}

func TestNewEngineRejectsInvalidLength(t *testing.T) {
	opts := DefaultEngineOptions()
	opts.Length = 0
	_, err := NewEngine(opts, nil)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestEngineOptions(t *testing.T) {
	opts := DefaultEngineOptions()
	opts.Length = 11
	opts.CacheSize = 0
	e, err := NewEngine(opts, nil)
	require.NoError(t, err)

	got := e.Options()
	assert.Equal(t, 11, got.Length)
	assert.Equal(t, DefaultCacheSize, got.CacheSize, "a non-positive cache size falls back to the default")

	data, err := e.NewThemeData(DefaultSeeds(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, got, data.Options)
	assert.Len(t, data.Ramps.Background, 11)
}

func TestEngineMemoizes(t *testing.T) {
	e := newTestEngine(t, nil)
	seeds := DefaultSeeds()

	r1, err := e.Ramps(seeds)
	require.NoError(t, err)
	r2, err := e.Ramps(seeds)
	require.NoError(t, err)
	assert.Same(t, r1, r2)

	t1, err := e.Theme(seeds, 0)
	require.NoError(t, err)
	t2, err := e.Theme(seeds, 0)
	require.NoError(t, err)
	assert.Same(t, t1, t2)

	t3, err := e.Theme(seeds, 1)
	require.NoError(t, err)
	assert.NotSame(t, t1, t3)

	e.Purge()
	t4, err := e.Theme(seeds, 0)
	require.NoError(t, err)
	assert.NotSame(t, t1, t4)
	assert.Equal(t, t1, t4)
}

func TestEngineMatchesDirectDerivation(t *testing.T) {
	e := newTestEngine(t, nil)
	rs := defaultRamps(t)

	want, err := DeriveTheme(rs.Background, rs.Primary, rs.Text, 42)
	require.NoError(t, err)
	got, err := e.Theme(DefaultSeeds(), 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEngineConcurrentAccess(t *testing.T) {
	e := newTestEngine(t, nil)
	seeds := DefaultSeeds()

	const workers = 16
	results := make([]*Theme, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			th, err := e.Theme(seeds, 5)
			assert.NoError(t, err)
			results[i] = th
		}()
	}
	wg.Wait()

	for _, th := range results[1:] {
		assert.Same(t, results[0], th)
	}
}

func TestEngineLogsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Output: &buf,
		Level:  hclog.Warn,
	})
	e := newTestEngine(t, logger)

	th, err := e.Theme(DefaultSeeds(), 500)
	require.NoError(t, err)
	assert.True(t, th.Diagnostics.Has(DiagnosticIndexOutOfRange))
	assert.Contains(t, buf.String(), "index-out-of-range")
	assert.Contains(t, buf.String(), "background_index=98")
}

func TestEngineThemes(t *testing.T) {
	e := newTestEngine(t, nil)
	themes, err := e.Themes(DefaultSeeds(), 0, 20, 40)
	require.NoError(t, err)
	require.Len(t, themes, 3)
	assert.Equal(t, 20, themes[1].BackgroundIndex)
}

func TestNewThemeData(t *testing.T) {
	e := newTestEngine(t, nil)
	data, err := e.NewThemeData(DefaultSeeds(), 0, "light")
	require.NoError(t, err)
	assert.Equal(t, "light", data.ThemeName)
	assert.Len(t, data.Ramps.Background, DefaultRampLength)
	assert.Equal(t, "#333333", data.Theme.Default.Text.String())
	assert.True(t, data.Options.Fancy)
}

func TestDiagnosticsLogNilLogger(t *testing.T) {
	ds := Diagnostics{{Kind: DiagnosticNoSolution, Slot: SlotDefaultText, Message: "x"}}
	assert.NotPanics(t, func() { ds.Log(nil) })
	assert.Equal(t, "no-solution: default-text: x", ds[0].String())
}
