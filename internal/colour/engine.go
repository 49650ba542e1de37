package colour

import (
	"fmt"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheSize is the number of ramp sets and themes the Engine keeps.
const DefaultCacheSize = 128

// Seeds are the three user-chosen colours every ramp is built from.
type Seeds struct {
	Primary    Color `json:"primary" yaml:"primary"`
	Background Color `json:"background" yaml:"background"`
	Text       Color `json:"text" yaml:"text"`
}

// DefaultSeeds returns #0078d4 primary, #ffffff background and #333333 text.
func DefaultSeeds() Seeds {
	return Seeds{
		Primary:    MustParse("#0078d4"),
		Background: MustParse("#ffffff"),
		Text:       MustParse("#333333"),
	}
}

// RampSet holds the three ramps derived from a set of seeds.
type RampSet struct {
	Background Ramp `json:"background" yaml:"background"`
	Primary    Ramp `json:"primary" yaml:"primary"`
	Text       Ramp `json:"text" yaml:"text"`
}

// BuildRamps builds the background, primary and text ramps for seeds.
func BuildRamps(seeds Seeds, length int, fancy, inverted bool) (*RampSet, error) {
	bg, err := BuildBackgroundRamp(seeds.Background, length, inverted)
	if err != nil {
		return nil, fmt.Errorf("background ramp: %w", err)
	}
	primary, err := BuildAccentRamp(seeds.Primary, seeds.Background, length, fancy, inverted)
	if err != nil {
		return nil, fmt.Errorf("primary ramp: %w", err)
	}
	text, err := BuildAccentRamp(seeds.Text, seeds.Background, length, fancy, inverted)
	if err != nil {
		return nil, fmt.Errorf("text ramp: %w", err)
	}
	return &RampSet{Background: bg, Primary: primary, Text: text}, nil
}

// EngineOptions configures ramp construction and theme derivation.
type EngineOptions struct {
	Length     int
	Fancy      bool
	Inverted   bool
	Thresholds Thresholds
	CacheSize  int
}

// DefaultEngineOptions returns 99-shade fancy, non-inverted ramps with the
// default thresholds.
func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		Length:     DefaultRampLength,
		Fancy:      true,
		Thresholds: DefaultThresholds(),
		CacheSize:  DefaultCacheSize,
	}
}

// Engine derives ramps and themes from seeds, memoizing results by seed tuple
// and background index. It is safe for concurrent use.
type Engine struct {
	opts   EngineOptions
	logger hclog.Logger

	mu     sync.Mutex
	ramps  *lru.Cache
	themes *lru.Cache
	group  singleflight.Group
}

type rampKey struct {
	primary, background, text RGBA
}

type themeKey struct {
	rampKey
	index int
}

// NewEngine creates an Engine. A nil logger discards diagnostics.
func NewEngine(opts EngineOptions, logger hclog.Logger) (*Engine, error) {
	if opts.Length < 1 {
		return nil, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidLength, opts.Length)
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Engine{
		opts:   opts,
		logger: logger,
		ramps:  lru.New(opts.CacheSize),
		themes: lru.New(opts.CacheSize),
	}, nil
}

// Options returns the options the engine was created with.
func (e *Engine) Options() EngineOptions {
	return e.opts
}

func keyFor(seeds Seeds) rampKey {
	return rampKey{
		primary:    seeds.Primary.rgba,
		background: seeds.Background.rgba,
		text:       seeds.Text.rgba,
	}
}

func (e *Engine) cached(cache *lru.Cache, key lru.Key) (any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cache.Get(key)
}

func (e *Engine) store(cache *lru.Cache, key lru.Key, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cache.Add(key, value)
}

// Ramps returns the ramp set for seeds, building it on first use.
func (e *Engine) Ramps(seeds Seeds) (*RampSet, error) {
	key := keyFor(seeds)
	if v, ok := e.cached(e.ramps, key); ok {
		return v.(*RampSet), nil
	}

	v, err, _ := e.group.Do(fmt.Sprintf("ramps:%v", key), func() (any, error) {
		if v, ok := e.cached(e.ramps, key); ok {
			return v, nil
		}
		e.logger.Debug("building ramps",
			"primary", seeds.Primary.String(),
			"background", seeds.Background.String(),
			"text", seeds.Text.String(),
			"length", e.opts.Length)

		rs, err := BuildRamps(seeds, e.opts.Length, e.opts.Fancy, e.opts.Inverted)
		if err != nil {
			return nil, err
		}
		e.store(e.ramps, key, rs)
		return rs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*RampSet), nil
}

// Theme returns the theme for seeds at the given background index. Every
// diagnostic produced during derivation is logged at warn level and kept on
// the returned theme.
//
// The returned theme is shared with the cache and must not be modified.
func (e *Engine) Theme(seeds Seeds, backgroundIndex int) (*Theme, error) {
	key := themeKey{rampKey: keyFor(seeds), index: backgroundIndex}
	if v, ok := e.cached(e.themes, key); ok {
		return v.(*Theme), nil
	}

	v, err, _ := e.group.Do(fmt.Sprintf("theme:%v", key), func() (any, error) {
		if v, ok := e.cached(e.themes, key); ok {
			return v, nil
		}
		rs, err := e.Ramps(seeds)
		if err != nil {
			return nil, err
		}

		t, err := DeriveThemeWith(rs.Background, rs.Primary, rs.Text, backgroundIndex, e.opts.Thresholds)
		if err != nil {
			return nil, err
		}
		t.Diagnostics.Log(e.logger.With("background_index", t.BackgroundIndex))

		e.store(e.themes, key, t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Theme), nil
}

// Themes derives one theme per background index, in order.
func (e *Engine) Themes(seeds Seeds, indices ...int) ([]*Theme, error) {
	out := make([]*Theme, 0, len(indices))
	for _, idx := range indices {
		t, err := e.Theme(seeds, idx)
		if err != nil {
			return nil, fmt.Errorf("background index %d: %w", idx, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// Purge empties the caches.
func (e *Engine) Purge() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ramps.Clear()
	e.themes.Clear()
}
