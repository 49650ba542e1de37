package colour

// ThemeData bundles everything output plugins need to render a theme.
type ThemeData struct {
	Seeds   Seeds
	Ramps   *RampSet
	Theme   *Theme
	Options EngineOptions

	// ThemeName is an optional theme name that can be set by callers.
	ThemeName string
}

// NewThemeData derives the ramps and theme for seeds at backgroundIndex and
// bundles them for output.
func (e *Engine) NewThemeData(seeds Seeds, backgroundIndex int, themeName string) (*ThemeData, error) {
	rs, err := e.Ramps(seeds)
	if err != nil {
		return nil, err
	}
	t, err := e.Theme(seeds, backgroundIndex)
	if err != nil {
		return nil, err
	}
	return &ThemeData{Seeds: seeds, Ramps: rs, Theme: t, Options: e.Options(), ThemeName: themeName}, nil
}
