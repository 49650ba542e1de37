// Package cli provides the command-line interface for themer.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/themer/internal/colour"
	"github.com/jmylchreest/themer/internal/config"
	"github.com/jmylchreest/themer/internal/output"
	"github.com/jmylchreest/themer/internal/output/css"
	"github.com/jmylchreest/themer/internal/output/document"
	"github.com/jmylchreest/themer/internal/output/tailwind"
	"github.com/jmylchreest/themer/internal/output/usertemplate"
	"github.com/jmylchreest/themer/internal/version"
)

// Flag names shared by several commands.
const (
	flagConfig             = "config"
	flagVerbose            = "verbose"
	flagQuiet              = "quiet"
	flagLogLevel           = "log-level"
	flagLogJSON            = "log-json"
	flagPreview            = "preview"
	flagPrimary            = "primary"
	flagBackground         = "background"
	flagText               = "text"
	flagLength             = "length"
	flagFancy              = "fancy"
	flagInverted           = "inverted"
	flagTextContrast       = "text-contrast"
	flagBorderContrast     = "border-contrast"
	flagHoverContrast      = "hover-contrast"
	flagBackgroundContrast = "background-contrast"
	flagIndex              = "index"
)

// flagBindings maps config keys to the flags that override them.
var flagBindings = map[string]string{
	config.KeySeedPrimary:         flagPrimary,
	config.KeySeedBackground:      flagBackground,
	config.KeySeedText:            flagText,
	config.KeyRampLength:          flagLength,
	config.KeyRampFancy:           flagFancy,
	config.KeyRampInverted:        flagInverted,
	config.KeyThresholdText:       flagTextContrast,
	config.KeyThresholdBorder:     flagBorderContrast,
	config.KeyThresholdHover:      flagHoverContrast,
	config.KeyThresholdBackground: flagBackgroundContrast,
	config.KeyThemeIndex:          flagIndex,
}

// loggerSetter is implemented by plugins that log template resolution.
type loggerSetter interface {
	SetLogger(hclog.Logger)
}

// app holds the state shared by every command of one root command tree.
type app struct {
	v        *viper.Viper
	logger   hclog.Logger
	registry *output.Registry

	configFile string
	verbose    bool
	quiet      bool
	logLevel   string
	logJSON    bool
	preview    bool

	cfg    *config.Config
	engine *colour.Engine
}

// NewRootCmd builds a fresh command tree. Each call returns independent
// state, so tests can execute commands in parallel.
func NewRootCmd() *cobra.Command {
	a := &app{
		logger: hclog.NewNullLogger(),
		registry: output.NewRegistry(
			css.New(),
			document.New("json"),
			document.New("yaml"),
			tailwind.New(),
			usertemplate.New(),
		),
	}

	rootCmd := &cobra.Command{
		Use:   "themer",
		Short: "Derive accessible colour themes from three seed colours",
		Long: `Themer builds shade ramps from a primary, background and text colour and
derives a 21-slot UI theme whose text, border and hover colours meet WCAG
contrast thresholds against the chosen background shade.

Settings are read from flags, THEMER_* environment variables and themer.yaml
(in the current directory or the user config directory), in that order.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetVersionTemplate(version.String() + "\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.configFile, flagConfig, "c", "", "config file (default: themer.yaml in . or the user config dir)")
	pf.BoolVarP(&a.verbose, flagVerbose, "v", false, "enable debug logging")
	pf.BoolVarP(&a.quiet, flagQuiet, "q", false, "only log errors")
	pf.StringVar(&a.logLevel, flagLogLevel, "warn", "log level (trace, debug, info, warn, error)")
	pf.BoolVar(&a.logJSON, flagLogJSON, false, "log as JSON")
	pf.BoolVar(&a.preview, flagPreview, false, "always show colour swatches (default: only on a terminal)")

	seeds := colour.DefaultSeeds()
	th := colour.DefaultThresholds()
	pf.String(flagPrimary, seeds.Primary.String(), "primary seed colour")
	pf.String(flagBackground, seeds.Background.String(), "background seed colour")
	pf.String(flagText, seeds.Text.String(), "text seed colour")
	pf.Int(flagLength, colour.DefaultRampLength, "number of shades per ramp")
	pf.Bool(flagFancy, true, "build accent ramps from the background seed instead of white")
	pf.Bool(flagInverted, false, "invert ramps for dark backgrounds")
	pf.Float64(flagTextContrast, th.Text, "minimum contrast for text")
	pf.Float64(flagBorderContrast, th.Border, "minimum contrast for borders")
	pf.Float64(flagHoverContrast, th.Hover, "minimum contrast between a colour and its hover state")
	pf.Float64(flagBackgroundContrast, th.Background, "minimum contrast for button backgrounds")

	rootCmd.AddCommand(
		newVersionCmd(),
		newParseCmd(a),
		newShadeCmd(a),
		newContrastCmd(a),
		newRampCmd(a),
		newThemeCmd(a),
		newSeedCmd(a),
		newTemplatesCmd(a),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup builds the logger and binds config sources. It runs before every
// command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.verbose, a.quiet, a.logJSON)
	if err != nil {
		return err
	}
	a.logger = logger

	for _, name := range a.registry.List() {
		p, _ := a.registry.Get(name)
		if ls, ok := p.(loggerSetter); ok {
			ls.SetLogger(logger.Named(name))
		}
	}

	a.v = config.New()
	if err := config.ReadFile(a.v, a.configFile); err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config file", "path", used)
	}
	return config.BindFlags(a.v, cmd.Flags(), flagBindings)
}

// load resolves the configuration and creates the engine on first use.
func (a *app) load() error {
	if a.engine != nil {
		return nil
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	engine, err := colour.NewEngine(cfg.EngineOptions(), a.logger.Named("engine"))
	if err != nil {
		return err
	}
	a.cfg, a.engine = cfg, engine
	return nil
}

// seeds returns the configured seed colours.
func (a *app) seeds() (colour.Seeds, error) {
	if err := a.load(); err != nil {
		return colour.Seeds{}, err
	}
	return a.cfg.ParsedSeeds()
}

// newLogger creates the root logger. verbose wins over quiet, and both win
// over level.
func newLogger(w io.Writer, level string, verbose, quiet, jsonFormat bool) (hclog.Logger, error) {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q (valid: trace, debug, info, warn, error)", level)
	}
	switch {
	case verbose:
		lvl = hclog.Debug
	case quiet:
		lvl = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "themer",
		Level:      lvl,
		Output:     w,
		JSONFormat: jsonFormat,
	}), nil
}

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

// parseFormat checks value against the allowed formats of a flag.
func parseFormat(flag, value string, allowed ...string) (string, error) {
	value = strings.ToLower(value)
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	return "", fmt.Errorf("invalid --%s %q (valid: %s)", flag, value, strings.Join(allowed, ", "))
}
