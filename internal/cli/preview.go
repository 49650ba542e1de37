package cli

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jmylchreest/themer/internal/colour"
)

// swatchWidth is the number of cells a colour swatch occupies.
const swatchWidth = 4

// previewer renders colour swatches for one output stream.
type previewer struct {
	enabled  bool
	renderer *lipgloss.Renderer
}

// newPreviewer enables swatches when forced or when w is a terminal. Forced
// swatches are always rendered in true colour.
func newPreviewer(w io.Writer, force bool) previewer {
	tty := isTerminal(w)
	r := lipgloss.NewRenderer(w)
	if force && !tty {
		r.SetColorProfile(termenv.TrueColor)
	}
	return previewer{enabled: force || tty, renderer: r}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Swatch returns a block filled with c, or "" when previews are off.
// Translucent colours are drawn as their opaque equivalent.
func (p previewer) Swatch(c colour.Color) string {
	if !p.enabled {
		return ""
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", swatchWidth))
}

// Sample renders text in fg on bg, or "" when previews are off.
func (p previewer) Sample(fg, bg colour.Color, text string) string {
	if !p.enabled {
		return ""
	}
	return p.renderer.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Padding(0, 1).
		Render(text)
}

// headers prepends a swatch column when previews are on.
func (p previewer) headers(h ...string) []string {
	if !p.enabled {
		return h
	}
	return append([]string{""}, h...)
}

// row prepends the swatch for c when previews are on.
func (p previewer) row(c colour.Color, cells ...string) []string {
	if !p.enabled {
		return cells
	}
	return append([]string{p.Swatch(c)}, cells...)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
