package colour

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// DiagnosticKind classifies a non-fatal problem found while deriving colours.
type DiagnosticKind string

const (
	// DiagnosticParseError means an input could not be parsed as a colour.
	DiagnosticParseError DiagnosticKind = "parse-error"

	// DiagnosticIndexOutOfRange means an index was clamped into a ramp.
	DiagnosticIndexOutOfRange DiagnosticKind = "index-out-of-range"

	// DiagnosticColourNotInRamp means a start colour was absent from the ramp
	// and index 0 was used instead.
	DiagnosticColourNotInRamp DiagnosticKind = "colour-not-in-ramp"

	// DiagnosticNoSolution means no shade met the contrast threshold and the
	// highest-contrast shade was used instead.
	DiagnosticNoSolution DiagnosticKind = "no-solution"
)

// Diagnostic describes a degraded but recoverable result.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind" yaml:"kind"`
	Slot    Slot           `json:"slot,omitempty" yaml:"slot,omitempty"`
	Message string         `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	if d.Slot != "" {
		return fmt.Sprintf("%s: %s: %s", d.Kind, d.Slot, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// Diagnostics is an ordered list of diagnostics.
type Diagnostics []Diagnostic

// Has reports whether any diagnostic of the given kind is present.
func (ds Diagnostics) Has(kind DiagnosticKind) bool {
	for _, d := range ds {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// Log writes every diagnostic to logger at warn level.
func (ds Diagnostics) Log(logger hclog.Logger) {
	if logger == nil {
		return
	}
	for _, d := range ds {
		args := []any{"kind", string(d.Kind)}
		if d.Slot != "" {
			args = append(args, "slot", string(d.Slot))
		}
		logger.Warn(d.Message, args...)
	}
}

func withSlot(ds Diagnostics, slot Slot) Diagnostics {
	out := make(Diagnostics, len(ds))
	for i, d := range ds {
		d.Slot = slot
		out[i] = d
	}
	return out
}
