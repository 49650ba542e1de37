package colour

import (
	"fmt"
)

// Start marks where SelectAccessibleShade begins its search: either an
// absolute ramp index or a colour to be located in the ramp.
type Start struct {
	index  int
	colour Color
	byCol  bool
}

// StartAt starts the search at an absolute index.
func StartAt(index int) Start {
	return Start{index: index}
}

// StartNear starts the search at the first ramp entry equal to c.
func StartNear(c Color) Start {
	return Start{colour: c, byCol: true}
}

func (s Start) String() string {
	if s.byCol {
		return s.colour.String()
	}
	return fmt.Sprint(s.index)
}

// Selection is the result of SelectAccessibleShade.
type Selection struct {
	Color     Color
	Index     int
	Contrast  float64
	Satisfied bool
	Diagnostics
}

// SelectAccessibleShade returns the ramp entry closest to start whose
// contrast against from meets minContrast.
//
// The start entry is returned as soon as its contrast is at least
// minContrast. Otherwise the ramp is scanned toward index 0 and then toward
// the end, returning the first entry whose contrast strictly exceeds
// minContrast. When nothing qualifies, the highest-contrast entry seen is
// returned (earliest in scan order on ties) with a DiagnosticNoSolution.
func SelectAccessibleShade(from Color, ramp Ramp, start Start, minContrast float64) Selection {
	var diags Diagnostics

	if len(ramp) == 0 {
		return Selection{
			Index:       -1,
			Diagnostics: Diagnostics{{Kind: DiagnosticNoSolution, Message: "ramp is empty"}},
		}
	}

	idx := start.index
	if start.byCol {
		idx = ramp.IndexOf(start.colour)
		if idx < 0 {
			diags = append(diags, Diagnostic{
				Kind:    DiagnosticColourNotInRamp,
				Message: fmt.Sprintf("start colour %s not found in ramp, using index 0", start.colour),
			})
			idx = 0
		}
	}

	if idx < 0 || idx >= len(ramp) {
		clamped := min(max(idx, 0), len(ramp)-1)
		diags = append(diags, Diagnostic{
			Kind:    DiagnosticIndexOutOfRange,
			Message: fmt.Sprintf("start index %d outside [0, %d], using %d", idx, len(ramp)-1, clamped),
		})
		idx = clamped
	}

	best := Selection{Color: ramp[idx], Index: idx, Contrast: ContrastRatio(ramp[idx], from)}
	if best.Contrast >= minContrast {
		best.Satisfied = true
		best.Diagnostics = diags
		return best
	}

	check := func(i int) (Selection, bool) {
		cr := ContrastRatio(ramp[i], from)
		if cr > minContrast {
			return Selection{Color: ramp[i], Index: i, Contrast: cr, Satisfied: true}, true
		}
		if cr > best.Contrast {
			best = Selection{Color: ramp[i], Index: i, Contrast: cr}
		}
		return Selection{}, false
	}

	for i := idx; i >= 0; i-- {
		if sel, ok := check(i); ok {
			sel.Diagnostics = diags
			return sel
		}
	}
	for i := idx; i < len(ramp); i++ {
		if sel, ok := check(i); ok {
			sel.Diagnostics = diags
			return sel
		}
	}

	best.Diagnostics = append(diags, Diagnostic{
		Kind: DiagnosticNoSolution,
		Message: fmt.Sprintf("no shade reaches contrast %.2f against %s, using %s at %.2f",
			minContrast, from, best.Color, best.Contrast),
	})
	return best
}
