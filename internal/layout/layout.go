// Package layout converts an available display width into the character
// budget handed to the line wrapper.
package layout

import "math"

// MobileBreakpointPx is the viewport width below which the compact
// character metrics apply.
const MobileBreakpointPx = 640

// MinPixelBudget is the smallest budget derived from a pixel measurement.
const MinPixelBudget = 10

// Measurer reports how many characters fit on one display line.
type Measurer interface {
	Budget() int
}

// Pixels estimates a budget from a measured text-column width in pixels.
type Pixels struct {
	Width  float64
	Mobile bool
}

// Budget divides the width by an average glyph width and subtracts a small
// safety margin.
func (p Pixels) Budget() int {
	avg, margin := 8.0, 4
	if p.Mobile {
		avg, margin = 7.0, 2
	}
	if p.Width <= 0 || math.IsNaN(p.Width) {
		return MinPixelBudget
	}
	return max(MinPixelBudget, int(math.Floor(p.Width/avg))-margin)
}

// IsMobile reports whether a viewport width uses the compact metrics.
func IsMobile(viewportPx float64) bool {
	return viewportPx < MobileBreakpointPx
}

// Cells is the terminal measurement: total columns minus columns reserved
// for chrome such as the gutter and sidebar.
type Cells struct {
	Columns  int
	Reserved int
}

// Budget returns the remaining columns, at least 1.
func (c Cells) Budget() int {
	return max(1, c.Columns-c.Reserved)
}

// Fixed is a constant budget.
type Fixed int

// Budget returns the fixed value.
func (f Fixed) Budget() int { return int(f) }

// Budget asks m for its budget and clamps it to at least 1.
// A nil measurer yields 1.
func Budget(m Measurer) int {
	if m == nil {
		return 1
	}
	return max(1, m.Budget())
}
