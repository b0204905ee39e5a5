// ABOUTME: Measurer contract and Layout result for text line measurement
// ABOUTME: Reports line count, per-line end offsets, and line height

package ellipsize

import "errors"

// ErrInvalidWidth is returned by measurers when the available width cannot
// hold any text.
var ErrInvalidWidth = errors.New("ellipsize: width must be positive")

// Spacing carries line-spacing parameters that affect line height.
type Spacing struct {
	// Multiplier scales the base line height. Zero or negative means 1.
	Multiplier float64
	// Extra is additional padding added to each line's height.
	Extra int
}

// DefaultSpacing returns single spacing with no extra padding.
func DefaultSpacing() Spacing {
	return Spacing{Multiplier: 1}
}

// Layout describes how a measured string breaks across lines.
// Offsets index into the measured string's bytes.
type Layout struct {
	ends       []int
	lineHeight int
}

// NewLayout builds a Layout from line-end byte offsets and a line height.
// Measurer implementations outside this package use it to report results.
func NewLayout(ends []int, lineHeight int) *Layout {
	if len(ends) == 0 {
		ends = []int{0}
	}
	if lineHeight < 1 {
		lineHeight = 1
	}
	return &Layout{ends: ends, lineHeight: lineHeight}
}

// LineCount returns the number of lines the text occupies.
func (l *Layout) LineCount() int {
	return len(l.ends)
}

// LineEnd returns the byte offset just past the content of line i,
// including any trailing whitespace consumed by the break. Line indexes
// are zero-based.
func (l *Layout) LineEnd(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(l.ends) {
		return l.ends[len(l.ends)-1]
	}
	return l.ends[i]
}

// LineHeight returns the height of a single line, spacing included.
func (l *Layout) LineHeight() int {
	return l.lineHeight
}

// Height returns the total height of the laid-out text.
func (l *Layout) Height() int {
	return len(l.ends) * l.lineHeight
}

// Measurer lays out text within a maximum width. Implementations must be
// deterministic for fixed inputs; the truncation loop re-measures candidate
// strings and relies on stable answers.
type Measurer interface {
	// Measure reports how text breaks across lines at maxWidth.
	// A maxWidth that cannot hold any text is an error, not an empty layout.
	Measure(text string, maxWidth int, sp Spacing) (*Layout, error)
}
