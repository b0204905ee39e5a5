// ABOUTME: Monospace measurer: grapheme-aware greedy word wrap in terminal cells
// ABOUTME: Escape sequences are zero-width; spaces may overhang the right edge

package ellipsize

import "math"

// Monospace measures text in terminal cells. Lines break greedily at the
// last space that fits; a word wider than the available width breaks
// mid-word. Newlines force a break. ANSI escape sequences do not count
// toward width.
type Monospace struct {
	// CellHeight is the height of one row in the host's units.
	// Zero means 1.
	CellHeight int
}

// NewMonospace returns a Monospace measurer with single-unit rows.
func NewMonospace() *Monospace {
	return &Monospace{CellHeight: 1}
}

// Measure implements Measurer.
func (m *Monospace) Measure(text string, maxWidth int, sp Spacing) (*Layout, error) {
	if maxWidth <= 0 {
		return nil, ErrInvalidWidth
	}

	lineHeight := m.lineHeight(sp)
	if text == "" {
		return &Layout{ends: []int{0}, lineHeight: lineHeight}, nil
	}

	var ends []int
	lineWidth := 0
	breakAt := -1   // byte offset just past the last space on this line
	breakWidth := 0 // line width consumed through breakAt

	for i := 0; i < len(text); {
		tok := nextToken(text, i)
		i = tok.end

		if !tok.escape && text[tok.start] == '\n' {
			ends = append(ends, tok.end)
			lineWidth, breakAt = 0, -1
			continue
		}

		space := !tok.escape && text[tok.start] == ' '
		if !tok.escape && !space && lineWidth > 0 && lineWidth+tok.width > maxWidth {
			if breakAt >= 0 {
				// Break after the last space; it stays on the ended line.
				ends = append(ends, breakAt)
				lineWidth -= breakWidth
			} else {
				// Unbreakable run: split mid-word.
				ends = append(ends, tok.start)
				lineWidth = 0
			}
			breakAt = -1
		}

		lineWidth += tok.width
		if space {
			breakAt = tok.end
			breakWidth = lineWidth
		}
	}
	ends = append(ends, len(text))

	return &Layout{ends: ends, lineHeight: lineHeight}, nil
}

// lineHeight resolves the height of one row under the given spacing.
func (m *Monospace) lineHeight(sp Spacing) int {
	base := m.CellHeight
	if base < 1 {
		base = 1
	}
	mult := sp.Multiplier
	if mult <= 0 {
		mult = 1
	}
	h := int(math.Round(float64(base)*mult)) + sp.Extra
	if h < 1 {
		h = 1
	}
	return h
}
