// ABOUTME: Word-boundary truncation to a bounded line count with ellipsis marker
// ABOUTME: Plain and styled (escape-preserving) end-punctuation handling

package ellipsize

import (
	"regexp"
	"strings"
)

// DefaultEndPunctuation matches the trailing run of punctuation and
// whitespace that is stripped immediately before the marker is appended.
var DefaultEndPunctuation = regexp.MustCompile(`[.,…;:\s]*$`)

// Request carries one truncation pass's inputs.
type Request struct {
	Text      string
	LineLimit int
	MaxWidth  int
	Spacing   Spacing
	// Marker replaces removed trailing content. Empty means Ellipsis.
	Marker string
	// EndPunctuation overrides DefaultEndPunctuation when non-nil.
	EndPunctuation *regexp.Regexp
}

// Result is the outcome of a truncation pass.
type Result struct {
	DisplayText string
	Truncated   bool
}

// Truncate fits req.Text into at most req.LineLimit rendered lines.
// Text that already fits is returned unchanged. Otherwise the prefix ending
// where the last permitted line breaks is shrunk word-by-word until
// candidate+marker fits, trailing end-punctuation is stripped, and the
// marker appended.
//
// A candidate with no space left to back off to (a single unbreakable run)
// is accepted as-is and may still overflow by one line; callers get a
// best-effort result rather than an endless shrink loop.
func Truncate(m Measurer, req Request) (Result, error) {
	marker := req.Marker
	if marker == "" {
		marker = Ellipsis
	}
	punct := req.EndPunctuation
	if punct == nil {
		punct = DefaultEndPunctuation
	}
	limit := req.LineLimit
	if limit < 1 {
		limit = 1
	}

	layout, err := m.Measure(req.Text, req.MaxWidth, req.Spacing)
	if err != nil {
		return Result{}, err
	}
	if layout.LineCount() <= limit {
		return Result{DisplayText: req.Text, Truncated: false}, nil
	}

	candidate := req.Text[:layout.LineEnd(limit-1)]
	for {
		l, err := m.Measure(candidate+marker, req.MaxWidth, req.Spacing)
		if err != nil {
			return Result{}, err
		}
		if l.LineCount() <= limit {
			break
		}
		sp := strings.LastIndexByte(candidate, ' ')
		if sp < 0 {
			break
		}
		candidate = candidate[:sp]
	}

	return Result{DisplayText: appendMarker(candidate, punct, marker), Truncated: true}, nil
}

// appendMarker strips the trailing end-punctuation run from candidate and
// appends the marker. Styled candidates keep their escape sequences intact
// and get an SGR reset before the marker so open styling never bleeds into
// it.
func appendMarker(candidate string, punct *regexp.Regexp, marker string) string {
	if isStyled(candidate) {
		return trimStyled(candidate, punct) + sgrReset + marker
	}
	if loc := punct.FindStringIndex(candidate); loc != nil {
		candidate = candidate[:loc[0]]
	}
	return candidate + marker
}

// trimStyled removes the trailing punctuation run from a styled string.
// The run is located on the escape-stripped text, then mapped back to a
// byte offset in the styled string; escapes before the cut survive
// byte-for-byte, escapes inside the trimmed tail are dropped.
func trimStyled(s string, punct *regexp.Regexp) string {
	plain := stripEscapes(s)
	loc := punct.FindStringIndex(plain)
	if loc == nil || loc[0] == len(plain) {
		return s
	}

	visible := 0 // bytes of plain text seen so far
	for i := 0; i < len(s); {
		tok := nextToken(s, i)
		if !tok.escape {
			if visible == loc[0] {
				return s[:tok.start]
			}
			visible += tok.end - tok.start
		}
		i = tok.end
	}
	return s
}
