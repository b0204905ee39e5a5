// ABOUTME: ANSI escape scanning and grapheme tokenization for styled text
// ABOUTME: Escapes are zero-width tokens; graphemes carry display width

package ellipsize

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const sgrReset = "\x1b[0m"

// isStyled reports whether s contains ANSI escape sequences.
func isStyled(s string) bool {
	return strings.ContainsRune(s, '\x1b')
}

// escapeEnd returns the index just past the escape sequence starting at i.
// Handles CSI (ESC [ ... final 0x40-0x7E), OSC (ESC ] ... BEL/ST), and
// two-byte ESC sequences.
func escapeEnd(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return i
	case ']', '_', 'P', '^':
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	default:
		return i + 1
	}
}

// token is a unit of styled text: either one escape sequence (width 0) or
// one grapheme cluster with its display width.
type token struct {
	start  int
	end    int
	width  int
	escape bool
}

// nextToken scans the token beginning at byte offset i. Callers must ensure
// i < len(s).
func nextToken(s string, i int) token {
	if s[i] == '\x1b' {
		return token{start: i, end: escapeEnd(s, i), escape: true}
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
	r, _ := utf8.DecodeRuneInString(cluster)
	return token{start: i, end: i + len(cluster), width: runewidth.RuneWidth(r)}
}

// stripEscapes removes all ANSI escape sequences from s.
func stripEscapes(s string) string {
	if !isStyled(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			i = escapeEnd(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// VisibleWidth returns the display width of s in terminal cells. Escape
// sequences contribute nothing; grapheme clusters contribute their cell
// width.
func VisibleWidth(s string) int {
	w := 0
	for i := 0; i < len(s); {
		tok := nextToken(s, i)
		w += tok.width
		i = tok.end
	}
	return w
}
