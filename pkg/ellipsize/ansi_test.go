// ABOUTME: Tests for escape scanning, stripping, and visible width
// ABOUTME: Covers CSI, OSC, wide clusters, and plain-text fast paths

package ellipsize

import "testing"

func TestStripEscapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "empty", input: "", want: ""},
		{name: "sgr", input: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "nested styling", input: "a\x1b[1mb\x1b[3mc\x1b[0md", want: "abcd"},
		{name: "osc with bel", input: "\x1b]8;;http://x\x07link\x1b]8;;\x07", want: "link"},
		{name: "osc with st", input: "\x1b]0;title\x1b\\body", want: "body"},
		{name: "truncated escape at end", input: "ab\x1b[", want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := stripEscapes(tt.input); got != tt.want {
				t.Errorf("stripEscapes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "sgr contributes nothing", input: "\x1b[36mhello\x1b[0m", want: 5},
		{name: "east asian wide", input: "你好", want: 4},
		{name: "mixed", input: "a你b", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := VisibleWidth(tt.input); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsStyled(t *testing.T) {
	t.Parallel()

	if isStyled("plain text") {
		t.Error("isStyled(plain) = true, want false")
	}
	if !isStyled("\x1b[1mbold\x1b[0m") {
		t.Error("isStyled(styled) = false, want true")
	}
}
