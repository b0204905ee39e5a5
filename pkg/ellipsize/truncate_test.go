// ABOUTME: Tests for the word-boundary truncation algorithm
// ABOUTME: Covers fit, backoff, punctuation trim, styled text, and fallbacks

package ellipsize

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

func mustPattern(t *testing.T, expr string) *regexp.Regexp {
	t.Helper()
	re, err := regexp.Compile(expr)
	if err != nil {
		t.Fatalf("compiling %q: %v", expr, err)
	}
	return re
}

func TestTruncateFits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		limit int
		width int
	}{
		{name: "empty text", text: "", limit: 1, width: 5},
		{name: "single short line", text: "hi there", limit: 1, width: 20},
		{name: "limit beyond natural count", text: "ab cd ef gh", limit: 5, width: 5},
		{name: "exact line count", text: "one\ntwo", limit: 2, width: 10},
	}

	m := NewMonospace()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := Truncate(m, Request{Text: tt.text, LineLimit: tt.limit, MaxWidth: tt.width})
			if err != nil {
				t.Fatalf("Truncate error: %v", err)
			}
			if res.Truncated {
				t.Errorf("Truncated = true, want false")
			}
			if res.DisplayText != tt.text {
				t.Errorf("DisplayText = %q, want the input unchanged", res.DisplayText)
			}
		})
	}
}

func TestTruncateBacksOffWordByWord(t *testing.T) {
	t.Parallel()

	res, err := Truncate(NewMonospace(), Request{
		Text:      "The quick brown fox jumps over the lazy dog",
		LineLimit: 1,
		MaxWidth:  15,
	})
	if err != nil {
		t.Fatalf("Truncate error: %v", err)
	}
	if !res.Truncated {
		t.Fatal("Truncated = false, want true")
	}
	// "The quick brown" fills the line exactly, so candidate+marker cannot
	// fit until the backoff reaches "The quick".
	if res.DisplayText != "The quick…" {
		t.Errorf("DisplayText = %q, want %q", res.DisplayText, "The quick…")
	}
}

func TestTruncateTrimsEndPunctuation(t *testing.T) {
	t.Parallel()

	res, err := Truncate(NewMonospace(), Request{
		Text:      "Hello, world... extra tail",
		LineLimit: 1,
		MaxWidth:  16,
	})
	if err != nil {
		t.Fatalf("Truncate error: %v", err)
	}
	if res.DisplayText != "Hello, world…" {
		t.Errorf("DisplayText = %q, want %q", res.DisplayText, "Hello, world…")
	}
}

func TestTruncateUnbreakableRunFallback(t *testing.T) {
	t.Parallel()

	// No space to back off to: the over-length candidate is accepted.
	res, err := Truncate(NewMonospace(), Request{
		Text:      "abcdefghij",
		LineLimit: 1,
		MaxWidth:  3,
	})
	if err != nil {
		t.Fatalf("Truncate error: %v", err)
	}
	if !res.Truncated {
		t.Fatal("Truncated = false, want true")
	}
	if res.DisplayText != "abc…" {
		t.Errorf("DisplayText = %q, want %q", res.DisplayText, "abc…")
	}
}

func TestTruncateMultiLineLimit(t *testing.T) {
	t.Parallel()

	res, err := Truncate(NewMonospace(), Request{
		Text:      "aa bb cc dd ee ff gg hh",
		LineLimit: 2,
		MaxWidth:  6,
	})
	if err != nil {
		t.Fatalf("Truncate error: %v", err)
	}
	if !res.Truncated {
		t.Fatal("Truncated = false, want true")
	}
	if !strings.HasSuffix(res.DisplayText, Ellipsis) {
		t.Errorf("DisplayText = %q, want ellipsis suffix", res.DisplayText)
	}
	layout, err := NewMonospace().Measure(res.DisplayText, 6, DefaultSpacing())
	if err != nil {
		t.Fatalf("re-measure error: %v", err)
	}
	if layout.LineCount() > 2 {
		t.Errorf("display occupies %d lines, want <= 2", layout.LineCount())
	}
}

func TestTruncateStyled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			name:  "styling preserved, reset before marker",
			text:  "\x1b[31mHello world and more words here\x1b[0m",
			width: 12,
			want:  "\x1b[31mHello world\x1b[0m…",
		},
		{
			name:  "punctuation trimmed inside styled text",
			text:  "\x1b[31mHello, world... more and more\x1b[0m",
			width: 16,
			want:  "\x1b[31mHello, world\x1b[0m…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := Truncate(NewMonospace(), Request{Text: tt.text, LineLimit: 1, MaxWidth: tt.width})
			if err != nil {
				t.Fatalf("Truncate error: %v", err)
			}
			if !res.Truncated {
				t.Fatal("Truncated = false, want true")
			}
			if res.DisplayText != tt.want {
				t.Errorf("DisplayText = %q, want %q", res.DisplayText, tt.want)
			}
		})
	}
}

func TestTruncateCustomMarkerAndPattern(t *testing.T) {
	t.Parallel()

	res, err := Truncate(NewMonospace(), Request{
		Text:           "alpha beta! gamma delta epsilon",
		LineLimit:      1,
		MaxWidth:       14,
		Marker:         "...",
		EndPunctuation: mustPattern(t, `[!\s]*$`),
	})
	if err != nil {
		t.Fatalf("Truncate error: %v", err)
	}
	if res.DisplayText != "alpha beta..." {
		t.Errorf("DisplayText = %q, want %q", res.DisplayText, "alpha beta...")
	}
}

func TestTruncateClampsLineLimit(t *testing.T) {
	t.Parallel()

	res, err := Truncate(NewMonospace(), Request{
		Text:      "aa bb cc dd ee",
		LineLimit: 0, // below 1: clamped, never zero lines
		MaxWidth:  6,
	})
	if err != nil {
		t.Fatalf("Truncate error: %v", err)
	}
	if !res.Truncated {
		t.Error("Truncated = false, want true")
	}
	if res.DisplayText == "" {
		t.Error("DisplayText is empty, want one ellipsized line")
	}
}

func TestTruncatePropagatesMeasurerErrors(t *testing.T) {
	t.Parallel()

	_, err := Truncate(NewMonospace(), Request{Text: "hello", LineLimit: 1, MaxWidth: 0})
	if !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("err = %v, want ErrInvalidWidth", err)
	}
}
