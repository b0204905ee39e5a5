// ABOUTME: View: host-facing ellipsizing text state with a lazy dirty cache
// ABOUTME: Recomputes truncation on demand; reports state flips via StateTracker

package ellipsize

import (
	"regexp"

	"github.com/mauromedda/ellipsize/internal/log"
)

// Padding is the space reserved around the text, in the measurer's units.
type Padding struct {
	Left, Top, Right, Bottom int
}

// View fits a run of text into a bounded number of display lines. Hosts set
// text, geometry, and a line policy; View recomputes the displayed text
// lazily on the next read and notifies listeners when the truncated state
// flips.
//
// View is single-threaded by design: all calls must come from the thread
// that drives rendering. There is no background work anywhere in it.
type View struct {
	measurer Measurer

	fullText string // what the host asked to show
	hostText string // what the host currently shows

	maxLines    int
	fitToHeight bool

	width, height int
	padding       Padding
	spacing       Spacing

	marker   string
	endPunct *regexp.Regexp

	dirty        bool
	programmatic bool

	tracker StateTracker
}

// NewView creates a View measuring with m. A nil m gets the Monospace
// measurer. The line policy defaults to fit-to-height.
func NewView(m Measurer) *View {
	if m == nil {
		m = NewMonospace()
	}
	return &View{
		measurer:    m,
		fitToHeight: true,
		spacing:     DefaultSpacing(),
		marker:      Ellipsis,
		endPunct:    DefaultEndPunctuation,
		dirty:       true,
	}
}

// SetText replaces the full source text.
func (v *View) SetText(text string) {
	v.onTextChanged(text)
}

// Text returns the full, untruncated source text.
func (v *View) Text() string {
	return v.fullText
}

// SetMaxLines fixes the line limit. Values below 1 are clamped to 1.
func (v *View) SetMaxLines(n int) {
	if n < 1 {
		n = 1
	}
	v.maxLines = n
	v.fitToHeight = false
	v.dirty = true
}

// MaxLines returns the fixed line limit, or 0 when fitting to height.
func (v *View) MaxLines() int {
	if v.fitToHeight {
		return 0
	}
	return v.maxLines
}

// SetFitToHeight switches the line policy to "as many full lines as fit in
// the allocated height".
func (v *View) SetFitToHeight() {
	v.fitToHeight = true
	v.dirty = true
}

// FitToHeight reports whether the line limit derives from the allocated
// height rather than a fixed count.
func (v *View) FitToHeight() bool {
	return v.fitToHeight
}

// Resize updates the allocated width and height.
func (v *View) Resize(width, height int) {
	v.width = width
	v.height = height
	v.dirty = true
}

// SetPadding updates the space reserved around the text.
func (v *View) SetPadding(left, top, right, bottom int) {
	v.padding = Padding{Left: left, Top: top, Right: right, Bottom: bottom}
	v.dirty = true
}

// SetLineSpacing updates per-line extra padding and the spacing multiplier.
func (v *View) SetLineSpacing(extra int, multiplier float64) {
	v.spacing = Spacing{Multiplier: multiplier, Extra: extra}
	v.dirty = true
}

// SetEllipsisMarker replaces the marker appended on truncation.
func (v *View) SetEllipsisMarker(marker string) {
	v.marker = marker
	v.dirty = true
}

// SetEndPunctuationPattern replaces the trailing-punctuation pattern
// stripped before the marker. nil restores the default.
func (v *View) SetEndPunctuationPattern(re *regexp.Regexp) {
	if re == nil {
		re = DefaultEndPunctuation
	}
	v.endPunct = re
	v.dirty = true
}

// DisplayText recomputes the truncation if any input changed, then returns
// the text the host should render. Measurer errors propagate and leave the
// cache stale.
func (v *View) DisplayText() (string, error) {
	if err := v.ensureFresh(); err != nil {
		return "", err
	}
	return v.hostText, nil
}

// IsEllipsized reports whether the displayed text is a truncation of the
// full text. known is false until the first successful computation; a
// failing recompute leaves the state unknown.
func (v *View) IsEllipsized() (ellipsized, known bool) {
	if err := v.ensureFresh(); err != nil {
		log.Debug("ellipsize: recompute failed: %v", err)
	}
	return v.tracker.Last()
}

// AddEllipsizeListener registers fn to be called whenever the truncated
// state changes. The returned func removes the registration; removing twice
// is a no-op. A nil fn is ErrNilListener.
func (v *View) AddEllipsizeListener(fn Listener) (remove func(), err error) {
	return v.tracker.Add(fn)
}

// PrepareForReuse resets the view for unrelated content: listeners are
// dropped, the truncated state returns to unknown, and the next read
// recomputes from scratch.
func (v *View) PrepareForReuse() {
	v.tracker.Reset()
	v.dirty = true
}

// ensureFresh recomputes the displayed text when stale. Fresh views return
// immediately, so calling before every read is cheap.
func (v *View) ensureFresh() error {
	if !v.dirty {
		return nil
	}

	limit, err := v.resolveLineLimit()
	if err != nil {
		return err
	}
	res, err := Truncate(v.measurer, Request{
		Text:           v.fullText,
		LineLimit:      limit,
		MaxWidth:       v.contentWidth(),
		Spacing:        v.spacing,
		Marker:         v.marker,
		EndPunctuation: v.endPunct,
	})
	if err != nil {
		return err
	}

	v.writeDisplay(res.DisplayText)
	v.dirty = false
	v.tracker.Report(res.Truncated)
	log.Debug("ellipsize: recomputed limit=%d truncated=%t", limit, res.Truncated)
	return nil
}

// resolveLineLimit turns the line policy into a concrete limit, never below 1.
func (v *View) resolveLineLimit() (int, error) {
	if !v.fitToHeight {
		return v.maxLines, nil
	}
	// Line height comes from measuring the empty string at current spacing.
	layout, err := v.measurer.Measure("", v.contentWidth(), v.spacing)
	if err != nil {
		return 0, err
	}
	avail := v.height - v.padding.Top - v.padding.Bottom
	lines := avail / layout.LineHeight()
	if lines < 1 {
		lines = 1
	}
	return lines, nil
}

// contentWidth is the width left for text once horizontal padding is taken.
func (v *View) contentWidth() int {
	return v.width - v.padding.Left - v.padding.Right
}

// onTextChanged is the single text-write path. Host-initiated writes replace
// the full text and invalidate the cache; the programmatic write inside
// ensureFresh only updates what the host shows.
func (v *View) onTextChanged(text string) {
	v.hostText = text
	if !v.programmatic {
		v.fullText = text
		v.dirty = true
	}
}

// writeDisplay stores the computed text through the normal text-changed
// path, bracketed so the write does not mark the cache dirty again.
func (v *View) writeDisplay(text string) {
	if text == v.hostText {
		return
	}
	v.programmatic = true
	defer func() { v.programmatic = false }()
	v.onTextChanged(text)
}
