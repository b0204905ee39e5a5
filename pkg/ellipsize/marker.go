// ABOUTME: Locale-resolved ellipsis markers
// ABOUTME: CJK locales conventionally use a doubled ellipsis

package ellipsize

import "golang.org/x/text/language"

// Ellipsis is the horizontal ellipsis character, the default marker.
const Ellipsis = "…"

// cjkEllipsis is the six-dot convention used in Chinese and Japanese text.
const cjkEllipsis = "……"

var markerMatcher = language.NewMatcher([]language.Tag{
	language.English, // matcher fallback
	language.Chinese,
	language.Japanese,
})

// MarkerForLocale returns the conventional ellipsis marker for the given
// locale. Unrecognized locales resolve to Ellipsis.
func MarkerForLocale(tag language.Tag) string {
	_, index, _ := markerMatcher.Match(tag)
	if index == 1 || index == 2 {
		return cjkEllipsis
	}
	return Ellipsis
}
