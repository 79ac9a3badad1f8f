package cssdecl

import (
	"regexp"
	"strings"
	"unicode"
)

// webkitPrefix is the only vendor prefix folded into its unprefixed alias.
const webkitPrefix = "-webkit-"

// internalPrefix marks engine-internal properties that never get accessors.
const internalPrefix = "-internal"

var upperASCII = regexp.MustCompile(`[A-Z]`)

// StripVendorPrefix removes every "-webkit-" marker from name.
// "-webkit-transform" and "transform" share the same stripped form.
func StripVendorPrefix(name string) string {
	return strings.ReplaceAll(name, webkitPrefix, "")
}

// CamelCase converts a hyphenated CSS property name to lowerCamelCase.
//
//   - "background-color"  → "backgroundColor"
//   - "-webkit-transform" → "transform"
//   - "-internal-marker"  → "InternalMarker" (empty first word)
//
// Every word after the first is title-cased, so "x-3d-view" becomes "x3DView".
func CamelCase(hyphenated string) string {
	words := strings.Split(StripVendorPrefix(hyphenated), "-")

	var b strings.Builder
	b.Grow(len(hyphenated))
	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			continue
		}
		b.WriteString(titleWord(word))
	}
	return b.String()
}

// Hyphenate converts a camelCase name back to its hyphenated CSS form by
// prefixing every ASCII capital with "-" and lower-casing it.
//
// This is not an exact inverse of CamelCase: stripped vendor prefixes and
// runs of capitals do not survive the round trip.
func Hyphenate(camel string) string {
	return upperASCII.ReplaceAllStringFunc(camel, func(m string) string {
		return "-" + strings.ToLower(m)
	})
}

// titleWord upper-cases the first letter of each run of letters and
// lower-cases the rest. Non-letters end a run ("3d" → "3D").
func titleWord(word string) string {
	var b strings.Builder
	b.Grow(len(word))

	inRun := false
	for _, r := range word {
		if !unicode.IsLetter(r) {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if inRun {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		inRun = true
	}
	return b.String()
}

// IsInternal reports whether a vendor-stripped property name is reserved
// for engine-internal use.
func IsInternal(stripped string) bool {
	return strings.HasPrefix(stripped, internalPrefix)
}
