package morse

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Encode transcodes text into a Morse symbol string.
//
// Runs of whitespace collapse to a single word boundary, and the input is
// upper-cased with full case mapping (ß becomes SS, final sigma becomes
// Σ) before lookup, so encoding is insensitive to letter case. Each
// character resolves against the merged tables in lookup order, with the
// priority script consulted first; characters no table knows are
// substituted according to the invalid policy in opts. Units are joined
// by the separator glyph.
//
// Every input produces an output; Encode never fails. Identical input and
// Options always yield identical output.
func Encode(text string, opts Options) string {
	if text == "" {
		return ""
	}
	normalized := normalizeInput(text, opts.Separator)
	if normalized == "" {
		return ""
	}
	set := BuildTables(opts, true)
	var out strings.Builder
	for rest := normalized; rest != ""; {
		var unit string
		var consumed int
		if opts.Separator != "" && strings.HasPrefix(rest, opts.Separator) {
			// word boundary: hits the separator entry of the Latin table
			unit, _, _ = set.Lookup(opts.Separator)
			consumed = len(opts.Separator)
		} else {
			r, size := utf8.DecodeRuneInString(rest)
			pattern, _, ok := set.Lookup(string(r))
			if !ok {
				T().Debugf("morse: no code for character %#U", r)
				pattern = substituteInvalid(r, opts)
			}
			unit = pattern
			consumed = size
		}
		out.WriteString(unit)
		out.WriteString(opts.Separator)
		rest = rest[consumed:]
	}
	return strings.TrimSuffix(out.String(), opts.Separator)
}

// normalizeInput collapses whitespace runs to the separator glyph, trims
// separator glyphs from both ends and upper-cases what remains.
func normalizeInput(text, sep string) string {
	collapsed := strings.Join(strings.Fields(text), sep)
	if sep != "" {
		for strings.HasPrefix(collapsed, sep) {
			collapsed = collapsed[len(sep):]
		}
		for strings.HasSuffix(collapsed, sep) {
			collapsed = collapsed[:len(collapsed)-len(sep)]
		}
	}
	// cases.Caser carries transformer state, so no package-level instance
	return cases.Upper(language.Und).String(collapsed)
}

// substituteInvalid applies the configured policy for an unencodable
// rune: the OnInvalid transform when set, else the Invalid glyph, else
// the rune itself.
func substituteInvalid(r rune, opts Options) string {
	if opts.OnInvalid != nil {
		return opts.OnInvalid(r)
	}
	if opts.Invalid != "" {
		return opts.Invalid
	}
	return string(r)
}
