package morse

import (
	"strings"
)

// Decode transcodes a Morse symbol string back into text.
//
// The input is split into units on the separator glyph (runs of
// whitespace count as one separator), and each unit is resolved through
// the reverse index of the merged tables. Word-space units decode to the
// separator glyph, which is how word boundaries come back as spaces under
// the default configuration. Units the index does not know are replaced
// by the Invalid glyph, or passed through verbatim when no Invalid glyph
// is configured.
//
// Decoding is lossy across scripts: a pattern shared by several scripts
// always decodes to the character that won the collision when the reverse
// index was built, so non-Latin text only survives a round trip when its
// script is set as the priority.
func Decode(morse string, opts Options) string {
	if morse == "" {
		return ""
	}
	collapsed := strings.Join(strings.Fields(morse), opts.Separator)
	if opts.Separator != "" {
		for strings.HasPrefix(collapsed, opts.Separator) {
			collapsed = collapsed[len(opts.Separator):]
		}
		for strings.HasSuffix(collapsed, opts.Separator) {
			collapsed = collapsed[:len(collapsed)-len(opts.Separator)]
		}
	}
	if collapsed == "" {
		return ""
	}
	index := BuildTables(opts, true).ReverseIndex()
	units := strings.Split(collapsed, opts.Separator)
	var out strings.Builder
	for _, unit := range units {
		if ch, ok := index[unit]; ok {
			out.WriteString(ch)
			continue
		}
		T().Debugf("morse: no character for unit %q", unit)
		if opts.Invalid != "" {
			out.WriteString(opts.Invalid)
		} else {
			out.WriteString(unit)
		}
	}
	return out.String()
}
