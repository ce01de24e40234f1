package morse

import (
	"errors"
	"fmt"
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Sentinel errors returned by Options.Validate.
var (
	// ErrEmptyGlyph indicates an empty dash, dot, space or separator glyph.
	ErrEmptyGlyph = errors.New("morse: glyph must not be empty")

	// ErrAmbiguousGlyphs indicates a glyph configuration that cannot be
	// split unambiguously during decoding.
	ErrAmbiguousGlyphs = errors.New("morse: ambiguous glyph configuration")
)

// Options configures encoding and decoding.
//
// All glyphs are strings, not runes, so clients may use multi-byte or even
// multi-character markers. Encode and Decode trust the configuration as
// given; clients that accept glyphs from untrusted input should gate them
// through Validate first.
type Options struct {
	// Dash is the glyph a dash (dah) renders to.
	Dash string

	// Dot is the glyph a dot (dit) renders to.
	Dot string

	// Space is the glyph marking a word boundary in Morse output.
	Space string

	// Separator delimits per-character Morse units.
	Separator string

	// Invalid substitutes for input that has no table entry. An empty
	// Invalid selects echo/pass-through behavior instead.
	Invalid string

	// OnInvalid, when non-nil, maps an unencodable rune to its substitute
	// output and takes precedence over the Invalid glyph.
	OnInvalid func(r rune) string

	// Priority names the script whose table is consulted before all
	// others and wins every decode collision.
	Priority CharSet
}

// DefaultOptions returns the conventional glyph set: "-", ".", "/" for
// word boundaries, a blank separator, "#" for unencodable input, and
// Latin priority.
func DefaultOptions() Options {
	return Options{
		Dash:      "-",
		Dot:       ".",
		Space:     "/",
		Separator: " ",
		Invalid:   "#",
		Priority:  Latin,
	}
}

// Validate checks an Options value for glyph configurations that would
// produce ambiguous output. The transcoding operations do not call it;
// it is a gate for configurations taken from untrusted input.
func (opts Options) Validate() error {
	glyphs := [...]struct {
		name  string
		glyph string
	}{
		{"dash", opts.Dash},
		{"dot", opts.Dot},
		{"space", opts.Space},
		{"separator", opts.Separator},
	}
	for _, g := range glyphs {
		if g.glyph == "" {
			return fmt.Errorf("%s glyph: %w", g.name, ErrEmptyGlyph)
		}
	}
	for i, g := range glyphs {
		for _, h := range glyphs[i+1:] {
			if g.glyph == h.glyph {
				return fmt.Errorf("%s glyph equals %s glyph: %w", g.name, h.name, ErrAmbiguousGlyphs)
			}
		}
	}
	for _, g := range glyphs[:3] {
		if strings.Contains(g.glyph, opts.Separator) {
			return fmt.Errorf("%s glyph contains the separator: %w", g.name, ErrAmbiguousGlyphs)
		}
	}
	if opts.Invalid != "" && opts.Invalid == opts.Separator {
		return fmt.Errorf("invalid glyph equals the separator: %w", ErrAmbiguousGlyphs)
	}
	return nil
}

// OptionsFromEnvironment returns DefaultOptions with the priority script
// chosen from the user's locale. If locale detection fails, the defaults
// are returned unchanged.
func OptionsFromEnvironment() Options {
	opts := DefaultOptions()
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		T().Infof("morse falls back to priority %v", opts.Priority)
		return opts
	}
	T().Infof("morse detected user locale %v", userLocale)
	opts.Priority = priorityForLocale(language.Make(userLocale))
	return opts
}

// priorityForLocale maps an ISO 15924 script (inferred from the locale
// tag) to the matching script table. Persian is carved out of Arab by
// base language, since both share the script code.
func priorityForLocale(lang language.Tag) CharSet {
	script, _ := lang.Script()
	switch script.String() {
	case "Cyrl":
		return Cyrillic
	case "Grek":
		return Greek
	case "Hebr":
		return Hebrew
	case "Arab":
		if base, _ := lang.Base(); base.String() == "fa" {
			return Persian
		}
		return Arabic
	case "Jpan", "Hira", "Kana":
		return Japanese
	case "Kore", "Hang":
		return Korean
	case "Thai":
		return Thai
	}
	return Latin
}
