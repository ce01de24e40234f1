package morse

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"golang.org/x/text/language"
)

func TestValidateDefaults(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("expected default options to validate, have %v", err)
	}
}

func TestValidateEmptyGlyph(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	opts := DefaultOptions()
	opts.Dot = ""
	if err := opts.Validate(); !errors.Is(err, ErrEmptyGlyph) {
		t.Errorf("expected ErrEmptyGlyph for empty dot glyph, have %v", err)
	}
}

func TestValidateAmbiguousGlyphs(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	opts := DefaultOptions()
	opts.Dash = "."
	if err := opts.Validate(); !errors.Is(err, ErrAmbiguousGlyphs) {
		t.Errorf("expected ErrAmbiguousGlyphs for dash == dot, have %v", err)
	}
	opts = DefaultOptions()
	opts.Space = "- -"
	if err := opts.Validate(); !errors.Is(err, ErrAmbiguousGlyphs) {
		t.Errorf("expected ErrAmbiguousGlyphs for space containing the separator, have %v", err)
	}
	opts = DefaultOptions()
	opts.Invalid = " "
	if err := opts.Validate(); !errors.Is(err, ErrAmbiguousGlyphs) {
		t.Errorf("expected ErrAmbiguousGlyphs for invalid == separator, have %v", err)
	}
}

func TestPriorityForLocale(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	locales := []struct {
		locale string
		want   CharSet
	}{
		{"en-US", Latin},
		{"de-DE", Latin},
		{"ru-RU", Cyrillic},
		{"el-GR", Greek},
		{"he-IL", Hebrew},
		{"ar-EG", Arabic},
		{"fa-IR", Persian},
		{"ja-JP", Japanese},
		{"ko-KR", Korean},
		{"th-TH", Thai},
	}
	for _, l := range locales {
		if have := priorityForLocale(language.Make(l.locale)); have != l.want {
			t.Errorf("expected locale %s to map to priority %v, is %v", l.locale, l.want, have)
		}
	}
}

func TestEnvOptions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	opts := OptionsFromEnvironment()
	if opts.Dash != "-" || opts.Dot != "." {
		t.Error("expected environment options to keep the default glyphs")
	}
	if opts.Priority < Latin || int(opts.Priority) >= charSetCount {
		t.Errorf("expected a concrete priority script, is %v", opts.Priority)
	}
	t.Logf("user environment selects priority %v", opts.Priority)
}
