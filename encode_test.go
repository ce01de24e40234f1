package morse_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/morse"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func ExampleEncode() {
	opts := morse.DefaultOptions()
	fmt.Println(morse.Encode("the quick brown fox", opts))
	// Output: - .... . / --.- ..- .. -.-. -.- / -... .-. --- .-- -. / ..-. --- -..-
}

func ExampleEncode_cyrillic() {
	opts := morse.DefaultOptions()
	opts.Priority = morse.Cyrillic
	fmt.Println(morse.Encode("москва", opts))
	// Output: -- --- ... -.- .-- .-
}

func TestEncodePangram(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	have := morse.Encode("the quick brown fox jumps over the lazy dog", morse.DefaultOptions())
	want := "- .... . / --.- ..- .. -.-. -.- / -... .-. --- .-- -. / ..-. --- -..- / .--- ..- -- .--. ... / --- ...- . .-. / - .... . / .-.. .- --.. -.-- / -.. --- --."
	if have != want {
		t.Errorf("expected pangram to encode to\n%s\nis\n%s", want, have)
	}
}

func TestEncodeCaseInsensitive(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	opts := morse.DefaultOptions()
	lower := morse.Encode("Hello World", opts)
	upper := morse.Encode("HELLO WORLD", opts)
	if lower != upper {
		t.Errorf("expected encoding to be case-insensitive, have %q vs %q", lower, upper)
	}
}

func TestEncodeFullCaseMapping(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	opts := morse.DefaultOptions()
	// ß upper-cases to SS, i.e. two units
	if have := morse.Encode("ß", opts); have != "... ..." {
		t.Errorf("expected ß to encode as two S units, is %q", have)
	}
	// final sigma upper-cases to Σ
	if have := morse.Encode("ς", opts); have != "..." {
		t.Errorf("expected final sigma to encode as Σ, is %q", have)
	}
}

func TestEncodeEmpty(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	opts := morse.DefaultOptions()
	if have := morse.Encode("", opts); have != "" {
		t.Errorf("expected empty input to encode to empty output, is %q", have)
	}
	if have := morse.Encode("   \t\n ", opts); have != "" {
		t.Errorf("expected all-whitespace input to encode to empty output, is %q", have)
	}
}

func TestEncodeWhitespaceRuns(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	opts := morse.DefaultOptions()
	single := morse.Encode("ab cd", opts)
	messy := morse.Encode("  ab \t\n  cd ", opts)
	if single != messy {
		t.Errorf("expected whitespace runs to collapse, have %q vs %q", single, messy)
	}
}

func TestEncodeNumbers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	have := morse.Encode("0123456789", morse.DefaultOptions())
	want := "----- .---- ..--- ...-- ....- ..... -.... --... ---.. ----."
	if have != want {
		t.Errorf("expected digits to encode to\n%s\nis\n%s", want, have)
	}
}

func TestEncodePunctuation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	opts := morse.DefaultOptions()
	if have := morse.Encode(".,?'!/(", opts); have != ".-.-.- --..-- ..--.. .----. -.-.-- -..-. -.--." {
		t.Errorf("punctuation encoded wrong, is %q", have)
	}
	if have := morse.Encode(")&:;=¿¡", opts); have != "-.--.- .-... ---... -.-.-. -...- ..-.- --...-" {
		t.Errorf("punctuation encoded wrong, is %q", have)
	}
}

func TestEncodeLatinExtended(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	opts := morse.DefaultOptions()
	cases := []struct {
		text string
		want string
	}{
		{"ÃÁÅÀÂÄ", ".--.- .--.- .--.- .--.- .--.- .-.-"},
		{"ĄÆÇĆĈČ", ".-.- .-.- -.-.. -.-.. -.-.. --."},
		{"ÊĞĜĤİÏ", "-..-. --.-. --.-. ---- .-..- -..--"},
		{"ÙŬŽŹŻ", "..-- ..-- --..- --..-. --..-"},
	}
	for _, c := range cases {
		if have := morse.Encode(c.text, opts); have != c.want {
			t.Errorf("expected %q to encode to %q, is %q", c.text, c.want, have)
		}
	}
}

func TestEncodeGlyphSubstitutionImage(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	text := "the quick brown fox"
	plain := morse.Encode(text, morse.DefaultOptions())
	custom := morse.DefaultOptions()
	custom.Dash = "–"
	custom.Dot = "•"
	custom.Space = "\\"
	fancy := morse.Encode(text, custom)
	image := strings.NewReplacer("-", "–", ".", "•", "/", "\\").Replace(plain)
	if fancy != image {
		t.Errorf("expected custom glyph output to be a substitution image,\nwant %s\nhave %s", image, fancy)
	}
}

func TestEncodeInvalidPolicy(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	opts := morse.DefaultOptions()
	if have := morse.Encode("a~b", opts); have != ".- # -..." {
		t.Errorf("expected unknown rune to emit the invalid glyph, is %q", have)
	}
	opts.OnInvalid = func(r rune) string { return string(r) }
	if have := morse.Encode("a~b", opts); have != ".- ~ -..." {
		t.Errorf("expected unknown rune to be echoed by the transform, is %q", have)
	}
	opts.OnInvalid = nil
	opts.Invalid = ""
	if have := morse.Encode("a~b", opts); have != ".- ~ -..." {
		t.Errorf("expected unknown rune to be echoed without invalid glyph, is %q", have)
	}
}

func TestEncodePriorityWinsTies(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// خ has different codes in the Arabic and Persian tables
	opts := morse.DefaultOptions()
	if have := morse.Encode("خ", opts); have != "---" {
		t.Errorf("expected خ to resolve through the Arabic table, is %q", have)
	}
	opts.Priority = morse.Persian
	if have := morse.Encode("خ", opts); have != "-..-" {
		t.Errorf("expected خ to resolve through the Persian overlay, is %q", have)
	}
}

func BenchmarkEncode(b *testing.B) {
	opts := morse.DefaultOptions()
	for i := 0; i < b.N; i++ {
		morse.Encode("the quick brown fox jumps over the lazy dog", opts)
	}
}
