package morse

// CharSet identifies one of the script tables known to this package.
//
// The constant order is significant: it is the canonical lookup precedence
// for encoding and the iteration order when the decoder's reverse index is
// built, so a pattern claimed by both Latin and a later script always
// resolves to Latin unless a priority overlay intervenes. Undefined is
// reserved for that overlay and sorts before every concrete script.
type CharSet int8

// Script tables in canonical precedence order.
const (
	Undefined CharSet = iota // priority overlay slot
	Latin
	Numbers
	Punctuation
	LatinExtended
	Cyrillic
	Greek
	Hebrew
	Arabic
	Persian
	Japanese
	Korean
	Thai
)

const charSetCount = int(Thai) + 1

var charSetNames = [charSetCount]string{
	"Undefined", "Latin", "Numbers", "Punctuation", "LatinExtended",
	"Cyrillic", "Greek", "Hebrew", "Arabic", "Persian", "Japanese",
	"Korean", "Thai",
}

func (cs CharSet) String() string {
	if cs < 0 || int(cs) >= charSetCount {
		return "CharSet(?)"
	}
	return charSetNames[cs]
}
