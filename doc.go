/*
Package morse transcodes plain text to and from Morse code.

Overview

Morse code predates any notion of a character encoding standard, and over
time radio communities all over the world derived national variants from
the international (ITU) code: Cyrillic, Greek, Hebrew, Arabic, Persian,
Japanese (Wabun, over katakana), Korean (SKATS, over jamo) and Thai codes
all exist and are in use. This package knows the tables for all of them,
plus digits, punctuation and a set of extended Latin letters.

Clients configure the output alphabet (the glyphs for dot, dash, the
separator between characters and the marker for a word boundary) through
an Options value and call one of two operations:

	opts := morse.DefaultOptions()
	code := morse.Encode("the quick brown fox", opts)
	// "- .... . / --.- ..- .. -.-. -.- / -... .-. --- .-- -. / ..-. --- -..-"
	text := morse.Decode(code, opts)
	// "THE QUICK BROWN FOX"

Glyphs are purely presentational: the tables store abstract dot/dash
patterns and render them into whatever glyphs the Options carry, so any
two glyph configurations produce symbol-for-symbol substitution images of
one another.

Scripts and Ambiguity

Many scripts reuse the same pattern for phonetically similar letters
(Latin A and Cyrillic А both encode as dot-dash). Encoding therefore
consults the script tables in a fixed canonical order, Latin before
numbers, punctuation, extended Latin and the non-Latin scripts, and
decoding resolves a pattern to the character of the first script that
claims it.
The canonical order is a compatibility choice inherited from common Morse
tooling, not a statement about the scripts themselves. Clients working in
a non-Latin script set Options.Priority to that script: its table is then
consulted before all others and wins every collision, which is the only
way non-Latin text survives a round trip.

The package is stateless and purely functional; all operations may be
called concurrently.

___________________________________________________________________________

BSD License

Copyright © 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package morse

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
