/*
Package bidi implements the Unicode UAX#9 Bidirectional Algorithm.

A paragraph of text is resolved in the phases layed out by UAX#9:

   3.3.1 – 3.3.2  Paragraph level and explicit levels (P2, P3, X1 – X8)
   3.3.3          Removal of explicit formatting characters (X9)
   3.3.3          Isolating run sequences (BD13, X10)
   3.3.4 – 3.3.5  Weak types, paired brackets and neutral types (W1 – W7, N0 – N2)
   3.3.6          Implicit levels (I1, I2)
   3.4            Reordering of resolved levels (L1, L2)

Clients call one of ResolveParagraph, ResolveRunes or ResolveClasses and receive a
*Paragraph, which offers the resolved embedding levels in logical order, the
characters in visual order, and a list of direction-homogeneous fragments.

The input is considered a single line. Line breaking is not handled by this
package, and rules L1 and L2 are applied to the paragraph as a whole.

Test mode

Bidi algorithm development frequently uses strings where uppercase letters stand
for strong right-to-left characters. Option Testing(true) sets up the classifier
to do exactly that.

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

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
package bidi

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/bidi"
)

// tracer traces with key 'uax.bidi'
func tracer() tracing.Trace {
	return tracing.Select("uax.bidi")
}

// UnicodeVersion is the UAX#9 version this implementation follows. Character
// classes are taken from package golang.org/x/text/unicode/bidi.
const UnicodeVersion = bidi.UnicodeVersion

// MaxDepth is the maximum explicit embedding level (BD2).
const MaxDepth = 125
