/*
Package uax9 is about the Unicode Bidirectional Algorithm (UAX#9).

Description

From the Unicode Consortium:

The Unicode Standard prescribes a memory representation order known as logical
order. When text is presented in horizontal lines, most scripts display
characters from left to right. However, there are several scripts (such as
Arabic or Hebrew) where the natural ordering of horizontal text in display is
from right to left. If all of the text has a uniform horizontal direction, then
the ordering of the display text is unambiguous.

However, because these right-to-left scripts use digits that are written from
left to right, the text is actually bidirectional: a mixture of right-to-left
and left-to-right text. In addition to digits, embedded words from English and
other scripts are also written from left to right, also producing bidirectional
text. Without a clear specification, ambiguities can arise in determining the
ordering of the displayed characters when the horizontal direction of the text
is not uniform.

[...]

Contents

The algorithm is implemented in sub-package bidi. Clients resolve a paragraph
of text and receive embedding levels, the visual order of the characters, and
directional fragments suitable for placing runs of glyphs on a line.

Command bidicli in cmd/bidicli is an interactive tool to explore the results of
the algorithm for lines of text.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package uax9
