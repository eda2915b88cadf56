/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Apart from the generic data file format, there are readers for the conformance
test files of UAX#9: BidiTest.txt and BidiCharacterTest.txt.
*/
package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token holds the content of a data line of a UCD file.
type Token struct {
	LineNo   int      // line number within the input source, starting at 1
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // fields of the line following the code point field, trimmed
	Comment  string   // rest-of-line comment of data item lines
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#U..%#U %#v]", token.LineNo, token.runeFrom, token.runeTo,
		token.Fields)
}

// Field gets field #i (1…n) from the current data item. Field #0 is the code
// point field, which is available with Range.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// Parse iterates over each data line of the UCD file and calls callback f on it.
// Empty lines and comment lines are skipped.
func Parse(r io.Reader, f func(token *Token)) error {
	return scanLines(r, func(lineno int, text, comment string) error {
		fields := strings.Split(text, ";")
		token := &Token{
			LineNo:  lineno,
			Fields:  make([]string, len(fields)-1),
			Comment: comment,
		}
		var err error
		if token.runeFrom, token.runeTo, err = parseRange(fields[0]); err != nil {
			return err
		}
		for i, field := range fields[1:] {
			token.Fields[i] = strings.TrimSpace(field)
		}
		f(token)
		return nil
	})
}

// scanLines reads lines from r and calls f for every line carrying data, with
// text and rest-of-line comment separated. Errors returned by f are annotated
// with the line number.
func scanLines(r io.Reader, f func(lineno int, text, comment string) error) error {
	if r == nil {
		return errors.New("no input present")
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		var comment string
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line, comment = line[:i], strings.TrimSpace(line[i+1:])
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := f(lineno, line, comment); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading UCD file: %w", err)
	}
	return nil
}

// parseRange parses a code point field of the form "XXXX" or "XXXX..YYYY".
func parseRange(field string) (from, to rune, err error) {
	field = strings.TrimSpace(field)
	parts := strings.SplitN(field, "..", 2)
	if from, err = ParseHexRune(parts[0]); err != nil {
		return
	}
	to = from
	if len(parts) == 2 {
		if to, err = ParseHexRune(parts[1]); err != nil {
			return
		}
		if to < from {
			err = fmt.Errorf("invalid code point range %q", field)
		}
	}
	return
}

// ParseHexRune parses a code point given in hexadecimal notation, e.g. "05D0".
func ParseHexRune(hex string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(hex), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}
