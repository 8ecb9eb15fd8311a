package nav

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultWordSeparators is the punctuation set of the word class.
const DefaultWordSeparators = "/\\()\"':,.;<>~!@#$%^&*|+=[]{}`?-"

var (
	// DefaultWordClass splits words on whitespace and DefaultWordSeparators.
	DefaultWordClass = MustWordClass(DefaultWordSeparators)

	// BigWordClass splits words on whitespace only.
	BigWordClass = MustWordClass("")

	sentenceEnd = regexp.MustCompile(`[.!?](?:[ \n\t]+|$)`)
	nonSpace    = regexp.MustCompile(`\S`)
)

// WordClass classifies characters into words for boundary scanning.
type WordClass struct {
	separators string
	re         *regexp.Regexp
}

// NewWordClass builds a word class from a separator character set.
func NewWordClass(separators string) (*WordClass, error) {
	re, err := regexp.Compile(wordPattern(separators))
	if err != nil {
		return nil, fmt.Errorf("nav: word class %q: %w", separators, err)
	}
	return &WordClass{separators: separators, re: re}, nil
}

// MustWordClass is like NewWordClass but panics on error.
func MustWordClass(separators string) *WordClass {
	c, err := NewWordClass(separators)
	if err != nil {
		panic(err)
	}
	return c
}

// Separators returns the separator set the class was built from.
func (c *WordClass) Separators() string {
	return c.separators
}

// Starts returns the rune column of every word start on line.
// An empty line yields a single start at column 0.
func (c *WordClass) Starts(line string) []int {
	return matchStarts(c.re, line)
}

// Ends returns the rune column of the last character of every word on line.
func (c *WordClass) Ends(line string) []int {
	return matchEnds(c.re, line)
}

func wordPattern(separators string) string {
	set := escapeClass(separators)
	parts := []string{`([^\s` + set + `]+)`}
	if set != "" {
		parts = append(parts, `[`+set+`]+`)
	}
	parts = append(parts, `$^`)
	return strings.Join(parts, "|")
}

// escapeClass escapes s for use inside a character class.
func escapeClass(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r < utf8.RuneSelf && isPunct(byte(r)) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// isPunct reports whether b is printable ASCII punctuation, the only bytes that
// may be backslash-escaped in a regexp.
func isPunct(b byte) bool {
	return b > ' ' && b < 0x7f && !(b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9')
}

func matchStarts(re *regexp.Regexp, line string) []int {
	cols := newColumns(line)
	var out []int
	for _, m := range re.FindAllStringIndex(line, -1) {
		out = append(out, cols.col(m[0]))
	}
	return out
}

func matchEnds(re *regexp.Regexp, line string) []int {
	cols := newColumns(line)
	var out []int
	for _, m := range re.FindAllStringIndex(line, -1) {
		if m[1] > m[0] {
			out = append(out, cols.col(m[1])-1)
		}
	}
	return out
}

// columns converts byte offsets of a line to rune columns.
type columns struct {
	line  string
	ascii bool
}

func newColumns(line string) columns {
	return columns{line: line, ascii: utf8.RuneCountInString(line) == len(line)}
}

func (c columns) col(off int) int {
	if c.ascii {
		return off
	}
	return utf8.RuneCountInString(c.line[:off])
}
