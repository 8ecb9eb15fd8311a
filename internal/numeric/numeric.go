// Package numeric parses and formats the integer literals that increment and
// decrement operate on.
//
// Parsing is strict: the whole string must be a literal, so "1a" is rejected
// rather than read as 1. Three forms are recognized, each with an optional sign:
//
//	0755   octal (leading zero followed by octal digits)
//	42     decimal
//	0x1F   hexadecimal
//
// Formatting keeps the base and prefix. Octal and hex digits are zero-padded to
// the width of the parsed literal, and hex keeps upper case if the literal used it.
package numeric

import (
	"regexp"
	"strconv"
	"strings"
)

// Number is a parsed integer literal.
type Number struct {
	Value  int64
	Base   int
	Digits int  // digit count of the literal, without sign or prefix
	Upper  bool // hex literal used upper-case digits
}

var forms = []struct {
	re     *regexp.Regexp
	base   int
	prefix string
}{
	{regexp.MustCompile(`^([-+])?0([0-7]+)$`), 8, "0"},
	{regexp.MustCompile(`^([-+])?(\d+)$`), 10, ""},
	{regexp.MustCompile(`^([-+])?0[xX]([\da-fA-F]+)$`), 16, "0x"},
}

// Parse reads s as an integer literal. ok is false if s is not exactly one
// literal or does not fit in an int64.
func Parse(s string) (n Number, ok bool) {
	for _, f := range forms {
		m := f.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		v, err := strconv.ParseInt(m[2], f.base, 64)
		if err != nil {
			return Number{}, false
		}
		if m[1] == "-" {
			v = -v
		}
		return Number{
			Value:  v,
			Base:   f.base,
			Digits: len(m[2]),
			Upper:  f.base == 16 && strings.ToLower(m[2]) != m[2],
		}, true
	}
	return Number{}, false
}

// Add returns n offset by delta. ok is false if the result overflows an int64.
func (n Number) Add(delta int64) (Number, bool) {
	sum := n.Value + delta
	if (delta > 0 && sum < n.Value) || (delta < 0 && sum > n.Value) {
		return n, false
	}
	n.Value = sum
	return n, true
}

// String formats n in its original base.
func (n Number) String() string {
	if n.Base == 10 || n.Base == 0 {
		return strconv.FormatInt(n.Value, 10)
	}

	sign := ""
	v := uint64(n.Value)
	if n.Value < 0 {
		sign, v = "-", uint64(-n.Value)
	}

	digits := strconv.FormatUint(v, n.Base)
	if n.Upper {
		digits = strings.ToUpper(digits)
	}
	if pad := n.Digits - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	prefix := "0"
	if n.Base == 16 {
		prefix = "0x"
	}
	return sign + prefix + digits
}
