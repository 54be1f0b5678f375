package textpos

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ge-editor/textpos/pkg_error"
)

// ConvertStringToInteger converts a dec/hex/bin string to an integer.
//
// "0x" selects base 16 and "0b" base 2, the prefix must be the very first
// characters of input. As in the editor scripts, leading white space and a
// sign are accepted and parsing stops at the first character that is not a
// digit of the base, so "12px" is 12. Input without any digit returns
// pkg_error.ErrNotANumber.
func ConvertStringToInteger(input string) (int64, error) {
	base := 10
	if strings.HasPrefix(input, "0x") {
		base = 16
		input = input[2:]
	} else if strings.HasPrefix(input, "0b") {
		base = 2
		input = input[2:]
	}

	s := strings.TrimLeftFunc(input, unicode.IsSpace)
	sign := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	if base == 16 && len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	digits := digitPrefix(s, base)
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", pkg_error.ErrNotANumber, input)
	}
	n, err := strconv.ParseInt(sign+digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", pkg_error.ErrNotANumber, input, err)
	}
	return n, nil
}

// Return the longest prefix of s made of digits valid in base
func digitPrefix(s string, base int) string {
	for i, ch := range s {
		if digitValue(ch) >= base {
			return s[:i]
		}
	}
	return s
}

func digitValue(ch rune) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		return int(ch-'A') + 10
	}
	return 36
}
