package address

import (
	"regexp"
	"unicode"
)

// IsFormat1Name reports whether a building or sub-building name is a PAF
// "Format 1" name, one that shares a line with the following elements
// rather than taking a line of its own. An empty name carries no
// information so it never needs a line either.
func IsFormat1Name(name string) bool {
	if name == "" {
		return true
	}

	r := []rune(name)
	if !isASCIIDigit(r[0]) {
		return false
	}

	last := r[len(r)-1]
	if isASCIIDigit(last) {
		return true
	}
	return len(r) >= 2 && isASCIIDigit(r[len(r)-2]) && isASCIILetter(last)
}

var reFormat1Token = regexp.MustCompile(`(?i)^([0-9]+[A-Z]?) `)

// Format1Token returns the building number which starts a composed line,
// e.g. "12A" for "12A High Street", so a renderer can mark it up.
func Format1Token(line string) (token string, ok bool) {
	m := reFormat1Token.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}
