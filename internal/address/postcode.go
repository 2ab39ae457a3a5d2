package address

import (
	"strings"
	"unicode"
)

// FormatPostcode compresses a raw postcode to its letters and digits,
// uppercases it and inserts the space before the inward code.
// Six character postcodes split after 3, seven character ones after 4.
// Anything else is returned compressed but unsplit.
func FormatPostcode(postcode string) string {
	if postcode == "" {
		return ""
	}

	b := strings.Builder{}
	for _, r := range postcode {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}

	compressed := []rune(b.String())
	switch len(compressed) {
	case 6:
		return string(compressed[:3]) + " " + string(compressed[3:])
	case 7:
		return string(compressed[:4]) + " " + string(compressed[4:])
	}
	return string(compressed)
}
