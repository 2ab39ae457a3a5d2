package address

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCase converts SHOUTING values, as bulk-loaded from PAF and the
// gazetteer, into title case. Values which already contain lower case
// letters were entered by a person and are returned untouched.
func NormalizeCase(s string) string {
	if s != strings.ToUpper(s) {
		return s
	}
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.BritishEnglish).String(s)
}
