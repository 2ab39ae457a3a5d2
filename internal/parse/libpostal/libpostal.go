// Package libpostal parses free-text addresses with libpostal.
package libpostal

import (
	"strings"

	postal "github.com/openvenues/gopostal/parser"

	"github.com/llpg-simpleaddress/internal/address"
	"github.com/llpg-simpleaddress/internal/debug"
	"github.com/llpg-simpleaddress/internal/parse"
)

// Parse splits text into labelled components
func Parse(text string) []parse.Component {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	parsed := postal.ParseAddress(text)
	components := make([]parse.Component, 0, len(parsed))
	for _, c := range parsed {
		components = append(components, parse.Component{Label: c.Label, Value: c.Value})
	}
	return components
}

// ParsePAF parses text and maps the result onto PAF fields
func ParsePAF(text string, localDebug bool) address.PAFAddress {
	components := Parse(text)
	debug.DebugLines(localDebug, "libpostal", parse.Labels(components))
	return parse.ToPAF(components)
}
