package parse

import (
	"regexp"
	"strings"

	"github.com/llpg-simpleaddress/internal/address"
)

// Component is one labelled piece of a free-text address, as produced by
// libpostal (house_number, road, city, postcode, ...).
type Component struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var rePOBoxPrefix = regexp.MustCompile(`(?i)^p\.?\s*o\.?\s*box\s*`)

// ToPAF maps parsed components onto PAF fields. Repeated labels are joined
// with a space and unknown labels (country, entrance, ...) are dropped.
// Values are upper cased since PAF text is upper case and composition
// relies on that to choose the display case.
func ToPAF(components []Component) address.PAFAddress {
	var a address.PAFAddress
	for _, c := range components {
		value := strings.ToUpper(strings.TrimSpace(c.Value))
		if value == "" {
			continue
		}

		switch c.Label {
		case "house":
			a.BuildingName = join(a.BuildingName, value)
		case "house_number":
			a.BuildingNumber = join(a.BuildingNumber, value)
		case "unit", "level":
			a.SubBuildingName = join(a.SubBuildingName, value)
		case "road":
			a.ThoroughfareName = join(a.ThoroughfareName, value)
		case "suburb":
			a.DependentLocalityName = join(a.DependentLocalityName, value)
		case "city":
			a.PostTown = join(a.PostTown, value)
		case "state_district", "state":
			// state_district is the closer match for a UK county; keep the first one seen
			if a.PostalCounty == "" {
				a.PostalCounty = value
			}
		case "po_box":
			a.POBoxNumber = join(a.POBoxNumber, rePOBoxPrefix.ReplaceAllString(value, ""))
		case "postcode":
			a.Postcode = address.FormatPostcode(value)
		}
	}
	return a
}

// Labels lists the component labels in order, for debug output.
func Labels(components []Component) []string {
	labels := make([]string, 0, len(components))
	for _, c := range components {
		labels = append(labels, c.Label+"="+c.Value)
	}
	return labels
}

func join(existing, value string) string {
	if existing == "" {
		return value
	}
	return existing + " " + value
}
