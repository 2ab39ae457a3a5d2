package address

import (
	"regexp"
	"strings"
)

// GeoCoordinate marks the location of an addressable object.
type GeoCoordinate struct {
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Easting   int     `json:"easting,omitempty"`
	Northing  int     `json:"northing,omitempty"`
}

// BS7666Address is an address in the BS7666 format used by the National
// Land and Property Gazetteer. The PAON is the primary addressable object
// number and/or name, the SAON the secondary one within it (e.g. "Flat 3").
// Uprn and Usrn identify the property and street and take no part in layout.
type BS7666Address struct {
	Uprn               string        `json:"uprn,omitempty"`
	Usrn               string        `json:"usrn,omitempty"`
	Saon               string        `json:"saon"`
	Paon               string        `json:"paon"`
	StreetName         string        `json:"street_name"`
	Locality           string        `json:"locality"`
	Town               string        `json:"town"`
	AdministrativeArea string        `json:"administrative_area"`
	Postcode           string        `json:"postcode"`
	GeoCoordinate      GeoCoordinate `json:"geo_coordinate"`
}

// NewBS7666Address builds an address with its postcode formatted.
func NewBS7666Address(uprn, usrn, paon, saon, streetName, locality, town, administrativeArea, postcode string) BS7666Address {
	return BS7666Address{
		Uprn:               strings.TrimSpace(uprn),
		Usrn:               strings.TrimSpace(usrn),
		Paon:               paon,
		Saon:               saon,
		StreetName:         streetName,
		Locality:           locality,
		Town:               town,
		AdministrativeArea: administrativeArea,
		Postcode:           FormatPostcode(postcode),
	}
}

// BS7666FromRecord reads a gazetteer record keyed by BS7666 element name.
func BS7666FromRecord(r Record) BS7666Address {
	return NewBS7666Address(
		r.Get("uprn"),
		r.Get("usrn"),
		r.Get("paon"),
		r.Get("saon"),
		r.Get("street_name"),
		r.Get("locality"),
		r.Get("town"),
		r.Get("administrative_area"),
		r.Get("postcode"),
	)
}

// HasAddress reports whether any addressing element holds text.
// The identifiers and coordinate do not count.
func (a BS7666Address) HasAddress() bool {
	for _, el := range []string{a.Saon, a.Paon, a.StreetName, a.Locality, a.Town, a.AdministrativeArea, a.Postcode} {
		if strings.TrimSpace(el) != "" {
			return true
		}
	}
	return false
}

// bs7666Lines is the number of fixed slots in the BS7666 layout.
const bs7666Lines = 5

// rePaonNumber matches building numbers short enough to sit in front of
// the street name without a comma: 12, 12A, 12-14, 2/3B.
var rePaonNumber = regexp.MustCompile(`(?i)^[0-9]{1,2}[-/]?[0-9]{0,2}[A-Z]?$`)

// Compose lays out the address in five fixed slots: SAON (or a named
// PAON), PAON and street, locality, town, then administrative area with
// the postcode. Unused slots stay empty.
func (a BS7666Address) Compose(opts Options) SimpleAddress {
	opts = opts.withDefaults()
	saon := NormalizeCase(strings.TrimSpace(a.Saon))
	paon := strings.TrimSpace(a.Paon)
	street := NormalizeCase(strings.TrimSpace(a.StreetName))
	locality := NormalizeCase(strings.TrimSpace(a.Locality))
	town := NormalizeCase(strings.TrimSpace(a.Town))
	area := NormalizeCase(strings.TrimSpace(a.AdministrativeArea))
	postcode := FormatPostcode(strings.TrimSpace(a.Postcode))

	var slots [bs7666Lines]string
	slots[0] = saon

	if saon == "" && !IsFormat1Name(paon) {
		// A named PAON has line one to itself.
		slots[0] = paon
		slots[1] = street
	} else {
		switch {
		case paon != "" && street != "":
			if rePaonNumber.MatchString(paon) {
				slots[1] = paon + " " + street
			} else {
				slots[1] = paon + opts.Separator + street
			}
		case paon != "":
			slots[1] = paon
		default:
			slots[1] = street
		}
	}

	slots[2] = locality
	slots[3] = town
	slots[4] = strings.TrimSpace(area + " " + postcode)

	return NewSimpleAddress(slots[:]...)
}
