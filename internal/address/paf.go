package address

import "strings"

// ADDRESS-POINT field mnemonics for PAF records.
const (
	FieldOrganisation            = "ON"
	FieldDepartment              = "DP"
	FieldPOBox                   = "PB"
	FieldBuildingNumber          = "BN"
	FieldSubBuildingName         = "SB"
	FieldBuildingName            = "BD"
	FieldThoroughfare            = "TN"
	FieldDependentThoroughfare   = "DR"
	FieldDoubleDependentLocality = "DD"
	FieldDependentLocality       = "DL"
	FieldPostTown                = "PT"
	FieldPostalCounty            = "CN"
	FieldPostcode                = "PC"
)

// pafLines is the number of slots the PAF layout packs into.
const pafLines = 5

// PAFAddress is a Royal Mail PAF address as supplied by ADDRESS-POINT.
type PAFAddress struct {
	OrganisationName            string `json:"organisation_name"`
	DepartmentName              string `json:"department_name"`
	POBoxNumber                 string `json:"po_box_number"`
	SubBuildingName             string `json:"sub_building_name"`
	BuildingName                string `json:"building_name"`
	BuildingNumber              string `json:"building_number"`
	DependentThoroughfareName   string `json:"dependent_thoroughfare_name"`
	ThoroughfareName            string `json:"thoroughfare_name"`
	DoubleDependentLocalityName string `json:"double_dependent_locality_name"`
	DependentLocalityName       string `json:"dependent_locality_name"`
	PostTown                    string `json:"post_town"`
	PostalCounty                string `json:"postal_county"`
	Postcode                    string `json:"postcode"`
}

// PAFFromRecord reads an ADDRESS-POINT record keyed by field mnemonic.
func PAFFromRecord(r Record) PAFAddress {
	return PAFAddress{
		OrganisationName:            r.Get(FieldOrganisation),
		DepartmentName:              r.Get(FieldDepartment),
		POBoxNumber:                 r.Get(FieldPOBox),
		SubBuildingName:             r.Get(FieldSubBuildingName),
		BuildingName:                r.Get(FieldBuildingName),
		BuildingNumber:              r.Get(FieldBuildingNumber),
		DependentThoroughfareName:   r.Get(FieldDependentThoroughfare),
		ThoroughfareName:            r.Get(FieldThoroughfare),
		DoubleDependentLocalityName: r.Get(FieldDoubleDependentLocality),
		DependentLocalityName:       r.Get(FieldDependentLocality),
		PostTown:                    r.Get(FieldPostTown),
		PostalCounty:                r.Get(FieldPostalCounty),
		Postcode:                    r.Get(FieldPostcode),
	}
}

func (a PAFAddress) trimmed() PAFAddress {
	return PAFAddress{
		OrganisationName:            strings.TrimSpace(a.OrganisationName),
		DepartmentName:              strings.TrimSpace(a.DepartmentName),
		POBoxNumber:                 strings.TrimSpace(a.POBoxNumber),
		SubBuildingName:             strings.TrimSpace(a.SubBuildingName),
		BuildingName:                strings.TrimSpace(a.BuildingName),
		BuildingNumber:              strings.TrimSpace(a.BuildingNumber),
		DependentThoroughfareName:   strings.TrimSpace(a.DependentThoroughfareName),
		ThoroughfareName:            strings.TrimSpace(a.ThoroughfareName),
		DoubleDependentLocalityName: strings.TrimSpace(a.DoubleDependentLocalityName),
		DependentLocalityName:       strings.TrimSpace(a.DependentLocalityName),
		PostTown:                    strings.TrimSpace(a.PostTown),
		PostalCounty:                strings.TrimSpace(a.PostalCounty),
		Postcode:                    strings.TrimSpace(a.Postcode),
	}
}

// HasAddress reports whether any field holds text.
func (a PAFAddress) HasAddress() bool {
	return a.trimmed() != PAFAddress{}
}

// Compose lays out the address following Royal Mail guidelines:
// organisation, PO box, premises, thoroughfare and locality elements
// packed into at most five lines, with the postcode last.
func (a PAFAddress) Compose(opts Options) SimpleAddress {
	opts = opts.withDefaults()
	sep := opts.Separator
	a = a.trimmed()

	// Organisation
	org := NormalizeCase(a.OrganisationName)
	org = appendElement(org, NormalizeCase(a.DepartmentName), sep)

	// Premises
	subBuildingIsFormat1 := IsFormat1Name(a.SubBuildingName)
	buildingIsFormat1 := IsFormat1Name(a.BuildingName)
	premisesOnSeparateLine := (a.SubBuildingName != "" && !subBuildingIsFormat1) ||
		(a.BuildingName != "" && !buildingIsFormat1)

	var premises string
	// A sub-building needs a building name or number to belong to.
	if a.SubBuildingName != "" && (a.BuildingName != "" || a.BuildingNumber != "") {
		premises = NormalizeCase(a.SubBuildingName)
	}
	if a.BuildingName != "" {
		if premises != "" {
			if subBuildingIsFormat1 {
				premises += " "
			} else {
				premises += sep
			}
		}
		premises += NormalizeCase(a.BuildingName)
	}

	// Thoroughfare. A dependent thoroughfare needs its parent.
	var thoroughfare string
	if a.ThoroughfareName != "" {
		if a.DependentThoroughfareName != "" {
			thoroughfare = NormalizeCase(a.DependentThoroughfareName)
		}
		thoroughfare = appendElement(thoroughfare, NormalizeCase(a.ThoroughfareName), sep)
	}

	// Locality. A double dependent locality needs a dependent locality.
	var locality string
	if a.DoubleDependentLocalityName != "" && a.DependentLocalityName != "" {
		locality = NormalizeCase(a.DoubleDependentLocalityName)
	}
	locality = appendElement(locality, NormalizeCase(a.DependentLocalityName), sep)
	locality = appendElement(locality, NormalizeCase(a.PostTown), sep)
	locality = appendElement(locality, NormalizeCase(a.PostalCounty), sep)

	if a.BuildingNumber != "" {
		if thoroughfare != "" {
			thoroughfare = a.BuildingNumber + " " + thoroughfare
		} else if locality != "" {
			locality = a.BuildingNumber + " " + locality
		}
	}

	// Format 1 premises go in front of the next line instead of taking their own.
	if !premisesOnSeparateLine && premises != "" {
		if thoroughfare != "" {
			thoroughfare = premises + " " + thoroughfare
			premises = ""
		} else if locality != "" {
			locality = premises + " " + locality
			premises = ""
		}
	}

	var poBox string
	if a.POBoxNumber != "" {
		poBox = opts.POBoxLabel + a.POBoxNumber
	}

	lines := make([]string, 0, pafLines)
	for _, el := range []string{org, poBox, premises, thoroughfare, locality} {
		if el != "" {
			lines = append(lines, el)
		}
	}

	// With four or more lines in use the postcode shares the fifth,
	// two spaces after whatever is already there.
	if postcode := FormatPostcode(a.Postcode); postcode != "" {
		if len(lines) < pafLines-1 {
			lines = append(lines, postcode)
		} else {
			for len(lines) < pafLines {
				lines = append(lines, "")
			}
			lines[pafLines-1] += "  " + postcode
		}
	}

	return NewSimpleAddress(lines...)
}
