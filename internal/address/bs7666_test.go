package address

import (
	"reflect"
	"testing"
)

func TestBS7666Compose(t *testing.T) {
	tests := []struct {
		name  string
		input BS7666Address
		want  [MaxLines]string
	}{
		{
			name: "numbered paon shares the street line",
			input: BS7666Address{
				Paon:       "12",
				StreetName: "High Street",
				Town:       "Lewes",
				Postcode:   "BN71AB",
			},
			want: [MaxLines]string{"", "12 High Street", "", "Lewes", "BN7 1AB"},
		},
		{
			name: "named paon takes the first line",
			input: BS7666Address{
				Paon:               "Rose Cottage",
				StreetName:         "MILL LANE",
				Locality:           "CHAILEY",
				Town:               "LEWES",
				AdministrativeArea: "EAST SUSSEX",
				Postcode:           "BN8 4AA",
			},
			want: [MaxLines]string{"Rose Cottage", "Mill Lane", "Chailey", "Lewes", "East Sussex BN8 4AA"},
		},
		{
			name: "saon pushes named paon onto the street line",
			input: BS7666Address{
				Saon:       "FLAT 3",
				Paon:       "Rose Court",
				StreetName: "Mill Lane",
				Town:       "Lewes",
			},
			want: [MaxLines]string{"Flat 3", "Rose Court, Mill Lane", "", "Lewes", ""},
		},
		{
			name: "number range joins with a space",
			input: BS7666Address{
				Saon:       "Flat 2",
				Paon:       "12-14",
				StreetName: "High Street",
			},
			want: [MaxLines]string{"Flat 2", "12-14 High Street"},
		},
		{
			name: "long number joins with a comma",
			input: BS7666Address{
				Paon:       "12345",
				StreetName: "High Street",
			},
			want: [MaxLines]string{"", "12345, High Street"},
		},
		{
			name: "paon without street",
			input: BS7666Address{
				Paon: "12",
				Town: "Lewes",
			},
			want: [MaxLines]string{"", "12", "", "Lewes"},
		},
		{
			name: "street without paon",
			input: BS7666Address{
				StreetName: "High Street",
				Town:       "Lewes",
			},
			want: [MaxLines]string{"", "High Street", "", "Lewes"},
		},
		{
			name: "administrative area without postcode",
			input: BS7666Address{
				Town:               "Lewes",
				AdministrativeArea: "East Sussex",
			},
			want: [MaxLines]string{"", "", "", "Lewes", "East Sussex"},
		},
		{
			name: "whitespace is trimmed",
			input: BS7666Address{
				Paon:       " 12 ",
				StreetName: " High Street ",
				Postcode:   " bn7 1ab ",
			},
			want: [MaxLines]string{"", "12 High Street", "", "", "BN7 1AB"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Compose(DefaultOptions()).Slots()
			if got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBS7666ComposeLines(t *testing.T) {
	input := BS7666Address{
		Paon:       "12",
		StreetName: "High Street",
		Town:       "Lewes",
		Postcode:   "BN71AB",
	}

	got := input.Compose(DefaultOptions()).Lines()
	want := []string{"12 High Street", "Lewes", "BN7 1AB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestBS7666ComposeLeavesInputAlone(t *testing.T) {
	input := BS7666Address{
		Saon:       "FLAT 3",
		Paon:       "ROSE COURT",
		StreetName: "MILL LANE",
		Town:       "LEWES",
	}
	before := input

	first := input.Compose(DefaultOptions())
	second := input.Compose(DefaultOptions())
	if first != second {
		t.Errorf("Compose() not deterministic: %q then %q", first.Lines(), second.Lines())
	}
	if input != before {
		t.Errorf("Compose() changed its input: %+v", input)
	}
}

func TestBS7666HasAddress(t *testing.T) {
	tests := []struct {
		name  string
		input BS7666Address
		want  bool
	}{
		{"empty", BS7666Address{}, false},
		{"identifiers only", BS7666Address{Uprn: "100060000001", Usrn: "12345"}, false},
		{"whitespace only", BS7666Address{Town: "  ", Postcode: " "}, false},
		{"town", BS7666Address{Town: "Lewes"}, true},
		{"postcode", BS7666Address{Postcode: "BN7 1AB"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.HasAddress(); got != tt.want {
				t.Errorf("HasAddress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasAddressFollowsChanges(t *testing.T) {
	a := BS7666Address{}
	if a.HasAddress() {
		t.Fatal("empty address reports HasAddress")
	}
	a.Town = "Lewes"
	if !a.HasAddress() {
		t.Error("HasAddress() did not see the new town")
	}
	a.Town = ""
	if a.HasAddress() {
		t.Error("HasAddress() did not see the town cleared")
	}
}

func TestBS7666FromRecord(t *testing.T) {
	record := Record{
		"UPRN":               "100060000001",
		"Street_Name":        "High Street",
		"paon":               "12",
		"AdministrativeArea": "East Sussex",
		"postcode":           "bn71ab",
	}

	got := BS7666FromRecord(record)
	want := BS7666Address{
		Uprn:               "100060000001",
		Paon:               "12",
		StreetName:         "High Street",
		AdministrativeArea: "East Sussex",
		Postcode:           "BN7 1AB",
	}
	if got != want {
		t.Errorf("BS7666FromRecord() = %+v, want %+v", got, want)
	}
}
