package address

import (
	"reflect"
	"testing"
)

func TestNewComposerDefaults(t *testing.T) {
	c := NewComposer(Options{POBoxLabel: "P.O. Box "})
	opts := c.Options()
	if opts.Separator != DefaultSeparator {
		t.Errorf("Separator = %q, want %q", opts.Separator, DefaultSeparator)
	}
	if opts.POBoxLabel != "P.O. Box " {
		t.Errorf("POBoxLabel = %q, want %q", opts.POBoxLabel, "P.O. Box ")
	}
}

func TestComposerComposeAll(t *testing.T) {
	c := NewComposer(DefaultOptions())

	srcs := []Source{
		PAFAddress{BuildingNumber: "14", ThoroughfareName: "High Street", PostTown: "Lewes", Postcode: "BN71AB"},
		BS7666Address{Paon: "12", StreetName: "High Street", Town: "Lewes", Postcode: "BN71AB"},
		nil,
	}

	got := c.ComposeAll(srcs)
	if len(got) != len(srcs) {
		t.Fatalf("ComposeAll() returned %d addresses, want %d", len(got), len(srcs))
	}

	want := [][]string{
		{"14 High Street", "Lewes", "BN7 1AB"},
		{"12 High Street", "Lewes", "BN7 1AB"},
		{},
	}
	for i := range want {
		if lines := got[i].Lines(); !reflect.DeepEqual(lines, want[i]) {
			t.Errorf("address %d = %q, want %q", i, lines, want[i])
		}
	}
}

func TestComposerKeepsSchemaPacking(t *testing.T) {
	c := NewComposer(DefaultOptions())

	paf := c.Compose(PAFAddress{ThoroughfareName: "High Street", PostTown: "Lewes"})
	if got := paf.Slot(0); got != "High Street" {
		t.Errorf("PAF slot 0 = %q, want compacted %q", got, "High Street")
	}

	bs := c.Compose(BS7666Address{StreetName: "High Street", Town: "Lewes"})
	if got := bs.Slot(0); got != "" {
		t.Errorf("BS7666 slot 0 = %q, want empty", got)
	}
	if got := bs.Slot(3); got != "Lewes" {
		t.Errorf("BS7666 slot 3 = %q, want %q", got, "Lewes")
	}
}

func TestAddressInfoSimpleAddress(t *testing.T) {
	tests := []struct {
		name string
		info AddressInfo
		want string
	}{
		{
			name: "gazetteer preferred",
			info: AddressInfo{
				BS7666: BS7666Address{Paon: "12", StreetName: "High Street"},
				PAF:    PAFAddress{BuildingNumber: "14", ThoroughfareName: "High Street"},
			},
			want: "12 High Street",
		},
		{
			name: "PAF when no gazetteer address",
			info: AddressInfo{
				PAF: PAFAddress{BuildingNumber: "14", ThoroughfareName: "High Street"},
			},
			want: "14 High Street",
		},
		{
			name: "stored lines as a last resort",
			info: AddressInfo{Simple: NewSimpleAddress("1 Rotten Row", "Lewes")},
			want: "1 Rotten Row, Lewes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.SimpleAddress(DefaultOptions()).String(); got != tt.want {
				t.Errorf("SimpleAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationType(t *testing.T) {
	for v := ValidationUnknown; v <= ValidationNlpgCheckValid; v++ {
		if got := ParseValidationType(v.String()); got != v {
			t.Errorf("ParseValidationType(%q) = %v, want %v", v.String(), got, v)
		}
	}
	if got := ParseValidationType("bogus"); got != ValidationUnknown {
		t.Errorf("ParseValidationType(bogus) = %v", got)
	}
	if got := ValidationType(99).String(); got != "unknown" {
		t.Errorf("ValidationType(99).String() = %q", got)
	}
}
