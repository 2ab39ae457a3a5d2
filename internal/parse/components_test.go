package parse

import (
	"reflect"
	"testing"

	"github.com/llpg-simpleaddress/internal/address"
)

func TestToPAF(t *testing.T) {
	tests := []struct {
		name       string
		components []Component
		want       address.PAFAddress
	}{
		{
			name: "numbered street",
			components: []Component{
				{Label: "house_number", Value: "14"},
				{Label: "road", Value: "high street"},
				{Label: "city", Value: "lewes"},
				{Label: "postcode", Value: "bn7 1ab"},
			},
			want: address.PAFAddress{
				BuildingNumber:   "14",
				ThoroughfareName: "HIGH STREET",
				PostTown:         "LEWES",
				Postcode:         "BN7 1AB",
			},
		},
		{
			name: "flat in named building",
			components: []Component{
				{Label: "unit", Value: "flat 3"},
				{Label: "house", Value: "rose court"},
				{Label: "road", Value: "mill lane"},
				{Label: "suburb", Value: "southover"},
				{Label: "city", Value: "lewes"},
				{Label: "state_district", Value: "east sussex"},
				{Label: "state", Value: "england"},
				{Label: "country", Value: "united kingdom"},
			},
			want: address.PAFAddress{
				SubBuildingName:       "FLAT 3",
				BuildingName:          "ROSE COURT",
				ThoroughfareName:      "MILL LANE",
				DependentLocalityName: "SOUTHOVER",
				PostTown:              "LEWES",
				PostalCounty:          "EAST SUSSEX",
			},
		},
		{
			name: "po box prefix dropped",
			components: []Component{
				{Label: "po_box", Value: "po box 42"},
				{Label: "city", Value: "brighton"},
			},
			want: address.PAFAddress{POBoxNumber: "42", PostTown: "BRIGHTON"},
		},
		{
			name: "unit and level joined",
			components: []Component{
				{Label: "level", Value: "2nd floor"},
				{Label: "unit", Value: "suite 4"},
				{Label: "house_number", Value: "1"},
				{Label: "road", Value: "station road"},
			},
			want: address.PAFAddress{
				SubBuildingName:  "2ND FLOOR SUITE 4",
				BuildingNumber:   "1",
				ThoroughfareName: "STATION ROAD",
			},
		},
		{
			name:       "blank values ignored",
			components: []Component{{Label: "road", Value: "  "}},
			want:       address.PAFAddress{},
		},
		{
			name: "nil components",
			want: address.PAFAddress{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPAF(tt.components)
			if got != tt.want {
				t.Errorf("ToPAF() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToPAFComposes(t *testing.T) {
	components := []Component{
		{Label: "house_number", Value: "14"},
		{Label: "road", Value: "high street"},
		{Label: "city", Value: "lewes"},
		{Label: "postcode", Value: "bn71ab"},
	}

	got := ToPAF(components).Compose(address.DefaultOptions()).Lines()
	want := []string{"14 High Street", "Lewes", "BN7 1AB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("composed lines = %q, want %q", got, want)
	}
}

func TestLabels(t *testing.T) {
	got := Labels([]Component{{Label: "road", Value: "high street"}})
	if len(got) != 1 || got[0] != "road=high street" {
		t.Errorf("Labels() = %q", got)
	}
	if got := Labels(nil); len(got) != 0 {
		t.Errorf("Labels(nil) = %q, want empty", got)
	}
}
