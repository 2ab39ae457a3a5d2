package address

import "testing"

func TestFormatPostcode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"six characters", "bn71ab", "BN7 1AB"},
		{"seven characters", "gu341aa", "GU34 1AA"},
		{"already formatted", "BN7 1AB", "BN7 1AB"},
		{"extra whitespace", "  GU34   1AA ", "GU34 1AA"},
		{"punctuation", "SW1A-1AA.", "SW1A 1AA"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"outward code only", "w1", "W1"},
		{"too long", "EC1A 1BB X", "EC1A1BBX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPostcode(tt.input); got != tt.want {
				t.Errorf("FormatPostcode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatPostcodeIdempotent(t *testing.T) {
	for _, input := range []string{"bn71ab", "GU34 1AA", "w1", "sw1a1aa", "EC1A1BBX"} {
		once := FormatPostcode(input)
		if twice := FormatPostcode(once); twice != once {
			t.Errorf("FormatPostcode(%q) = %q, reformatted to %q", input, once, twice)
		}
	}
}
