package address

import "strings"

// MaxLines is the number of lines a SimpleAddress can hold.
const MaxLines = 7

// DefaultSeparator is the en-GB list separator used between address elements.
const DefaultSeparator = ", "

// SimpleAddress is an address laid out as presentational lines.
// Slots keep their position, so a composer may leave gaps where the
// source schema fixes which element goes on which line.
type SimpleAddress struct {
	slots [MaxLines]string
}

// Line is a populated address line with its leading building number, if any.
type Line struct {
	Text    string `json:"text"`
	Format1 string `json:"format1,omitempty"`
}

// NewSimpleAddress fills slots in order. Lines beyond MaxLines are dropped.
func NewSimpleAddress(lines ...string) SimpleAddress {
	var sa SimpleAddress
	for i, line := range lines {
		if i >= MaxLines {
			break
		}
		sa.slots[i] = line
	}
	return sa
}

// Slot returns the raw content of the zero-based slot i.
func (sa SimpleAddress) Slot(i int) string {
	if i < 0 || i >= MaxLines {
		return ""
	}
	return sa.slots[i]
}

// Slots returns a copy of every slot, empty ones included.
func (sa SimpleAddress) Slots() [MaxLines]string {
	return sa.slots
}

// Lines returns the populated lines in slot order.
func (sa SimpleAddress) Lines() []string {
	lines := make([]string, 0, MaxLines)
	for _, line := range sa.slots {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Len counts the populated lines.
func (sa SimpleAddress) Len() int {
	n := 0
	for _, line := range sa.slots {
		if line != "" {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no line is populated.
func (sa SimpleAddress) IsEmpty() bool {
	return sa.Len() == 0
}

// Tagged returns the populated lines with any leading building number
// picked out for presentation markup.
func (sa SimpleAddress) Tagged() []Line {
	lines := sa.Lines()
	tagged := make([]Line, len(lines))
	for i, text := range lines {
		tagged[i].Text = text
		if token, ok := Format1Token(text); ok {
			tagged[i].Format1 = token
		}
	}
	return tagged
}

// Join joins the populated lines with separator.
func (sa SimpleAddress) Join(separator string) string {
	return strings.Join(sa.Lines(), separator)
}

// String joins the populated lines with the default list separator.
func (sa SimpleAddress) String() string {
	return sa.Join(DefaultSeparator)
}
