package label

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayoutPosition(t *testing.T) {
	layout := Layout{Columns: 2, Rows: 7, Margin: 10, Padding: 4}
	w, h := layout.LabelSize()
	if !almostEqual(w, 95) || !almostEqual(h, 277.0/7) {
		t.Fatalf("LabelSize() = %v x %v", w, h)
	}

	tests := []struct {
		index    int
		wantPage int
		wantX    float64
		wantY    float64
	}{
		{0, 0, 10, 10},
		{1, 0, 105, 10},
		{2, 0, 10, 10 + h},
		{13, 0, 105, 10 + 6*h},
		{14, 1, 10, 10},
		{29, 2, 105, 10},
		{-1, 0, 10, 10},
	}

	for _, tt := range tests {
		page, x, y := layout.Position(tt.index)
		if page != tt.wantPage || !almostEqual(x, tt.wantX) || !almostEqual(y, tt.wantY) {
			t.Errorf("Position(%d) = (%d, %v, %v), want (%d, %v, %v)",
				tt.index, page, x, y, tt.wantPage, tt.wantX, tt.wantY)
		}
	}
}

func TestLayoutDefaults(t *testing.T) {
	var zero Layout
	if got, want := zero.PerPage(), DefaultLayout().PerPage(); got != want {
		t.Errorf("zero layout PerPage() = %d, want %d", got, want)
	}
	if got := DefaultLayout().PerPage(); got != 14 {
		t.Errorf("DefaultLayout().PerPage() = %d, want 14", got)
	}
}

func TestLinesThatFit(t *testing.T) {
	layout := DefaultLayout()

	// 10pt text on a ~39.6mm label with 4mm padding fits 7 lines of 4.23mm
	if got := layout.LinesThatFit(10); got != 7 {
		t.Errorf("LinesThatFit(10) = %d, want 7", got)
	}
	if got := layout.LinesThatFit(0); got != 0 {
		t.Errorf("LinesThatFit(0) = %d, want 0", got)
	}
}
