package label

// A4 portrait (mm)
const (
	PageWidth  = 210.0
	PageHeight = 297.0
)

// ptToMM converts a font size in points to millimetres
const ptToMM = 0.3528

// lineSpacing is the line pitch as a multiple of the font size
const lineSpacing = 1.2

// Layout describes a sheet of equally sized labels in a grid.
type Layout struct {
	Columns int
	Rows    int
	Margin  float64 // page margin on every side (mm)
	Padding float64 // gap between the label edge and its text (mm)
}

// DefaultLayout is a 2x7 sheet of 14 labels, a common UK address label stock.
func DefaultLayout() Layout {
	return Layout{Columns: 2, Rows: 7, Margin: 10, Padding: 4}
}

func (l Layout) withDefaults() Layout {
	def := DefaultLayout()
	if l.Columns <= 0 {
		l.Columns = def.Columns
	}
	if l.Rows <= 0 {
		l.Rows = def.Rows
	}
	if l.Margin < 0 {
		l.Margin = 0
	}
	if l.Padding < 0 {
		l.Padding = 0
	}
	return l
}

// PerPage is the number of labels on one sheet
func (l Layout) PerPage() int {
	l = l.withDefaults()
	return l.Columns * l.Rows
}

// LabelSize returns the width and height of one label (mm)
func (l Layout) LabelSize() (w, h float64) {
	l = l.withDefaults()
	w = (PageWidth - 2*l.Margin) / float64(l.Columns)
	h = (PageHeight - 2*l.Margin) / float64(l.Rows)
	return w, h
}

// Position returns the page and the top-left corner of the i'th label.
// Labels fill each row left to right, then move down a row.
func (l Layout) Position(i int) (page int, x, y float64) {
	l = l.withDefaults()
	if i < 0 {
		i = 0
	}
	perPage := l.Columns * l.Rows
	page = i / perPage
	slot := i % perPage

	w, h := l.LabelSize()
	x = l.Margin + float64(slot%l.Columns)*w
	y = l.Margin + float64(slot/l.Columns)*h
	return page, x, y
}

// LinesThatFit is how many lines of text at fontSize fit inside one label
func (l Layout) LinesThatFit(fontSize float64) int {
	l = l.withDefaults()
	if fontSize <= 0 {
		return 0
	}
	_, h := l.LabelSize()
	return int((h - 2*l.Padding) / (fontSize * ptToMM * lineSpacing))
}
