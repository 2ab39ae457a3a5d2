package label

import (
	"fmt"

	"github.com/signintech/gopdf"

	"github.com/llpg-simpleaddress/internal/address"
)

const fontName = "label"

// Sheet renders simple addresses onto pages of address labels.
type Sheet struct {
	pdf      *gopdf.GoPdf
	layout   Layout
	fontSize float64
	count    int
}

// NewSheet starts an A4 label sheet using the TrueType font in fontFile
func NewSheet(fontFile string, layout Layout, fontSize float64) (*Sheet, error) {
	if fontSize <= 0 {
		fontSize = 10
	}

	p := &gopdf.GoPdf{}
	p.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: PageWidth, H: PageHeight},
		Unit:     gopdf.UnitMM,
	})

	if err := p.AddTTFFont(fontName, fontFile); err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", fontFile, err)
	}

	return &Sheet{pdf: p, layout: layout.withDefaults(), fontSize: fontSize}, nil
}

// Count is the number of labels added so far
func (s *Sheet) Count() int {
	return s.count
}

// Add draws sa on the next free label, starting a new page when needed.
// Empty lines are skipped and lines beyond the label height are dropped.
func (s *Sheet) Add(sa address.SimpleAddress) error {
	_, x, y := s.layout.Position(s.count)
	if s.count%s.layout.PerPage() == 0 {
		s.pdf.AddPage()
	}

	if err := s.pdf.SetFont(fontName, "", s.fontSize); err != nil {
		return fmt.Errorf("failed to set font: %w", err)
	}

	w, _ := s.layout.LabelSize()
	maxWidth := w - 2*s.layout.Padding
	lineHeight := s.fontSize * ptToMM * lineSpacing
	limit := s.layout.LinesThatFit(s.fontSize)

	for i, line := range sa.Lines() {
		if i >= limit {
			break
		}
		s.pdf.SetX(x + s.layout.Padding)
		s.pdf.SetY(y + s.layout.Padding + float64(i)*lineHeight)
		if err := s.pdf.Cell(nil, s.fit(line, maxWidth)); err != nil {
			return fmt.Errorf("failed to draw line %q: %w", line, err)
		}
	}

	s.count++
	return nil
}

// fit shortens text until it is no wider than maxWidth
func (s *Sheet) fit(text string, maxWidth float64) string {
	runes := []rune(text)
	for len(runes) > 0 {
		w, err := s.pdf.MeasureTextWidth(string(runes))
		if err != nil || w <= maxWidth {
			break
		}
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// Save writes the sheet to path
func (s *Sheet) Save(path string) error {
	if err := s.pdf.WritePdf(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
