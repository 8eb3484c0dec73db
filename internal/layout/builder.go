package layout

import (
	"time"

	"github.com/google/uuid"

	"proprofile/internal/domain"
)

// Options carries the injectable parts of generation.
type Options struct {
	Locale Locale
	Theme  Theme
	NewID  func() string
	Now    func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Locale.strings == nil {
		o.Locale = localeOf(English)
	}
	if o.Theme.Colors.Primary == "" {
		o.Theme = CorporateTheme()
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type rect struct{ x, y, w, h float64 }

// page accumulates the elements of one generated page.
type page struct {
	newID    func() string
	elements []domain.Element
}

func newPage(newID func() string) *page {
	return &page{newID: newID, elements: make([]domain.Element, 0, 16)}
}

func (p *page) shape(r rect, fill string, radius float64, z int) {
	p.elements = append(p.elements, domain.Element{
		ID:              p.newID(),
		Type:            domain.ElementTypeShape,
		X:               r.x,
		Y:               r.y,
		Width:           r.w,
		Height:          r.h,
		ZIndex:          z,
		BackgroundColor: fill,
		BorderRadius:    radius,
	})
}

func (p *page) text(r rect, f Field, fp FontPreset, align domain.TextAlign, z int) {
	p.elements = append(p.elements, domain.Element{
		ID:         p.newID(),
		Type:       domain.ElementTypeText,
		Content:    f.Value,
		X:          r.x,
		Y:          r.y,
		Width:      r.w,
		Height:     r.h,
		ZIndex:     z,
		FontSize:   fp.Size,
		FontWeight: fp.Weight,
		Color:      fp.Color,
		TextAlign:  align,
		TextKey:    string(f.Key),
	})
}

// plain wraps text that is never retranslated.
func plain(s string) Field { return Field{Value: s} }

func font(size float64, weight, color string) FontPreset {
	return FontPreset{Size: size, Weight: weight, Color: color}
}

func (p *page) done(background string) domain.Page {
	pg := domain.NewPage(p.newID())
	pg.Elements = p.elements
	pg.BackgroundColor = background
	return pg
}
