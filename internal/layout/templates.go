package layout

import "proprofile/internal/domain"

// Templates read only name, about and vision and fall back to fixed English
// copy. Their text is never retranslated.

func orDefault(v, fallback string) Field {
	if v == "" {
		return plain(fallback)
	}
	return plain(v)
}

func corporateTemplate(c domain.CompanyData, o Options) ([]domain.Element, string) {
	pg := newPage(o.NewID)
	pg.shape(rect{0, 0, domain.PageWidth, 150}, "#1e3a8a", 0, 0)
	pg.text(rect{40, 40, 500, 60}, orDefault(c.Name, "COMPANY NAME"), font(42, domain.WeightBold, "#ffffff"), left, 1)
	pg.text(rect{40, 90, 300, 30}, plain("Professional Profile"), font(18, domain.WeightNormal, "#93c5fd"), left, 1)
	pg.text(rect{40, 200, 200, 40}, plain("ABOUT US"), font(24, domain.WeightBold, "#1e3a8a"), left, 1)
	pg.text(rect{40, 250, 700, 100}, orDefault(c.About, "We are a leading company..."), font(14, domain.WeightNormal, "#334155"), left, 1)
	return pg.elements, "#f0f9ff"
}

func creativeTemplate(c domain.CompanyData, o Options) ([]domain.Element, string) {
	pg := newPage(o.NewID)
	pg.shape(rect{500, 0, 300, domain.PageHeight}, "#f3e8ff", 0, 0)
	pg.text(rect{50, 100, 400, 150}, orDefault(c.Name, "CREATIVE\nAGENCY"), font(60, domain.WeightBold, "#000000"), left, 1)
	pg.shape(rect{50, 260, 100, 10}, "#9333ea", 0, 1)
	pg.text(rect{540, 100, 200, 40}, plain("OUR VISION"), font(20, domain.WeightBold, "#6b21a8"), left, 1)
	pg.text(rect{540, 150, 200, 200}, orDefault(c.Vision, "To create amazing things."), font(14, domain.WeightNormal, "#4b5563"), left, 1)
	return pg.elements, "#ffffff"
}

func startupTemplate(c domain.CompanyData, o Options) ([]domain.Element, string) {
	pg := newPage(o.NewID)
	pg.text(rect{300, 500, 400, 60}, orDefault(c.Name, "STARTUP.IO"), font(48, domain.WeightBold, "#ffffff"), center, 1)
	pg.text(rect{300, 560, 400, 30}, plain("Future of Technology"), font(18, domain.WeightNormal, "#22c55e"), center, 1)
	pg.shape(rect{100, 100, 594, 923}, "transparent", 0, 0)
	return pg.elements, "#18181b"
}

func blankTemplate(domain.CompanyData, Options) ([]domain.Element, string) {
	return []domain.Element{}, domain.DefaultBackground
}
