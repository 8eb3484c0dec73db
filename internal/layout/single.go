package layout

import "proprofile/internal/domain"

// Single-page layouts replace only the active page. Their palettes are their
// own and do not come from the corporate theme.

func modernSidebar(p Profile, l Locale, o Options) ([]domain.Element, string) {
	pg := newPage(o.NewID)
	pg.shape(rect{0, 0, 250, domain.PageHeight}, "#0f172a", 0, 0)
	pg.text(rect{25, 60, 200, 100}, p.Name, font(28, domain.WeightBold, "#ffffff"), left, 1)
	pg.text(rect{25, 150, 200, 60}, p.Tagline, font(14, domain.WeightNormal, "#94a3b8"), left, 1)
	pg.text(rect{25, 950, 200, 30}, l.static(labelKey("contact")), font(12, domain.WeightBold, "#64748b"), left, 1)
	pg.text(rect{25, 970, 200, 100}, p.Contact, font(12, domain.WeightNormal, "#ffffff"), left, 1)

	pg.text(rect{300, 60, 400, 40}, l.static(labelKey("about_us")), font(36, domain.WeightBold, "#0f172a"), left, 1)
	pg.shape(rect{300, 110, 60, 6}, "#3b82f6", 0, 1)
	pg.text(rect{300, 140, 440, 200}, p.About, font(14, domain.WeightNormal, "#334155"), left, 1)

	pg.shape(rect{300, 400, 440, 250}, "#f8fafc", 10, 0)
	pg.text(rect{320, 420, 400, 30}, l.static(labelKey("vision")), font(20, domain.WeightBold, "#0f172a"), left, 1)
	pg.text(rect{320, 460, 400, 150}, p.Vision, font(14, domain.WeightNormal, "#475569"), left, 1)

	pg.text(rect{320, 680, 400, 30}, l.static(labelKey("mission")), font(20, domain.WeightBold, "#0f172a"), left, 1)
	pg.text(rect{320, 720, 440, 150}, p.Mission, font(14, domain.WeightNormal, "#475569"), left, 1)
	return pg.elements, "#ffffff"
}

func classicHeader(p Profile, l Locale, o Options) ([]domain.Element, string) {
	pg := newPage(o.NewID)
	pg.shape(rect{0, 0, domain.PageWidth, 200}, "#1e3a8a", 0, 0)
	pg.text(rect{50, 60, 694, 60}, p.Name, font(40, domain.WeightBold, "#ffffff"), center, 1)
	pg.text(rect{150, 120, 494, 40}, p.Tagline, font(16, domain.WeightNormal, "#bfdbfe"), center, 1)

	pg.text(rect{50, 250, 694, 30}, l.static(labelKey("company_profile")), font(14, domain.WeightBold, "#94a3b8"), center, 1)
	pg.text(rect{100, 300, 594, 150}, p.About, font(14, domain.WeightNormal, "#334155"), center, 1)

	boxes := []struct {
		x     float64
		label Key
		body  Field
	}{
		{50, labelKey("vision_short"), p.Vision},
		{414, labelKey("mission_short"), p.Mission},
	}
	for _, b := range boxes {
		pg.shape(rect{b.x, 500, 330, 300}, "#eff6ff", 8, 0)
		pg.text(rect{b.x + 20, 520, 290, 30}, l.static(b.label), font(18, domain.WeightBold, "#1d4ed8"), left, 1)
		pg.text(rect{b.x + 20, 560, 290, 200}, b.body, font(13, domain.WeightNormal, "#1e293b"), left, 1)
	}

	pg.shape(rect{0, 1000, domain.PageWidth, 123}, "#1e293b", 0, 0)
	pg.text(rect{50, 1030, 694, 80}, p.Contact, font(14, domain.WeightNormal, "#ffffff"), center, 1)
	return pg.elements, "#ffffff"
}

func boldGeometric(p Profile, l Locale, o Options) ([]domain.Element, string) {
	const orange, grey = "#ea580c", "#d1d5db"
	pg := newPage(o.NewID)
	pg.shape(rect{-100, -50, 600, 600}, orange, 300, 0)
	pg.text(rect{50, 150, 500, 100}, p.Name, font(56, domain.WeightBold, "#ffffff"), left, 1)
	pg.shape(rect{50, 300, 694, 2}, "#4b5563", 0, 1)
	pg.text(rect{50, 350, 200, 30}, l.static(labelKey("who_we_are")), font(14, domain.WeightBold, orange), left, 1)
	pg.text(rect{50, 390, 694, 120}, p.About, font(16, domain.WeightNormal, grey), left, 1)
	pg.text(rect{50, 550, 200, 30}, l.static(labelKey("the_future")), font(14, domain.WeightBold, orange), left, 1)
	pg.text(rect{50, 590, 330, 200}, p.Vision, font(14, domain.WeightNormal, grey), left, 1)
	pg.text(rect{414, 550, 200, 30}, l.static(labelKey("the_path")), font(14, domain.WeightBold, orange), left, 1)
	pg.text(rect{414, 590, 330, 200}, p.Mission, font(14, domain.WeightNormal, grey), left, 1)
	pg.shape(rect{550, 850, 400, 400}, "#374151", 200, 0)
	return pg.elements, "#111827"
}

// coverModern is a one-page cover: dark hero band, bleeding accent circle,
// overview and contact below.
func coverModern(p Profile, l Locale, o Options) ([]domain.Element, string) {
	pg := newPage(o.NewID)
	pg.shape(rect{0, 0, domain.PageWidth, 700}, "#0f172a", 0, 0)
	pg.shape(rect{544, -120, 380, 380}, "#3b82f6", 190, 1)
	pg.shape(rect{0, 700, domain.PageWidth, 8}, "#f59e0b", 0, 1)

	pg.text(rect{60, 260, 400, 30}, l.static(labelKey("company_profile")), font(16, domain.WeightBold, "#93c5fd"), left, 2)
	pg.text(rect{60, 300, 674, 140}, p.Name, font(56, domain.WeightBold, "#ffffff"), left, 2)
	pg.text(rect{60, 460, 560, 60}, p.Tagline, font(20, domain.WeightNormal, "#cbd5e1"), left, 2)
	pg.text(rect{60, 620, 674, 30}, p.Industry, font(14, domain.WeightBold, "#f59e0b"), left, 2)

	pg.text(rect{60, 760, 674, 30}, l.static(labelKey("overview")), font(14, domain.WeightBold, "#0f172a"), left, 1)
	pg.text(rect{60, 800, 674, 180}, p.About, font(14, domain.WeightNormal, "#334155"), left, 1)
	pg.shape(rect{60, 1010, 674, 1}, "#cbd5e1", 0, 0)
	pg.text(rect{60, 1030, 674, 50}, p.Contact, font(12, domain.WeightNormal, "#64748b"), left, 1)
	return pg.elements, "#ffffff"
}
