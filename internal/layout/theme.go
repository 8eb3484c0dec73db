package layout

import "proprofile/internal/domain"

// FontPreset bundles the three text attributes every generated text carries.
type FontPreset struct {
	Size   float64
	Weight string
	Color  string
}

// Tinted returns a copy of f in another color.
func (f FontPreset) Tinted(color string) FontPreset {
	f.Color = color
	return f
}

// Palette holds every color the repeating content pages may use.
type Palette struct {
	Primary     string
	PrimaryDark string
	Accent      string
	AccentPop   string
	TextMain    string
	TextLight   string
	BgWhite     string
	BgAlt       string
	Line        string

	Placeholder string // photo frames
	Media       string // large image placeholders
	Highlight   string // tinted callout boxes
	Surface     string // cards on the alternate background
	TileDark    string
	TileMuted   string
}

// Metrics are the shared page grid.
type Metrics struct {
	MarginX      float64
	ContentWidth float64
	HeaderY      float64
	FooterY      float64
}

// Theme is the single source of style for the corporate profile pages.
// Only the cover and back cover use values from outside it.
type Theme struct {
	Colors  Palette
	H1      FontPreset // page titles
	H2      FontPreset // section headers
	H3      FontPreset // sub-headers
	Body    FontPreset
	Caption FontPreset
	Lead    FontPreset // larger body copy

	Signature  FontPreset // director name
	Footer     FontPreset // company name in the footer
	PageNumber FontPreset
	CardTitle  FontPreset // legality cards
	Tile       FontPreset // core-value tiles
	Year       FontPreset // timeline years, tinted per slot
	MemberName FontPreset
	MemberRole FontPreset

	Layout Metrics
}

// CorporateTheme is the slate/blue/amber theme of the multi-page profile.
func CorporateTheme() Theme {
	c := Palette{
		Primary:     "#1e293b",
		PrimaryDark: "#0f172a",
		Accent:      "#3b82f6",
		AccentPop:   "#f59e0b",
		TextMain:    "#334155",
		TextLight:   "#64748b",
		BgWhite:     "#ffffff",
		BgAlt:       "#f8fafc",
		Line:        "#cbd5e1",
		Placeholder: "#e2e8f0",
		Media:       "#cbd5e1",
		Highlight:   "#eff6ff",
		Surface:     "#ffffff",
		TileDark:    "#475569",
		TileMuted:   "#94a3b8",
	}
	return Theme{
		Colors:  c,
		H1:      FontPreset{Size: 32, Weight: domain.WeightBold, Color: c.Primary},
		H2:      FontPreset{Size: 24, Weight: domain.WeightBold, Color: c.TextMain},
		H3:      FontPreset{Size: 18, Weight: domain.WeightBold, Color: c.Accent},
		Body:    FontPreset{Size: 14, Weight: domain.WeightNormal, Color: c.TextMain},
		Caption: FontPreset{Size: 12, Weight: domain.WeightNormal, Color: c.TextLight},
		Lead:    FontPreset{Size: 16, Weight: domain.WeightNormal, Color: c.TextMain},

		Signature:  FontPreset{Size: 16, Weight: domain.WeightBold, Color: c.Primary},
		Footer:     FontPreset{Size: 10, Weight: domain.WeightNormal, Color: c.TextLight},
		PageNumber: FontPreset{Size: 14, Weight: domain.WeightBold, Color: c.Primary},
		CardTitle:  FontPreset{Size: 14, Weight: domain.WeightBold, Color: c.Primary},
		Tile:       FontPreset{Size: 20, Weight: domain.WeightBold, Color: c.BgWhite},
		Year:       FontPreset{Size: 20, Weight: domain.WeightBold, Color: c.Accent},
		MemberName: FontPreset{Size: 18, Weight: domain.WeightBold, Color: c.Primary},
		MemberRole: FontPreset{Size: 14, Weight: domain.WeightNormal, Color: c.TextLight},

		Layout: Metrics{
			MarginX:      50,
			ContentWidth: 694,
			HeaderY:      50,
			FooterY:      1050,
		},
	}
}

// ValueTiles are the four core-value tile fills, in slot order.
func (t Theme) ValueTiles() [domain.ValueSlots]string {
	return [domain.ValueSlots]string{t.Colors.Primary, t.Colors.Accent, t.Colors.TileDark, t.Colors.TileMuted}
}

// TimelineColors are the history marker colors, in slot order.
func (t Theme) TimelineColors() [domain.HistorySlots]string {
	return [domain.HistorySlots]string{t.Colors.Accent, t.Colors.Primary, t.Colors.AccentPop}
}
