package layout

import (
	"fmt"
	"strconv"

	"proprofile/internal/domain"
)

// MultiPageCount is the fixed length of the corporate profile.
const MultiPageCount = 14

const (
	left   = domain.AlignLeft
	center = domain.AlignCenter
	right  = domain.AlignRight
)

// MultiPage builds the fourteen-page corporate profile. Pages 2 to 13 share
// the header and footer; the cover and back cover are bespoke.
func MultiPage(c domain.CompanyData, o Options) []domain.Page {
	o = o.withDefaults()
	g := &corporate{o: o, t: o.Theme, l: o.Locale, p: Resolve(c, o.Locale)}
	return []domain.Page{
		g.cover(),
		g.foreword(),
		g.about(),
		g.history(),
		g.legality(),
		g.strategy(),
		g.values(),
		g.services(),
		g.advantages(),
		g.infrastructure(),
		g.clients(),
		g.portfolio(),
		g.team(),
		g.contact(),
	}
}

type corporate struct {
	o Options
	t Theme
	l Locale
	p Profile
}

// content starts a page with the shared header and footer.
func (g *corporate) content(title string, num int) *page {
	c, m := g.t.Colors, g.t.Layout
	pg := newPage(g.o.NewID)
	pg.shape(rect{0, 0, domain.PageWidth, 12}, c.Primary, 0, 10)
	pg.text(rect{m.MarginX, m.HeaderY + 20, 500, 40}, g.l.static(titleKey(title)), g.t.H1, left, 1)
	pg.shape(rect{m.MarginX, m.HeaderY + 60, 60, 4}, c.Accent, 0, 1)

	pg.shape(rect{m.MarginX, m.FooterY, m.ContentWidth, 1}, c.Line, 0, 0)
	pg.text(rect{m.MarginX, m.FooterY + 15, 400, 20}, g.p.Name, g.t.Footer, left, 1)
	pg.text(rect{700, m.FooterY + 10, 44, 20}, plain(fmt.Sprintf("%02d", num)), g.t.PageNumber, right, 1)
	return pg
}

func (g *corporate) cover() domain.Page {
	c := g.t.Colors
	pg := newPage(g.o.NewID)
	pg.shape(rect{0, 0, domain.PageWidth, domain.PageHeight}, c.PrimaryDark, 0, 0)
	pg.shape(rect{400, 0, 394, domain.PageHeight}, c.Primary, 0, 0)
	pg.shape(rect{50, 400, 694, 2}, c.Accent, 0, 1)
	pg.shape(rect{50, 390, 100, 4}, c.AccentPop, 0, 2)

	pg.text(rect{50, 350, 300, 40}, g.l.static(labelKey("company_profile")), font(18, domain.WeightBold, c.Accent), left, 2)
	pg.text(rect{50, 430, 694, 100}, g.p.Name, font(52, domain.WeightBold, "#ffffff"), left, 2)
	pg.text(rect{50, 550, 500, 60}, g.p.Tagline, font(20, domain.WeightNormal, "#94a3b8"), left, 2)
	year := strconv.Itoa(g.o.Now().Year())
	pg.text(rect{50, 1000, 694, 50}, plain(year), font(16, domain.WeightNormal, c.TextLight), left, 2)
	return pg.done(c.PrimaryDark)
}

func (g *corporate) foreword() domain.Page {
	c := g.t.Colors
	pg := g.content("foreword", 2)
	pg.shape(rect{50, 160, 250, 300}, c.Placeholder, 2, 1)
	pg.text(rect{330, 160, 400, 30}, g.l.static(labelKey("director_message")), g.t.H3, left, 1)
	pg.text(rect{330, 210, 414, 200}, g.p.DirectorMessage, g.t.Lead, left, 1)
	pg.text(rect{330, 450, 200, 30}, g.p.DirectorName, g.t.Signature, left, 1)
	pg.text(rect{330, 475, 200, 20}, g.p.DirectorRole, g.t.Caption, left, 1)
	return pg.done(c.BgWhite)
}

func (g *corporate) about() domain.Page {
	c := g.t.Colors
	pg := g.content("about", 3)
	pg.text(rect{50, 160, 600, 30}, g.l.static(labelKey("who_we_are")), g.t.H3, left, 1)
	pg.text(rect{50, 200, 694, 200}, g.p.About, g.t.Body, left, 1)
	pg.shape(rect{50, 450, 694, 400}, c.Media, 0, 1)
	return pg.done(c.BgAlt)
}

func (g *corporate) history() domain.Page {
	c := g.t.Colors
	pg := g.content("history", 4)
	pg.shape(rect{98, 160, 4, 700}, c.Line, 0, 0)
	colors := g.t.TimelineColors()
	for i, h := range g.p.History {
		y := 180 + float64(i)*200
		pg.shape(rect{90, y, 20, 20}, colors[i], 10, 1)
		pg.text(rect{130, y - 5, 100, 30}, h.First, g.t.Year.Tinted(colors[i]), left, 1)
		pg.text(rect{130, y + 30, 500, 50}, h.Second, g.t.Body, left, 1)
	}
	return pg.done(c.BgWhite)
}

func (g *corporate) legality() domain.Page {
	c := g.t.Colors
	pg := g.content("legality", 5)
	pg.text(rect{50, 160, 600, 30}, g.l.static(labelKey("compliance")), g.t.H3, left, 1)
	pg.text(rect{50, 200, 600, 40}, g.l.static(labelKey("compliance_body")), g.t.Body, left, 1)
	for i, name := range g.p.Legalities {
		x := 50 + float64(i)*247
		pg.shape(rect{x, 260, 200, 150}, c.Surface, 2, 1)
		pg.text(rect{x + 25, 325, 150, 20}, name, g.t.CardTitle, center, 2)
	}
	return pg.done(c.BgAlt)
}

func (g *corporate) strategy() domain.Page {
	c := g.t.Colors
	pg := g.content("strategy", 6)
	pg.shape(rect{50, 160, 694, 220}, c.Highlight, 4, 0)
	pg.text(rect{80, 190, 600, 30}, g.l.static(labelKey("our_vision")), g.t.H3, left, 1)
	pg.text(rect{80, 230, 634, 120}, g.p.Vision, g.t.Lead, left, 1)

	pg.shape(rect{50, 400, 694, 220}, c.BgAlt, 4, 0)
	pg.text(rect{80, 430, 600, 30}, g.l.static(labelKey("our_mission")), g.t.H3, left, 1)
	pg.text(rect{80, 470, 634, 120}, g.p.Mission, g.t.Lead, left, 1)
	return pg.done(c.BgWhite)
}

func (g *corporate) values() domain.Page {
	c := g.t.Colors
	pg := g.content("values", 7)
	tiles := g.t.ValueTiles()
	for i, v := range g.p.Values {
		x := 50 + float64(i%2)*364
		y := 160 + float64(i/2)*200
		pg.shape(rect{x, y, 330, 180}, tiles[i], 2, 1)
		pg.text(rect{x + 20, y + 75, 290, 30}, v, g.t.Tile, center, 2)
	}
	return pg.done(c.BgAlt)
}

func (g *corporate) services() domain.Page {
	c := g.t.Colors
	pg := g.content("services", 8)
	for i, s := range g.p.Services {
		y := 160 + float64(i)*140
		pg.shape(rect{50, y, 694, 1}, c.Line, 0, 0)
		pg.text(rect{50, y + 20, 400, 30}, s.First, g.t.H2, left, 1)
		pg.text(rect{50, y + 60, 600, 60}, s.Second, g.t.Body, left, 1)
	}
	return pg.done(c.BgWhite)
}

func (g *corporate) advantages() domain.Page {
	c := g.t.Colors
	pg := g.content("advantages", 9)
	for i, a := range g.p.Advantages {
		x := 50 + float64(i%2)*350
		y := 160 + float64(i/2)*120
		pg.text(rect{x, y, 300, 30}, a.First, g.t.H3, left, 1)
		pg.text(rect{x, y + 30, 300, 60}, a.Second, g.t.Body, left, 1)
	}
	return pg.done(c.BgAlt)
}

func (g *corporate) infrastructure() domain.Page {
	c := g.t.Colors
	pg := g.content("infrastructure", 10)
	pg.text(rect{50, 160, 600, 30}, g.l.static(labelKey("facilities")), g.t.H3, left, 1)
	pg.text(rect{50, 200, 600, 40}, g.p.Infrastructure, g.t.Body, left, 1)
	pg.shape(rect{50, 250, 694, 400}, c.Media, 0, 1)
	pg.text(rect{50, 660, 300, 20}, g.l.static(labelKey("facilities_caption")), g.t.Caption, left, 1)
	return pg.done(c.BgWhite)
}

func (g *corporate) clients() domain.Page {
	c := g.t.Colors
	pg := g.content("clients", 11)
	pg.text(rect{50, 160, 600, 30}, g.l.static(labelKey("trusted_partners")), g.t.H3, left, 1)
	for i, name := range g.p.Clients {
		x := 50 + float64(i%4)*181
		y := 220 + float64(i/4)*100
		pg.shape(rect{x, y, 150, 80}, c.Surface, 4, 1)
		pg.text(rect{x + 10, y + 30, 130, 20}, name, g.t.Caption, center, 2)
	}
	return pg.done(c.BgAlt)
}

func (g *corporate) portfolio() domain.Page {
	c := g.t.Colors
	pg := g.content("portfolio", 12)
	for i, pr := range g.p.Projects {
		x := 50 + float64(i)*364
		pg.shape(rect{x, 160, 330, 200}, c.Media, 2, 1)
		pg.text(rect{x, 370, 330, 30}, pr.First, g.t.H3, left, 1)
		pg.text(rect{x, 400, 330, 40}, pr.Second, g.t.Body, left, 1)
	}
	return pg.done(c.BgWhite)
}

func (g *corporate) team() domain.Page {
	c := g.t.Colors
	pg := g.content("team", 13)
	for i, m := range g.p.Team {
		x := 150 + float64(i)*350
		pg.shape(rect{x, 200, 150, 150}, c.Surface, 75, 1)
		pg.text(rect{x - 25, 360, 200, 30}, m.First, g.t.MemberName, center, 1)
		pg.text(rect{x - 25, 390, 200, 20}, m.Second, g.t.MemberRole, center, 1)
	}
	return pg.done(c.BgAlt)
}

func (g *corporate) contact() domain.Page {
	c := g.t.Colors
	pg := newPage(g.o.NewID)
	pg.shape(rect{0, 0, domain.PageWidth, domain.PageHeight}, c.PrimaryDark, 0, 0)
	pg.text(rect{50, 100, 694, 60}, g.l.static(labelKey("get_in_touch")), font(48, domain.WeightBold, "#ffffff"), center, 1)
	pg.shape(rect{347, 180, 100, 4}, c.Accent, 0, 1)
	pg.text(rect{100, 250, 594, 200}, g.p.Contact, font(20, domain.WeightNormal, c.Placeholder), center, 1)
	pg.shape(rect{100, 500, 594, 400}, c.Primary, 0, 1)
	pg.text(rect{50, 1000, 694, 30}, g.l.static(labelKey("website")), font(16, domain.WeightNormal, c.TextLight), center, 1)
	return pg.done(c.PrimaryDark)
}
