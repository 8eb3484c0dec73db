package layout_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"proprofile/internal/canvas"
	"proprofile/internal/domain"
	"proprofile/internal/layout"
)

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("el-%d", n)
	}
}

func opts(lang string) layout.Options {
	return layout.Options{
		Locale: layout.LocaleFor(lang),
		NewID:  counterIDs(),
		Now:    func() time.Time { return time.Date(2031, 3, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func texts(p domain.Page) []string {
	var out []string
	for _, el := range p.Elements {
		if el.Type == domain.ElementTypeText {
			out = append(out, el.Content)
		}
	}
	return out
}

func hasText(p domain.Page, s string) bool {
	for _, c := range texts(p) {
		if c == s {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────
// Multi-page profile
// ─────────────────────────────────────────────────────────────

func TestMultiPage_AlwaysFourteenPages(t *testing.T) {
	inputs := map[string]domain.CompanyData{
		"empty":        {},
		"scalars only": {Name: "Acme", About: "We build things."},
		"overfull lists": {
			Values:  []string{"a", "b", "c", "d", "e", "f"},
			Clients: make([]string, 20),
			History: []domain.HistoryEntry{{}, {}, {}, {}, {}},
		},
		"whitespace": {Name: "   ", Tagline: "\t"},
	}
	for name, c := range inputs {
		t.Run(name, func(t *testing.T) {
			pages := layout.MultiPage(c, opts("en"))
			if len(pages) != layout.MultiPageCount {
				t.Fatalf("expected %d pages, got %d", layout.MultiPageCount, len(pages))
			}
			seen := map[string]bool{}
			for i, p := range pages {
				if len(p.Elements) == 0 {
					t.Errorf("page %d is empty", i+1)
				}
				if p.BackgroundColor == "" {
					t.Errorf("page %d has no background", i+1)
				}
				for _, el := range p.Elements {
					if seen[el.ID] {
						t.Errorf("duplicate element id %s", el.ID)
					}
					seen[el.ID] = true
					if el.Type == domain.ElementTypeText && strings.TrimSpace(el.Content) == "" {
						t.Errorf("page %d: blank text element %s", i+1, el.ID)
					}
				}
			}
		})
	}
}

func TestMultiPage_CoverFromEmptyCompany(t *testing.T) {
	pages := layout.MultiPage(domain.CompanyData{}, opts("en"))
	cover := pages[0]
	if cover.BackgroundColor != "#0f172a" {
		t.Errorf("expected cover background #0f172a, got %s", cover.BackgroundColor)
	}
	for _, want := range []string{"COMPANY PROFILE", "Company Name", "Innovating for a better future", "2031"} {
		if !hasText(cover, want) {
			t.Errorf("cover missing %q; have %q", want, texts(cover))
		}
	}
}

func TestMultiPage_HistorySlotsFilledIndependently(t *testing.T) {
	c := domain.CompanyData{History: []domain.HistoryEntry{{Year: "1999055", Event: "Founded"}}}
	history := layout.MultiPage(c, opts("en"))[3]

	for _, want := range []string{
		"1999055", "Founded",
		"2010", "National Expansion. Opened 3 branch offices.",
		"2024", "Global Partnerships established.",
	} {
		if !hasText(history, want) {
			t.Errorf("history page missing %q", want)
		}
	}
	if hasText(history, "2003") {
		t.Error("slot 1 default year should be replaced by supplied year")
	}
}

func TestMultiPage_SharedHeaderAndFooter(t *testing.T) {
	pages := layout.MultiPage(domain.CompanyData{Name: "Acme"}, opts("en"))
	for i := 1; i <= 12; i++ {
		p := pages[i]
		var title, number, footerName bool
		for _, el := range p.Elements {
			switch {
			case el.X == 50 && el.Y == 70 && el.FontSize == 32:
				title = el.Content == strings.ToUpper(el.Content)
			case el.X == 700 && el.Y == 1060:
				number = el.Content == fmt.Sprintf("%02d", i+1) && el.TextAlign == domain.AlignRight
			case el.X == 50 && el.Y == 1065:
				footerName = el.Content == "Acme"
			}
		}
		if !title || !number || !footerName {
			t.Errorf("page %d: title=%v number=%v footer=%v", i+1, title, number, footerName)
		}
	}
	for _, i := range []int{0, 13} {
		for _, el := range pages[i].Elements {
			if el.X == 700 && el.Y == 1060 {
				t.Errorf("page %d should not carry a page number", i+1)
			}
		}
	}
}

func TestMultiPage_SlotPresentation(t *testing.T) {
	c := domain.CompanyData{
		Services: []domain.Offering{{Title: "Cloud"}},
		Values:   []string{"trust"},
	}
	pages := layout.MultiPage(c, opts("en"))
	if !hasText(pages[7], "01. Cloud") || !hasText(pages[7], "02. Service Name") {
		t.Errorf("service titles not numbered: %q", texts(pages[7]))
	}
	if !hasText(pages[6], "TRUST") || !hasText(pages[6], "INNOVATION") {
		t.Errorf("values not upper-cased: %q", texts(pages[6]))
	}
}

func TestMultiPage_ContentPagesUseThemeFonts(t *testing.T) {
	th := layout.CorporateTheme()
	allowed := map[layout.FontPreset]bool{}
	for _, f := range []layout.FontPreset{
		th.H1, th.H2, th.H3, th.Body, th.Caption, th.Lead, th.Signature, th.Footer,
		th.PageNumber, th.CardTitle, th.Tile, th.MemberName, th.MemberRole,
	} {
		allowed[f] = true
	}
	for _, color := range th.TimelineColors() {
		allowed[th.Year.Tinted(color)] = true
	}

	pages := layout.MultiPage(domain.CompanyData{Name: "Acme"}, opts("en"))
	// The cover and back cover are the only pages with their own styling.
	for i, p := range pages[1 : len(pages)-1] {
		for _, el := range p.Elements {
			if el.Type != domain.ElementTypeText {
				continue
			}
			f := layout.FontPreset{Size: el.FontSize, Weight: el.FontWeight, Color: el.Color}
			if !allowed[f] {
				t.Errorf("page %d: %q uses %+v, which is not in the theme", i+2, el.Content, f)
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────────────────────

func TestGenerate_EveryNameSucceedsOnEmptyData(t *testing.T) {
	for _, kind := range append(layout.AutoLayouts(), layout.Templates()...) {
		r, err := layout.Generate(kind, domain.CompanyData{}, opts("en"))
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if r.MultiPage() {
			if len(r.Pages) != layout.MultiPageCount {
				t.Errorf("%s: expected %d pages, got %d", kind, layout.MultiPageCount, len(r.Pages))
			}
			continue
		}
		if r.Background == "" {
			t.Errorf("%s: empty background", kind)
		}
		if kind != layout.TemplateBlank && len(r.Elements) == 0 {
			t.Errorf("%s: no elements", kind)
		}
	}
}

func TestGenerate_UnknownName(t *testing.T) {
	_, err := layout.Generate("NEON_DREAM", domain.CompanyData{}, opts("en"))
	if !errors.Is(err, layout.ErrUnknownLayout) {
		t.Fatalf("expected ErrUnknownLayout, got %v", err)
	}
}

func TestGenerate_TemplateFallbacks(t *testing.T) {
	r, _ := layout.Generate(layout.TemplateCorporate, domain.CompanyData{}, opts("id"))
	page := domain.Page{Elements: r.Elements}
	if !hasText(page, "COMPANY NAME") || !hasText(page, "We are a leading company...") {
		t.Errorf("expected English template fallbacks, got %q", texts(page))
	}
	if r.Background != "#f0f9ff" {
		t.Errorf("expected #f0f9ff, got %s", r.Background)
	}
}

func TestApply_SingleLayoutLeavesOtherPages(t *testing.T) {
	e := canvas.New(canvas.WithIDFunc(counterIDs()))
	doc := e.NewDocument("Acme")
	first := doc.Pages[0].ID
	if _, err := e.AddElement(doc, domain.ElementTypeText, "keep me"); err != nil {
		t.Fatal(err)
	}
	e.AddPage(doc)

	r, err := layout.Generate(layout.BoldGeometric, domain.CompanyData{Name: "Acme"}, opts("en"))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Apply(e, doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	if got := doc.Pages[0]; got.ID != first || !hasText(got, "keep me") {
		t.Error("first page was modified")
	}
	if doc.Pages[1].BackgroundColor != "#111827" {
		t.Errorf("expected active page background #111827, got %s", doc.Pages[1].BackgroundColor)
	}
}

func TestApply_MultiPageReplacesDocument(t *testing.T) {
	e := canvas.New(canvas.WithIDFunc(counterIDs()))
	doc := e.NewDocument("Acme")
	r, _ := layout.Generate(layout.MultiPageCorporate, domain.CompanyData{}, opts("en"))
	if err := r.Apply(e, doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Pages) != layout.MultiPageCount || doc.ActivePageID != doc.Pages[0].ID || doc.SelectedID != "" {
		t.Errorf("unexpected document state: %d pages, active %s, selected %q", len(doc.Pages), doc.ActivePageID, doc.SelectedID)
	}
}

// ─────────────────────────────────────────────────────────────
// Locale
// ─────────────────────────────────────────────────────────────

func TestLocaleFor(t *testing.T) {
	cases := map[string]string{
		"en":    "en",
		"en-US": "en",
		"id":    "id",
		"id-ID": "id",
		"fr":    "en",
		"":      "en",
		"???":   "en",
	}
	for in, want := range cases {
		if got := layout.LocaleFor(in).Code(); got != want {
			t.Errorf("LocaleFor(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestMultiPage_Indonesian(t *testing.T) {
	pages := layout.MultiPage(domain.CompanyData{}, opts("id-ID"))
	if !hasText(pages[0], "PROFIL PERUSAHAAN") {
		t.Errorf("cover not localized: %q", texts(pages[0]))
	}
	if !hasText(pages[1], "KATA PENGANTAR") {
		t.Errorf("foreword title not localized: %q", texts(pages[1]))
	}
}

func TestRetranslate(t *testing.T) {
	doc := &domain.Document{Pages: layout.MultiPage(domain.CompanyData{Name: "Acme"}, opts("en"))}

	// Simulate a user overwriting the tagline on the cover.
	var tagline *domain.Element
	for i := range doc.Pages[0].Elements {
		if doc.Pages[0].Elements[i].Content == "Innovating for a better future" {
			tagline = &doc.Pages[0].Elements[i]
		}
	}
	if tagline == nil {
		t.Fatal("tagline not found")
	}
	tagline.Content = "Our own words"
	tagline.Edited = true

	n := layout.Retranslate(doc, layout.LocaleFor("id"))
	if n == 0 {
		t.Fatal("expected some elements to change")
	}
	if doc.Language != "id" {
		t.Errorf("expected document language id, got %q", doc.Language)
	}
	cover := doc.Pages[0]
	if !hasText(cover, "PROFIL PERUSAHAAN") {
		t.Error("cover title not retranslated")
	}
	if !hasText(cover, "Acme") {
		t.Error("user supplied name must survive retranslation")
	}
	if !hasText(cover, "Our own words") {
		t.Error("edited text must survive retranslation")
	}
	if !hasText(doc.Pages[6], "INTEGRITAS") {
		t.Errorf("values not retranslated: %q", texts(doc.Pages[6]))
	}

	if again := layout.Retranslate(doc, layout.LocaleFor("id")); again != 0 {
		t.Errorf("second retranslation changed %d elements", again)
	}
}
