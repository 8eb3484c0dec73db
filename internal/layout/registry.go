package layout

import (
	"errors"
	"fmt"

	"proprofile/internal/canvas"
	"proprofile/internal/domain"
)

var ErrUnknownLayout = errors.New("unknown layout")

const (
	MultiPageCorporate = "MULTI_PAGE_CORPORATE"
	ModernSidebar      = "MODERN_SIDEBAR"
	ClassicHeader      = "CLASSIC_HEADER"
	BoldGeometric      = "BOLD_GEOMETRIC"
	CoverModern        = "COVER_MODERN"

	TemplateCorporate = "CORPORATE"
	TemplateCreative  = "CREATIVE"
	TemplateStartup   = "STARTUP"
	TemplateBlank     = "BLANK"
)

type singleFunc func(Profile, Locale, Options) ([]domain.Element, string)
type templateFunc func(domain.CompanyData, Options) ([]domain.Element, string)

var singles = map[string]singleFunc{
	ModernSidebar: modernSidebar,
	ClassicHeader: classicHeader,
	BoldGeometric: boldGeometric,
	CoverModern:   coverModern,
}

var templates = map[string]templateFunc{
	TemplateCorporate: corporateTemplate,
	TemplateCreative:  creativeTemplate,
	TemplateStartup:   startupTemplate,
	TemplateBlank:     blankTemplate,
}

// AutoLayouts lists the data-driven layouts in menu order.
func AutoLayouts() []string {
	return []string{MultiPageCorporate, ModernSidebar, ClassicHeader, BoldGeometric, CoverModern}
}

// Templates lists the fixed templates in menu order.
func Templates() []string {
	return []string{TemplateCorporate, TemplateCreative, TemplateStartup, TemplateBlank}
}

// Result is a fully built layout. Pages is set for multi-page layouts;
// otherwise Elements and Background replace the active page.
type Result struct {
	Kind       string
	Pages      []domain.Page
	Elements   []domain.Element
	Background string
}

func (r Result) MultiPage() bool { return r.Pages != nil }

// Generate builds any auto-layout or template by name. Unknown names are the
// only failure.
func Generate(kind string, c domain.CompanyData, o Options) (Result, error) {
	o = o.withDefaults()
	if kind == MultiPageCorporate {
		return Result{Kind: kind, Pages: MultiPage(c, o)}, nil
	}
	if f, ok := singles[kind]; ok {
		els, bg := f(Resolve(c, o.Locale), o.Locale, o)
		return Result{Kind: kind, Elements: els, Background: bg}, nil
	}
	if f, ok := templates[kind]; ok {
		els, bg := f(c, o)
		return Result{Kind: kind, Elements: els, Background: bg}, nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownLayout, kind)
}

// Apply installs the result into doc. Nothing is touched until the whole
// layout has been built.
func (r Result) Apply(e *canvas.Engine, doc *domain.Document) error {
	if r.MultiPage() {
		return e.ReplacePages(doc, r.Pages)
	}
	return e.ReplaceActivePage(doc, r.Elements, r.Background)
}
