package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"proprofile/internal/canvas"
	"proprofile/internal/domain"
	"proprofile/internal/interact"
	"proprofile/internal/layout"
	"proprofile/internal/metrics"
)

var ErrNoStore = errors.New("no document store configured")

// ─────────────────────────────────────────────────────────────
// Editor Service: one editing session over a document
// ─────────────────────────────────────────────────────────────

// EditorService owns the open document, the company data that feeds the
// generators and the drag controller. The desktop bindings and the MCP tools
// call in from different goroutines, so every access goes through mu.
type EditorService struct {
	mu      sync.Mutex
	engine  *canvas.Engine
	drag    *interact.DragController
	doc     *domain.Document
	company domain.CompanyData
	locale  layout.Locale
	theme   layout.Theme
	now     func() time.Time

	docs      domain.DocumentStore
	companies domain.CompanyStore
	emitter   EventEmitter
	metrics   *metrics.Metrics
}

// EditorOptions configures NewEditorService. Only Engine is required; nil
// stores disable persistence and a nil Emitter discards events.
type EditorOptions struct {
	Engine    *canvas.Engine
	Documents domain.DocumentStore
	Companies domain.CompanyStore
	Emitter   EventEmitter
	Language  string
	Zoom      float64
	Now       func() time.Time
	Metrics   *metrics.Metrics // shared with the export and content services
}

// NewEditorService starts a session on a fresh untitled document.
func NewEditorService(o EditorOptions) *EditorService {
	if o.Engine == nil {
		o.Engine = canvas.New()
	}
	if o.Emitter == nil {
		o.Emitter = noopEmitter{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	s := &EditorService{
		engine:    o.Engine,
		drag:      interact.NewDragController(o.Engine),
		locale:    layout.LocaleFor(o.Language),
		theme:     layout.CorporateTheme(),
		now:       o.Now,
		docs:      o.Documents,
		companies: o.Companies,
		emitter:   o.Emitter,
		metrics:   o.Metrics,
	}
	if o.Zoom != 0 {
		s.drag.SetZoom(o.Zoom)
	}
	s.doc = s.newDocument("Untitled")
	return s
}

func (s *EditorService) newDocument(name string) *domain.Document {
	d := s.engine.NewDocument(name)
	d.Language = s.locale.Code()
	return d
}

// mutate runs f on the document under the lock and, on success, broadcasts
// a snapshot of the result.
func (s *EditorService) mutate(ctx context.Context, f func(doc *domain.Document) error) error {
	s.mu.Lock()
	err := f(s.doc)
	var snap *domain.Document
	if err == nil {
		snap = s.doc.Clone()
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.emitter.Emit(ctx, EventDocumentChanged, snap)
	return nil
}

func (s *EditorService) notice(ctx context.Context, level, msg string) {
	s.emitter.Emit(ctx, EventNotice, Notice{Level: level, Message: msg})
}

// Document returns a snapshot of the open document.
func (s *EditorService) Document() *domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// ActivePage returns a snapshot of the page being edited.
func (s *EditorService) ActivePage() (domain.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := canvas.ActivePage(s.doc)
	if err != nil {
		return domain.Page{}, err
	}
	return p.Clone(), nil
}

func (s *EditorService) Company() domain.CompanyData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.company
}

// Language is the BCP 47 code generated text is currently rendered in.
func (s *EditorService) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale.Code()
}

// NewDocument discards the open document and starts an empty one. Company
// data is kept so a new layout can be generated straight away.
func (s *EditorService) NewDocument(ctx context.Context, name string) *domain.Document {
	s.mu.Lock()
	s.drag.PointerUp()
	s.doc = s.newDocument(name)
	snap := s.doc.Clone()
	s.mu.Unlock()
	s.emitter.Emit(ctx, EventDocumentChanged, snap)
	return snap
}

// Rename changes the document name used for saving and export file names.
func (s *EditorService) Rename(ctx context.Context, name string) {
	s.mutate(ctx, func(doc *domain.Document) error {
		doc.Name = name
		return nil
	})
}

// ─────────────────────────────────────────────────────────────
// Elements
// ─────────────────────────────────────────────────────────────

func (s *EditorService) AddElement(ctx context.Context, elementType, content string) (domain.Element, error) {
	t, err := domain.ParseElementType(elementType)
	if err != nil {
		return domain.Element{}, err
	}
	var el domain.Element
	err = s.mutate(ctx, func(doc *domain.Document) error {
		el, err = s.engine.AddElement(doc, t, content)
		return err
	})
	return el, err
}

func (s *EditorService) UpdateElement(ctx context.Context, id string, patch domain.ElementPatch) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		return s.engine.UpdateElement(doc, id, patch)
	})
}

func (s *EditorService) DeleteElement(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		return s.engine.DeleteElement(doc, id)
	})
}

func (s *EditorService) SelectElement(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		return s.engine.SelectElement(doc, id)
	})
}

func (s *EditorService) ClearSelection(ctx context.Context) {
	s.mutate(ctx, func(doc *domain.Document) error {
		s.engine.ClearSelection(doc)
		return nil
	})
}

func (s *EditorService) BringToFront(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		return s.engine.BringToFront(doc, id)
	})
}

func (s *EditorService) SendToBack(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		return s.engine.SendToBack(doc, id)
	})
}

func (s *EditorService) DuplicateElement(ctx context.Context, id string) (domain.Element, error) {
	var el domain.Element
	err := s.mutate(ctx, func(doc *domain.Document) error {
		var err error
		el, err = s.engine.DuplicateElement(doc, id)
		return err
	})
	return el, err
}

// ─────────────────────────────────────────────────────────────
// Pages
// ─────────────────────────────────────────────────────────────

func (s *EditorService) SetBackgroundColor(ctx context.Context, color string) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		return s.engine.SetBackgroundColor(doc, color)
	})
}

func (s *EditorService) SetBackgroundImage(ctx context.Context, dataURL string) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		return s.engine.SetBackgroundImage(doc, dataURL)
	})
}

func (s *EditorService) AddPage(ctx context.Context) domain.Page {
	var p domain.Page
	s.mutate(ctx, func(doc *domain.Document) error {
		p = s.engine.AddPage(doc).Clone()
		return nil
	})
	return p
}

// DeletePage removes the active page. Refusing to delete the last page is
// reported to the user as a notice as well as returned.
func (s *EditorService) DeletePage(ctx context.Context) error {
	err := s.mutate(ctx, func(doc *domain.Document) error {
		return s.engine.DeletePage(doc)
	})
	if errors.Is(err, canvas.ErrLastPage) {
		s.notice(ctx, "error", "Cannot delete the only page.")
	}
	return err
}

// NavigatePage reports false when already at the first/last page.
func (s *EditorService) NavigatePage(ctx context.Context, dir canvas.Direction) bool {
	moved := false
	s.mutate(ctx, func(doc *domain.Document) error {
		if moved = s.engine.NavigatePage(doc, dir); !moved {
			return errNoChange
		}
		return nil
	})
	return moved
}

func (s *EditorService) GoToPage(ctx context.Context, id string) bool {
	moved := false
	s.mutate(ctx, func(doc *domain.Document) error {
		if moved = s.engine.GoToPage(doc, id); !moved {
			return errNoChange
		}
		return nil
	})
	return moved
}

// errNoChange suppresses the change event for operations that did nothing.
var errNoChange = errors.New("no change")

// ─────────────────────────────────────────────────────────────
// Direct manipulation
// ─────────────────────────────────────────────────────────────

func (s *EditorService) PointerDown(ctx context.Context, id string, x, y float64, button int) error {
	return s.mutate(ctx, func(doc *domain.Document) error {
		return s.drag.PointerDown(doc, id, interact.Point{X: x, Y: y}, button)
	})
}

func (s *EditorService) PointerMove(ctx context.Context, x, y float64) error {
	err := s.mutate(ctx, func(doc *domain.Document) error {
		if !s.drag.Dragging() {
			return errNoChange
		}
		return s.drag.PointerMove(doc, interact.Point{X: x, Y: y})
	})
	if errors.Is(err, errNoChange) {
		return nil
	}
	return err
}

func (s *EditorService) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.PointerUp()
}

func (s *EditorService) Zoom() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Zoom()
}

func (s *EditorService) SetZoom(z float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.SetZoom(z)
}

func (s *EditorService) ZoomIn() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.ZoomIn()
}

func (s *EditorService) ZoomOut() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.ZoomOut()
}

// ─────────────────────────────────────────────────────────────
// Generation and language
// ─────────────────────────────────────────────────────────────

func (s *EditorService) layoutOptions() layout.Options {
	return layout.Options{Locale: s.locale, Theme: s.theme, NewID: s.engine.NewID, Now: s.now}
}

// GenerateLayout builds an auto-layout from the current company data and
// installs it. The document is untouched if kind is unknown.
func (s *EditorService) GenerateLayout(ctx context.Context, kind string) error {
	return s.generate(ctx, kind, layout.AutoLayouts())
}

// ApplyTemplate installs one of the fixed templates on the active page.
func (s *EditorService) ApplyTemplate(ctx context.Context, name string) error {
	return s.generate(ctx, name, layout.Templates())
}

func (s *EditorService) generate(ctx context.Context, kind string, allowed []string) error {
	known := false
	for _, k := range allowed {
		known = known || k == kind
	}
	if !known {
		return fmt.Errorf("%w: %q", layout.ErrUnknownLayout, kind)
	}
	err := s.mutate(ctx, func(doc *domain.Document) error {
		res, err := layout.Generate(kind, s.company, s.layoutOptions())
		if err != nil {
			return err
		}
		return res.Apply(s.engine, doc)
	})
	s.metrics.ObserveLayout(kind, err)
	if err == nil {
		log.Printf("[EDITOR] generated %s", kind)
	}
	return err
}

// SetLanguage switches the locale and retranslates generated text that the
// user has not edited. It returns how many elements changed.
func (s *EditorService) SetLanguage(ctx context.Context, lang string) int {
	n := 0
	s.mutate(ctx, func(doc *domain.Document) error {
		s.locale = layout.LocaleFor(lang)
		n = layout.Retranslate(doc, s.locale)
		return nil
	})
	return n
}

// ─────────────────────────────────────────────────────────────
// Company data
// ─────────────────────────────────────────────────────────────

// SetCompany replaces the generator input. Existing pages are not rebuilt.
func (s *EditorService) SetCompany(ctx context.Context, c domain.CompanyData) {
	s.mu.Lock()
	s.company = c
	s.mu.Unlock()
	s.emitter.Emit(ctx, EventCompanyChanged, c)
}

// UpdateCompany edits the company data in place under the lock.
func (s *EditorService) UpdateCompany(ctx context.Context, f func(c *domain.CompanyData)) domain.CompanyData {
	s.mu.Lock()
	f(&s.company)
	c := s.company
	s.mu.Unlock()
	s.emitter.Emit(ctx, EventCompanyChanged, c)
	return c
}

// applyIfCurrent runs f on the company data only while its name and
// industry still match the ones a generation request was made with.
func (s *EditorService) applyIfCurrent(ctx context.Context, name, industry string, f func(c *domain.CompanyData)) bool {
	s.mu.Lock()
	if s.company.Name != name || s.company.Industry != industry {
		s.mu.Unlock()
		return false
	}
	f(&s.company)
	c := s.company
	s.mu.Unlock()
	s.emitter.Emit(ctx, EventCompanyChanged, c)
	return true
}

// ─────────────────────────────────────────────────────────────
// Persistence
// ─────────────────────────────────────────────────────────────

// Save writes the document and its company data.
func (s *EditorService) Save(ctx context.Context) error {
	if s.docs == nil {
		return ErrNoStore
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.docs.SaveDocument(s.doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	if s.companies != nil {
		c := s.company
		if err := s.companies.SaveCompany(s.doc.ID, &c); err != nil {
			return fmt.Errorf("save company: %w", err)
		}
	}
	log.Printf("[EDITOR] saved %s (%d pages)", s.doc.ID, len(s.doc.Pages))
	return nil
}

// Load replaces the session with a stored document.
func (s *EditorService) Load(ctx context.Context, id string) error {
	if s.docs == nil {
		return ErrNoStore
	}
	doc, err := s.docs.LoadDocument(id)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if len(doc.Pages) == 0 {
		return fmt.Errorf("load document %s: %w", id, canvas.ErrNoActivePage)
	}
	var company domain.CompanyData
	if s.companies != nil {
		c, err := s.companies.LoadCompany(id)
		if err != nil {
			return fmt.Errorf("load company: %w", err)
		}
		company = *c
	}

	s.mu.Lock()
	s.drag.PointerUp()
	s.doc = doc
	s.company = company
	s.locale = layout.LocaleFor(doc.Language)
	snap := s.doc.Clone()
	s.mu.Unlock()

	s.emitter.Emit(ctx, EventDocumentChanged, snap)
	return nil
}

func (s *EditorService) ListDocuments() ([]domain.DocumentSummary, error) {
	if s.docs == nil {
		return nil, ErrNoStore
	}
	return s.docs.ListDocuments()
}

// DeleteDocument removes a stored document. The open session is unaffected.
func (s *EditorService) DeleteDocument(id string) error {
	if s.docs == nil {
		return ErrNoStore
	}
	return s.docs.DeleteDocument(id)
}
