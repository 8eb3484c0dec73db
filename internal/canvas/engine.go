// Package canvas holds the mutation engine for documents: element and page
// operations that always act on the document's active page and keep its
// invariants (at least one page, selection either empty or on the active page).
package canvas

import (
	"errors"

	"github.com/google/uuid"

	"proprofile/internal/domain"
)

var (
	ErrLastPage        = errors.New("cannot delete the only page")
	ErrElementNotFound = errors.New("element not found on active page")
	ErrNoActivePage    = errors.New("document has no active page")
)

// Defaults applied only to elements created through AddElement.
const (
	DefaultFontSize = 16
	DefaultColor    = "#000000"
	DefaultX        = 100
	DefaultY        = 100
)

type Direction int

const (
	Prev Direction = iota
	Next
)

// Engine performs document mutations. The zero value is not usable; call New.
type Engine struct {
	newID  func() string
	strict bool
}

type Option func(*Engine)

// WithIDFunc overrides id generation (tests use a counter).
func WithIDFunc(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

// WithStrict makes operations on unknown element ids return ErrElementNotFound
// instead of silently doing nothing. Scripted callers want this.
func WithStrict(strict bool) Option {
	return func(e *Engine) { e.strict = strict }
}

func New(opts ...Option) *Engine {
	e := &Engine{newID: uuid.NewString}
	for _, o := range opts {
		o(e)
	}
	return e
}

// NewID returns a fresh identifier from the engine's generator.
func (e *Engine) NewID() string { return e.newID() }

// Strict reports whether unknown ids are reported as errors.
func (e *Engine) Strict() bool { return e.strict }

// NewDocument creates a document holding exactly one empty white page.
func (e *Engine) NewDocument(name string) *domain.Document {
	p := domain.NewPage(e.newID())
	return &domain.Document{
		ID:           e.newID(),
		Name:         name,
		Pages:        []domain.Page{p},
		ActivePageID: p.ID,
	}
}

// ActivePage returns a pointer into doc.Pages for the active page.
func ActivePage(doc *domain.Document) (*domain.Page, error) {
	i := doc.PageIndex(doc.ActivePageID)
	if i < 0 {
		return nil, ErrNoActivePage
	}
	return &doc.Pages[i], nil
}

// ActivePageIndex returns the active page's position, or -1.
func ActivePageIndex(doc *domain.Document) int {
	return doc.PageIndex(doc.ActivePageID)
}

// FindElement returns a pointer to the element with id, or nil.
func FindElement(p *domain.Page, id string) *domain.Element {
	for i := range p.Elements {
		if p.Elements[i].ID == id {
			return &p.Elements[i]
		}
	}
	return nil
}

// SelectedElement returns the selected element on the active page, if any.
func SelectedElement(doc *domain.Document) *domain.Element {
	if doc.SelectedID == "" {
		return nil
	}
	p, err := ActivePage(doc)
	if err != nil {
		return nil
	}
	return FindElement(p, doc.SelectedID)
}

func (e *Engine) missing() error {
	if e.strict {
		return ErrElementNotFound
	}
	return nil
}
