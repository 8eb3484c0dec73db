package domain

import "time"

// Fixed canvas size: A4 at 96 DPI. Export rasterizes at exactly this size.
const (
	PageWidth  = 794.0
	PageHeight = 1123.0
)

const DefaultBackground = "#ffffff"

type Page struct {
	ID                string    `json:"id"`
	Elements          []Element `json:"elements"`
	BackgroundColor   string    `json:"backgroundColor"`
	BackgroundImage   string    `json:"backgroundImage,omitempty"`
	BackgroundOpacity float64   `json:"backgroundOpacity"` // reserved, not composited
}

// NewPage returns an empty white page.
func NewPage(id string) Page {
	return Page{
		ID:                id,
		Elements:          []Element{},
		BackgroundColor:   DefaultBackground,
		BackgroundOpacity: 1,
	}
}

// Document is the whole editable work: a non-empty ordered page list with
// an active page and at most one selected element on it.
type Document struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Language     string    `json:"language"`
	Pages        []Page    `json:"pages"`
	ActivePageID string    `json:"activePageId"`
	SelectedID   string    `json:"selectedId"` // "" means nothing selected
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PageIndex returns the index of the page with the given id, or -1.
func (d *Document) PageIndex(id string) int {
	for i := range d.Pages {
		if d.Pages[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy, so callers can snapshot state before handing it
// out of a lock.
func (d *Document) Clone() *Document {
	c := *d
	c.Pages = make([]Page, len(d.Pages))
	for i, p := range d.Pages {
		c.Pages[i] = p.Clone()
	}
	return &c
}

func (p Page) Clone() Page {
	c := p
	c.Elements = make([]Element, len(p.Elements))
	copy(c.Elements, p.Elements)
	for i := range c.Elements {
		if o := c.Elements[i].Opacity; o != nil {
			v := *o
			c.Elements[i].Opacity = &v
		}
	}
	return c
}

// DocumentSummary is the listing view returned by stores.
type DocumentSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PageCount int       `json:"pageCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type DocumentStore interface {
	SaveDocument(d *Document) error
	LoadDocument(id string) (*Document, error)
	ListDocuments() ([]DocumentSummary, error)
	DeleteDocument(id string) error
}
