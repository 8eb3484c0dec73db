package canvas

import (
	"proprofile/internal/domain"
)

// SetBackgroundColor sets the active page color and drops any background image.
func (e *Engine) SetBackgroundColor(doc *domain.Document, color string) error {
	p, err := ActivePage(doc)
	if err != nil {
		return err
	}
	p.BackgroundColor = color
	p.BackgroundImage = ""
	return nil
}

// SetBackgroundImage sets the active page image and resets the color to the
// default, so exactly one of the two is meaningful at any time.
func (e *Engine) SetBackgroundImage(doc *domain.Document, dataURL string) error {
	p, err := ActivePage(doc)
	if err != nil {
		return err
	}
	p.BackgroundImage = dataURL
	p.BackgroundColor = domain.DefaultBackground
	return nil
}

// AddPage appends an empty white page and makes it active.
func (e *Engine) AddPage(doc *domain.Document) *domain.Page {
	doc.Pages = append(doc.Pages, domain.NewPage(e.newID()))
	p := &doc.Pages[len(doc.Pages)-1]
	doc.ActivePageID = p.ID
	doc.SelectedID = ""
	return p
}

// DeletePage removes the active page and activates its predecessor (or the
// new first page). The last remaining page cannot be deleted.
func (e *Engine) DeletePage(doc *domain.Document) error {
	if len(doc.Pages) <= 1 {
		return ErrLastPage
	}
	i := ActivePageIndex(doc)
	if i < 0 {
		return ErrNoActivePage
	}
	doc.Pages = append(doc.Pages[:i], doc.Pages[i+1:]...)
	doc.ActivePageID = doc.Pages[max(0, i-1)].ID
	doc.SelectedID = ""
	return nil
}

// NavigatePage moves to the adjacent page. It reports false, changing
// nothing, when already at the boundary in that direction.
func (e *Engine) NavigatePage(doc *domain.Document, dir Direction) bool {
	i := ActivePageIndex(doc)
	if i < 0 {
		return false
	}
	switch dir {
	case Prev:
		i--
	case Next:
		i++
	}
	if i < 0 || i >= len(doc.Pages) {
		return false
	}
	doc.ActivePageID = doc.Pages[i].ID
	doc.SelectedID = ""
	return true
}

// GoToPage activates the page with id. Unknown ids are ignored.
func (e *Engine) GoToPage(doc *domain.Document, id string) bool {
	if doc.PageIndex(id) < 0 || id == doc.ActivePageID {
		return false
	}
	doc.ActivePageID = id
	doc.SelectedID = ""
	return true
}

// ReplaceActivePage swaps in a generated element list and background for the
// active page only. Other pages are untouched.
func (e *Engine) ReplaceActivePage(doc *domain.Document, elements []domain.Element, background string) error {
	p, err := ActivePage(doc)
	if err != nil {
		return err
	}
	p.Elements = elements
	p.BackgroundColor = background
	p.BackgroundImage = ""
	doc.SelectedID = ""
	return nil
}

// ReplacePages discards every page and installs the generated set, activating
// the first one. An empty set is refused so the document never loses its pages.
func (e *Engine) ReplacePages(doc *domain.Document, pages []domain.Page) error {
	if len(pages) == 0 {
		return ErrLastPage
	}
	doc.Pages = pages
	doc.ActivePageID = pages[0].ID
	doc.SelectedID = ""
	return nil
}
