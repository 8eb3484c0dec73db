package canvas

import (
	"proprofile/internal/domain"
)

// AddElement appends a new element with default geometry and style to the
// active page and selects it. Its zIndex is the page's element count plus one.
func (e *Engine) AddElement(doc *domain.Document, t domain.ElementType, content string) (domain.Element, error) {
	p, err := ActivePage(doc)
	if err != nil {
		return domain.Element{}, err
	}
	el := domain.NewElement(e.newID(), t, content)
	el.X, el.Y = DefaultX, DefaultY
	el.ZIndex = len(p.Elements) + 1
	el.FontSize = DefaultFontSize
	el.FontWeight = domain.WeightNormal
	el.Color = DefaultColor
	el.TextAlign = domain.AlignLeft

	p.Elements = append(p.Elements, el)
	doc.SelectedID = el.ID
	return el, nil
}

// UpdateElement merges patch into the element with id. Selection is unchanged.
// Overwriting the content of a generated text marks it as user-edited.
func (e *Engine) UpdateElement(doc *domain.Document, id string, patch domain.ElementPatch) error {
	p, err := ActivePage(doc)
	if err != nil {
		return err
	}
	el := FindElement(p, id)
	if el == nil {
		return e.missing()
	}
	if patch.Apply(el) && el.TextKey != "" {
		el.Edited = true
	}
	return nil
}

// DeleteElement removes the element and always clears the selection.
func (e *Engine) DeleteElement(doc *domain.Document, id string) error {
	p, err := ActivePage(doc)
	if err != nil {
		return err
	}
	doc.SelectedID = ""
	for i := range p.Elements {
		if p.Elements[i].ID == id {
			p.Elements = append(p.Elements[:i], p.Elements[i+1:]...)
			return nil
		}
	}
	return e.missing()
}

// SelectElement selects id on the active page. An id that is not on the
// active page leaves the document unselected.
func (e *Engine) SelectElement(doc *domain.Document, id string) error {
	p, err := ActivePage(doc)
	if err != nil {
		return err
	}
	if FindElement(p, id) == nil {
		doc.SelectedID = ""
		return e.missing()
	}
	doc.SelectedID = id
	return nil
}

// ClearSelection is the click-on-empty-canvas transition.
func (e *Engine) ClearSelection(doc *domain.Document) {
	doc.SelectedID = ""
}

// BringToFront raises the element above every other element on the page.
func (e *Engine) BringToFront(doc *domain.Document, id string) error {
	return e.restack(doc, id, func(p *domain.Page) int {
		top := 0
		for _, el := range p.Elements {
			if el.ZIndex > top {
				top = el.ZIndex
			}
		}
		return top + 1
	})
}

// SendToBack lowers the element below every other element on the page.
func (e *Engine) SendToBack(doc *domain.Document, id string) error {
	return e.restack(doc, id, func(p *domain.Page) int {
		bottom := 0
		for i, el := range p.Elements {
			if i == 0 || el.ZIndex < bottom {
				bottom = el.ZIndex
			}
		}
		return bottom - 1
	})
}

func (e *Engine) restack(doc *domain.Document, id string, z func(*domain.Page) int) error {
	p, err := ActivePage(doc)
	if err != nil {
		return err
	}
	el := FindElement(p, id)
	if el == nil {
		return e.missing()
	}
	el.ZIndex = z(p)
	return nil
}

// DuplicateElement copies an element 20 units down-right, on top of the
// page, and selects the copy. The copy is no longer tied to a dictionary key.
func (e *Engine) DuplicateElement(doc *domain.Document, id string) (domain.Element, error) {
	p, err := ActivePage(doc)
	if err != nil {
		return domain.Element{}, err
	}
	src := FindElement(p, id)
	if src == nil {
		return domain.Element{}, e.missing()
	}
	cp := *src
	if src.Opacity != nil {
		o := *src.Opacity
		cp.Opacity = &o
	}
	cp.ID = e.newID()
	cp.X += 20
	cp.Y += 20
	cp.ZIndex = len(p.Elements) + 1
	cp.TextKey = ""
	cp.Edited = false
	p.Elements = append(p.Elements, cp)
	doc.SelectedID = cp.ID
	return cp, nil
}
