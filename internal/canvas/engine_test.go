package canvas_test

import (
	"errors"
	"fmt"
	"testing"

	"proprofile/internal/canvas"
	"proprofile/internal/domain"
)

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newEngine(strict bool) *canvas.Engine {
	return canvas.New(canvas.WithIDFunc(counterIDs()), canvas.WithStrict(strict))
}

// ─────────────────────────────────────────────────────────────
// Elements
// ─────────────────────────────────────────────────────────────

func TestAddElement_DefaultsAndSelection(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("Acme")

	cases := []struct {
		typ  domain.ElementType
		w, h float64
	}{
		{domain.ElementTypeText, 300, 50},
		{domain.ElementTypeLogo, 150, 150},
		{domain.ElementTypeImage, 200, 200},
		{domain.ElementTypeShape, 200, 200},
	}
	for i, tc := range cases {
		el, err := e.AddElement(doc, tc.typ, "")
		if err != nil {
			t.Fatalf("add %s: %v", tc.typ, err)
		}
		if el.Width != tc.w || el.Height != tc.h {
			t.Errorf("%s: expected %vx%v, got %vx%v", tc.typ, tc.w, tc.h, el.Width, el.Height)
		}
		if el.ZIndex != i+1 {
			t.Errorf("%s: expected zIndex %d, got %d", tc.typ, i+1, el.ZIndex)
		}
		if el.FontSize != 16 || el.Color != "#000000" || el.FontWeight != "normal" || el.TextAlign != domain.AlignLeft {
			t.Errorf("%s: add-operation style defaults missing: %+v", tc.typ, el)
		}
		if doc.SelectedID != el.ID {
			t.Errorf("expected new element %s to be selected, got %q", el.ID, doc.SelectedID)
		}
	}
}

// Scenario C: two texts, delete the first, the second survives and nothing is selected.
func TestDeleteElement_ClearsSelection(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")

	first, _ := e.AddElement(doc, domain.ElementTypeText, "a")
	second, _ := e.AddElement(doc, domain.ElementTypeText, "b")

	if err := e.DeleteElement(doc, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	els := doc.Pages[0].Elements
	if len(els) != 1 || els[0].ID != second.ID {
		t.Fatalf("expected only %s to remain, got %+v", second.ID, els)
	}
	if doc.SelectedID != "" {
		t.Errorf("expected selection cleared, got %q", doc.SelectedID)
	}
}

func TestUpdateElement_MergesFields(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")
	el, _ := e.AddElement(doc, domain.ElementTypeText, "hello")
	_ = e.SelectElement(doc, el.ID)

	size := 32.0
	color := "#ff0000"
	if err := e.UpdateElement(doc, el.ID, domain.ElementPatch{FontSize: &size, Color: &color}); err != nil {
		t.Fatal(err)
	}
	got := canvas.FindElement(&doc.Pages[0], el.ID)
	if got.FontSize != 32 || got.Color != "#ff0000" || got.Content != "hello" {
		t.Errorf("unexpected merge result: %+v", got)
	}
	if doc.SelectedID != el.ID {
		t.Errorf("update must not change selection")
	}
}

func TestUpdateElement_UnknownID(t *testing.T) {
	lenient := newEngine(false)
	doc := lenient.NewDocument("")
	if err := lenient.UpdateElement(doc, "nope", domain.Move(1, 1)); err != nil {
		t.Errorf("lenient engine should ignore unknown ids, got %v", err)
	}

	strict := newEngine(true)
	doc = strict.NewDocument("")
	if err := strict.UpdateElement(doc, "nope", domain.Move(1, 1)); !errors.Is(err, canvas.ErrElementNotFound) {
		t.Errorf("expected ErrElementNotFound, got %v", err)
	}
}

func TestUpdateElement_MarksKeyedTextEdited(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")
	doc.Pages[0].Elements = append(doc.Pages[0].Elements, domain.Element{
		ID: "t1", Type: domain.ElementTypeText, Content: "OUR VISION", TextKey: "vision_title",
	})

	x := 10.0
	_ = e.UpdateElement(doc, "t1", domain.ElementPatch{X: &x})
	if doc.Pages[0].Elements[0].Edited {
		t.Fatal("moving an element must not mark it edited")
	}
	content := "Where we go"
	_ = e.UpdateElement(doc, "t1", domain.ElementPatch{Content: &content})
	if !doc.Pages[0].Elements[0].Edited {
		t.Fatal("content overwrite must mark the element edited")
	}
}

func TestSelectElement_UnknownIDLeavesUnselected(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")
	el, _ := e.AddElement(doc, domain.ElementTypeShape, "")
	if doc.SelectedID != el.ID {
		t.Fatal("expected selection after add")
	}
	_ = e.SelectElement(doc, "ghost")
	if doc.SelectedID != "" {
		t.Errorf("expected unselected, got %q", doc.SelectedID)
	}
}

func TestRestack(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")
	a, _ := e.AddElement(doc, domain.ElementTypeShape, "")
	b, _ := e.AddElement(doc, domain.ElementTypeShape, "")

	_ = e.BringToFront(doc, a.ID)
	if got := canvas.FindElement(&doc.Pages[0], a.ID).ZIndex; got <= b.ZIndex {
		t.Errorf("expected %s above %d, got %d", a.ID, b.ZIndex, got)
	}
	_ = e.SendToBack(doc, a.ID)
	if got := canvas.FindElement(&doc.Pages[0], a.ID).ZIndex; got >= b.ZIndex {
		t.Errorf("expected %s below %d, got %d", a.ID, b.ZIndex, got)
	}
}

func TestDuplicateElement(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")
	src, _ := e.AddElement(doc, domain.ElementTypeText, "copy me")
	cp, err := e.DuplicateElement(doc, src.ID)
	if err != nil {
		t.Fatal(err)
	}
	if cp.ID == src.ID || cp.Content != "copy me" || cp.X != src.X+20 {
		t.Errorf("bad duplicate: %+v", cp)
	}
	if doc.SelectedID != cp.ID {
		t.Errorf("expected duplicate selected")
	}
}

// ─────────────────────────────────────────────────────────────
// Pages
// ─────────────────────────────────────────────────────────────

// P1: the document never drops below one page.
func TestDeletePage_KeepsOnePage(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")
	only := doc.Pages[0].ID

	if err := e.DeletePage(doc); !errors.Is(err, canvas.ErrLastPage) {
		t.Fatalf("expected ErrLastPage, got %v", err)
	}
	if len(doc.Pages) != 1 || doc.ActivePageID != only {
		t.Fatalf("rejected delete must leave document unchanged")
	}

	ops := []bool{true, true, false, true, false, false, false, true, false, false}
	for i, add := range ops {
		if add {
			e.AddPage(doc)
		} else {
			_ = e.DeletePage(doc)
		}
		if len(doc.Pages) < 1 {
			t.Fatalf("step %d: page count dropped to %d", i, len(doc.Pages))
		}
		if doc.PageIndex(doc.ActivePageID) < 0 {
			t.Fatalf("step %d: active page %q not in document", i, doc.ActivePageID)
		}
	}
}

func TestDeletePage_ActivatesPredecessor(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")
	p1 := doc.Pages[0].ID
	p2 := e.AddPage(doc).ID
	p3 := e.AddPage(doc).ID

	e.GoToPage(doc, p2)
	if err := e.DeletePage(doc); err != nil {
		t.Fatal(err)
	}
	if doc.ActivePageID != p1 {
		t.Errorf("expected predecessor %s active, got %s", p1, doc.ActivePageID)
	}

	e.GoToPage(doc, p1)
	_ = e.DeletePage(doc)
	if doc.ActivePageID != p3 {
		t.Errorf("deleting the first page should activate the new first page %s, got %s", p3, doc.ActivePageID)
	}
}

func TestNavigatePage_Boundaries(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")
	first := doc.Pages[0].ID
	second := e.AddPage(doc).ID

	if e.NavigatePage(doc, canvas.Next) {
		t.Error("next at last page should be a no-op")
	}
	if !e.NavigatePage(doc, canvas.Prev) || doc.ActivePageID != first {
		t.Errorf("expected to move back to %s", first)
	}
	if e.NavigatePage(doc, canvas.Prev) {
		t.Error("prev at first page should be a no-op")
	}
	if !e.NavigatePage(doc, canvas.Next) || doc.ActivePageID != second {
		t.Errorf("expected to move forward to %s", second)
	}
}

// P7: every selection-clearing transition leaves nothing selected.
func TestSelectionClearedOnTransitions(t *testing.T) {
	e := newEngine(false)

	steps := map[string]func(doc *domain.Document, selected string){
		"delete selected": func(doc *domain.Document, id string) { _ = e.DeleteElement(doc, id) },
		"delete page":     func(doc *domain.Document, _ string) { _ = e.DeletePage(doc) },
		"navigate":        func(doc *domain.Document, _ string) { e.NavigatePage(doc, canvas.Prev) },
		"add page":        func(doc *domain.Document, _ string) { e.AddPage(doc) },
		"empty canvas":    func(doc *domain.Document, _ string) { e.ClearSelection(doc) },
	}
	for name, step := range steps {
		t.Run(name, func(t *testing.T) {
			doc := e.NewDocument("")
			e.AddPage(doc)
			el, _ := e.AddElement(doc, domain.ElementTypeText, "x")
			if doc.SelectedID == "" {
				t.Fatal("precondition: expected a selection")
			}
			step(doc, el.ID)
			if doc.SelectedID != "" {
				t.Errorf("expected no selection, got %q", doc.SelectedID)
			}
		})
	}
}

// P3: mutations on the active page never touch other pages.
func TestMutationsScopedToActivePage(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")
	a := doc.Pages[0].ID
	_, _ = e.AddElement(doc, domain.ElementTypeText, "on A")
	snapshotA := doc.Pages[0].Clone()

	e.AddPage(doc)
	b, _ := e.AddElement(doc, domain.ElementTypeShape, "")
	_ = e.UpdateElement(doc, b.ID, domain.Move(5, 5))
	_, _ = e.AddElement(doc, domain.ElementTypeText, "on B")
	_ = e.DeleteElement(doc, b.ID)
	// An id that lives on page A is invisible from page B.
	_ = e.DeleteElement(doc, snapshotA.Elements[0].ID)

	gotA := doc.Pages[doc.PageIndex(a)]
	if len(gotA.Elements) != len(snapshotA.Elements) || gotA.Elements[0] != snapshotA.Elements[0] {
		t.Errorf("page A was modified: %+v", gotA.Elements)
	}
}

func TestBackgroundPolicy(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")

	_ = e.SetBackgroundImage(doc, "data:image/png;base64,AAAA")
	p := doc.Pages[0]
	if p.BackgroundImage == "" || p.BackgroundColor != domain.DefaultBackground {
		t.Errorf("image should be set and color reset, got %+v", p)
	}
	_ = e.SetBackgroundColor(doc, "#123456")
	p = doc.Pages[0]
	if p.BackgroundImage != "" || p.BackgroundColor != "#123456" {
		t.Errorf("color should be set and image cleared, got %+v", p)
	}
}

func TestReplaceActivePage_LeavesOthers(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")
	_, _ = e.AddElement(doc, domain.ElementTypeText, "keep")
	e.AddPage(doc)
	_, _ = e.AddElement(doc, domain.ElementTypeText, "drop")
	_, _ = e.AddElement(doc, domain.ElementTypeText, "drop")

	gen := []domain.Element{{ID: "g1", Type: domain.ElementTypeShape}}
	if err := e.ReplaceActivePage(doc, gen, "#111827"); err != nil {
		t.Fatal(err)
	}
	if n := len(doc.Pages[1].Elements); n != 1 {
		t.Errorf("expected generated page to hold 1 element, got %d", n)
	}
	if doc.Pages[1].BackgroundColor != "#111827" {
		t.Errorf("background not applied")
	}
	if n := len(doc.Pages[0].Elements); n != 1 {
		t.Errorf("other page changed: %d elements", n)
	}
}

func TestReplacePages_RejectsEmpty(t *testing.T) {
	e := newEngine(false)
	doc := e.NewDocument("")
	if err := e.ReplacePages(doc, nil); err == nil {
		t.Fatal("expected error for empty page set")
	}
	if len(doc.Pages) != 1 {
		t.Fatal("document must be unchanged")
	}
}
