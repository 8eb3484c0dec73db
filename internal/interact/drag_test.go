package interact_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"proprofile/internal/canvas"
	"proprofile/internal/domain"
	"proprofile/internal/interact"
)

func setup(t *testing.T, strict bool) (*canvas.Engine, *domain.Document, *interact.DragController, string) {
	t.Helper()
	n := 0
	e := canvas.New(canvas.WithStrict(strict), canvas.WithIDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	doc := e.NewDocument("drag")
	el, err := e.AddElement(doc, domain.ElementTypeShape, "")
	if err != nil {
		t.Fatal(err)
	}
	return e, doc, interact.NewDragController(e), el.ID
}

func position(t *testing.T, doc *domain.Document, id string) (float64, float64) {
	t.Helper()
	p, err := canvas.ActivePage(doc)
	if err != nil {
		t.Fatal(err)
	}
	el := canvas.FindElement(p, id)
	if el == nil {
		t.Fatalf("element %s not found", id)
	}
	return el.X, el.Y
}

// ─────────────────────────────────────────────────────────────
// Zoom
// ─────────────────────────────────────────────────────────────

func TestZoom_Clamped(t *testing.T) {
	_, _, d, _ := setup(t, false)
	if d.Zoom() != interact.InitialZoom {
		t.Fatalf("expected initial zoom %v, got %v", interact.InitialZoom, d.Zoom())
	}
	if got := d.SetZoom(5); got != interact.MaxZoom {
		t.Errorf("expected %v, got %v", interact.MaxZoom, got)
	}
	if got := d.SetZoom(0.01); got != interact.MinZoom {
		t.Errorf("expected %v, got %v", interact.MinZoom, got)
	}
	for i := 0; i < 30; i++ {
		d.ZoomIn()
	}
	if d.Zoom() != interact.MaxZoom {
		t.Errorf("ZoomIn overshot: %v", d.Zoom())
	}
	for i := 0; i < 30; i++ {
		d.ZoomOut()
	}
	if d.Zoom() != interact.MinZoom {
		t.Errorf("ZoomOut undershot: %v", d.Zoom())
	}
}

func TestZoom_Steps(t *testing.T) {
	_, _, d, _ := setup(t, false)
	d.ZoomIn()
	if d.Zoom() != 0.8 {
		t.Errorf("expected 0.8, got %v", d.Zoom())
	}
	d.ZoomOut()
	d.ZoomOut()
	if d.Zoom() != 0.6 {
		t.Errorf("expected 0.6, got %v", d.Zoom())
	}
}

// ─────────────────────────────────────────────────────────────
// Drag
// ─────────────────────────────────────────────────────────────

func TestDrag_HalfZoom(t *testing.T) {
	_, doc, d, id := setup(t, false)
	d.SetZoom(0.5)

	if err := d.PointerDown(doc, id, interact.Point{X: 150, Y: 150}, interact.PrimaryButton); err != nil {
		t.Fatal(err)
	}
	if !d.Dragging() {
		t.Fatal("expected dragging after primary pointer-down")
	}
	if err := d.PointerMove(doc, interact.Point{X: 160, Y: 160}); err != nil {
		t.Fatal(err)
	}
	if x, y := position(t, doc, id); x != 120 || y != 120 {
		t.Errorf("expected (120,120), got (%v,%v)", x, y)
	}
	d.PointerUp()
	if d.Dragging() {
		t.Error("expected idle after pointer-up")
	}
}

func TestDrag_RoundTripAcrossZooms(t *testing.T) {
	for _, z := range []float64{0.3, 0.333, 0.45, 0.5, 0.7, 1, 1.234, 2} {
		t.Run(fmt.Sprint(z), func(t *testing.T) {
			_, doc, d, id := setup(t, false)
			if got := d.SetZoom(z); got != z {
				t.Fatalf("SetZoom(%v) applied %v", z, got)
			}
			ex, ey := position(t, doc, id)
			px, py, dx, dy := 64.0, 32.0, 16.0, -8.0

			if err := d.PointerDown(doc, id, interact.Point{X: px, Y: py}, interact.PrimaryButton); err != nil {
				t.Fatal(err)
			}
			if err := d.PointerMove(doc, interact.Point{X: px + dx, Y: py + dy}); err != nil {
				t.Fatal(err)
			}
			if x, y := position(t, doc, id); math.Abs(x-(ex+dx/z)) > 1e-9 || math.Abs(y-(ey+dy/z)) > 1e-9 {
				t.Errorf("expected (%v,%v), got (%v,%v)", ex+dx/z, ey+dy/z, x, y)
			}
		})
	}
}

func TestDrag_SecondaryButtonIgnored(t *testing.T) {
	_, doc, d, id := setup(t, false)
	doc.SelectedID = ""
	if err := d.PointerDown(doc, id, interact.Point{X: 10, Y: 10}, 2); err != nil {
		t.Fatal(err)
	}
	if d.Dragging() || doc.SelectedID != "" {
		t.Error("non-primary button must not start a drag or select")
	}
	_ = d.PointerMove(doc, interact.Point{X: 500, Y: 500})
	if x, y := position(t, doc, id); x != canvas.DefaultX || y != canvas.DefaultY {
		t.Errorf("element moved while idle: (%v,%v)", x, y)
	}
}

func TestDrag_UnknownElement(t *testing.T) {
	_, doc, d, _ := setup(t, true)
	err := d.PointerDown(doc, "ghost", interact.Point{}, interact.PrimaryButton)
	if !errors.Is(err, canvas.ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
	if d.Dragging() {
		t.Error("drag must not start on an unknown element")
	}
}

func TestDrag_EndsWhenTargetDeleted(t *testing.T) {
	e, doc, d, id := setup(t, false)
	if err := d.PointerDown(doc, id, interact.Point{X: 10, Y: 10}, interact.PrimaryButton); err != nil {
		t.Fatal(err)
	}
	if err := e.DeleteElement(doc, id); err != nil {
		t.Fatal(err)
	}
	if err := d.PointerMove(doc, interact.Point{X: 20, Y: 20}); err != nil {
		t.Fatal(err)
	}
	if d.Dragging() {
		t.Error("drag should end once its element is gone")
	}
}
