// Package interact turns pointer input into element moves. Pointer positions
// arrive in screen units and are divided by the zoom before they meet page
// geometry, which is always stored unscaled.
package interact

import (
	"math"

	"proprofile/internal/canvas"
	"proprofile/internal/domain"
)

const (
	MinZoom     = 0.3
	MaxZoom     = 2.0
	ZoomStep    = 0.1
	InitialZoom = 0.7
)

// PrimaryButton is the only button that starts a drag.
const PrimaryButton = 0

type Point struct {
	X, Y float64
}

// DragController is either idle or dragging one element with a fixed offset
// between the pointer and the element origin.
type DragController struct {
	engine *canvas.Engine
	zoom   float64

	dragging bool
	target   string
	offset   Point
}

func NewDragController(engine *canvas.Engine) *DragController {
	return &DragController{engine: engine, zoom: InitialZoom}
}

func (d *DragController) Zoom() float64 { return d.zoom }

// SetZoom clamps z to [MinZoom, MaxZoom] and returns the applied value.
func (d *DragController) SetZoom(z float64) float64 {
	if math.IsNaN(z) {
		return d.zoom
	}
	d.zoom = math.Min(MaxZoom, math.Max(MinZoom, z))
	return d.zoom
}

// ZoomIn and ZoomOut move by ZoomStep and land on whole hundredths.
func (d *DragController) ZoomIn() float64  { return d.SetZoom(stepped(d.zoom + ZoomStep)) }
func (d *DragController) ZoomOut() float64 { return d.SetZoom(stepped(d.zoom - ZoomStep)) }

func stepped(z float64) float64 { return math.Round(z*100) / 100 }

// Dragging reports whether a drag is in progress.
func (d *DragController) Dragging() bool { return d.dragging }

func (d *DragController) toPage(p Point) Point {
	return Point{X: p.X / d.zoom, Y: p.Y / d.zoom}
}

// PointerDown selects the element under the pointer and starts a drag. Other
// buttons and ids not on the active page leave the controller idle.
func (d *DragController) PointerDown(doc *domain.Document, id string, p Point, button int) error {
	if button != PrimaryButton {
		return nil
	}
	if err := d.engine.SelectElement(doc, id); err != nil {
		d.reset()
		return err
	}
	el := canvas.SelectedElement(doc)
	if el == nil {
		d.reset()
		return nil
	}
	pp := d.toPage(p)
	d.dragging = true
	d.target = el.ID
	d.offset = Point{X: pp.X - el.X, Y: pp.Y - el.Y}
	return nil
}

// PointerMove repositions the dragged element. It is a no-op when idle. If
// the element has gone away, or lost the selection, the drag ends.
func (d *DragController) PointerMove(doc *domain.Document, p Point) error {
	if !d.dragging {
		return nil
	}
	if doc.SelectedID != d.target {
		d.reset()
		return nil
	}
	pp := d.toPage(p)
	if err := d.engine.UpdateElement(doc, d.target, domain.Move(pp.X-d.offset.X, pp.Y-d.offset.Y)); err != nil {
		d.reset()
		return err
	}
	return nil
}

// PointerUp ends any drag. Callers must deliver it wherever the pointer is
// released, not only over the canvas.
func (d *DragController) PointerUp() {
	d.reset()
}

func (d *DragController) reset() {
	d.dragging = false
	d.target = ""
	d.offset = Point{}
}
