package mcpserver

import (
	"math"

	"proprofile/internal/canvas"
	"proprofile/internal/domain"
)

const (
	GridSize = 10.0
	Padding  = 20.0 // clearance kept around existing elements
)

// Placer finds a free spot on the page for elements created by agents that
// did not give a position, so they don't land on top of existing content.
type Placer struct {
	gridSize float64
	padding  float64
}

func NewPlacer() *Placer {
	return &Placer{gridSize: GridSize, padding: Padding}
}

// snap rounds v to the nearest grid point.
func (pl *Placer) snap(v float64) float64 {
	return math.Round(v/pl.gridSize) * pl.gridSize
}

// rect is a simple axis-aligned bounding box.
type rect struct {
	x, y, w, h float64
}

func (a rect) intersects(b rect) bool {
	return a.x < b.x+b.w && a.x+a.w > b.x &&
		a.y < b.y+b.h && a.y+a.h > b.y
}

// NextPosition scans the page top to bottom, left to right, for a grid
// position where a (w, h) box fits inside the page without touching any
// existing element. Shapes wider or taller than the page never fit and get
// the default add position, as does a page with no room left.
func (pl *Placer) NextPosition(existing []domain.Element, w, h float64) (float64, float64) {
	if len(existing) == 0 {
		return canvas.DefaultX, canvas.DefaultY
	}

	occupied := make([]rect, len(existing))
	for i, el := range existing {
		occupied[i] = rect{
			x: el.X - pl.padding,
			y: el.Y - pl.padding,
			w: el.Width + pl.padding*2,
			h: el.Height + pl.padding*2,
		}
	}

	candidate := rect{w: w, h: h}
	for y := pl.padding; y+h <= domain.PageHeight-pl.padding; y += pl.gridSize {
		for x := pl.padding; x+w <= domain.PageWidth-pl.padding; x += pl.gridSize {
			candidate.x = pl.snap(x)
			candidate.y = pl.snap(y)

			free := true
			for _, occ := range occupied {
				if candidate.intersects(occ) {
					free = false
					break
				}
			}
			if free {
				return candidate.x, candidate.y
			}
		}
	}
	return canvas.DefaultX, canvas.DefaultY
}
