package input

import (
	"zoomcanvas/internal/board"
	"zoomcanvas/internal/geom"
	"zoomcanvas/internal/ui/views"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Canvas board.View
	Layout views.Layout

	// Area of the terminal given to the canvas, in cells.
	OriginY int
	Width   int
	Height  int

	LastPointer *geom.ScreenPoint
}

func (c *ModelContext) View() board.View {
	return c.Canvas
}

func (c *ModelContext) HitTest(p geom.ScreenPoint) (int, bool) {
	return c.Layout.HitTest(c.Canvas, p)
}

// Pointer returns the last pointer position, defaulting to the middle of
// the canvas area.
func (c *ModelContext) Pointer() geom.ScreenPoint {
	if c.LastPointer != nil {
		return *c.LastPointer
	}
	return geom.NewScreenPoint(float64(c.Width/2), float64(c.Height/2))
}

// ToScreen converts terminal cells to screen space. The point is returned
// even when it lies outside the canvas area, so drags can follow the
// pointer past the edges.
func (c *ModelContext) ToScreen(x, y int) (geom.ScreenPoint, bool) {
	sy := y - c.OriginY
	p := geom.NewScreenPoint(float64(x), float64(sy))
	inside := x >= 0 && x < c.Width && sy >= 0 && sy < c.Height
	return p, inside
}
