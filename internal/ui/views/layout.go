package views

import (
	"math"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/geom"
)

// minNoteCells is the smallest box that still shows a border.
const minNoteCells = 3

// Layout maps notes to terminal cells. Rendering and hit testing both go
// through it, so what is drawn is what can be clicked.
type Layout struct {
	NoteWidth  float64 // canvas units at zoom 1
	NoteHeight float64
}

// CellRect is a rectangle of terminal cells in screen space.
type CellRect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// NoteCells returns the cells covered by n under the viewport. The box is
// centred on the note's position and scales with zoom.
func (l Layout) NoteCells(n board.Note, vp geom.Viewport) CellRect {
	c := vp.ToScreen(n.Position())
	w := max(int(math.Round(l.NoteWidth*vp.Zoom)), minNoteCells)
	h := max(int(math.Round(l.NoteHeight*vp.Zoom)), minNoteCells)
	return CellRect{
		X: int(math.Floor(c.X - float64(w)/2 + 0.5)),
		Y: int(math.Floor(c.Y - float64(h)/2 + 0.5)),
		W: w,
		H: h,
	}
}

// HitTest returns the topmost note covering p.
func (l Layout) HitTest(v board.View, p geom.ScreenPoint) (int, bool) {
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	vp := v.Viewport()

	found, best := 0, math.MinInt
	for _, n := range v.Notes() {
		if n.ZIndex > best && l.NoteCells(n, vp).Contains(x, y) {
			found, best = n.ID, n.ZIndex
		}
	}
	return found, best != math.MinInt
}
