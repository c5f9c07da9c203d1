// Package board holds the combined canvas state (notes plus viewport) and
// the reducer that is the only place it changes.
package board

import (
	"errors"
	"fmt"
	"sort"

	"zoomcanvas/internal/drag"
	"zoomcanvas/internal/geom"
)

// Note is a sticky note. X and Y are its canvas-space position.
type Note struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	ZIndex   int     `json:"zIndex"`
	IsActive bool    `json:"isActive"`
	Text     string  `json:"text"`
}

// Position returns the note's canvas-space position.
func (n Note) Position() geom.CanvasPoint {
	return geom.NewCanvasPoint(n.X, n.Y)
}

// State is the combined canvas state.
type State struct {
	Notes     []Note
	ZIndexMax int // last zIndex handed out
	IDMax     int // last id handed out
	Center    geom.ScreenPoint
	Zoom      float64

	// Drag is the in-flight drag session, nil when idle. It is transient
	// and never persisted.
	Drag *drag.Session
}

// Empty returns the state with no notes and the default viewport.
func Empty() State {
	return State{
		Notes: []Note{},
		Zoom:  1,
	}
}

// Viewport returns the pan/zoom pair of the state.
func (s State) Viewport() geom.Viewport {
	return geom.Viewport{Center: s.Center, Zoom: s.Zoom}
}

// Note returns the note with the given id.
func (s State) Note(id int) (Note, bool) {
	for _, n := range s.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Active returns the active note, if any.
func (s State) Active() (Note, bool) {
	for _, n := range s.Notes {
		if n.IsActive {
			return n, true
		}
	}
	return Note{}, false
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Notes = make([]Note, len(s.Notes))
	copy(out.Notes, s.Notes)
	if s.Drag != nil {
		d := *s.Drag
		out.Drag = &d
	}
	return out
}

// Validation errors returned by Validate.
var (
	ErrInvalidZoom    = errors.New("zoom must be positive")
	ErrMultipleActive = errors.New("more than one active note")
)

// Validate checks the invariants of the combined state.
func (s State) Validate() error {
	if !(s.Zoom > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidZoom, s.Zoom)
	}

	active := 0
	ids := make(map[int]bool, len(s.Notes))
	for _, n := range s.Notes {
		if n.ID > s.IDMax {
			return fmt.Errorf("note %d exceeds idMax %d", n.ID, s.IDMax)
		}
		if n.ZIndex > s.ZIndexMax {
			return fmt.Errorf("note %d zIndex %d exceeds zIndexMax %d", n.ID, n.ZIndex, s.ZIndexMax)
		}
		if ids[n.ID] {
			return fmt.Errorf("duplicate note id %d", n.ID)
		}
		ids[n.ID] = true
		if n.IsActive {
			active++
		}
	}
	if active > 1 {
		return fmt.Errorf("%w: %d", ErrMultipleActive, active)
	}
	return nil
}

// View is a read-only projection of a State handed to rendering and input
// translation. Accessors return copies.
type View struct {
	s State
}

// NewView wraps s. The caller keeps ownership of s.
func NewView(s State) View {
	return View{s: s}
}

// Notes returns a copy of the notes in insertion order.
func (v View) Notes() []Note {
	out := make([]Note, len(v.s.Notes))
	copy(out, v.s.Notes)
	return out
}

// Note returns the note with the given id.
func (v View) Note(id int) (Note, bool) {
	return v.s.Note(id)
}

// Active returns the active note, if any.
func (v View) Active() (Note, bool) {
	return v.s.Active()
}

// Viewport returns the pan/zoom pair.
func (v View) Viewport() geom.Viewport {
	return v.s.Viewport()
}

// Dragging reports whether a drag session is in flight.
func (v View) Dragging() bool {
	return v.s.Drag != nil
}

// DragTarget returns the current drag target.
func (v View) DragTarget() (drag.Target, bool) {
	if v.s.Drag == nil {
		return drag.Target{}, false
	}
	return v.s.Drag.Target, true
}

// Len returns the number of notes.
func (v View) Len() int {
	return len(v.s.Notes)
}

// Bounds returns the canvas-space rectangle of a w by h note, centred on
// its position.
func (n Note) Bounds(w, h float64) geom.Rect[geom.Canvas] {
	return geom.RectAround(n.Position(), w, h)
}

// ByZIndex returns the notes ordered bottom to top.
func (v View) ByZIndex() []Note {
	out := v.Notes()
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}
