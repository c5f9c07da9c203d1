// Package drag implements the pointer drag session: the transient record of
// an in-progress note move or canvas pan.
//
// A nil *Session means idle. At most one session exists at a time; the
// owner of the combined canvas state enforces that by ignoring a start
// request while a session is present.
package drag

import (
	"fmt"

	"zoomcanvas/internal/geom"
)

// Target identifies what a session moves.
type Target struct {
	noteID int
	pan    bool
}

// Pan is the target for panning the whole canvas.
func Pan() Target {
	return Target{pan: true}
}

// Note is the target for moving the note with the given id.
func Note(id int) Target {
	return Target{noteID: id}
}

// IsPan reports whether the target is the canvas itself.
func (t Target) IsPan() bool {
	return t.pan
}

// NoteID returns the id of the dragged note. ok is false for pan targets.
func (t Target) NoteID() (id int, ok bool) {
	if t.pan {
		return 0, false
	}
	return t.noteID, true
}

func (t Target) String() string {
	if t.pan {
		return "pan"
	}
	return fmt.Sprintf("note %d", t.noteID)
}

// Session is one pointer excursion. Start and End bound the excursion in
// screen space. For a pan the center fields are used; for a note the
// position fields are used. The other pair stays zero.
type Session struct {
	Target Target
	Start  geom.ScreenPoint
	End    geom.ScreenPoint

	PreviousCenter geom.ScreenPoint
	NewCenter      geom.ScreenPoint

	PreviousPosition geom.CanvasPoint
	NewPosition      geom.CanvasPoint
}

// StartPan begins panning from the current viewport center.
func StartPan(point, center geom.ScreenPoint) *Session {
	return &Session{
		Target:         Pan(),
		Start:          point,
		End:            point,
		PreviousCenter: center,
		NewCenter:      center,
	}
}

// StartNote begins moving note id from its current canvas position.
func StartNote(id int, point geom.ScreenPoint, position geom.CanvasPoint) *Session {
	return &Session{
		Target:           Note(id),
		Start:            point,
		End:              point,
		PreviousPosition: position,
		NewPosition:      position,
	}
}

// Update returns the session after the pointer moved to point. The new
// position is always derived from the position captured at start, so
// repeating an update with the same point yields the same session.
//
// Panning is 1:1 with the pointer. Note movement is divided by zoom so the
// note tracks the pointer in canvas space.
func (s Session) Update(point geom.ScreenPoint, view geom.Viewport) Session {
	s.End = point
	delta := s.Start.Sub(s.End)

	if s.Target.IsPan() {
		s.NewCenter = s.PreviousCenter.Sub(delta)
		return s
	}

	s.NewPosition = s.PreviousPosition.Sub(view.DeltaToCanvas(delta))
	return s
}
