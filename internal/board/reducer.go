package board

import (
	"zoomcanvas/internal/drag"
	"zoomcanvas/internal/geom"
)

// Reducer applies intents to a State. It is pure: Reduce never modifies
// the state it is given and has no effect besides its return value.
type Reducer struct {
	// ZoomFactor is the multiplicative step of one zoom intent.
	ZoomFactor float64
	// Limits bounds the zoom a zoom intent may reach.
	Limits geom.ZoomLimits
}

// NewReducer returns a reducer using zoomFactor and limits. A zoomFactor not
// greater than 1 or invalid limits fall back to the defaults.
func NewReducer(zoomFactor float64, limits geom.ZoomLimits) Reducer {
	if zoomFactor <= 1 {
		zoomFactor = geom.DefaultZoomFactor
	}
	if !limits.Valid() {
		limits = geom.DefaultZoomLimits()
	}
	return Reducer{ZoomFactor: zoomFactor, Limits: limits}
}

// Reduce applies intent with the default zoom factor and limits.
func Reduce(previous State, intent Intent) State {
	return NewReducer(geom.DefaultZoomFactor, geom.DefaultZoomLimits()).Reduce(previous, intent)
}

// Reduce returns the state after applying intent to previous. Intents that
// reference a missing note leave the state unchanged.
func (r Reducer) Reduce(previous State, intent Intent) State {
	switch in := intent.(type) {
	case SelectIntent:
		return r.selectNote(previous, in.ID)
	case CreateIntent:
		return r.create(previous, in.Point)
	case DeselectIntent:
		next := previous.Clone()
		next.Notes = clearActive(next.Notes)
		return next
	case UpdateTextIntent:
		return r.updateText(previous, in.ID, in.Text)
	case DeleteActiveIntent:
		return r.deleteActive(previous)
	case ClearIntent:
		return Empty()
	case ResetZoomIntent:
		next := previous.Clone()
		v := next.Viewport().Reset()
		next.Center, next.Zoom = v.Center, v.Zoom
		return next
	case ZoomIntent:
		next := previous.Clone()
		v := next.Viewport().ZoomAt(in.Direction, in.Anchor, r.ZoomFactor, r.Limits)
		next.Center, next.Zoom = v.Center, v.Zoom
		return next
	case StartDragIntent:
		return r.startDrag(previous, in.Target, in.Point)
	case UpdateDragIntent:
		return r.updateDrag(previous, in.Point)
	case EndDragIntent:
		next := previous.Clone()
		next.Drag = nil
		return next
	case ReplaceStateIntent:
		next := in.State.Clone()
		next.Drag = nil
		return next
	default:
		return previous
	}
}

func (r Reducer) selectNote(previous State, id int) State {
	if _, ok := previous.Note(id); !ok {
		return previous
	}

	next := previous.Clone()
	next.ZIndexMax = previous.ZIndexMax + 1
	next.Notes = clearActive(next.Notes)
	for i := range next.Notes {
		if next.Notes[i].ID == id {
			next.Notes[i].IsActive = true
			next.Notes[i].ZIndex = next.ZIndexMax
		}
	}
	return next
}

func (r Reducer) create(previous State, point geom.ScreenPoint) State {
	pos := previous.Viewport().ToCanvas(point)

	next := previous.Clone()
	next.IDMax = previous.IDMax + 1
	next.ZIndexMax = previous.ZIndexMax + 1
	next.Notes = append(clearActive(next.Notes), Note{
		ID:       next.IDMax,
		X:        pos.X,
		Y:        pos.Y,
		ZIndex:   next.ZIndexMax,
		IsActive: true,
	})
	return next
}

func (r Reducer) updateText(previous State, id int, text string) State {
	if _, ok := previous.Note(id); !ok {
		return previous
	}

	next := previous.Clone()
	for i := range next.Notes {
		if next.Notes[i].ID == id {
			next.Notes[i].Text = text
		}
	}
	return next
}

func (r Reducer) deleteActive(previous State) State {
	next := previous.Clone()
	kept := next.Notes[:0]
	for _, n := range next.Notes {
		if n.IsActive {
			// a session moving the deleted note has nothing left to move
			if next.Drag != nil {
				if id, ok := next.Drag.Target.NoteID(); ok && id == n.ID {
					next.Drag = nil
				}
			}
			continue
		}
		kept = append(kept, n)
	}
	next.Notes = kept
	return next
}

func (r Reducer) startDrag(previous State, target drag.Target, point geom.ScreenPoint) State {
	if previous.Drag != nil {
		return previous
	}

	var session *drag.Session
	if target.IsPan() {
		session = drag.StartPan(point, previous.Center)
	} else {
		id, _ := target.NoteID()
		note, ok := previous.Note(id)
		if !ok {
			return previous
		}
		session = drag.StartNote(id, point, note.Position())
	}

	next := previous.Clone()
	next.Drag = session
	return next
}

func (r Reducer) updateDrag(previous State, point geom.ScreenPoint) State {
	if previous.Drag == nil {
		return previous
	}

	next := previous.Clone()
	session := next.Drag.Update(point, previous.Viewport())
	next.Drag = &session

	if session.Target.IsPan() {
		next.Center = session.NewCenter
		return next
	}

	id, _ := session.Target.NoteID()
	for i := range next.Notes {
		if next.Notes[i].ID == id {
			next.Notes[i].X = session.NewPosition.X
			next.Notes[i].Y = session.NewPosition.Y
		}
	}
	return next
}

// clearActive deactivates every note in place and returns the slice.
func clearActive(notes []Note) []Note {
	for i := range notes {
		notes[i].IsActive = false
	}
	return notes
}
