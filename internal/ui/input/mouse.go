package input

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/drag"
	"zoomcanvas/internal/geom"
	"zoomcanvas/internal/ui/input/types"
)

// DefaultDoubleClick is the longest gap between two presses on the same
// cell that still counts as a double click.
const DefaultDoubleClick = 400 * time.Millisecond

// ButtonPolicy is the single place deciding which button drags what: the
// left button drags the note under the pointer, the middle button pans.
// Other buttons never start a drag.
type ButtonPolicy struct{}

// Target returns the drag target for a press of button, given the note
// under the pointer (hit reports whether there is one).
func (ButtonPolicy) Target(button tea.MouseButton, noteID int, hit bool) (drag.Target, bool) {
	switch button {
	case tea.MouseButtonLeft:
		if hit {
			return drag.Note(noteID), true
		}
	case tea.MouseButtonMiddle:
		return drag.Pan(), true
	}
	return drag.Target{}, false
}

// MouseTranslator turns raw mouse events into actions. It keeps only the
// little state double-click detection needs.
type MouseTranslator struct {
	Policy      ButtonPolicy
	DoubleClick time.Duration

	now       func() time.Time
	lastPress time.Time
	lastX     int
	lastY     int
}

// NewMouseTranslator returns a translator with the given double-click
// threshold; non-positive selects DefaultDoubleClick.
func NewMouseTranslator(doubleClick time.Duration) *MouseTranslator {
	if doubleClick <= 0 {
		doubleClick = DefaultDoubleClick
	}
	return &MouseTranslator{DoubleClick: doubleClick, now: time.Now}
}

// Translate maps one mouse event to actions. Events outside the canvas
// area only matter for ending a drag.
func (t *MouseTranslator) Translate(msg tea.MouseMsg, ctx types.Context) []types.Action {
	view := ctx.View()
	p, inside := ctx.ToScreen(msg.X, msg.Y)

	if msg.Action == tea.MouseActionRelease {
		if view.Dragging() {
			return types.Dispatch(board.EndDragIntent{})
		}
		return nil
	}

	if msg.Action == tea.MouseActionMotion {
		if view.Dragging() {
			return types.Dispatch(board.UpdateDragIntent{Point: p})
		}
		return nil
	}

	if !inside {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return types.Dispatch(board.ZoomIntent{Direction: geom.ZoomIn, Anchor: p})
	case tea.MouseButtonWheelDown:
		return types.Dispatch(board.ZoomIntent{Direction: geom.ZoomOut, Anchor: p})
	}

	id, hit := ctx.HitTest(p)

	if msg.Button == tea.MouseButtonLeft && t.isDoubleClick(msg.X, msg.Y) {
		if hit {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeEdit}}
		}
		return types.Dispatch(board.CreateIntent{Point: p})
	}

	var actions []types.Action
	if msg.Button == tea.MouseButtonLeft {
		if hit {
			actions = append(actions, types.DispatchAction{Intent: board.SelectIntent{ID: id}})
		} else if _, ok := view.Active(); ok {
			actions = append(actions, types.DispatchAction{Intent: board.DeselectIntent{}})
		}
	}
	if target, ok := t.Policy.Target(msg.Button, id, hit); ok && !view.Dragging() {
		actions = append(actions, types.DispatchAction{Intent: board.StartDragIntent{Target: target, Point: p}})
	}
	return actions
}

// isDoubleClick records a left press and reports whether it completes a
// double click. A completed double click is consumed, so a third press
// starts over.
func (t *MouseTranslator) isDoubleClick(x, y int) bool {
	now := t.now()
	double := !t.lastPress.IsZero() &&
		x == t.lastX && y == t.lastY &&
		now.Sub(t.lastPress) <= t.DoubleClick

	if double {
		t.lastPress = time.Time{}
	} else {
		t.lastPress, t.lastX, t.lastY = now, x, y
	}
	return double
}
