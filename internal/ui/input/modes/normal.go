package modes

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/domain"
	"zoomcanvas/internal/drag"
	"zoomcanvas/internal/geom"
	"zoomcanvas/internal/ui/input/types"
)

// Keyboard pans and moves reuse the drag session: a start, one update and
// an end, so they follow exactly the rules of a pointer drag.
var (
	panStep  = geom.NewScreenPoint(4, 2)
	moveStep = geom.NewScreenPoint(2, 1)
)

type NormalMode struct {
	keys         KeyMap
	confirmClear bool
}

func NewNormalMode(keys KeyMap, confirmClear bool) *NormalMode {
	return &NormalMode{keys: keys, confirmClear: confirmClear}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	view := ctx.View()
	active, hasActive := view.Active()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true

	case key.Matches(msg, m.keys.Edit):
		if !hasActive {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEdit}}, true

	case key.Matches(msg, m.keys.Delete):
		if !hasActive {
			return nil, false
		}
		return types.Dispatch(board.DeleteActiveIntent{}), true

	case key.Matches(msg, m.keys.Deselect):
		if !hasActive {
			return nil, false
		}
		return types.Dispatch(board.DeselectIntent{}), true

	case key.Matches(msg, m.keys.NextNote):
		return selectSibling(view, active, hasActive, 1)

	case key.Matches(msg, m.keys.PrevNote):
		return selectSibling(view, active, hasActive, -1)

	case key.Matches(msg, m.keys.ZoomIn):
		return types.Dispatch(board.ZoomIntent{Direction: geom.ZoomIn, Anchor: ctx.Pointer()}), true

	case key.Matches(msg, m.keys.ZoomOut):
		return types.Dispatch(board.ZoomIntent{Direction: geom.ZoomOut, Anchor: ctx.Pointer()}), true

	case key.Matches(msg, m.keys.ResetZoom):
		return types.Dispatch(board.ResetZoomIntent{}), true

	case key.Matches(msg, m.keys.PanUp):
		return nudge(view, drag.Pan(), ctx.Pointer(), geom.NewScreenPoint(0, panStep.Y))
	case key.Matches(msg, m.keys.PanDown):
		return nudge(view, drag.Pan(), ctx.Pointer(), geom.NewScreenPoint(0, -panStep.Y))
	case key.Matches(msg, m.keys.PanLeft):
		return nudge(view, drag.Pan(), ctx.Pointer(), geom.NewScreenPoint(panStep.X, 0))
	case key.Matches(msg, m.keys.PanRight):
		return nudge(view, drag.Pan(), ctx.Pointer(), geom.NewScreenPoint(-panStep.X, 0))

	case key.Matches(msg, m.keys.MoveUp, m.keys.MoveDown, m.keys.MoveLeft, m.keys.MoveRight):
		if !hasActive {
			return nil, false
		}
		var by geom.ScreenPoint
		switch {
		case key.Matches(msg, m.keys.MoveUp):
			by = geom.NewScreenPoint(0, -moveStep.Y)
		case key.Matches(msg, m.keys.MoveDown):
			by = geom.NewScreenPoint(0, moveStep.Y)
		case key.Matches(msg, m.keys.MoveLeft):
			by = geom.NewScreenPoint(-moveStep.X, 0)
		default:
			by = geom.NewScreenPoint(moveStep.X, 0)
		}
		at := view.Viewport().ToScreen(active.Position())
		return nudge(view, drag.Note(active.ID), at, by)

	case key.Matches(msg, m.keys.Export):
		return []types.Action{types.ExportAction{Kind: domain.ExportJSON}}, true

	case key.Matches(msg, m.keys.ExportPNG):
		return []types.Action{types.ExportAction{Kind: domain.ExportPNG}}, true

	case key.Matches(msg, m.keys.Import):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeImport}}, true

	case key.Matches(msg, m.keys.Copy):
		if !hasActive {
			return nil, false
		}
		return []types.Action{types.CopyTextAction{}}, true

	case key.Matches(msg, m.keys.Clear):
		if !m.confirmClear {
			return types.Dispatch(board.ClearIntent{}), true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmClear}}, true

	case key.Matches(msg, m.keys.CenterMarker):
		return []types.Action{types.ToggleCenterMarkerAction{}}, true
	}

	return nil, false
}

// nudge expresses a keyboard move as a complete drag from `from` to
// from+by. It does nothing while a pointer drag is in flight.
func nudge(view board.View, target drag.Target, from, by geom.ScreenPoint) ([]types.Action, bool) {
	if view.Dragging() {
		return nil, true
	}
	return types.Dispatch(
		board.StartDragIntent{Target: target, Point: from},
		board.UpdateDragIntent{Point: from.Add(by)},
		board.EndDragIntent{},
	), true
}

// selectSibling selects the next (step 1) or previous (step -1) note in id
// order, wrapping around.
func selectSibling(view board.View, active board.Note, hasActive bool, step int) ([]types.Action, bool) {
	notes := view.Notes()
	if len(notes) == 0 {
		return nil, false
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })

	idx := 0
	if hasActive {
		for i, n := range notes {
			if n.ID == active.ID {
				idx = (i + step + len(notes)) % len(notes)
				break
			}
		}
	} else if step < 0 {
		idx = len(notes) - 1
	}
	return types.Dispatch(board.SelectIntent{ID: notes[idx].ID}), true
}
