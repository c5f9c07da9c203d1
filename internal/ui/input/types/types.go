package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/geom"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit
	ModeImport
	ModeConfirmClear
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEdit:
		return "edit"
	case ModeImport:
		return "import"
	case ModeConfirmClear:
		return "confirm-clear"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// View is the current canvas state.
	View() board.View
	// HitTest returns the topmost note under a screen point.
	HitTest(p geom.ScreenPoint) (id int, ok bool)
	// Pointer is the last known pointer position, or the middle of the
	// canvas area before any mouse event arrived.
	Pointer() geom.ScreenPoint
	// ToScreen converts terminal cell coordinates to canvas-area screen
	// space. ok is false outside the canvas area.
	ToScreen(x, y int) (p geom.ScreenPoint, ok bool)
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
