package types

import (
	"zoomcanvas/internal/board"
	"zoomcanvas/internal/domain"
)

// DispatchAction hands an intent to the controller, the only place the
// canvas state changes.
type DispatchAction struct {
	Intent board.Intent
}

func (a DispatchAction) Type() string { return "dispatch:" + a.Intent.Type() }

// Dispatch wraps intents into actions.
func Dispatch(intents ...board.Intent) []Action {
	out := make([]Action, 0, len(intents))
	for _, in := range intents {
		out = append(out, DispatchAction{Intent: in})
	}
	return out
}

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type ExportAction struct {
	Kind domain.ExportKind
}

func (a ExportAction) Type() string { return "export_" + string(a.Kind) }

type ImportAction struct {
	Path string
}

func (a ImportAction) Type() string { return "import" }

// CopyTextAction copies the active note's text to the clipboard
type CopyTextAction struct{}

func (a CopyTextAction) Type() string { return "copy_text" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ToggleCenterMarkerAction struct{}

func (a ToggleCenterMarkerAction) Type() string { return "toggle_center_marker" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
