package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/ui/input/types"
)

// ConfirmMode asks before the canvas is cleared
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm-clear"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return append(types.Dispatch(board.ClearIntent{}),
			types.ChangeModeAction{Mode: types.ModeNormal}), true
	case "n", "N", "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// any other key is swallowed while the question is open
	return nil, true
}
