package modes

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"zoomcanvas/internal/ui/input/types"
)

// EditMode edits the text of the note that was active when it was entered.
// Keys it does not consume go to the text area; the handler turns every
// change into an update-text intent.
type EditMode struct {
	area   *textarea.Model
	noteID int
}

func NewEditMode(area *textarea.Model) *EditMode {
	return &EditMode{area: area}
}

func (m *EditMode) Name() string {
	return "edit"
}

// NoteID is the note being edited
func (m *EditMode) NoteID() int {
	return m.noteID
}

func (m *EditMode) Enter(ctx types.Context) []types.Action {
	note, ok := ctx.View().Active()
	if !ok {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}
	}
	m.noteID = note.ID
	m.area.SetValue(note.Text)
	m.area.Focus()
	return nil
}

func (m *EditMode) Exit(ctx types.Context) []types.Action {
	m.area.Blur()
	m.area.Reset()
	m.noteID = 0
	return nil
}

func (m *EditMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "ctrl+s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return nil, false
}
