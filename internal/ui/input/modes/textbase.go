package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zoomcanvas/internal/ui/input/types"
)

// TextInputMode is a base for single-line prompt modes
type TextInputMode struct {
	mode      types.Mode
	name      string
	prompt    string
	textInput *textinput.Model
	submit    func(text string) []types.Action
}

func NewTextInputMode(mode types.Mode, name, prompt string, ti *textinput.Model, submit func(string) []types.Action) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		prompt:    prompt,
		textInput: ti,
		submit:    submit,
	}
}

// NewImportMode prompts for the path of a file to import
func NewImportMode(ti *textinput.Model) TextInputMode {
	return NewTextInputMode(types.ModeImport, "import", "Import from: ", ti, func(text string) []types.Action {
		path := strings.TrimSpace(text)
		if path == "" {
			return nil
		}
		return []types.Action{types.ImportAction{Path: path}}
	})
}

func (m TextInputMode) Name() string {
	return m.name
}

// Prompt is shown in front of the input by the view
func (m TextInputMode) Prompt() string {
	return m.prompt
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		actions := []types.Action{types.SubmitTextAction{Text: text, Mode: m.mode}}
		if m.submit != nil {
			actions = append(actions, m.submit(text)...)
		}
		return append(actions, types.ChangeModeAction{Mode: types.ModeNormal}), true
	default:
		// Let the main handler update the text input
		return nil, false
	}
}
