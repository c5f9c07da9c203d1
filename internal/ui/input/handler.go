package input

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/ui/input/modes"
	"zoomcanvas/internal/ui/input/types"
)

// Options configures a Handler
type Options struct {
	DoubleClick  time.Duration
	ConfirmClear bool
}

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        modes.KeyMap
	mouse       *MouseTranslator
	textInput   *textinput.Model // import path prompt
	textArea    *textarea.Model  // note editor
	edit        *modes.EditMode
	importMode  modes.TextInputMode
}

func New(opts Options) *Handler {
	ti := textinput.New()
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Placeholder = "note text"
	ta.SetHeight(3)

	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        modes.DefaultKeyMap(),
		mouse:       NewMouseTranslator(opts.DoubleClick),
		textInput:   &ti,
		textArea:    &ta,
	}
	h.edit = modes.NewEditMode(h.textArea)
	h.importMode = modes.NewImportMode(h.textInput)

	h.modes[types.ModeNormal] = modes.NewNormalMode(h.keys, opts.ConfirmClear)
	h.modes[types.ModeEdit] = h.edit
	h.modes[types.ModeImport] = h.importMode
	h.modes[types.ModeConfirmClear] = modes.NewConfirmMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	allActions, cmd := h.apply(actions, ctx)

	// keys the mode left alone belong to its text widget
	if !consumed {
		allActions = append(allActions, h.updateText(msg, &cmd)...)
	}
	return allActions, cmd
}

// HandleMouse translates a mouse event. A press while editing or
// prompting first returns to normal mode.
func (h *Handler) HandleMouse(msg tea.MouseMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	var actions []types.Action
	if msg.Action == tea.MouseActionPress && h.currentMode != types.ModeNormal {
		actions = append(actions, types.ChangeModeAction{Mode: types.ModeNormal})
	}
	actions = append(actions, h.mouse.Translate(msg, ctx)...)
	return h.apply(actions, ctx)
}

// apply performs mode changes, including ones requested by Enter, and
// returns the remaining actions for the model.
func (h *Handler) apply(actions []types.Action, ctx types.Context) ([]types.Action, tea.Cmd) {
	var (
		out []types.Action
		cmd tea.Cmd
	)
	queue := append([]types.Action(nil), actions...)
	for len(queue) > 0 {
		action := queue[0]
		queue = queue[1:]

		change, ok := action.(types.ChangeModeAction)
		if !ok {
			out = append(out, action)
			continue
		}
		if change.Mode == h.currentMode {
			continue
		}

		if current := h.modes[h.currentMode]; current != nil {
			out = append(out, current.Exit(ctx)...)
		}
		h.currentMode = change.Mode
		if next := h.modes[h.currentMode]; next != nil {
			queue = append(next.Enter(ctx), queue...)
		}

		switch h.currentMode {
		case types.ModeImport:
			cmd = textinput.Blink
		case types.ModeEdit:
			cmd = textarea.Blink
		}
	}
	return out, cmd
}

func (h *Handler) updateText(msg tea.Msg, cmd *tea.Cmd) []types.Action {
	switch h.currentMode {
	case types.ModeImport:
		*h.textInput, *cmd = h.textInput.Update(msg)
	case types.ModeEdit:
		before := h.textArea.Value()
		*h.textArea, *cmd = h.textArea.Update(msg)
		if after := h.textArea.Value(); after != before {
			return types.Dispatch(board.UpdateTextIntent{ID: h.edit.NoteID(), Text: after})
		}
	}
	return nil
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ChangeMode switches mode from outside the key path, e.g. after an
// import was rejected.
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	out, _ := h.apply([]types.Action{types.ChangeModeAction{Mode: mode}}, ctx)
	return out
}

// Keys returns the normal mode key map, for help rendering
func (h *Handler) Keys() modes.KeyMap {
	return h.keys
}

// TextInput returns the prompt input while prompting
func (h *Handler) TextInput() *textinput.Model {
	if h.currentMode == types.ModeImport {
		return h.textInput
	}
	return nil
}

// Prompt returns the label of the active prompt
func (h *Handler) Prompt() string {
	if h.currentMode == types.ModeImport {
		return h.importMode.Prompt()
	}
	return ""
}

// TextArea returns the note editor while editing
func (h *Handler) TextArea() *textarea.Model {
	if h.currentMode == types.ModeEdit {
		return h.textArea
	}
	return nil
}

// EditingNote returns the id of the note being edited
func (h *Handler) EditingNote() (int, bool) {
	if h.currentMode != types.ModeEdit {
		return 0, false
	}
	return h.edit.NoteID(), true
}

// SetWidth sizes the text widgets
func (h *Handler) SetWidth(width int) {
	h.textInput.Width = width
	h.textArea.SetWidth(width)
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeEdit, types.ModeImport:
		return true
	default:
		return false
	}
}

// Update handles non-keyboard messages (cursor blink) for the text widgets
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch h.currentMode {
	case types.ModeImport:
		*h.textInput, cmd = h.textInput.Update(msg)
	case types.ModeEdit:
		*h.textArea, cmd = h.textArea.Update(msg)
	}
	return cmd
}

// SetClock replaces the clock used for double-click detection
func (h *Handler) SetClock(now func() time.Time) {
	h.mouse.now = now
}
