package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/config"
	"zoomcanvas/internal/domain"
	"zoomcanvas/internal/eventbus"
	"zoomcanvas/internal/geom"
	"zoomcanvas/internal/render"
	"zoomcanvas/internal/storage"
	"zoomcanvas/internal/ui/commands"
	"zoomcanvas/internal/ui/input"
	inputtypes "zoomcanvas/internal/ui/input/types"
	"zoomcanvas/internal/ui/views"
)

// statusTimeout is how long a status message stays in the footer
const statusTimeout = 4 * time.Second

// Model represents the UI state. It owns the canvas state: every change
// goes through dispatch, which runs the reducer and persists the result.
type Model struct {
	ctx     context.Context
	bus     eventbus.EventBus
	config  *config.Config
	logger  *slog.Logger
	state   board.State
	reducer board.Reducer
	store   storage.Persister

	// UI-specific state
	width            int
	height           int
	help             help.Model
	showCenterMarker bool
	pointer          *geom.ScreenPoint // last pointer position inside the canvas
	statusMessage    string
	statusKind       views.StatusKind
	statusSeq        int
	inPagerMode      bool // tracks if we're currently in pager mode

	renderer     *views.Renderer    // view renderer
	cmdExecutor  *commands.Executor // command executor
	inputHandler *input.Handler     // input handling
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model showing initial. A nil store disables
// persistence.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, store storage.Persister, initial board.State, logger *slog.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	layout := views.Layout{
		NoteWidth:  float64(cfg.Canvas.NoteWidth),
		NoteHeight: float64(cfg.Canvas.NoteHeight),
	}

	png := render.DefaultOptions()
	png.NoteWidth = layout.NoteWidth
	png.NoteHeight = layout.NoteHeight
	png.ShowCenterMarker = cfg.UISettings.ShowCenterMarker

	m := &Model{
		ctx:              ctx,
		bus:              bus,
		config:           cfg,
		logger:           logger,
		state:            initial.Clone(),
		reducer:          board.NewReducer(cfg.Canvas.ZoomFactor, geom.ZoomLimits{Min: cfg.Canvas.MinZoom, Max: cfg.Canvas.MaxZoom}),
		store:            store,
		help:             help.New(),
		showCenterMarker: cfg.UISettings.ShowCenterMarker,
		renderer:         views.NewRenderer(layout),
		cmdExecutor:      commands.NewExecutor(bus, logger, cfg.ExportDir, cfg.ExportName, png),
		inputHandler: input.New(input.Options{
			DoubleClick:  time.Duration(cfg.Canvas.DoubleClickMS) * time.Millisecond,
			ConfirmClear: cfg.UISettings.ConfirmClear,
		}),
	}
	// a drag cannot survive a restart
	m.state.Drag = nil

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// State returns a copy of the current canvas state
func (m *Model) State() board.State {
	return m.state.Clone()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("zoom-canvas")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.inputHandler.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
		return m, m.processActions(actions, cmd)

	case tea.MouseMsg:
		ctx := m.inputContext()
		if p, inside := ctx.ToScreen(msg.X, msg.Y); inside {
			m.pointer = &p
			ctx.LastPointer = m.pointer
		}
		actions, cmd := m.inputHandler.HandleMouse(msg, ctx)
		return m, m.processActions(actions, cmd)

	case tea.BlurMsg:
		// the release may never arrive once focus is gone
		if m.state.Drag != nil {
			return m, m.dispatch(board.EndDragIntent{})
		}
		return m, nil

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commands.ImportResultMsg:
		if msg.Err != nil {
			return m, m.setStatus(commands.ImportErrorText(msg.Err), views.StatusError)
		}
		cmd := m.dispatch(board.ReplaceStateIntent{State: msg.State})
		status := m.setStatus(fmt.Sprintf("Imported %d notes from %s", len(msg.State.Notes), msg.Path), views.StatusSuccess)
		return m, tea.Batch(cmd, status)

	case commands.ExportResultMsg:
		if msg.Err != nil {
			return m, m.setStatus(fmt.Sprintf("Export failed: %v", msg.Err), views.StatusError)
		}
		return m, m.setStatus("Saved "+msg.Path, views.StatusSuccess)

	case commands.CopyResultMsg:
		if msg.Err != nil {
			return m, m.setStatus(fmt.Sprintf("Copy failed: %v", msg.Err), views.StatusError)
		}
		return m, m.setStatus("Copied note text", views.StatusSuccess)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			m.logger.Error("help pager failed", "error", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
		}
		return m, nil
	}

	return m, nil
}

// handleEvent reacts to domain events published outside the model
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, views.StatusError)
	case eventbus.ConfigSavedEvent:
		return m.setStatus("Config saved to "+e.Path, views.StatusInfo)
	}
	return nil
}

func (m *Model) inputContext() *input.ModelContext {
	mode := m.inputHandler.CurrentMode()
	return &input.ModelContext{
		Canvas:      board.NewView(m.state),
		Layout:      m.renderer.Layout(),
		OriginY:     views.HeaderHeight,
		Width:       m.width,
		Height:      views.CanvasHeight(m.height, mode),
		LastPointer: m.pointer,
	}
}

func (m *Model) processActions(actions []inputtypes.Action, cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

// processAction executes a single action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.DispatchAction:
		return m.dispatch(a.Intent)

	case inputtypes.ExportAction:
		switch a.Kind {
		case domain.ExportPNG:
			return m.cmdExecutor.ExecuteExportPNG(m.state)
		default:
			return m.cmdExecutor.ExecuteExportJSON(m.state)
		}

	case inputtypes.ImportAction:
		return m.cmdExecutor.ExecuteImport(a.Path)

	case inputtypes.CopyTextAction:
		note, ok := m.state.Active()
		if !ok {
			return m.setStatus("No note selected", views.StatusInfo)
		}
		return m.cmdExecutor.ExecuteCopyText(note)

	case inputtypes.ToggleCenterMarkerAction:
		m.showCenterMarker = !m.showCenterMarker
		m.cmdExecutor.SetCenterMarker(m.showCenterMarker)
		return nil

	case inputtypes.ShowHelpAction:
		return m.fetchHelpPager(RenderHelpContent(m.inputHandler.Keys()))

	case inputtypes.QuitAction:
		if m.state.Drag == nil {
			return tea.Quit
		}
		// finish the drag so its result is saved before exit
		if cmd := m.dispatch(board.EndDragIntent{}); cmd != nil {
			return tea.Batch(cmd, tea.Quit)
		}
		return tea.Quit

	case inputtypes.SubmitTextAction, inputtypes.CancelTextAction, inputtypes.ChangeModeAction:
		// handled by the input handler
		return nil
	}

	m.logger.Warn("unhandled action", "type", action.Type())
	return nil
}

// dispatch applies intent and persists the new state. Drag motion is not
// persisted; the end of the drag is.
func (m *Model) dispatch(intent board.Intent) tea.Cmd {
	m.state = m.reducer.Reduce(m.state, intent)

	switch intent.(type) {
	case board.UpdateDragIntent, board.StartDragIntent:
		return nil
	}
	m.logger.Debug("dispatched intent", "intent", intent.Type(), "notes", len(m.state.Notes))
	return m.persist()
}

func (m *Model) persist() tea.Cmd {
	if m.store == nil {
		return nil
	}
	if err := m.store.SaveState(m.ctx, m.state); err != nil {
		m.logger.Error("failed to save canvas", "error", err)
		m.publish(eventbus.SaveFailedEvent{Err: err})
		return m.setStatus(fmt.Sprintf("Could not save canvas: %v", err), views.StatusError)
	}
	m.publish(eventbus.StateSavedEvent{Notes: len(m.state.Notes)})
	return nil
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// setStatus shows message in the footer and schedules its removal
func (m *Model) setStatus(message string, kind views.StatusKind) tea.Cmd {
	m.statusSeq++
	m.statusMessage = message
	m.statusKind = kind
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// fetchHelpPager returns a command that shows help in the pager, pausing and resuming rendering
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil || m.helpOps == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	editing, _ := m.inputHandler.EditingNote()
	state := views.ViewState{
		Width:            m.width,
		Height:           m.height,
		Canvas:           board.NewView(m.state),
		ShowCenterMarker: m.showCenterMarker,
		Mode:             m.inputHandler.CurrentMode(),
		EditingNote:      editing,
		StatusMessage:    m.statusMessage,
		StatusKind:       m.statusKind,
		Prompt:           m.inputHandler.Prompt(),
		HelpModel:        m.help,
		Keys:             m.inputHandler.Keys(),
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.TextInput = ti.View()
	}
	if ta := m.inputHandler.TextArea(); ta != nil {
		state.TextArea = ta.View()
	}

	return m.renderer.Render(state)
}
