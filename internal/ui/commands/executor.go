package commands

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/eventbus"
	"zoomcanvas/internal/render"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(bus eventbus.EventBus, logger *slog.Logger, exportDir, exportName string, png render.Options) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		ctx: &CommandContext{
			Bus:        bus,
			Logger:     logger,
			ExportDir:  exportDir,
			ExportName: exportName,
			PNGOptions: png,
		},
	}
}

// SetClipboard replaces the clipboard writer
func (e *Executor) SetClipboard(write func(string) error) {
	e.ctx.WriteClipboard = write
}

// SetCenterMarker controls whether PNG exports draw the origin marker
func (e *Executor) SetCenterMarker(show bool) {
	e.ctx.PNGOptions.ShowCenterMarker = show
}

func (e *Executor) ExecuteExportJSON(state board.State) tea.Cmd {
	return NewExportJSONCommand(e.ctx, state).Execute()
}

func (e *Executor) ExecuteExportPNG(state board.State) tea.Cmd {
	return NewExportPNGCommand(e.ctx, state).Execute()
}

func (e *Executor) ExecuteImport(path string) tea.Cmd {
	return NewImportCommand(e.ctx, path).Execute()
}

func (e *Executor) ExecuteCopyText(note board.Note) tea.Cmd {
	return NewCopyTextCommand(e.ctx, note).Execute()
}
