package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/domain"
	"zoomcanvas/internal/eventbus"
	"zoomcanvas/internal/render"
	"zoomcanvas/internal/snapshot"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Bus        eventbus.EventBus
	Logger     *slog.Logger
	ExportDir  string
	ExportName string
	PNGOptions render.Options

	// WriteClipboard defaults to the system clipboard.
	WriteClipboard func(string) error
}

func (c *CommandContext) publish(event eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(event)
	}
}

// ExportResultMsg reports a finished export
type ExportResultMsg struct {
	Kind domain.ExportKind
	Path string
	Err  error
}

// ImportResultMsg carries an imported state, or why there is none
type ImportResultMsg struct {
	Path  string
	State board.State
	Err   error
}

// CopyResultMsg reports a clipboard copy
type CopyResultMsg struct {
	NoteID int
	Err    error
}

// ExportJSONCommand writes the canvas as pretty JSON to the export file
type ExportJSONCommand struct {
	ctx   *CommandContext
	state board.State
}

func NewExportJSONCommand(ctx *CommandContext, state board.State) *ExportJSONCommand {
	return &ExportJSONCommand{ctx: ctx, state: state.Clone()}
}

func (c *ExportJSONCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(c.ctx.ExportDir, c.ctx.ExportName)
		err := writeJSON(path, c.state)
		return c.ctx.exported(domain.ExportJSON, path, err)
	}
}

func writeJSON(path string, state board.State) error {
	data, err := snapshot.MarshalPretty(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// ExportPNGCommand renders the canvas to a PNG next to the JSON export
type ExportPNGCommand struct {
	ctx   *CommandContext
	state board.State
}

func NewExportPNGCommand(ctx *CommandContext, state board.State) *ExportPNGCommand {
	return &ExportPNGCommand{ctx: ctx, state: state.Clone()}
}

func (c *ExportPNGCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		name := c.ctx.ExportName
		name = name[:len(name)-len(filepath.Ext(name))] + ".png"
		path := filepath.Join(c.ctx.ExportDir, name)

		err := os.MkdirAll(c.ctx.ExportDir, 0755)
		if err == nil {
			err = render.SavePNG(path, board.NewView(c.state), c.ctx.PNGOptions)
		}
		return c.ctx.exported(domain.ExportPNG, path, err)
	}
}

func (c *CommandContext) exported(kind domain.ExportKind, path string, err error) ExportResultMsg {
	if err != nil {
		c.Logger.Error("export failed", "kind", kind, "path", path, "error", err)
		c.publish(eventbus.ExportFailedEvent{Kind: kind, Path: path, Err: err})
		return ExportResultMsg{Kind: kind, Path: path, Err: err}
	}
	c.Logger.Info("exported canvas", "kind", kind, "path", path)
	c.publish(eventbus.ExportCompletedEvent{Kind: kind, Path: path})
	return ExportResultMsg{Kind: kind, Path: path}
}

// ImportCommand reads and validates a snapshot file. It never touches the
// current state; the model replaces it only on success.
type ImportCommand struct {
	ctx  *CommandContext
	path string
}

func NewImportCommand(ctx *CommandContext, path string) *ImportCommand {
	return &ImportCommand{ctx: ctx, path: path}
}

func (c *ImportCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		state, err := ReadSnapshot(c.path)
		if err != nil {
			c.ctx.Logger.Error("import rejected", "path", c.path, "error", err)
			c.ctx.publish(eventbus.ImportRejectedEvent{Path: c.path, Err: err})
			return ImportResultMsg{Path: c.path, Err: err}
		}
		c.ctx.Logger.Info("imported canvas", "path", c.path, "notes", len(state.Notes))
		c.ctx.publish(eventbus.ImportCompletedEvent{Path: c.path, Notes: len(state.Notes)})
		return ImportResultMsg{Path: c.path, State: state}
	}
}

// ReadSnapshot loads and decodes a snapshot file.
func ReadSnapshot(path string) (board.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return board.State{}, fmt.Errorf("failed to read import file: %w", err)
	}
	return snapshot.Decode(data)
}

// ImportErrorText describes an import failure for the status line
func ImportErrorText(err error) string {
	var missing *snapshot.MissingKeysError
	switch {
	case errors.As(err, &missing):
		return fmt.Sprintf("Import rejected: missing %v", missing.Keys)
	case errors.Is(err, os.ErrNotExist):
		return "Import rejected: file not found"
	default:
		return fmt.Sprintf("Import rejected: %v", err)
	}
}

// CopyTextCommand copies a note's text to the clipboard
type CopyTextCommand struct {
	ctx  *CommandContext
	note board.Note
}

func NewCopyTextCommand(ctx *CommandContext, note board.Note) *CopyTextCommand {
	return &CopyTextCommand{ctx: ctx, note: note}
}

func (c *CopyTextCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		write := c.ctx.WriteClipboard
		if write == nil {
			write = clipboard.WriteAll
		}
		if err := write(c.note.Text); err != nil {
			c.ctx.Logger.Warn("clipboard copy failed", "note", c.note.ID, "error", err)
			return CopyResultMsg{NoteID: c.note.ID, Err: err}
		}
		c.ctx.publish(eventbus.ClipboardCopiedEvent{NoteID: c.note.ID, Chars: len([]rune(c.note.Text))})
		return CopyResultMsg{NoteID: c.note.ID}
	}
}
