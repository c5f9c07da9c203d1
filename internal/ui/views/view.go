package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/geom"
	"zoomcanvas/internal/ui/input/types"
)

// HeaderHeight is the number of rows above the canvas area.
const HeaderHeight = 1

// editorHeight is the text area plus its title row.
const editorHeight = 4

// StatusKind selects the style of the status message
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Canvas           board.View
	ShowCenterMarker bool
	Mode             types.Mode
	EditingNote      int
	StatusMessage    string
	StatusKind       StatusKind
	Prompt           string
	TextInput        string // rendered prompt input
	TextArea         string // rendered note editor
	HelpModel        help.Model
	Keys             help.KeyMap
}

// FooterHeight returns the rows below the canvas area in mode.
func FooterHeight(mode types.Mode) int {
	if mode == types.ModeEdit {
		return editorHeight
	}
	return 1
}

// CanvasHeight returns the rows available to the canvas.
func CanvasHeight(height int, mode types.Mode) int {
	return max(height-HeaderHeight-FooterHeight(mode), 0)
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	layout Layout
}

// NewRenderer creates a new renderer
func NewRenderer(layout Layout) *Renderer {
	return &Renderer{
		styles: NewStyles(),
		layout: layout,
	}
}

// Layout returns the note layout used for drawing
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	parts := []string{
		r.renderHeader(state),
		r.RenderCanvas(state),
		r.renderFooter(state),
	}
	return strings.Join(parts, "\n")
}

func (r *Renderer) renderHeader(state ViewState) string {
	logo := r.styles.Title.Render("zoom-canvas")

	vp := state.Canvas.Viewport()
	right := []string{
		r.styles.Zoom.Render(ZoomLabel(vp.Zoom)),
		r.styles.Dim.Render(fmt.Sprintf("%d notes", state.Canvas.Len())),
	}
	if target, ok := state.Canvas.DragTarget(); ok {
		right = append(right, r.styles.Dim.Render("dragging "+target.String()))
	}
	rightContent := strings.Join(right, r.styles.Dim.Render(" · "))

	padding := state.Width - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + rightContent
}

// ZoomLabel formats a zoom level as a percentage.
func ZoomLabel(zoom float64) string {
	return fmt.Sprintf("Zoom %.0f%%", zoom*100)
}

// RenderCanvas draws the notes visible in the canvas area.
func (r *Renderer) RenderCanvas(state ViewState) string {
	c := r.Compose(state)
	return c.Render()
}

// Compose lays out the canvas area without styling it.
func (r *Renderer) Compose(state ViewState) *Canvas {
	c := NewCanvas(state.Width, CanvasHeight(state.Height, state.Mode), r.styles)
	vp := state.Canvas.Viewport()

	if state.ShowCenterMarker {
		c.DrawMarker(vp.ToScreen(geom.NewCanvasPoint(0, 0)))
	}

	dragged := -1
	if target, ok := state.Canvas.DragTarget(); ok {
		if id, ok := target.NoteID(); ok {
			dragged = id
		}
	}
	for _, n := range state.Canvas.ByZIndex() {
		c.DrawNote(n, r.layout.NoteCells(n, vp), n.ID == dragged)
	}
	return c
}

func (r *Renderer) renderFooter(state ViewState) string {
	switch state.Mode {
	case types.ModeEdit:
		title := r.styles.Prompt.Render(fmt.Sprintf("Editing note %d", state.EditingNote)) +
			r.styles.Dim.Render("  (esc to finish)")
		return title + "\n" + state.TextArea

	case types.ModeImport:
		return r.styles.Prompt.Render(state.Prompt) + state.TextInput

	case types.ModeConfirmClear:
		return r.styles.Confirm.Render("Clear all notes? (y/n)")
	}

	if state.StatusMessage != "" {
		style := r.styles.StatusInfo
		switch state.StatusKind {
		case StatusSuccess:
			style = r.styles.StatusSuccess
		case StatusError:
			style = r.styles.StatusError
		}
		return style.Render(state.StatusMessage)
	}

	if state.Keys != nil {
		return state.HelpModel.ShortHelpView(state.Keys.ShortHelp())
	}
	return ""
}
