package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"zoomcanvas/internal/ui/input/modes"
)

// helpSections names the rows of KeyMap.FullHelp, in order
var helpSections = []string{"Notes", "Zoom", "Pan", "Move note", "Files"}

// RenderHelpContent generates the help text shown in the pager
func RenderHelpContent(keys modes.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("zoom-canvas Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	mouse := [][2]string{
		{"double click", "create a note (on a note: edit it)"},
		{"left drag", "move a note"},
		{"middle drag", "pan the canvas"},
		{"wheel", "zoom at the pointer"},
	}
	for _, row := range mouse {
		help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(row[0]), descStyle.Render(row[1])))
	}

	for i, group := range keys.FullHelp() {
		help.WriteString(sectionStyle.Render(helpSections[i%len(helpSections)]))
		help.WriteString("\n")
		for _, b := range group {
			writeBinding(&help, b, keyStyle, descStyle)
		}
	}

	help.WriteString(sectionStyle.Render("Editing"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("esc"), descStyle.Render("finish editing")))
	help.WriteString(fmt.Sprintf("  %s %s", keyStyle.Render("delete"), descStyle.Render("edits text, never removes the note")))

	return help.String()
}

func writeBinding(w *strings.Builder, b key.Binding, keyStyle, descStyle lipgloss.Style) {
	h := b.Help()
	w.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
}

// HelpOps shows help in the ov pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// let ov finish with the terminal before taking it back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
