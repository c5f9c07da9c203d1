package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Zoom          lipgloss.Style
	Dim           lipgloss.Style
	Confirm       lipgloss.Style
	Prompt        lipgloss.Style
	Help          lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style

	// canvas cell styles
	Marker       lipgloss.Style
	NoteBorder   lipgloss.Style
	NoteBody     lipgloss.Style
	ActiveBorder lipgloss.Style
	ActiveBody   lipgloss.Style
	DragBorder   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Zoom:          lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Confirm:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Help:          lipgloss.NewStyle().Faint(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray

		Marker:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		NoteBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Background(lipgloss.Color("229")),
		NoteBody:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("229")),
		ActiveBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Background(lipgloss.Color("229")).Bold(true),
		ActiveBody:   lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("230")),
		DragBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Background(lipgloss.Color("229")).Bold(true),
	}
}
