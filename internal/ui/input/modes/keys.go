package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode bindings. It implements help.KeyMap.
type KeyMap struct {
	Edit         key.Binding
	Delete       key.Binding
	Deselect     key.Binding
	NextNote     key.Binding
	PrevNote     key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	ResetZoom    key.Binding
	PanUp        key.Binding
	PanDown      key.Binding
	PanLeft      key.Binding
	PanRight     key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	MoveLeft     key.Binding
	MoveRight    key.Binding
	Export       key.Binding
	ExportPNG    key.Binding
	Import       key.Binding
	Copy         key.Binding
	Clear        key.Binding
	CenterMarker key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the bindings shown in the help screen.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit:         key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "edit note")),
		Delete:       key.NewBinding(key.WithKeys("delete", "backspace", "x"), key.WithHelp("del/x", "delete note")),
		Deselect:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "deselect")),
		NextNote:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next note")),
		PrevNote:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous note")),
		ZoomIn:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:      key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		ResetZoom:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset zoom")),
		PanUp:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "pan up")),
		PanDown:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "pan down")),
		PanLeft:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan left")),
		PanRight:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan right")),
		MoveUp:       key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("shift+↑/K", "move note up")),
		MoveDown:     key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("shift+↓/J", "move note down")),
		MoveLeft:     key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←/H", "move note left")),
		MoveRight:    key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("shift+→/L", "move note right")),
		Export:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "export json")),
		ExportPNG:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export png")),
		Import:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "import json")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy text")),
		Clear:        key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear canvas")),
		CenterMarker: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle center")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Delete, k.ZoomIn, k.ZoomOut, k.Export, k.Import, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Edit, k.Delete, k.Deselect, k.NextNote, k.PrevNote, k.Copy},
		{k.ZoomIn, k.ZoomOut, k.ResetZoom, k.CenterMarker},
		{k.PanUp, k.PanDown, k.PanLeft, k.PanRight},
		{k.MoveUp, k.MoveDown, k.MoveLeft, k.MoveRight},
		{k.Export, k.ExportPNG, k.Import, k.Clear, k.Help, k.Quit},
	}
}
