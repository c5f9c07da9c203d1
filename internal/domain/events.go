package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventStateSaved      EventType = "StateSaved"
	EventSaveFailed      EventType = "SaveFailed"
	EventImportCompleted EventType = "ImportCompleted"
	EventImportRejected  EventType = "ImportRejected"
	EventExportCompleted EventType = "ExportCompleted"
	EventExportFailed    EventType = "ExportFailed"
	EventClipboardCopied EventType = "ClipboardCopied"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// StateSavedEvent is emitted after the canvas was written to local storage
type StateSavedEvent struct {
	Notes int
}

func (e StateSavedEvent) Type() EventType { return EventStateSaved }

// SaveFailedEvent is emitted when local persistence fails. The in-memory
// state is unaffected.
type SaveFailedEvent struct {
	Err error
}

func (e SaveFailedEvent) Type() EventType { return EventSaveFailed }

// ImportCompletedEvent is emitted when a file replaced the canvas
type ImportCompletedEvent struct {
	Path  string
	Notes int
}

func (e ImportCompletedEvent) Type() EventType { return EventImportCompleted }

// ImportRejectedEvent is emitted when a file could not be imported. The
// canvas is left as it was.
type ImportRejectedEvent struct {
	Path string
	Err  error
}

func (e ImportRejectedEvent) Type() EventType { return EventImportRejected }

// ExportKind distinguishes the export formats
type ExportKind string

const (
	ExportJSON ExportKind = "json"
	ExportPNG  ExportKind = "png"
)

// ExportCompletedEvent is emitted when an export file was written
type ExportCompletedEvent struct {
	Kind ExportKind
	Path string
}

func (e ExportCompletedEvent) Type() EventType { return EventExportCompleted }

type ExportFailedEvent struct {
	Kind ExportKind
	Path string
	Err  error
}

func (e ExportFailedEvent) Type() EventType { return EventExportFailed }

// ClipboardCopiedEvent is emitted when note text was copied
type ClipboardCopiedEvent struct {
	NoteID int
	Chars  int
}

func (e ClipboardCopiedEvent) Type() EventType { return EventClipboardCopied }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	DataFile string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
