// Package snapshot converts the combined canvas state to and from its JSON
// document form, used for export, import and local persistence.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/geom"
)

// ExportName is the default file name of an exported canvas.
const ExportName = "zoom-canvas.json"

// RequiredKeys are the top-level keys every document must carry.
var RequiredKeys = []string{"notes", "zIndexMax", "idMax", "center", "zoom"}

// Document is the serialized form of a board.State. The drag session is
// never part of it.
type Document struct {
	Notes     []board.Note     `json:"notes"`
	ZIndexMax int              `json:"zIndexMax"`
	IDMax     int              `json:"idMax"`
	Center    geom.ScreenPoint `json:"center"`
	Zoom      float64          `json:"zoom"`
}

// MissingKeysError reports required keys absent from a document.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("snapshot is missing required keys: %s", strings.Join(e.Keys, ", "))
}

// ErrInvalidZoom is returned for documents whose zoom is not positive.
var ErrInvalidZoom = errors.New("snapshot zoom must be positive")

// FromState captures the persistent part of s.
func FromState(s board.State) Document {
	notes := make([]board.Note, len(s.Notes))
	copy(notes, s.Notes)
	return Document{
		Notes:     notes,
		ZIndexMax: s.ZIndexMax,
		IDMax:     s.IDMax,
		Center:    s.Center,
		Zoom:      s.Zoom,
	}
}

// State returns the document as a state with no drag session.
func (d Document) State() board.State {
	notes := make([]board.Note, len(d.Notes))
	copy(notes, d.Notes)
	return board.State{
		Notes:     notes,
		ZIndexMax: d.ZIndexMax,
		IDMax:     d.IDMax,
		Center:    d.Center,
		Zoom:      d.Zoom,
	}
}

// Marshal encodes s compactly, the form used for local persistence.
func Marshal(s board.State) ([]byte, error) {
	data, err := json.Marshal(FromState(s))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// MarshalPretty encodes s with two-space indentation, the export form.
func MarshalPretty(s board.State) ([]byte, error) {
	data, err := json.MarshalIndent(FromState(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a document and returns the state it describes. Unknown keys
// (including a legacy "delta") are ignored. Missing required keys yield a
// *MissingKeysError; malformed JSON or mistyped values a wrapped decode
// error. Notes themselves are not validated beyond their types.
func Decode(data []byte) (board.State, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return board.State{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	var missing []string
	for _, key := range RequiredKeys {
		v, ok := raw[key]
		if !ok || isNull(v) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return board.State{}, &MissingKeysError{Keys: missing}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return board.State{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if !(doc.Zoom > 0) {
		return board.State{}, fmt.Errorf("%w: got %v", ErrInvalidZoom, doc.Zoom)
	}
	return doc.State(), nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
