package snapshot

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/drag"
	"zoomcanvas/internal/geom"
)

func TestExportImportRoundTrip(t *testing.T) {
	s := board.Tutorial()
	s = board.Reduce(s, board.SelectIntent{ID: 3})
	s = board.Reduce(s, board.ZoomIntent{Direction: geom.ZoomIn, Anchor: geom.NewScreenPoint(7, 9)})
	s = board.Reduce(s, board.StartDragIntent{Target: drag.Pan(), Point: geom.NewScreenPoint(1, 1)})

	data, err := MarshalPretty(s)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "delta")
	assert.NotContains(t, string(data), "drag")

	got, err := Decode(data)
	require.NoError(t, err)

	want := s.Clone()
	want.Drag = nil
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty(), cmp.AllowUnexported(drag.Target{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, got.Drag)
}

func TestMarshalPrettyIndentsTwoSpaces(t *testing.T) {
	data, err := MarshalPretty(board.Empty())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"notes\": []"), string(data))
}

func TestMarshalKeys(t *testing.T) {
	data, err := Marshal(board.Tutorial())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range RequiredKeys {
		assert.Contains(t, raw, key)
	}
	assert.Len(t, raw, len(RequiredKeys))

	var center map[string]float64
	require.NoError(t, json.Unmarshal(raw["center"], &center))
	assert.Equal(t, map[string]float64{"x": 0, "y": 0}, center)
}

func TestDecodeIgnoresDelta(t *testing.T) {
	doc := `{
		"notes": [{"id": 2, "x": 1.5, "y": -3, "zIndex": 4, "isActive": true, "text": "hi"}],
		"zIndexMax": 4,
		"idMax": 2,
		"center": {"x": 10, "y": 20},
		"zoom": 1.44,
		"delta": {"x": 99, "y": 99}
	}`

	s, err := Decode([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []board.Note{{ID: 2, X: 1.5, Y: -3, ZIndex: 4, IsActive: true, Text: "hi"}}, s.Notes)
	assert.Equal(t, geom.NewScreenPoint(10, 20), s.Center)
	assert.Equal(t, 1.44, s.Zoom)
	assert.Equal(t, 2, s.IDMax)
	assert.Equal(t, 4, s.ZIndexMax)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		missingKeys []string
		wantErr     error
	}{
		{
			name:  "not json",
			input: `this is not json`,
		},
		{
			name:  "array instead of object",
			input: `[1, 2, 3]`,
		},
		{
			name:        "missing zoom",
			input:       `{"notes": [], "zIndexMax": 0, "idMax": 0, "center": {"x": 0, "y": 0}}`,
			missingKeys: []string{"zoom"},
		},
		{
			name:        "empty object",
			input:       `{}`,
			missingKeys: []string{"center", "idMax", "notes", "zIndexMax", "zoom"},
		},
		{
			name:        "null notes",
			input:       `{"notes": null, "zIndexMax": 0, "idMax": 0, "center": {"x": 0, "y": 0}, "zoom": 1}`,
			missingKeys: []string{"notes"},
		},
		{
			name:  "mistyped idMax",
			input: `{"notes": [], "zIndexMax": 0, "idMax": "seven", "center": {"x": 0, "y": 0}, "zoom": 1}`,
		},
		{
			name:  "mistyped note",
			input: `{"notes": [{"id": "a"}], "zIndexMax": 0, "idMax": 0, "center": {"x": 0, "y": 0}, "zoom": 1}`,
		},
		{
			name:    "zero zoom",
			input:   `{"notes": [], "zIndexMax": 0, "idMax": 0, "center": {"x": 0, "y": 0}, "zoom": 0}`,
			wantErr: ErrInvalidZoom,
		},
		{
			name:    "negative zoom",
			input:   `{"notes": [], "zIndexMax": 0, "idMax": 0, "center": {"x": 0, "y": 0}, "zoom": -2}`,
			wantErr: ErrInvalidZoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)

			var mk *MissingKeysError
			if tt.missingKeys != nil {
				require.True(t, errors.As(err, &mk), "want MissingKeysError, got %v", err)
				assert.Equal(t, tt.missingKeys, mk.Keys)
				return
			}
			assert.False(t, errors.As(err, &mk))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMissingKeysErrorMessage(t *testing.T) {
	err := &MissingKeysError{Keys: []string{"idMax", "zoom"}}
	assert.Equal(t, "snapshot is missing required keys: idMax, zoom", err.Error())
}

func TestDecodedNotesAreNeverNil(t *testing.T) {
	s, err := Decode([]byte(`{"notes": [], "zIndexMax": 0, "idMax": 0, "center": {"x": 0, "y": 0}, "zoom": 1}`))
	require.NoError(t, err)
	assert.NotNil(t, s.Notes)
	assert.Empty(t, s.Notes)
}

func TestMarshalAfterRepeatedZoom(t *testing.T) {
	for _, dir := range []geom.Direction{geom.ZoomIn, geom.ZoomOut} {
		t.Run(dir.String(), func(t *testing.T) {
			s := board.Tutorial()
			for range 10000 {
				s = board.Reduce(s, board.ZoomIntent{Direction: dir, Anchor: geom.NewScreenPoint(40, 12)})
			}
			require.NoError(t, s.Validate())

			data, err := Marshal(s)
			require.NoError(t, err)
			back, err := Decode(data)
			require.NoError(t, err)
			assert.InDelta(t, s.Zoom, back.Zoom, 1e-12)
		})
	}
}
