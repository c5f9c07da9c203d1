package render

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/geom"
)

func TestBounds(t *testing.T) {
	s := board.Empty()
	s = board.Reduce(s, board.CreateIntent{Point: geom.NewScreenPoint(50, 20)})

	opts := DefaultOptions()
	opts.ShowCenterMarker = false
	r, err := Bounds(board.NewView(s), opts)
	require.NoError(t, err)
	assert.Equal(t, geom.NewCanvasPoint(50-12-2, 20-3-2), r.Min)
	assert.Equal(t, geom.NewCanvasPoint(50+12+2, 20+3+2), r.Max)

	opts.ShowCenterMarker = true
	r, err = Bounds(board.NewView(s), opts)
	require.NoError(t, err)
	assert.Equal(t, -2.5, r.Min.X, "origin marker widens the box")
}

func TestEmptyCanvas(t *testing.T) {
	var buf bytes.Buffer
	err := EncodePNG(&buf, board.NewView(board.Empty()), DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyCanvas)
	assert.Zero(t, buf.Len())
}

func TestEncodePNGSize(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowCenterMarker = false

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, board.NewView(board.Tutorial()), opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	r, err := Bounds(board.NewView(board.Tutorial()), opts)
	require.NoError(t, err)
	assert.Equal(t, int(r.Width()*opts.CellWidth), img.Bounds().Dx())
	assert.Equal(t, int(r.Height()*opts.CellHeight), img.Bounds().Dy())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.png")
	require.NoError(t, SavePNG(path, board.NewView(board.Tutorial()), DefaultOptions()))

	img, err := Image(board.NewView(board.Tutorial()), DefaultOptions())
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestNoteLines(t *testing.T) {
	assert.Nil(t, noteLines("", 10, 3))
	assert.Equal(t, []string{"click and", "drag on a", "note to"}, noteLines("click and drag on a note to move it", 10, 3))
}
