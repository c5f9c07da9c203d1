// Package render draws the canvas to a PNG image, independent of the
// terminal viewport.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/geom"
)

// ErrEmptyCanvas is returned when there is nothing to draw.
var ErrEmptyCanvas = errors.New("nothing to export")

// Options controls the image layout. Note sizes are in canvas units, one
// unit being one character cell.
type Options struct {
	NoteWidth        float64
	NoteHeight       float64
	CellWidth        float64 // pixels per canvas unit, horizontally
	CellHeight       float64 // pixels per canvas unit, vertically
	Padding          float64 // canvas units around the bounding box
	ShowCenterMarker bool
}

// DefaultOptions matches the terminal defaults.
func DefaultOptions() Options {
	return Options{
		NoteWidth:        24,
		NoteHeight:       6,
		CellWidth:        8,
		CellHeight:       16,
		Padding:          2,
		ShowCenterMarker: true,
	}
}

var (
	paperColor  = color.White
	inkColor    = color.Black
	noteColor   = color.RGBA{R: 0xff, G: 0xf1, B: 0x76, A: 0xff}
	activeColor = color.RGBA{R: 0xff, G: 0x98, B: 0x00, A: 0xff}
	markerColor = color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
)

// Bounds returns the canvas area covered by the notes (and the origin when
// the center marker is drawn), padded.
func Bounds(v board.View, opts Options) (geom.Rect[geom.Canvas], error) {
	notes := v.Notes()
	if len(notes) == 0 {
		return geom.Rect[geom.Canvas]{}, ErrEmptyCanvas
	}

	r := notes[0].Bounds(opts.NoteWidth, opts.NoteHeight)
	for _, n := range notes[1:] {
		r = r.Union(n.Bounds(opts.NoteWidth, opts.NoteHeight))
	}
	if opts.ShowCenterMarker {
		r = r.Union(geom.RectAround(geom.NewCanvasPoint(0, 0), 1, 1))
	}
	return r.Inset(opts.Padding), nil
}

// Image draws every note of v in canvas space; the viewport is ignored.
func Image(v board.View, opts Options) (image.Image, error) {
	dc, err := draw(v, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG writes the rendered canvas to w.
func EncodePNG(w io.Writer, v board.View, opts Options) error {
	dc, err := draw(v, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the rendered canvas to path.
func SavePNG(path string, v board.View, opts Options) error {
	dc, err := draw(v, opts)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func draw(v board.View, opts Options) (*gg.Context, error) {
	bounds, err := Bounds(v, opts)
	if err != nil {
		return nil, err
	}

	width := int(bounds.Width() * opts.CellWidth)
	height := int(bounds.Height() * opts.CellHeight)
	dc := gg.NewContext(width, height)
	dc.SetColor(paperColor)
	dc.Clear()

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.CellHeight * 0.75,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	toPixels := func(p geom.CanvasPoint) (float64, float64) {
		return (p.X - bounds.Min.X) * opts.CellWidth, (p.Y - bounds.Min.Y) * opts.CellHeight
	}

	if opts.ShowCenterMarker {
		x, y := toPixels(geom.NewCanvasPoint(0, 0))
		dc.SetColor(markerColor)
		dc.DrawCircle(x, y, opts.CellWidth/2)
		dc.Fill()
	}

	for _, n := range v.ByZIndex() {
		r := n.Bounds(opts.NoteWidth, opts.NoteHeight)
		x, y := toPixels(r.Min)
		w, h := r.Width()*opts.CellWidth, r.Height()*opts.CellHeight

		dc.SetColor(noteColor)
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()

		dc.SetLineWidth(1)
		dc.SetColor(inkColor)
		if n.IsActive {
			dc.SetLineWidth(3)
			dc.SetColor(activeColor)
		}
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()

		dc.SetColor(inkColor)
		for i, line := range noteLines(n.Text, int(opts.NoteWidth)-2, int(opts.NoteHeight)-2) {
			dc.DrawString(line, x+opts.CellWidth, y+float64(i+1)*opts.CellHeight+opts.CellHeight*0.75)
		}
	}
	return dc, nil
}

// noteLines wraps text to width columns and keeps at most rows lines.
func noteLines(text string, width, rows int) []string {
	if width < 1 || rows < 1 || text == "" {
		return nil
	}
	lines := strings.Split(wordwrap.String(text, width), "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	return lines
}
