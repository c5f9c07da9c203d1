package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/geom"
)

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellMarker
	cellBorder
	cellBody
	cellActiveBorder
	cellActiveBody
	cellDragBorder
)

type cell struct {
	r    rune
	kind cellKind
	cont bool // right half of a wide rune
}

// Canvas composes notes into a grid of terminal cells, bottom note first.
type Canvas struct {
	width, height int
	cells         []cell
	styles        *Styles
}

// NewCanvas returns an empty width by height grid.
func NewCanvas(width, height int, styles *Styles) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{width: width, height: height, cells: make([]cell, width*height), styles: styles}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *Canvas) set(x, y int, r rune, kind cellKind) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := y*c.width + x
	// never leave half of a wide rune behind
	if c.cells[i].cont && x > 0 {
		c.cells[i-1].r = ' '
	}
	if x+1 < c.width && c.cells[i+1].cont {
		c.cells[i+1] = cell{r: ' ', kind: kind}
	}
	c.cells[i] = cell{r: r, kind: kind}
}

// DrawMarker puts the origin marker at p.
func (c *Canvas) DrawMarker(p geom.ScreenPoint) {
	c.set(int(math.Floor(p.X)), int(math.Floor(p.Y)), '+', cellMarker)
}

// DrawNote draws n into rect. Text is word wrapped, hard wrapped where a
// word is longer than the box, and cut at the bottom border.
func (c *Canvas) DrawNote(n board.Note, rect CellRect, dragging bool) {
	border, body := cellBorder, cellBody
	if n.IsActive {
		border, body = cellActiveBorder, cellActiveBody
	}
	if dragging {
		border = cellDragBorder
	}
	b := lipgloss.RoundedBorder()
	if n.IsActive {
		b = lipgloss.ThickBorder()
	}

	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.X+rect.W-1, rect.Y+rect.H-1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			var r string
			switch {
			case y == y0 && x == x0:
				r = b.TopLeft
			case y == y0 && x == x1:
				r = b.TopRight
			case y == y1 && x == x0:
				r = b.BottomLeft
			case y == y1 && x == x1:
				r = b.BottomRight
			case y == y0:
				r = b.Top
			case y == y1:
				r = b.Bottom
			case x == x0:
				r = b.Left
			case x == x1:
				r = b.Right
			default:
				c.set(x, y, ' ', body)
				continue
			}
			c.set(x, y, []rune(r)[0], border)
		}
	}

	innerW, innerH := rect.W-2, rect.H-2
	for i, line := range WrapText(n.Text, innerW, innerH) {
		c.writeLine(x0+1, y0+1+i, innerW, line, body)
	}
}

func (c *Canvas) writeLine(x, y, width int, line string, kind cellKind) {
	col := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > width {
			break
		}
		c.set(x+col, y, r, kind)
		if w == 2 && x+col+1 >= 0 && x+col+1 < c.width && y >= 0 && y < c.height {
			c.cells[y*c.width+x+col+1] = cell{kind: kind, cont: true}
		}
		col += w
	}
}

// Render returns the grid as styled lines joined by newlines.
func (c *Canvas) Render() string {
	styles := map[cellKind]lipgloss.Style{
		cellMarker:       c.styles.Marker,
		cellBorder:       c.styles.NoteBorder,
		cellBody:         c.styles.NoteBody,
		cellActiveBorder: c.styles.ActiveBorder,
		cellActiveBody:   c.styles.ActiveBody,
		cellDragBorder:   c.styles.DragBorder,
	}

	var out strings.Builder
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		kind := cellBlank
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if s, ok := styles[kind]; ok {
				out.WriteString(s.Render(run.String()))
			} else {
				out.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if cl.cont {
				continue
			}
			if cl.kind != kind {
				flush()
				kind = cl.kind
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return out.String()
}

// Plain returns the grid without styling, for tests and logs.
func (c *Canvas) Plain() string {
	var out strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < c.width; x++ {
			if cl := c.cells[y*c.width+x]; !cl.cont {
				out.WriteRune(cl.r)
			}
		}
	}
	return out.String()
}

// WrapText fits text into rows lines of at most width cells.
func WrapText(text string, width, rows int) []string {
	if width < 1 || rows < 1 || text == "" {
		return nil
	}
	lines := strings.Split(wrap.String(wordwrap.String(text, width), width), "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	return lines
}
