package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectAround(t *testing.T) {
	r := RectAround(NewCanvasPoint(10, 10), 4, 2)
	assert.Equal(t, NewCanvasPoint(8, 9), r.Min)
	assert.Equal(t, NewCanvasPoint(12, 11), r.Max)
	assert.Equal(t, 4.0, r.Width())
	assert.Equal(t, 2.0, r.Height())
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect[Screen]{Min: NewScreenPoint(0, 0), Max: NewScreenPoint(2, 2)}

	assert.True(t, r.Contains(NewScreenPoint(0, 0)))
	assert.True(t, r.Contains(NewScreenPoint(1.99, 1)))
	assert.False(t, r.Contains(NewScreenPoint(2, 1)))
	assert.False(t, r.Contains(NewScreenPoint(1, -0.1)))
}

func TestRectUnionAndInset(t *testing.T) {
	a := Rect[Canvas]{Min: NewCanvasPoint(0, 0), Max: NewCanvasPoint(1, 1)}
	b := Rect[Canvas]{Min: NewCanvasPoint(-3, 2), Max: NewCanvasPoint(0, 5)}

	u := a.Union(b)
	assert.Equal(t, NewCanvasPoint(-3, 0), u.Min)
	assert.Equal(t, NewCanvasPoint(1, 5), u.Max)

	g := u.Inset(1)
	assert.Equal(t, NewCanvasPoint(-4, -1), g.Min)
	assert.Equal(t, NewCanvasPoint(2, 6), g.Max)
}

func TestRectToScreenScalesWithZoom(t *testing.T) {
	v := Viewport{Center: NewScreenPoint(5, 5), Zoom: 2}
	r := v.RectToScreen(RectAround(NewCanvasPoint(0, 0), 4, 2))

	assert.Equal(t, NewScreenPoint(1, 3), r.Min)
	assert.Equal(t, NewScreenPoint(9, 7), r.Max)
}
