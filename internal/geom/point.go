// Package geom holds the point types used on the canvas and the viewport
// transform between screen space and canvas space.
//
// Screen space is measured in terminal cells relative to the top-left
// corner of the canvas area. Canvas space is where notes live; it does not
// change when the viewport is panned or zoomed.
package geom

import "fmt"

// Screen tags points expressed in screen space.
type Screen struct{}

// Canvas tags points expressed in canvas space.
type Canvas struct{}

// Space is the set of coordinate systems a Point may belong to.
type Space interface {
	Screen | Canvas
}

// Point is an immutable (x, y) pair in the coordinate space S. Points of
// different spaces do not mix: converting between them goes through a
// Viewport.
type Point[S Space] struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScreenPoint is a point in screen space.
type ScreenPoint = Point[Screen]

// CanvasPoint is a point in canvas space.
type CanvasPoint = Point[Canvas]

// NewScreenPoint returns the screen point (x, y).
func NewScreenPoint(x, y float64) ScreenPoint {
	return ScreenPoint{X: x, Y: y}
}

// NewCanvasPoint returns the canvas point (x, y).
func NewCanvasPoint(x, y float64) CanvasPoint {
	return CanvasPoint{X: x, Y: y}
}

// Add returns p + other.
func (p Point[S]) Add(other Point[S]) Point[S] {
	return Point[S]{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p - other.
func (p Point[S]) Sub(other Point[S]) Point[S] {
	return Point[S]{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns p * factor.
func (p Point[S]) Scale(factor float64) Point[S] {
	return Point[S]{X: p.X * factor, Y: p.Y * factor}
}

func (p Point[S]) String() string {
	return fmt.Sprintf("Point(%g, %g)", p.X, p.Y)
}
