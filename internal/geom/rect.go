package geom

import "math"

// Rect is an axis-aligned rectangle in space S. Min is inclusive, Max
// exclusive.
type Rect[S Space] struct {
	Min, Max Point[S]
}

// RectAround returns the w by h rectangle centred on c.
func RectAround[S Space](c Point[S], w, h float64) Rect[S] {
	half := Point[S]{X: w / 2, Y: h / 2}
	return Rect[S]{Min: c.Sub(half), Max: c.Add(half)}
}

func (r Rect[S]) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect[S]) Height() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies inside r.
func (r Rect[S]) Contains(p Point[S]) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Union returns the smallest rectangle covering r and o.
func (r Rect[S]) Union(o Rect[S]) Rect[S] {
	return Rect[S]{
		Min: Point[S]{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max: Point[S]{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Inset grows r by d on every side; negative d shrinks it.
func (r Rect[S]) Inset(d float64) Rect[S] {
	return Rect[S]{
		Min: Point[S]{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point[S]{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// RectToScreen maps a canvas rectangle through the viewport.
func (v Viewport) RectToScreen(r Rect[Canvas]) Rect[Screen] {
	return Rect[Screen]{Min: v.ToScreen(r.Min), Max: v.ToScreen(r.Max)}
}
