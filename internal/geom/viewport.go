package geom

import "math"

// DefaultZoomFactor is the multiplicative step applied by one zoom notch.
const DefaultZoomFactor = 1.2

// Default zoom bounds.
const (
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 10.0
)

// ZoomLimits bounds the zoom a ZoomAt step may reach.
type ZoomLimits struct {
	Min, Max float64
}

// DefaultZoomLimits returns [DefaultMinZoom, DefaultMaxZoom].
func DefaultZoomLimits() ZoomLimits {
	return ZoomLimits{Min: DefaultMinZoom, Max: DefaultMaxZoom}
}

// Valid reports whether l is a usable range containing zoom 1.
func (l ZoomLimits) Valid() bool {
	return l.Min > 0 && l.Min <= 1 && l.Max >= 1 && !math.IsInf(l.Max, 0)
}

// allows reports whether a step from zoom to next stays within l. A step
// that moves an out-of-range zoom back towards the range is allowed.
func (l ZoomLimits) allows(zoom, next float64) bool {
	if next > l.Max && next > zoom {
		return false
	}
	if next < l.Min && next < zoom {
		return false
	}
	return true
}

// Direction is the direction of a zoom step.
type Direction int

const (
	ZoomIn Direction = iota
	ZoomOut
)

func (d Direction) String() string {
	switch d {
	case ZoomIn:
		return "in"
	case ZoomOut:
		return "out"
	default:
		return "unknown"
	}
}

// Viewport is the pan/zoom pair that maps canvas space onto the screen.
// Center is the screen position at which the canvas origin is drawn.
type Viewport struct {
	Center ScreenPoint
	Zoom   float64
}

// DefaultViewport returns the unpanned, unzoomed viewport.
func DefaultViewport() Viewport {
	return Viewport{Zoom: 1}
}

// ToCanvas converts a screen point to canvas space: (p - center) / zoom.
func (v Viewport) ToCanvas(p ScreenPoint) CanvasPoint {
	rel := p.Sub(v.Center)
	return CanvasPoint{X: rel.X / v.Zoom, Y: rel.Y / v.Zoom}
}

// ToScreen converts a canvas point to screen space: center + p * zoom.
func (v Viewport) ToScreen(p CanvasPoint) ScreenPoint {
	return v.Center.Add(ScreenPoint{X: p.X * v.Zoom, Y: p.Y * v.Zoom})
}

// DeltaToCanvas converts a screen-space displacement into the canvas-space
// displacement that covers the same number of cells at the current zoom.
func (v Viewport) DeltaToCanvas(d ScreenPoint) CanvasPoint {
	return CanvasPoint{X: d.X / v.Zoom, Y: d.Y / v.Zoom}
}

// ZoomAt scales the viewport by factor in the given direction, keeping the
// canvas point under anchor fixed on screen. A step that would leave limits
// returns v unchanged, so a zoom in followed by a zoom out is still exact.
func (v Viewport) ZoomAt(dir Direction, anchor ScreenPoint, factor float64, limits ZoomLimits) Viewport {
	if factor <= 0 || v.Zoom <= 0 {
		return v
	}

	newZoom := v.Zoom * factor
	if dir == ZoomOut {
		newZoom = v.Zoom / factor
	}
	if !limits.allows(v.Zoom, newZoom) {
		return v
	}

	anchorToCenter := v.Center.Sub(anchor)
	return Viewport{
		Center: anchorToCenter.Scale(newZoom / v.Zoom).Add(anchor),
		Zoom:   newZoom,
	}
}

// Reset returns the default viewport. The current pan is discarded.
func (v Viewport) Reset() Viewport {
	return DefaultViewport()
}
