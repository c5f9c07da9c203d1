package board

import (
	"zoomcanvas/internal/drag"
	"zoomcanvas/internal/geom"
)

// Intent is a request to change the canvas state
type Intent interface {
	Type() string
}

// SelectIntent activates a note and raises it above all others
type SelectIntent struct {
	ID int
}

func (i SelectIntent) Type() string { return "select" }

// CreateIntent adds a note under a screen-space point
type CreateIntent struct {
	Point geom.ScreenPoint
}

func (i CreateIntent) Type() string { return "create" }

type DeselectIntent struct{}

func (i DeselectIntent) Type() string { return "deselect" }

type UpdateTextIntent struct {
	ID   int
	Text string
}

func (i UpdateTextIntent) Type() string { return "update-text" }

type DeleteActiveIntent struct{}

func (i DeleteActiveIntent) Type() string { return "delete-active" }

// ClearIntent removes all notes and resets counters and viewport
type ClearIntent struct{}

func (i ClearIntent) Type() string { return "clear" }

type ResetZoomIntent struct{}

func (i ResetZoomIntent) Type() string { return "reset-zoom" }

// ZoomIntent zooms one step anchored at a screen-space point
type ZoomIntent struct {
	Direction geom.Direction
	Anchor    geom.ScreenPoint
}

func (i ZoomIntent) Type() string { return "zoom" }

// StartDragIntent opens a drag session
type StartDragIntent struct {
	Target drag.Target
	Point  geom.ScreenPoint
}

func (i StartDragIntent) Type() string { return "start-drag" }

type UpdateDragIntent struct {
	Point geom.ScreenPoint
}

func (i UpdateDragIntent) Type() string { return "update-drag" }

type EndDragIntent struct{}

func (i EndDragIntent) Type() string { return "end-drag" }

// ReplaceStateIntent substitutes an already validated state, e.g. an import
type ReplaceStateIntent struct {
	State State
}

func (i ReplaceStateIntent) Type() string { return "replace-state" }
