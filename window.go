package surface

import (
	"fmt"
	"math"
)

// Point is a window's top-left corner in screen coordinates.
type Point struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Size is a window's extent.
type Size struct {
	Width  int `json:"width" msgpack:"width"`
	Height int `json:"height" msgpack:"height"`
}

// WindowState is the snapshot of a Window.
type WindowState struct {
	Type     Type    `json:"type" msgpack:"type"`
	ID       string  `json:"id" msgpack:"id"`
	Value    float64 `json:"value" msgpack:"value"`
	Position Point   `json:"position" msgpack:"position"`
	Size     Size    `json:"size" msgpack:"size"`
}

func (s WindowState) SnapshotType() Type { return s.Type }
func (s WindowState) SnapshotID() string { return s.ID }

// Window is a positioned float display kept inside a fixed screen region.
//
// After any update 0 <= x <= screenWidth-width and 0 <= y <= screenHeight-height.
// When the window is larger than the screen along an axis, that axis has no
// valid range and the coordinate is pinned at 0.
type Window struct {
	base
	value  float64
	pos    Point
	size   Size
	screen Size
}

// NewWindow creates a window of the given size on a screen of the given size.
// The initial position is clamped onto the screen.
func NewWindow(id string, value float64, x, y, width, height, screenWidth, screenHeight int) (*Window, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidComponent)
	}
	if width < 0 || height < 0 || screenWidth < 0 || screenHeight < 0 {
		return nil, fmt.Errorf("%w: window %q has a negative size", ErrInvalidBounds, id)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: window %q value %v is not finite", ErrInvalidBounds, id, value)
	}
	w := &Window{
		base:   base{id: id},
		value:  value,
		size:   Size{Width: width, Height: height},
		screen: Size{Width: screenWidth, Height: screenHeight},
	}
	w.moveTo(x, y)
	return w, nil
}

// Type returns TypeWindow.
func (w *Window) Type() Type { return TypeWindow }

// Update stores "value" as is and repositions only when "x" and "y" arrive
// together in the same patch.
func (w *Window) Update(p Patch) {
	if v, ok := p.Float("value"); ok {
		w.value = v
	}
	x, okX := p.Int("x")
	y, okY := p.Int("y")
	if okX && okY {
		w.moveTo(x, y)
	}
}

// Render returns the window's snapshot.
func (w *Window) Render() Snapshot {
	return WindowState{
		Type:     TypeWindow,
		ID:       w.id,
		Value:    w.value,
		Position: w.pos,
		Size:     w.size,
	}
}

func (w *Window) moveTo(x, y int) {
	w.pos = Point{
		X: clamp(x, 0, max(0, w.screen.Width-w.size.Width)),
		Y: clamp(y, 0, max(0, w.screen.Height-w.size.Height)),
	}
}
