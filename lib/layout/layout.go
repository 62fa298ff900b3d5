// Package layout loads the startup component set of a device from YAML.
//
// Components are registered once, in file order, which is also the order they
// appear in every snapshot:
//
//	screen: {width: 128, height: 64}
//	components:
//	  - {type: Slider, id: s1, min: 0, max: 100, value: 50}
//	  - {type: Button, id: b1}
//	  - {type: Window, id: w1, value: 3.14, x: 10, y: 10, width: 50, height: 30}
//
// Windows use the top-level screen unless they declare their own.
package layout

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	surface "github.com/piotrcurious/semantic-surface"
)

// ErrUnknownType is returned for entries whose type is not a known variant.
var ErrUnknownType = errors.New("layout: unknown component type")

// Screen is the bounding region windows are kept inside.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Entry declares one component. Which fields apply depends on Type.
type Entry struct {
	Type string `yaml:"type"`
	ID   string `yaml:"id"`

	// Slider: value, min, max. Window: value (display payload).
	Value float64 `yaml:"value"`
	Min   int     `yaml:"min"`
	Max   int     `yaml:"max"`

	// Button
	Pressed bool `yaml:"pressed"`

	// Window
	X      int     `yaml:"x"`
	Y      int     `yaml:"y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Screen *Screen `yaml:"screen,omitempty"`
}

// Layout is a parsed layout file.
type Layout struct {
	Screen     Screen  `yaml:"screen"`
	Components []Entry `yaml:"components"`
}

// Default returns the reference device layout: one slider, one button and
// one float-display window on a 128x64 screen.
func Default() *Layout {
	return &Layout{
		Screen: Screen{Width: 128, Height: 64},
		Components: []Entry{
			{Type: string(surface.TypeSlider), ID: "s1", Min: 0, Max: 100, Value: 50},
			{Type: string(surface.TypeButton), ID: "b1"},
			{Type: string(surface.TypeWindow), ID: "w1", Value: 3.14, X: 10, Y: 10, Width: 50, Height: 30},
		},
	}
}

// Load parses a layout. Unknown keys are rejected so typos fail at startup.
func Load(r io.Reader) (*Layout, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var l Layout
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("layout: empty document")
		}
		return nil, fmt.Errorf("layout: %w", err)
	}
	return &l, nil
}

// LoadFile parses the layout file at path.
func LoadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Build constructs the declared components in order.
func (l *Layout) Build() ([]surface.Component, error) {
	comps := make([]surface.Component, 0, len(l.Components))
	for i, e := range l.Components {
		c, err := l.build(e)
		if err != nil {
			return nil, fmt.Errorf("layout: component %d (%s): %w", i, e.ID, err)
		}
		comps = append(comps, c)
	}
	return comps, nil
}

// Registry builds the components and registers them with a new registry.
// Duplicate ids fail here, before the device starts serving.
func (l *Layout) Registry() (*surface.Registry, error) {
	comps, err := l.Build()
	if err != nil {
		return nil, err
	}
	reg := surface.NewRegistry()
	if err := reg.Add(comps...); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return reg, nil
}

func (l *Layout) build(e Entry) (surface.Component, error) {
	switch {
	case strings.EqualFold(e.Type, string(surface.TypeSlider)):
		if e.Value != math.Trunc(e.Value) {
			return nil, fmt.Errorf("%w: slider value %v is not an integer", surface.ErrInvalidBounds, e.Value)
		}
		return surface.NewSlider(e.ID, e.Min, e.Max, int(e.Value))
	case strings.EqualFold(e.Type, string(surface.TypeButton)):
		return surface.NewButton(e.ID, e.Pressed)
	case strings.EqualFold(e.Type, string(surface.TypeWindow)):
		screen := l.Screen
		if e.Screen != nil {
			screen = *e.Screen
		}
		return surface.NewWindow(e.ID, e.Value, e.X, e.Y, e.Width, e.Height, screen.Width, screen.Height)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, e.Type)
}
