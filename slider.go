package surface

import "fmt"

// SliderState is the snapshot of a Slider.
type SliderState struct {
	Type  Type   `json:"type" msgpack:"type"`
	ID    string `json:"id" msgpack:"id"`
	Value int    `json:"value" msgpack:"value"`
	Min   int    `json:"min" msgpack:"min"`
	Max   int    `json:"max" msgpack:"max"`
}

func (s SliderState) SnapshotType() Type { return s.Type }
func (s SliderState) SnapshotID() string { return s.ID }

// Slider is a bounded integer control. Its value always lies in [min, max].
type Slider struct {
	base
	value    int
	min, max int
}

// NewSlider creates a slider. The bounds are fixed for the slider's lifetime;
// the initial value is clamped into them.
func NewSlider(id string, min, max, value int) (*Slider, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidComponent)
	}
	if min > max {
		return nil, fmt.Errorf("%w: slider %q has min %d > max %d", ErrInvalidBounds, id, min, max)
	}
	return &Slider{
		base:  base{id: id},
		value: clamp(value, min, max),
		min:   min,
		max:   max,
	}, nil
}

// Type returns TypeSlider.
func (s *Slider) Type() Type { return TypeSlider }

// Update clamps an incoming "value" into the slider's bounds.
// The bounds themselves are not patchable.
func (s *Slider) Update(p Patch) {
	if v, ok := p.Int("value"); ok {
		s.value = clamp(v, s.min, s.max)
	}
}

// Render returns the slider's snapshot.
func (s *Slider) Render() Snapshot {
	return SliderState{
		Type:  TypeSlider,
		ID:    s.id,
		Value: s.value,
		Min:   s.min,
		Max:   s.max,
	}
}
