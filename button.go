package surface

import "fmt"

// ButtonState is the snapshot of a Button.
type ButtonState struct {
	Type    Type   `json:"type" msgpack:"type"`
	ID      string `json:"id" msgpack:"id"`
	Pressed bool   `json:"pressed" msgpack:"pressed"`
}

func (s ButtonState) SnapshotType() Type { return s.Type }
func (s ButtonState) SnapshotID() string { return s.ID }

// Button is a two-state control.
type Button struct {
	base
	pressed bool
}

// NewButton creates a button.
func NewButton(id string, pressed bool) (*Button, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidComponent)
	}
	return &Button{base: base{id: id}, pressed: pressed}, nil
}

// Type returns TypeButton.
func (b *Button) Type() Type { return TypeButton }

// Update sets "pressed" when it carries a boolean.
func (b *Button) Update(p Patch) {
	if v, ok := p.Bool("pressed"); ok {
		b.pressed = v
	}
}

// Render returns the button's snapshot.
func (b *Button) Render() Snapshot {
	return ButtonState{Type: TypeButton, ID: b.id, Pressed: b.pressed}
}
