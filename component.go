package surface

// Type names a component variant. It appears verbatim as the "type" field of
// every snapshot.
type Type string

// Component variants.
const (
	TypeSlider Type = "Slider"
	TypeButton Type = "Button"
	TypeWindow Type = "Window"
)

// Component is an addressable, stateful unit of the virtual UI.
//
// The variant set is closed: only types in this package implement Component
// (see the unexported component method). Adding a variant means adding a type
// here plus a case wherever snapshots are matched by type.
//
// Components are owned by a Registry. All mutation goes through
// Registry.Dispatch, which serializes it against rendering:
//
//	reg := surface.NewRegistry()
//	reg.MustAdd(slider, button, window)
//	err := reg.Dispatch("s1", surface.Patch{"value": 150})
//
// Update applies only the fields present in the patch; absent fields, unknown
// fields, and values of the wrong kind leave state unchanged. The variant's
// invariants hold when Update returns.
//
// Render is a pure function of the current state and may be called
// concurrently with other Render calls.
type Component interface {
	Type() Type
	ID() string
	Update(p Patch)
	Render() Snapshot

	component()
}

// Snapshot is the full serialized state of one component.
//
// Implementations are plain structs whose first two encoded fields are
// "type" and "id", so snapshots encode identically under every codec.
type Snapshot interface {
	SnapshotType() Type
	SnapshotID() string
}

// base holds identity shared by every variant.
type base struct {
	id string
}

// ID returns the component's identifier.
func (b base) ID() string {
	return b.id
}

func (base) component() {}
