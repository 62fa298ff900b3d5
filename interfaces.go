package surface

// Renderer is implemented by anything that can produce the ordered snapshot
// list. *Registry implements it; read-only consumers such as the HTML preview
// accept a Renderer so they cannot mutate components.
type Renderer interface {
	RenderAll() []Snapshot
}

// Dispatcher is implemented by anything that routes a patch to a component
// by id. *Registry implements it.
//
// Dispatch returns an error wrapping ErrUnknownID when no component matches.
type Dispatcher interface {
	Dispatch(id string, patch Patch) error
}

var (
	_ Renderer   = (*Registry)(nil)
	_ Dispatcher = (*Registry)(nil)
)
