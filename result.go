package surface

// Result is the outcome of handling one inbound line.
//
// Every result is terminal for its line: nothing is retried, and none of them
// stop the device loop.
type Result int

const (
	// Ignored means the line decoded but carried no update directive.
	Ignored Result = iota
	// Updated means the update reached its component.
	Updated
	// Malformed means the line did not decode, or its update had no target.
	// The sender receives the invalid-message reply.
	Malformed
	// Unknown means the update targeted an id the registry does not hold.
	Unknown
)

// String returns a lower-case name for logs.
func (r Result) String() string {
	switch r {
	case Ignored:
		return "ignored"
	case Updated:
		return "updated"
	case Malformed:
		return "malformed"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}
