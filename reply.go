package surface

// Reply messages sent back over the channel.
const (
	ReplyInvalidJSON      = "Invalid JSON"
	ReplyUnknownComponent = "Unknown component"
)

// ErrorReply is the only error shape surfaced to the sender.
//
//	{"error":"Invalid JSON"}
//	{"error":"Unknown component","id":"s9"}
//
// ID is set only for unknown-component replies, which are opt-in
// (see WithUnknownIDReply).
type ErrorReply struct {
	Error string `json:"error" msgpack:"error"`
	ID    string `json:"id,omitempty" msgpack:"id,omitempty"`
}

// Frame is the outbound snapshot message. Components are in registry
// insertion order.
//
//	{"components":[{"type":"Slider","id":"s1",...},...]}
type Frame struct {
	Components []Snapshot `json:"components" msgpack:"components"`
}
