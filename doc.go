// Package surface provides a minimal remote-UI runtime for constrained
// devices.
//
// A device keeps a fixed set of addressable, stateful components (sliders,
// buttons, positioned display windows), accepts structured update messages
// over a line-framed byte channel, and periodically emits the full component
// state as a snapshot for an external renderer.
//
// # Core Concepts
//
// Components are created once at startup and registered with a Registry,
// which owns them for its whole lifetime:
//
//	s1, _ := surface.NewSlider("s1", 0, 100, 50)
//	w1, _ := surface.NewWindow("w1", 3.14, 10, 10, 50, 30, 128, 64)
//	reg := surface.NewRegistry()
//	reg.MustAdd(s1, w1)
//
// Each variant enforces its own invariants on every update:
//   - Slider: value is clamped into [min, max]
//   - Button: pressed is set directly
//   - Window: x and y move only together, each clamped onto the screen
//
// Updates are merges: fields absent from a patch are left alone, unknown
// fields and values of the wrong kind are ignored.
//
// # Wire Protocol
//
// Inbound, one object per line:
//
//	{"update":{"id":"s1","value":150}}
//
// Lines without an "update" key are valid no-ops. Lines that do not decode,
// or whose update has no id, are answered with:
//
//	{"error":"Invalid JSON"}
//
// Outbound, on the snapshot cadence:
//
//	{"components":[{"type":"Slider","id":"s1","value":100,"min":0,"max":100},...]}
//
// Components appear in registration order. A frame larger than the configured
// capacity is reported as ErrEncodingOverflow and skipped, never truncated.
//
// # Running a Device
//
// Protocol binds a registry to a codec; Serve runs the loop over any
// io.ReadWriter with an injected tick channel:
//
//	p := surface.NewProtocol(reg, surface.WithMaxFrame(1024))
//	ticker := time.NewTicker(200 * time.Millisecond)
//	err := surface.Serve(ctx, p, port, ticker.C)
//
// Inbound handling and snapshot emission never overlap within the loop. The
// registry is additionally guarded by a mutex, so it may be shared with
// read-only observers such as the HTML preview.
//
// # Failure Model
//
// Nothing arriving on the channel can stop the loop. Malformed lines are
// rejected and answered, updates for unknown ids are dropped (or answered,
// with WithUnknownIDReply), and overflowing snapshots are logged. Only
// duplicate ids at registration are fatal, since they are configuration bugs.
package surface
