package surface

import (
	"fmt"
	"io"
	"log"

	"github.com/piotrcurious/semantic-surface/lib/encoding"
)

// DefaultMaxFrame is the default outbound frame capacity in bytes, excluding
// the line terminator. It also bounds inbound line length in Serve.
const DefaultMaxFrame = 1024

// IntentKind classifies one inbound message.
type IntentKind int

const (
	IntentIgnored IntentKind = iota
	IntentMalformed
	IntentUpdate
)

// Intent is the classified meaning of one inbound message.
type Intent struct {
	Kind  IntentKind
	ID    string
	Patch Patch
	Err   error // set for IntentMalformed
}

// Parse classifies a single line.
//
//	{"update":{"id":"s1","value":150}}  -> IntentUpdate("s1", {"value":150})
//	{"hello":1}                         -> IntentIgnored
//	{"update":{"value":1}}              -> IntentMalformed (no target)
//	not json                            -> IntentMalformed
func Parse(c Codec, line []byte) Intent {
	var decoded any
	if err := c.Unmarshal(line, &decoded); err != nil {
		return malformed(wrapEncodingError(err))
	}
	msg, ok := decoded.(map[string]any)
	if !ok {
		return malformed(fmt.Errorf("%w: top-level value is %T, not an object", ErrMalformedMessage, decoded))
	}

	raw, ok := msg["update"]
	if !ok {
		return Intent{Kind: IntentIgnored}
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return malformed(fmt.Errorf("%w: update is %T, not an object", ErrMalformedMessage, raw))
	}
	id, ok := section["id"].(string)
	if !ok || id == "" {
		return malformed(fmt.Errorf("%w: update has no id", ErrMalformedMessage))
	}

	patch := make(Patch, len(section)-1)
	for k, v := range section {
		if k != "id" {
			patch[k] = v
		}
	}
	return Intent{Kind: IntentUpdate, ID: id, Patch: patch}
}

func malformed(err error) Intent {
	return Intent{Kind: IntentMalformed, Err: err}
}

// Protocol binds a Registry to a codec and handles both channel flows:
// inbound lines become dispatches, and Snapshot encodes the registry.
//
// Protocol holds no state of its own beyond configuration; all component
// state lives in the Registry.
type Protocol struct {
	reg          *Registry
	codec        Codec
	maxFrame     int
	logger       *log.Logger
	replyUnknown bool
}

// Option configures a Protocol.
type Option func(*Protocol)

// WithCodec selects the wire codec. Defaults to JSON.
func WithCodec(c Codec) Option {
	return func(p *Protocol) {
		if c != nil {
			p.codec = c
		}
	}
}

// WithMaxFrame sets the frame capacity in bytes. Zero or less removes the limit.
func WithMaxFrame(n int) Option {
	return func(p *Protocol) {
		p.maxFrame = n
	}
}

// WithLogger sets the logger for dropped updates and overflowing snapshots.
// Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(p *Protocol) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithUnknownIDReply answers updates for unknown ids with an error reply
// instead of dropping them silently.
func WithUnknownIDReply(enabled bool) Option {
	return func(p *Protocol) {
		p.replyUnknown = enabled
	}
}

// NewProtocol creates a protocol handler for reg.
func NewProtocol(reg *Registry, opts ...Option) *Protocol {
	p := &Protocol{
		reg:      reg,
		codec:    encoding.JSON(),
		maxFrame: DefaultMaxFrame,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the registry the protocol dispatches to.
func (p *Protocol) Registry() *Registry {
	return p.reg
}

// Codec returns the wire codec.
func (p *Protocol) Codec() Codec {
	return p.codec
}

// MaxFrame returns the frame capacity in bytes (zero or less: unlimited).
func (p *Protocol) MaxFrame() int {
	return p.maxFrame
}

// HandleLine processes one inbound line (without its terminator).
//
// The returned reply, if non-nil, must be written back to the sender followed
// by a newline. Parse and dispatch failures never propagate past this call.
func (p *Protocol) HandleLine(line []byte) ([]byte, Result) {
	intent := Parse(p.codec, line)
	switch intent.Kind {
	case IntentIgnored:
		return nil, Ignored
	case IntentMalformed:
		p.logger.Printf("rejecting line: %v", intent.Err)
		return p.reply(ErrorReply{Error: ReplyInvalidJSON}), Malformed
	}

	// Dispatch fails only for unknown ids.
	if err := p.reg.Dispatch(intent.ID, intent.Patch); err != nil {
		p.logger.Printf("dropping update: %v", err)
		if p.replyUnknown {
			return p.reply(ErrorReply{Error: ReplyUnknownComponent, ID: intent.ID}), Unknown
		}
		return nil, Unknown
	}
	return nil, Updated
}

// Snapshot renders the registry and encodes it as one frame.
//
// Fails with ErrEncodingOverflow when the frame does not fit MaxFrame; the
// frame is then dropped whole, never truncated.
func (p *Protocol) Snapshot() ([]byte, error) {
	frame := Frame{Components: p.reg.RenderAll()}
	data, err := encoding.EncodeBounded(p.codec, frame, p.maxFrame)
	if err != nil {
		return nil, wrapEncodingError(err)
	}
	return data, nil
}

func (p *Protocol) reply(r ErrorReply) []byte {
	data, err := p.codec.Marshal(r)
	if err != nil {
		// ErrorReply holds only strings; every codec can encode it.
		p.logger.Printf("encode reply: %v", err)
		return nil
	}
	return data
}
