package surface

import (
	"errors"
	"fmt"

	"github.com/piotrcurious/semantic-surface/lib/encoding"
)

// Codec is an alias for encoding.Codec for convenience.
type Codec = encoding.Codec

// JSONCodec returns the default line codec.
func JSONCodec() Codec {
	return encoding.JSON()
}

// MsgpackCodec returns the compact base64-framed msgpack codec.
func MsgpackCodec() Codec {
	return encoding.Msgpack()
}

// wrapEncodingError wraps encoding package errors with surface sentinel errors.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrOverflow) {
		return fmt.Errorf("%w: %w", ErrEncodingOverflow, err)
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	return err
}
