// Package encoding provides the line codecs used on the device channel.
//
// Two wire formats are supported:
//   - JSON (default): one JSON object per line, human readable
//   - Msgpack: msgpack payload in unpadded base64 - compact, still newline-free
//
// Both formats carry the same shapes, so the protocol layer never needs to know
// which one is in use.
package encoding

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format names accepted by ForName.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Sentinel errors for encoding operations.
var (
	ErrInvalidFormat = errors.New("encoding: invalid frame format")
	ErrOverflow      = errors.New("encoding: frame exceeds limit")
	ErrUnknownCodec  = errors.New("encoding: unknown codec")
)

// Codec converts between one line of channel bytes and Go values.
//
// Unmarshal into *any must produce map[string]any for objects so that callers
// can classify messages without knowing the codec.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSON returns the JSON line codec.
func JSON() Codec { return jsonCodec{} }

// Msgpack returns the base64-framed msgpack line codec.
func Msgpack() Codec { return msgpackCodec{} }

// ForName returns the codec registered under name.
func ForName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatJSON:
		return JSON(), nil
	case FormatMsgpack:
		return Msgpack(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// EncodeBounded marshals v and fails with ErrOverflow when the frame would
// exceed limit bytes. A limit of zero or less disables the check.
//
// The frame is never truncated: a partial object is not a valid message.
func EncodeBounded(c Codec, v any, limit int) ([]byte, error) {
	data, err := c.Marshal(v)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(data) > limit {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrOverflow, len(data), limit)
	}
	return data, nil
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return FormatJSON }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal keeps numbers as json.Number so integer fields survive exactly.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	// Anything after the first value, even a stray closing bracket, makes the
	// line invalid.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", ErrInvalidFormat)
	}
	return nil
}

type msgpackCodec struct{}

func (msgpackCodec) Name() string { return FormatMsgpack }

func (msgpackCodec) Marshal(v any) ([]byte, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, base64.RawStdEncoding.EncodedLen(len(packed)))
	base64.RawStdEncoding.Encode(out, packed)
	return out, nil
}

func (msgpackCodec) Unmarshal(data []byte, v any) error {
	data = bytes.TrimSpace(data)
	packed := make([]byte, base64.RawStdEncoding.DecodedLen(len(data)))
	n, err := base64.RawStdEncoding.Decode(packed, data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := msgpack.Unmarshal(packed[:n], v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}
