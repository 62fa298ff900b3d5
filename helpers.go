package surface

import "fmt"

// EncodeUpdate builds an inbound update line for the component id.
//
// Renderer-side clients use it to talk to the device:
//
//	line, _ := surface.EncodeUpdate(codec, "w1", surface.Patch{"x": 20, "y": 5})
//	conn.Write(append(line, '\n'))
func EncodeUpdate(c Codec, id string, patch Patch) ([]byte, error) {
	section := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		section[k] = v
	}
	section["id"] = id
	return c.Marshal(map[string]any{"update": section})
}

// DecodeFrame parses an outbound snapshot line into generic component maps,
// in frame order. It is the renderer-side counterpart of Protocol.Snapshot.
func DecodeFrame(c Codec, line []byte) ([]map[string]any, error) {
	var decoded any
	if err := c.Unmarshal(line, &decoded); err != nil {
		return nil, wrapEncodingError(err)
	}
	msg, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: frame is %T, not an object", ErrMalformedMessage, decoded)
	}
	list, ok := msg["components"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: frame has no components list", ErrMalformedMessage)
	}
	out := make([]map[string]any, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: component %d is %T", ErrMalformedMessage, i, item)
		}
		out = append(out, m)
	}
	return out, nil
}

// IsErrorReply reports whether line is an error reply and returns its message.
func IsErrorReply(c Codec, line []byte) (string, bool) {
	var decoded any
	if err := c.Unmarshal(line, &decoded); err != nil {
		return "", false
	}
	msg, ok := decoded.(map[string]any)
	if !ok {
		return "", false
	}
	text, ok := msg["error"].(string)
	return text, ok
}
