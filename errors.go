package surface

import "errors"

// Sentinel errors for component and protocol operations.
var (
	ErrMalformedMessage = errors.New("surface: malformed message")
	ErrUnknownID        = errors.New("surface: unknown component id")
	ErrDuplicateID      = errors.New("surface: duplicate component id")
	ErrEncodingOverflow = errors.New("surface: encoded frame exceeds buffer")
	ErrInvalidBounds    = errors.New("surface: invalid component bounds")
	ErrInvalidComponent = errors.New("surface: invalid component")
)

// IsUnknownID checks if err reports an update aimed at a missing component.
func IsUnknownID(err error) bool {
	return errors.Is(err, ErrUnknownID)
}

// IsDuplicateID checks if err reports an id collision at registration.
func IsDuplicateID(err error) bool {
	return errors.Is(err, ErrDuplicateID)
}

// IsOverflow checks if err reports a frame that did not fit the buffer.
func IsOverflow(err error) bool {
	return errors.Is(err, ErrEncodingOverflow)
}
