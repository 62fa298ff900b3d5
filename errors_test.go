package surface

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/piotrcurious/semantic-surface/lib/encoding"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	errs := []error{
		ErrMalformedMessage,
		ErrUnknownID,
		ErrDuplicateID,
		ErrEncodingOverflow,
		ErrInvalidBounds,
		ErrInvalidComponent,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	errs := []error{
		ErrMalformedMessage,
		ErrUnknownID,
		ErrDuplicateID,
		ErrEncodingOverflow,
		ErrInvalidBounds,
		ErrInvalidComponent,
	}

	for _, err := range errs {
		if !strings.HasPrefix(err.Error(), "surface:") {
			t.Errorf("Error %q should start with 'surface:'", err.Error())
		}
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   func(error) bool
		want bool
	}{
		{"nil unknown", nil, IsUnknownID, false},
		{"unknown", ErrUnknownID, IsUnknownID, true},
		{"wrapped unknown", fmt.Errorf("dispatch: %w", ErrUnknownID), IsUnknownID, true},
		{"duplicate is not unknown", ErrDuplicateID, IsUnknownID, false},
		{"duplicate", fmt.Errorf("%w: %q", ErrDuplicateID, "s1"), IsDuplicateID, true},
		{"overflow", ErrEncodingOverflow, IsOverflow, true},
		{"other error", errors.New("other"), IsOverflow, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.is(tt.err); got != tt.want {
				t.Errorf("helper(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWrapEncodingError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect error
	}{
		{"nil error", nil, nil},
		{"overflow", fmt.Errorf("%w: 2000 > 1024 bytes", encoding.ErrOverflow), ErrEncodingOverflow},
		{"invalid format", encoding.ErrInvalidFormat, ErrMalformedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := wrapEncodingError(tt.err)
			if tt.expect == nil {
				if result != nil {
					t.Errorf("wrapEncodingError(nil) = %v, want nil", result)
				}
				return
			}
			if !errors.Is(result, tt.expect) {
				t.Errorf("wrapEncodingError(%v) = %v, want %v", tt.err, result, tt.expect)
			}
			// The codec error stays in the chain.
			if !errors.Is(result, tt.err) {
				t.Errorf("wrapEncodingError(%v) lost the original error", tt.err)
			}
		})
	}

	other := errors.New("other")
	if got := wrapEncodingError(other); got != other {
		t.Errorf("wrapEncodingError(other) = %v, want passthrough", got)
	}
}
