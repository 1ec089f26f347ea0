package compress

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat reports a container whose header cannot be trusted: wrong magic,
	// truncated header, or counts that do not add up.
	ErrFormat = errors.New("malformed container")

	// ErrCorrupt reports a payload that cannot be decoded to the stored length.
	ErrCorrupt = errors.New("corrupted payload")

	// ErrInvariant reports a broken internal precondition, e.g. a byte with no assigned code.
	ErrInvariant = errors.New("internal invariant violated")
)

// FormatError describes a rejected container header.
type FormatError struct {
	Reason string
	Value  interface{} // offending value, e.g. the magic bytes read
}

func (e *FormatError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%v: %s", ErrFormat, e.Reason)
	}
	return fmt.Sprintf("%v: %s (%v)", ErrFormat, e.Reason, e.Value)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// CorruptionError describes where payload decoding stopped.
type CorruptionError struct {
	Reason  string
	Decoded int64 // bytes successfully decoded before the failure
	Want    int64 // original length stored in the header
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("%v: %s after %d of %d bytes", ErrCorrupt, e.Reason, e.Decoded, e.Want)
}

func (e *CorruptionError) Is(target error) bool { return target == ErrCorrupt }

// Invariantf returns an error wrapping ErrInvariant.
func Invariantf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
