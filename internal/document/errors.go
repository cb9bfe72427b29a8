package document

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned when an object declares the same key twice.
var ErrDuplicateKey = errors.New("duplicate key")

// DecodeError reports a document that could not be decoded.
type DecodeError struct {
	// Format is the source format, "json" or "yaml".
	Format string
	// Path is the dotted key path where decoding failed (empty for the root).
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
	}

	return fmt.Sprintf("decode %s at %s: %v", e.Format, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func childPath(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
