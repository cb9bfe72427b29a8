package mapping

import (
	"fmt"
)

// MalformedMappingError reports a mapping document missing a structure its
// field kinds require. Path is the dotted path of the offending field,
// starting with the root name.
type MalformedMappingError struct {
	Path   string
	Reason string
}

func (e *MalformedMappingError) Error() string {
	if e.Path == "" {
		return "malformed mapping: " + e.Reason
	}

	return fmt.Sprintf("malformed mapping at %q: %s", e.Path, e.Reason)
}

func malformed(path, format string, args ...any) *MalformedMappingError {
	return &MalformedMappingError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
