package entities

import (
	"fmt"
)

// UsageError reports a command line that cannot be acted upon.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return "usage error: " + e.Reason
}

// InputReadError reports a manifest that could not be read from disk.
type InputReadError struct {
	Path string
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("failed to read %q: %v", e.Path, e.Err)
}

func (e *InputReadError) Unwrap() error { return e.Err }

// MalformedJSONError reports a manifest that is not valid JSON or whose root
// is not an object.
type MalformedJSONError struct {
	Path string
	Err  error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in %q: %v", e.Path, e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// MalformedDependencyEntry describes a value under a dependency section that
// cannot be read as a version. It is a warning, never a failure.
type MalformedDependencyEntry struct {
	SourceFile string
	Path       string
	Value      any
	Reason     string
}

func (m MalformedDependencyEntry) String() string {
	if m.SourceFile == "" {
		return fmt.Sprintf("%s: %s", m.Path, m.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", m.SourceFile, m.Path, m.Reason)
}
