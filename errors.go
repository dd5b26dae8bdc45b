package vdom

import "fmt"

// ErrInputTooLong is the cause wrapped in a *ParseError when Parse's
// input exceeds the maximum addressable size of a Handle (2^32-1
// bytes). Check for it with errors.Is.
var ErrInputTooLong = fmt.Errorf("vdom: input exceeds maximum parseable length")

// HandleResolutionError is raised (as a panic, mirroring an out-of-bounds
// slice access) when a Handle does not resolve within its Arena. This
// should never occur for handles obtained from the arena's own
// traversal methods; it exists to fail loudly rather than silently
// return a corrupt node for a handle from a different arena.
type HandleResolutionError struct {
	Handle   Handle
	ArenaLen uint32
}

func (e *HandleResolutionError) Error() string {
	return fmt.Sprintf("vdom: handle %d does not resolve in an arena of length %d", e.Handle, e.ArenaLen)
}

// TypeMismatchError is returned when an operation expects a node of one
// Kind but finds another, e.g. reading Attrs from a text node.
type TypeMismatchError struct {
	Handle   Handle
	Expected NodeKind
	Actual   NodeKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("vdom: handle %d is kind %d, expected kind %d", e.Handle, e.Actual, e.Expected)
}

// ParseError wraps a lower-level cause encountered while parsing, with
// the byte offset at which it was detected.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vdom: parse error at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
