// Package errstate defines the engine error taxonomy and the last-error recorder.
package errstate

import (
	"fmt"
	"sync"
)

// Capacity is the maximum length of the recorded message in bytes.
// Longer messages are truncated on write.
const Capacity = 1024

// Kind classifies an engine error.
type Kind int

const (
	// KindIO is a file open/read failure.
	KindIO Kind = iota
	// KindCompile is a shader compilation failure.
	KindCompile
	// KindLink is a program link failure.
	KindLink
	// KindResource is an invalid argument (nil/empty) misuse.
	KindResource
	// KindExternalLoad means the embedder's image loader returned no data.
	KindExternalLoad
)

// String returns a short tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindCompile:
		return "compile"
	case KindLink:
		return "link"
	case KindResource:
		return "resource"
	case KindExternalLoad:
		return "external-load"
	default:
		return "unknown"
	}
}

// Error is a classified engine error. The message carries backend
// diagnostics (compiler/linker logs) verbatim where they exist.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// New formats a classified error.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap formats a classified error around a cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is matches errors of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of err if it is an engine error.
func KindOf(err error) (Kind, bool) {
	if e, ok := err.(*Error); ok {
		return e.Kind, true
	}
	return 0, false
}

// Recorder keeps the most recent error message in a bounded buffer.
// An empty buffer means no error. Every write replaces the previous
// message whole; only the latest error survives, so callers must read
// it immediately after the failing call.
type Recorder struct {
	mu  sync.Mutex
	buf string
}

// Setf formats a message into the recorder, truncating at Capacity.
func (r *Recorder) Setf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > Capacity {
		msg = msg[:Capacity]
	}
	r.mu.Lock()
	r.buf = msg
	r.mu.Unlock()
}

// Record stores err's message, or clears the recorder when err is nil.
func (r *Recorder) Record(err error) {
	if err == nil {
		r.Clear()
		return
	}
	r.Setf("%s", err.Error())
}

// Clear empties the recorder.
func (r *Recorder) Clear() {
	r.mu.Lock()
	r.buf = ""
	r.mu.Unlock()
}

// OK reports whether no error is recorded.
func (r *Recorder) OK() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf == ""
}

// Last returns the recorded message, empty if none.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf
}
