package errstate

import (
	"errors"
	"strings"
	"testing"
)

func TestRecorderSetAndOK(t *testing.T) {
	var r Recorder

	if !r.OK() {
		t.Error("fresh recorder should be OK")
	}

	r.Setf("failed to compile %s: %s", "vert", "syntax error")
	if r.OK() {
		t.Error("recorder should not be OK after Setf")
	}
	if got := r.Last(); got != "failed to compile vert: syntax error" {
		t.Errorf("unexpected message: %q", got)
	}

	r.Clear()
	if !r.OK() {
		t.Error("recorder should be OK after Clear")
	}
	if r.Last() != "" {
		t.Errorf("expected empty message after Clear, got %q", r.Last())
	}
}

func TestRecorderOverwrite(t *testing.T) {
	var r Recorder

	r.Setf("first")
	r.Setf("second")
	if got := r.Last(); got != "second" {
		t.Errorf("expected latest message to survive, got %q", got)
	}
}

func TestRecorderTruncation(t *testing.T) {
	var r Recorder

	long := strings.Repeat("x", Capacity+100)
	r.Setf("%s", long)
	if got := len(r.Last()); got != Capacity {
		t.Errorf("expected message truncated to %d bytes, got %d", Capacity, got)
	}
}

func TestRecorderRecord(t *testing.T) {
	var r Recorder

	r.Record(New(KindIO, "failed to open %s", "missing.glsl"))
	if r.OK() {
		t.Error("recorder should hold the error")
	}
	if got := r.Last(); got != "failed to open missing.glsl" {
		t.Errorf("unexpected message: %q", got)
	}

	// nil clears, matching the success-clears-channel contract
	r.Record(nil)
	if !r.OK() {
		t.Error("Record(nil) should clear the recorder")
	}
}

func TestErrorKindMatching(t *testing.T) {
	err := New(KindCompile, "failed to compile frag")

	if !errors.Is(err, &Error{Kind: KindCompile}) {
		t.Error("errors.Is should match on kind")
	}
	if errors.Is(err, &Error{Kind: KindLink}) {
		t.Error("errors.Is should not match a different kind")
	}

	kind, ok := KindOf(err)
	if !ok || kind != KindCompile {
		t.Errorf("KindOf = %v, %v; want KindCompile, true", kind, ok)
	}
}

func TestErrorWrap(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrap(KindIO, cause, "reading %s", "a.vert")

	if err.Error() != "reading a.vert: no such file" {
		t.Errorf("unexpected error string: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindIO, "io"},
		{KindCompile, "compile"},
		{KindLink, "link"},
		{KindResource, "resource"},
		{KindExternalLoad, "external-load"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
