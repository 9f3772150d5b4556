package objload

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound         = errors.New("obj file not found")
	ErrInvalidHeader        = errors.New("not a blender obj export")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrUnsupportedFaceArity = errors.New("only quad faces are supported")
	ErrNoCurrentObject      = errors.New("primitive before any object declaration")
	ErrMalformedRecord      = errors.New("malformed record")
	ErrMixedPrimitives      = errors.New("object mixes lines and faces")
)

// ParseError is the error returned by Parse when a record cannot be used.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IndexError describes a position or normal reference outside its pool.
type IndexError struct {
	Pool  string // "position" or "normal"
	Index int    // 1-based index as written in the file
	Len   int    // pool size when the reference was resolved
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [1, %d]", e.Pool, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// DiagnosticKind classifies a non-fatal condition.
type DiagnosticKind int

const (
	DiagUnknownHeader DiagnosticKind = iota
	DiagInvalidHeader
	DiagSkippedRecord
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagUnknownHeader:
		return "unknown line header"
	case DiagInvalidHeader:
		return "invalid header"
	case DiagSkippedRecord:
		return "skipped record"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic is a condition that was reported but did not stop the parse.
type Diagnostic struct {
	Line int
	Kind DiagnosticKind
	Text string
	Err  error // set for DiagSkippedRecord and DiagInvalidHeader
}

func (d Diagnostic) String() string {
	if d.Err != nil {
		return fmt.Sprintf("line %d: %v: %v", d.Line, d.Kind, d.Err)
	}
	return fmt.Sprintf("line %d: %v: %q", d.Line, d.Kind, d.Text)
}
