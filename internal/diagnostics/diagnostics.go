// Package diagnostics implements the error handling design of §7: every
// recoverable analysis failure is turned into a *DiagnosticError and pushed
// onto a Sink rather than returned as a bare Go error or panic, grounded on
// the sibling funxy revision's internal/diagnostics/diagnostics.go
// (Phase/ErrorCode/DiagnosticError shape) which this core's chosen teacher
// imports but does not itself vendor.
package diagnostics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vhdllang/vhdlresolve/internal/entity"
)

// Code enumerates every diagnostic this core can raise (§7).
type Code int

const (
	CodeNotFound Code = iota
	CodeInvalidSelection
	CodeInvalidPrefix
	CodeDimensionMismatch
	CodeInvalidDiscreteRange
	CodeNonExpression
	CodeProcedureInExpression
	CodeAmbiguousCall
	CodeTypeMismatch
	CodeInternalUnreachable
)

var codeNames = map[Code]string{
	CodeNotFound:              "name not found",
	CodeInvalidSelection:      "invalid selected name",
	CodeInvalidPrefix:         "invalid prefix",
	CodeDimensionMismatch:     "dimension mismatch",
	CodeInvalidDiscreteRange:  "invalid discrete range",
	CodeNonExpression:         "name does not denote an expression",
	CodeProcedureInExpression: "procedure call not valid in an expression",
	CodeAmbiguousCall:         "ambiguous call",
	CodeTypeMismatch:          "type mismatch",
	CodeInternalUnreachable:   "internal error",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return "unknown diagnostic"
}

// DiagnosticError is the sole error type this core produces for recoverable
// analysis failures (§7: "Never panic on malformed-but-parseable input").
type DiagnosticError struct {
	Code    Code
	Pos     entity.Position
	Message string
	Notes   []string
}

func (e *DiagnosticError) Error() string {
	s := fmt.Sprintf("%d:%d: %s [%s]", e.Pos.Line, e.Pos.Column, e.Message, e.Code)
	for _, n := range e.Notes {
		s += "\n  note: " + n
	}
	return s
}

// New builds a DiagnosticError at pos with a formatted message.
func New(code Code, pos entity.Position, format string, args ...any) *DiagnosticError {
	return &DiagnosticError{Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// WithNotes returns a copy of e with notes appended, used for the
// AmbiguousCall candidate listing (§12).
func (e *DiagnosticError) WithNotes(notes ...string) *DiagnosticError {
	e2 := *e
	e2.Notes = append(append([]string(nil), e2.Notes...), notes...)
	return &e2
}

// Internal wraps an invariant violation as CodeInternalUnreachable — used
// only where the core's own closed-union dispatch hits a case it proved,
// by construction, cannot occur (§7: these never reach a user but must
// still not panic).
func Internal(pos entity.Position, format string, args ...any) *DiagnosticError {
	return New(CodeInternalUnreachable, pos, format, args...)
}

// Sink collects diagnostics for one analysis pass, stamped with a
// correlation ID so a caller running many passes concurrently (§5: each
// pass is single-threaded internally, but many passes run in parallel
// goroutines) can tell which pass a diagnostic came from.
type Sink struct {
	PassID uuid.UUID
	errors []*DiagnosticError
}

// NewSink returns a Sink with a fresh pass-correlation ID.
func NewSink() *Sink {
	return &Sink{PassID: uuid.New()}
}

// Push appends a diagnostic to the sink.
func (s *Sink) Push(e *DiagnosticError) {
	s.errors = append(s.errors, e)
}

// Errors returns every diagnostic pushed so far, in push order.
func (s *Sink) Errors() []*DiagnosticError {
	return s.errors
}

// OK reports whether no diagnostics have been pushed.
func (s *Sink) OK() bool {
	return len(s.errors) == 0
}

// Result carries an analysis outcome alongside whatever diagnostics, if
// any, accompanied it — §7's "errors are data, not control flow": a name
// can resolve to a best-effort value (e.g. the first of several ambiguous
// candidates) and still carry a diagnostic, so downstream analysis
// (elaboration, out of scope for this core) can continue on partial
// information.
type Result[T any] struct {
	Value T
	Diags []*DiagnosticError
}

// Ok wraps a clean value with no diagnostics.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// WithDiag wraps v with one diagnostic attached.
func WithDiag[T any](v T, d *DiagnosticError) Result[T] {
	return Result[T]{Value: v, Diags: []*DiagnosticError{d}}
}

// Failed reports whether r carries at least one diagnostic.
func (r Result[T]) Failed() bool {
	return len(r.Diags) > 0
}
