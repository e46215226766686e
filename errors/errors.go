package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRead      Phase = "read"      // byte cursor access
	PhaseConstruct Phase = "construct" // table definition parsing
	PhaseSelect    Phase = "select"    // bit pump selection
	PhaseDecode    Phase = "decode"    // symbol decoding
	PhaseEncode    Phase = "encode"    // payload generation
	PhaseOracle    Phase = "oracle"    // lock-step comparison
	PhaseConfig    Phase = "config"    // harness configuration
)

// Kind categorizes the error. The set is closed.
type Kind string

const (
	KindNone         Kind = ""
	KindExhausted    Kind = "exhausted"
	KindConstruction Kind = "construction_failure"
	KindDecode       Kind = "decode_failure"
	KindUnknownPump  Kind = "unknown_pump"
	KindDivergence   Kind = "divergence"
	KindInvalidInput Kind = "invalid_input"
)

// Kind-only sentinels for errors.Is. They match any phase.
var (
	ErrExhausted    = &Error{Kind: KindExhausted}
	ErrConstruction = &Error{Kind: KindConstruction}
	ErrDecode       = &Error{Kind: KindDecode}
	ErrUnknownPump  = &Error{Kind: KindUnknownPump}
	ErrDivergence   = &Error{Kind: KindDivergence}
)

// Error is the structured error type used throughout huffdual
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Side   string
	Detail string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Side != "" {
		b.WriteString(" in ")
		b.WriteString(e.Side)
	}

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a phase
// matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or KindNone.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Side sets the implementation or side the error belongs to
func (b *Builder) Side(side string) *Builder {
	b.err.Side = side
	return b
}

// Offset sets the byte offset the error refers to
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Exhausted creates a stream exhaustion error
func Exhausted(phase Phase, offset, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindExhausted,
		Offset: offset,
		Detail: fmt.Sprintf("need %d more byte(s)", want),
		Value:  want,
	}
}

// BitsExhausted creates a stream exhaustion error for a bit pump
func BitsExhausted(consumed, limit, want int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindExhausted,
		Offset: -1,
		Detail: fmt.Sprintf("reading %d bit(s) after %d of %d", want, consumed, limit),
		Value:  want,
	}
}

// Construction creates a table construction error
func Construction(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindConstruction,
		Offset: -1,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// WrapConstruction wraps a lower-level failure met while constructing a table
func WrapConstruction(cause error, detail string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindConstruction,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}

// BadCode creates a decode failure for a bit pattern no code matches
func BadCode(side string, code uint32, length int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindDecode,
		Side:   side,
		Offset: -1,
		Detail: fmt.Sprintf("bad Huffman code %0*b", length, code),
		Value:  code,
	}
}

// UnknownPump creates an unknown bit pump discriminator error
func UnknownPump(disc byte, registered int) *Error {
	return &Error{
		Phase:  PhaseSelect,
		Kind:   KindUnknownPump,
		Offset: -1,
		Detail: fmt.Sprintf("discriminator %d out of range (registered %d)", disc, registered),
		Value:  disc,
	}
}

// Divergence creates a divergence error. iteration is -1 outside the decode loop.
func Divergence(reason string, iteration int, offset int) *Error {
	detail := reason
	if iteration >= 0 {
		detail = fmt.Sprintf("%s (iteration %d)", reason, iteration)
	}
	return &Error{
		Phase:  PhaseOracle,
		Kind:   KindDivergence,
		Offset: offset,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: -1,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
