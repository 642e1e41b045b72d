package plot

import "fmt"

// Kind classifies a plotting failure.
type Kind int

const (
	KindEmptyInput Kind = iota + 1
	KindInvalidGeometry
	KindIOFailure
	KindEncodingFailure
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty input"
	case KindInvalidGeometry:
		return "invalid geometry"
	case KindIOFailure:
		return "io failure"
	case KindEncodingFailure:
		return "encoding failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by every fallible step of the pipeline.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrEmptyInput      = &Error{Kind: KindEmptyInput}
	ErrInvalidGeometry = &Error{Kind: KindInvalidGeometry}
	ErrIO              = &Error{Kind: KindIOFailure}
	ErrEncoding        = &Error{Kind: KindEncodingFailure}
)

func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Op == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
