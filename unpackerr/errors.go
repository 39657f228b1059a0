package unpackerr

import "fmt"

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeMismatch ErrorType = "MismatchError"
	TypeUsage    ErrorType = "UsageError"
	TypeSyntax   ErrorType = "SyntaxError"
)

// UnpackError is the interface for all unpack-related errors.
type UnpackError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for unpack errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// MismatchError reports that a source did not fit a pattern. Depth is the
// count of elements that were pulled from the source and accepted by a slot
// before the failure, except that trailing excess reports the full prefix
// arity and a rejected suffix window reports the full prefix+suffix arity.
type MismatchError struct {
	BaseError
	Depth int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("[%s] %s (depth %d)", e.ErrType, e.Msg, e.Depth)
}

// UsageError reports a misconstructed pattern or a capability the source
// cannot provide. It is never routed to a failure continuation.
type UsageError struct {
	BaseError
}

// SyntaxError represents an error while parsing pattern text. Pos is the
// zero-based byte offset of the offending token.
type SyntaxError struct {
	BaseError
	Pos int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[%s] pos %d: %s", e.ErrType, e.Pos, e.Msg)
}

// NewMismatch creates a new MismatchError.
func NewMismatch(depth int, msg string) *MismatchError {
	return &MismatchError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeMismatch,
		},
		Depth: depth,
	}
}

// NewUsageError creates a new UsageError.
func NewUsageError(msg string) *UsageError {
	return &UsageError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeUsage,
		},
	}
}

// NewSyntaxError creates a new SyntaxError at the given position.
func NewSyntaxError(pos int, msg string) *SyntaxError {
	return &SyntaxError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeSyntax,
		},
		Pos: pos,
	}
}
