package parser

import "fmt"

// ErrorKind classifies a fatal parse error. The kinds double as sentinel
// errors, so errors.Is(err, Unterminated) reports whether err is an
// unterminated-block *Error.
type ErrorKind int

const (
	// UnexpectedEOF is returned when input ends inside a fixed-size read.
	UnexpectedEOF ErrorKind = iota + 1

	// Unterminated is returned when a delimited block has no closing marker.
	Unterminated

	// Unrecognized is returned when no parser matched at a position.
	Unrecognized
)

func (k ErrorKind) Error() string {
	switch k {
	case UnexpectedEOF:
		return "unexpected end of input"
	case Unterminated:
		return "unterminated block"
	case Unrecognized:
		return "unrecognized content"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the fatal error outcome of a Parser.
type Error struct {
	Kind ErrorKind

	// Pos is the byte offset at which the failing construct started.
	Pos int

	Msg string
}

func errorf(k ErrorKind, pos int, format string, args ...interface{}) *Error {
	return &Error{
		Kind: k,
		Pos:  pos,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Errorf returns a fatal error of kind k at byte offset pos.
func Errorf(k ErrorKind, pos int, format string, args ...interface{}) error {
	return errorf(k, pos, format, args...)
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Msg, e.Pos)
}

func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}
