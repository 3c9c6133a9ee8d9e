package parser

// Parser recognizes a T at the current position of an Input.
//
// Parse returns exactly one of three outcomes:
//
//	(v, true, nil)      matched; the Input has moved past v
//	(zero, false, nil)  no match; the Input has not moved
//	(zero, false, err)  fatal; the Input may be anywhere
//
// Parsers hold no state between calls and may be shared freely.
type Parser[T any] interface {
	Parse(in *Input) (T, bool, error)
}

// Func adapts an ordinary function to a Parser.
type Func[T any] func(in *Input) (T, bool, error)

func (f Func[T]) Parse(in *Input) (T, bool, error) {
	return f(in)
}

// Option is the result of Optional: Valid is false when the wrapped parser
// did not match.
type Option[T any] struct {
	Value T
	Valid bool
}

// Pair is the result of Then.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NoMatch returns a parser that never matches.
func NoMatch[T any]() Parser[T] {
	return Func[T](func(*Input) (T, bool, error) {
		var zero T
		return zero, false, nil
	})
}

// Fail returns a parser that always fails fatally with an error of kind k
// at the current position.
func Fail[T any](k ErrorKind, msg string) Parser[T] {
	return Func[T](func(in *Input) (T, bool, error) {
		var zero T
		return zero, false, errorf(k, in.Position(), "%s", msg)
	})
}
