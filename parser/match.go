package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type literal string

// Literal matches the exact string s.
func Literal(s string) Parser[Text] {
	return literal(s)
}

func (l literal) Parse(in *Input) (Text, bool, error) {
	if !strings.HasPrefix(in.Remaining(), string(l)) {
		return Text{}, false, nil
	}
	return in.Text(in.advance(in.pos + len(l))), true, nil
}

type whitespace struct {
	min int
}

// Whitespace matches a possibly empty run of Unicode white space.
func Whitespace() Parser[Text] {
	return whitespace{}
}

// Whitespace1 is like Whitespace but does not match an empty run.
func Whitespace1() Parser[Text] {
	return whitespace{min: 1}
}

func (w whitespace) Parse(in *Input) (Text, bool, error) {
	rest := in.Remaining()
	n, i := 0, 0
	for i < len(rest) {
		r, sz := utf8.DecodeRuneInString(rest[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += sz
		n++
	}
	if n < w.min {
		return Text{}, false, nil
	}
	return in.Text(in.advance(in.pos + i)), true, nil
}

type takeUntil struct {
	term    string
	escaped string
}

// TakeUntil consumes input up to, but not including, the first occurrence of
// term. An occurrence of escaped is not a terminator: it is folded to a
// single term in the result and the scan continues after it. escaped is
// checked before term at each position.
//
// Reaching the end of input before term is fatal, with kind Unterminated.
// The result is borrowed unless something was folded.
func TakeUntil(term, escaped string) Parser[Text] {
	if term == "" {
		panic("TakeUntil with empty terminator")
	}
	return takeUntil{term: term, escaped: escaped}
}

func (t takeUntil) Parse(in *Input) (Text, bool, error) {
	start := in.Position()
	rest := in.Remaining()

	// folded is nil until the first escape is seen; from then on it holds
	// everything before seg.
	var folded *strings.Builder
	seg := 0

	for i := 0; i < len(rest); {
		switch {
		case t.escaped != "" && strings.HasPrefix(rest[i:], t.escaped):
			if folded == nil {
				folded = new(strings.Builder)
			}
			folded.WriteString(rest[seg:i])
			folded.WriteString(t.term)
			i += len(t.escaped)
			seg = i
		case strings.HasPrefix(rest[i:], t.term):
			s := in.advance(start + i)
			if folded == nil {
				return in.Text(s), true, nil
			}
			folded.WriteString(rest[seg:i])
			return Owned(folded.String()), true, nil
		default:
			_, sz := utf8.DecodeRuneInString(rest[i:])
			i += sz
		}
	}

	return Text{}, false, errorf(Unterminated, start, "reached end of input before %q", t.term)
}
