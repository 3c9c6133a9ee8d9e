// Package parser is a small backtracking parser-combinator runtime over
// string input.
//
// A Parser reports one of three outcomes: a match (with a value), no match, or
// a fatal error. A parser that does not match must leave the Input where it
// found it; callers that fan out to several sub-parsers rely on that to
// backtrack with nothing more than Position and ResetTo. A fatal error is
// never retried: it aborts the whole parse.
package parser // import "myitcv.io/stardust/parser"

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Span is a half-open byte range [Start, End) into the source of an Input.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}

// Input is a read position over an immutable source string. The position is
// always on a UTF-8 boundary.
//
// An Input is owned by a single parse; it must not be shared between
// goroutines.
type Input struct {
	src string
	pos int
}

// NewInput returns an Input positioned at the start of src.
func NewInput(src string) *Input {
	return &Input{src: src}
}

// Source returns the full source the Input reads from.
func (in *Input) Source() string {
	return in.src
}

// Position returns the current byte offset into the source.
func (in *Input) Position() int {
	return in.pos
}

// ResetTo rewinds the Input to a position previously returned by Position.
// It panics if pos is outside the source or falls inside a multibyte rune.
func (in *Input) ResetTo(pos int) {
	if pos < 0 || pos > len(in.src) {
		panic(fmt.Errorf("reset to position %d outside of source of length %d", pos, len(in.src)))
	}
	if pos < len(in.src) && !utf8.RuneStart(in.src[pos]) {
		panic(fmt.Errorf("reset to position %d inside a multibyte character", pos))
	}
	in.pos = pos
}

// IsAtEnd reports whether the whole source has been consumed.
func (in *Input) IsAtEnd() bool {
	return in.pos >= len(in.src)
}

// Remaining returns the unconsumed part of the source.
func (in *Input) Remaining() string {
	return in.src[in.pos:]
}

// ConsumeCount consumes exactly n runes. If fewer than n remain, nothing is
// consumed and an UnexpectedEOF error is returned.
func (in *Input) ConsumeCount(n int) (Span, error) {
	end := in.pos
	for i := 0; i < n; i++ {
		if end >= len(in.src) {
			return Span{}, errorf(UnexpectedEOF, in.pos, "wanted %d characters; only %d remain", n, i)
		}
		_, w := utf8.DecodeRuneInString(in.src[end:])
		end += w
	}
	return in.advance(end), nil
}

// ConsumeUntilAny consumes up to, but not including, the next rune that
// appears in chars. If no such rune remains, nothing is consumed and ok is
// false; the caller typically follows up with ConsumeAll.
func (in *Input) ConsumeUntilAny(chars string) (s Span, ok bool) {
	i := strings.IndexAny(in.src[in.pos:], chars)
	if i == -1 {
		return Span{}, false
	}
	return in.advance(in.pos + i), true
}

// ConsumeAll consumes the rest of the source.
func (in *Input) ConsumeAll() Span {
	return in.advance(len(in.src))
}

// Text returns the borrowed Text for s.
func (in *Input) Text(s Span) Text {
	return Borrowed(in.src, s)
}

// Combine concatenates ts in order. Borrowed pieces must come from this
// Input. When every piece is borrowed and each ends where the next starts,
// the result is itself borrowed; otherwise the result owns a newly assembled
// string.
func (in *Input) Combine(ts ...Text) Text {
	if len(ts) == 0 {
		return Text{}
	}
	adjacent := true
	var whole Span
	for i, t := range ts {
		s, ok := t.Span()
		if !ok {
			adjacent = false
			break
		}
		if i == 0 {
			whole = s
			continue
		}
		if s.Start != whole.End {
			adjacent = false
			break
		}
		whole.End = s.End
	}
	if adjacent {
		return in.Text(whole)
	}

	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(t.s)
	}
	return Owned(sb.String())
}

func (in *Input) advance(end int) Span {
	s := Span{Start: in.pos, End: end}
	in.pos = end
	return s
}

// LineCol converts a byte offset in src to a 1-based line and a 1-based
// column counted in runes.
func LineCol(src string, pos int) (line, col int) {
	if pos > len(src) {
		pos = len(src)
	}
	before := src[:pos]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i != -1 {
		before = before[i+1:]
	}
	return line, utf8.RuneCountInString(before) + 1
}
