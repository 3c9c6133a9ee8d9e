package parser

import "fmt"

// Text is either a view into the source of an Input (borrowed) or a string
// assembled during parsing (owned). Borrowed Texts remember the Span they
// came from. The zero Text is the empty borrowed text.
type Text struct {
	s     string
	span  Span
	owned bool
}

// Borrowed returns the Text for src[s.Start:s.End].
func Borrowed(src string, s Span) Text {
	return Text{s: src[s.Start:s.End], span: s}
}

// Owned returns a Text that does not refer to any source.
func Owned(s string) Text {
	return Text{s: s, owned: true}
}

func (t Text) String() string {
	return t.s
}

func (t Text) IsOwned() bool {
	return t.owned
}

// Span returns the source range of a borrowed Text. ok is false for owned
// Texts.
func (t Text) Span() (s Span, ok bool) {
	if t.owned {
		return Span{}, false
	}
	return t.span, true
}

// Equal reports whether t and u hold the same characters, regardless of how
// each is stored.
func (t Text) Equal(u Text) bool {
	return t.s == u.s
}

func (t Text) GoString() string {
	if t.owned {
		return fmt.Sprintf("Owned(%q)", t.s)
	}
	return fmt.Sprintf("Borrowed(%q@%d:%d)", t.s, t.span.Start, t.span.End)
}
