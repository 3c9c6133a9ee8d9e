package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestThen(t *testing.T) {
	p := Then(Literal("a"), Literal("b"))

	in := NewInput("abc")
	v, ok, err := p.Parse(in)
	if err != nil || !ok {
		t.Fatalf("expected match; got ok=%v err=%v", ok, err)
	}
	want := Pair[Text, Text]{First: Owned("a"), Second: Owned("b")}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("unexpected value (-want +got):\n%s", diff)
	}
	if in.Position() != 2 {
		t.Errorf("got position %d; want 2", in.Position())
	}

	// second side fails: the whole sequence is undone
	in = NewInput("ac")
	if _, ok, err := p.Parse(in); ok || err != nil {
		t.Fatalf("expected no match; got ok=%v err=%v", ok, err)
	}
	if in.Position() != 0 {
		t.Errorf("partial sequence left input at %d", in.Position())
	}
}

func TestThenFatal(t *testing.T) {
	in := NewInput("xabc")
	in.ResetTo(1)

	first := Then(Fail[Text](Unrecognized, "boom"), Literal("a"))
	if _, _, err := first.Parse(in); !errors.Is(err, Unrecognized) {
		t.Fatalf("expected Unrecognized; got %v", err)
	}
	if in.Position() != 1 {
		t.Errorf("fatal first side: got position %d; want 1", in.Position())
	}

	// a fatal error from the second side is passed on without resetting
	second := Then(Literal("a"), TakeUntil("}", "}}"))
	_, _, err := second.Parse(in)
	if !errors.Is(err, Unterminated) {
		t.Fatalf("expected Unterminated; got %v", err)
	}
	if in.Position() != 2 {
		t.Errorf("fatal second side: got position %d; want 2", in.Position())
	}
	var perr *Error
	if !errors.As(err, &perr) || perr.Pos != 2 {
		t.Errorf("expected *Error at offset 2; got %#v", err)
	}
}

func TestIgnoreThenThenIgnore(t *testing.T) {
	in := NewInput("{x}")
	v, ok, err := IgnoreThen(Literal("{"), Literal("x")).Parse(in)
	if err != nil || !ok || v.String() != "x" {
		t.Fatalf("IgnoreThen: got %q ok=%v err=%v", v, ok, err)
	}

	in = NewInput("{x}")
	v, ok, err = ThenIgnore(Literal("{"), Literal("x")).Parse(in)
	if err != nil || !ok || v.String() != "{" {
		t.Fatalf("ThenIgnore: got %q ok=%v err=%v", v, ok, err)
	}
	if in.Position() != 2 {
		t.Errorf("ThenIgnore: got position %d; want 2", in.Position())
	}
}

func TestOptional(t *testing.T) {
	p := Optional(Literal("x"))

	in := NewInput("abc")
	v, ok, err := p.Parse(in)
	if err != nil || !ok || v.Valid {
		t.Fatalf("absent: got %#v ok=%v err=%v", v, ok, err)
	}
	if in.Position() != 0 {
		t.Errorf("absent optional moved input to %d", in.Position())
	}

	in = NewInput("xbc")
	v, ok, err = p.Parse(in)
	if err != nil || !ok || !v.Valid || v.Value.String() != "x" {
		t.Fatalf("present: got %#v ok=%v err=%v", v, ok, err)
	}

	_, ok, err = Optional(Fail[int](Unterminated, "boom")).Parse(NewInput(""))
	if ok || !errors.Is(err, Unterminated) {
		t.Errorf("fatal error was not passed through: ok=%v err=%v", ok, err)
	}
}

func TestMap(t *testing.T) {
	p := Map(Literal("abc"), func(t Text) int { return len(t.String()) })

	v, ok, err := p.Parse(NewInput("abcd"))
	if err != nil || !ok || v != 3 {
		t.Fatalf("got %v ok=%v err=%v", v, ok, err)
	}

	calls := 0
	q := Map(Literal("z"), func(Text) int { calls++; return 0 })
	if _, ok, _ := q.Parse(NewInput("abc")); ok || calls != 0 {
		t.Errorf("Map called its function without a match: ok=%v calls=%d", ok, calls)
	}
}

func TestSelectPriority(t *testing.T) {
	escape := Map(Literal("{{"), func(Text) string { return "escape" })
	open := Map(Literal("{"), func(Text) string { return "open" })

	checks := []struct {
		p    Parser[string]
		want string
	}{
		{Select(escape, open), "escape"},
		{Select(open, escape), "open"},
	}

	for i, c := range checks {
		v, ok, err := c.p.Parse(NewInput("{{x"))
		if err != nil || !ok {
			t.Fatalf("%d: expected match; got ok=%v err=%v", i, ok, err)
		}
		if v != c.want {
			t.Errorf("%d: got %q; want %q", i, v, c.want)
		}
	}
}

func TestSelectDoesNotCatchFatal(t *testing.T) {
	block := Map(Then(Literal("{"), TakeUntil("}", "}}")), func(Pair[Text, Text]) string { return "block" })
	lit := Map(Literal("{"), func(Text) string { return "literal" })

	_, ok, err := Select(block, lit).Parse(NewInput("{abc"))
	if ok || !errors.Is(err, Unterminated) {
		t.Fatalf("expected Unterminated; got ok=%v err=%v", ok, err)
	}
}

func TestSelectResetsBetweenAlternatives(t *testing.T) {
	// an ill-behaved alternative that consumes and then reports no match
	greedy := Func[string](func(in *Input) (string, bool, error) {
		in.ConsumeAll()
		return "", false, nil
	})
	b := Map(Literal("ab"), func(t Text) string { return t.String() })

	v, ok, err := Select[string](greedy, b).Parse(NewInput("abc"))
	if err != nil || !ok || v != "ab" {
		t.Fatalf("got %q ok=%v err=%v", v, ok, err)
	}

	in := NewInput("abc")
	if _, ok, _ := Select[string](greedy).Parse(in); ok || in.Position() != 0 {
		t.Errorf("no-match Select left input at %d", in.Position())
	}
}

func TestNoMatchLeavesInput(t *testing.T) {
	const src = "x  ab"
	const start = 1

	noMatchLeavesInput(t, "Literal", Literal("q"), src, start)
	noMatchLeavesInput(t, "Whitespace1", Whitespace1(), "xab", start)
	noMatchLeavesInput(t, "Then", Then(Whitespace(), Literal("q")), src, start)
	noMatchLeavesInput(t, "IgnoreThen", IgnoreThen(Whitespace(), Literal("q")), src, start)
	noMatchLeavesInput(t, "ThenIgnore", ThenIgnore(Whitespace(), Literal("q")), src, start)
	noMatchLeavesInput(t, "nested Then", Then(Then(Whitespace(), Literal("a")), Literal("q")), src, start)
	noMatchLeavesInput(t, "Then with Optional", Then(Optional(Whitespace1()), Literal("q")), src, start)
	noMatchLeavesInput(t, "Map", Map(Literal("q"), func(t Text) string { return t.String() }), src, start)
	noMatchLeavesInput(t, "Select", Select(Literal("q"), ThenIgnore(Whitespace(), Literal("z"))), src, start)
	noMatchLeavesInput(t, "NoMatch", NoMatch[Text](), src, start)
}

func noMatchLeavesInput[T any](t *testing.T, name string, p Parser[T], src string, start int) {
	t.Helper()

	in := NewInput(src)
	in.ResetTo(start)

	_, ok, err := p.Parse(in)
	if err != nil {
		t.Errorf("%v: unexpected error: %v", name, err)
		return
	}
	if ok {
		t.Errorf("%v: expected no match on %q", name, src[start:])
		return
	}
	if got := in.Position(); got != start {
		t.Errorf("%v: no match moved input from %d to %d", name, start, got)
	}
}
