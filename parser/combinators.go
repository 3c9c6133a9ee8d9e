package parser

type then[A, B any] struct {
	p1 Parser[A]
	p2 Parser[B]
}

// Then runs p1 and then p2. The sequence is atomic: if either side does not
// match, the Input is reset to where p1 started and Then does not match. A
// fatal error from p1 also resets; a fatal error from p2 is passed on as is.
func Then[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	return then[A, B]{p1: p1, p2: p2}
}

func (t then[A, B]) Parse(in *Input) (Pair[A, B], bool, error) {
	pos := in.Position()

	a, ok, err := t.p1.Parse(in)
	if err != nil || !ok {
		in.ResetTo(pos)
		return Pair[A, B]{}, false, err
	}

	b, ok, err := t.p2.Parse(in)
	if err != nil {
		return Pair[A, B]{}, false, err
	}
	if !ok {
		in.ResetTo(pos)
		return Pair[A, B]{}, false, nil
	}

	return Pair[A, B]{First: a, Second: b}, true, nil
}

// IgnoreThen is Then keeping only the value of p2.
func IgnoreThen[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(Then(p1, p2), func(p Pair[A, B]) B { return p.Second })
}

// ThenIgnore is Then keeping only the value of p1.
func ThenIgnore[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(Then(p1, p2), func(p Pair[A, B]) A { return p.First })
}

type optional[T any] struct {
	p Parser[T]
}

// Optional matches whatever p matches, and matches an invalid Option without
// consuming input where p does not match. Fatal errors pass through.
func Optional[T any](p Parser[T]) Parser[Option[T]] {
	return optional[T]{p: p}
}

func (o optional[T]) Parse(in *Input) (Option[T], bool, error) {
	v, ok, err := o.p.Parse(in)
	if err != nil {
		return Option[T]{}, false, err
	}
	return Option[T]{Value: v, Valid: ok}, true, nil
}

type mapper[T, U any] struct {
	p Parser[T]
	f func(T) U
}

// Map applies f to the value of each match of p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return mapper[T, U]{p: p, f: f}
}

func (m mapper[T, U]) Parse(in *Input) (U, bool, error) {
	v, ok, err := m.p.Parse(in)
	if err != nil || !ok {
		var zero U
		return zero, false, err
	}
	return m.f(v), true, nil
}

type choice[T any] []Parser[T]

// Select tries each of alts in order from the same starting position and
// returns the first match. A fatal error from any alternative ends the
// choice: later alternatives are not tried.
func Select[T any](alts ...Parser[T]) Parser[T] {
	return choice[T](alts)
}

func (c choice[T]) Parse(in *Input) (T, bool, error) {
	pos := in.Position()
	for _, p := range c {
		v, ok, err := p.Parse(in)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if ok {
			return v, true, nil
		}
		in.ResetTo(pos)
	}
	var zero T
	return zero, false, nil
}
