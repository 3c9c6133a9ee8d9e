// Package template splits template source into literal text and embedded
// code blocks, for consumption by a code generator.
//
// With the default delimiters, {expr} is an expression block, <# stmt #> is
// a statement block and everything else is literal text. {{ and <## are the
// literal forms of { and <#; inside a block, }} and ##> are the literal
// forms of the closers. Embedded code is not parsed: the tokenizer only finds
// where each block ends.
package template // import "myitcv.io/stardust/template"

import (
	"myitcv.io/stardust/parser"
)

// Tokenizer is the grammar for one set of Delims. A Tokenizer holds no
// per-call state; it is safe for concurrent use.
type Tokenizer struct {
	delims Delims
	item   parser.Parser[Item]
}

var defaultTokenizer = mustNew(DefaultDelims())

// Parse tokenizes src with the default delimiters.
func Parse(src string) ([]Item, error) {
	return defaultTokenizer.Parse(src)
}

// New returns a Tokenizer for d, or an error if d fails Validate.
func New(d Delims) (*Tokenizer, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	t := &Tokenizer{delims: d}

	// longest match first: the escapes must come before the blocks they
	// would otherwise open
	t.item = parser.Select(
		t.escape(),
		t.expression(),
		t.statement(),
		t.component(),
		t.literal(),
	)

	return t, nil
}

func mustNew(d Delims) *Tokenizer {
	t, err := New(d)
	if err != nil {
		panic(err)
	}
	return t
}

// Delims returns the delimiters t was built with.
func (t *Tokenizer) Delims() Delims {
	return t.delims
}

// Parse tokenizes src. On error no items are returned; the error is a
// *parser.Error.
func (t *Tokenizer) Parse(src string) ([]Item, error) {
	in := parser.NewInput(src)

	var items []Item
	for !in.IsAtEnd() {
		pos := in.Position()

		i, ok, err := t.item.Parse(in)
		if err != nil {
			return nil, err
		}
		if !ok || in.Position() == pos {
			return nil, parser.Errorf(parser.Unrecognized, pos, "unrecognized content")
		}

		i.Pos = pos
		items = append(items, i)
	}

	return items, nil
}

func (t *Tokenizer) escape() parser.Parser[Item] {
	escaped := func(open string) parser.Parser[Item] {
		return parser.Map(parser.Literal(t.delims.escapeOpen(open)), func(parser.Text) Item {
			return Item{Type: ItemLiteral, Val: parser.Owned(open)}
		})
	}
	return parser.Select(
		escaped(t.delims.ExprOpen),
		escaped(t.delims.StmtOpen),
	)
}

func (t *Tokenizer) expression() parser.Parser[Item] {
	d := t.delims
	body := parser.Map(parser.TakeUntil(d.ExprClose, d.escapeClose(d.ExprClose)), func(v parser.Text) Item {
		return Item{Type: ItemExpression, Val: v}
	})
	return parser.ThenIgnore(
		parser.IgnoreThen(parser.Literal(d.ExprOpen), body),
		parser.Literal(d.ExprClose),
	)
}

// statement drops white space after the opener, so "<# x #>" gives the
// statement "x ". Trailing white space is kept.
func (t *Tokenizer) statement() parser.Parser[Item] {
	d := t.delims
	open := parser.IgnoreThen(parser.Literal(d.StmtOpen), parser.Whitespace())
	body := parser.Map(parser.TakeUntil(d.StmtClose, d.escapeClose(d.StmtClose)), func(v parser.Text) Item {
		return Item{Type: ItemStatement, Val: v}
	})
	return parser.ThenIgnore(
		parser.IgnoreThen(open, body),
		parser.Literal(d.StmtClose),
	)
}

// TODO: child-template inclusion, producing ItemComponent.
func (t *Tokenizer) component() parser.Parser[Item] {
	return parser.NoMatch[Item]()
}

// literal always consumes at least one character, even one that starts a
// delimiter no other alternative matched, and then runs up to the next
// possible delimiter.
func (t *Tokenizer) literal() parser.Parser[Item] {
	starters := t.delims.starters()
	return parser.Func[Item](func(in *parser.Input) (Item, bool, error) {
		if in.IsAtEnd() {
			return Item{}, false, nil
		}
		lead, err := in.ConsumeCount(1)
		if err != nil {
			return Item{}, false, err
		}
		rest, ok := in.ConsumeUntilAny(starters)
		if !ok {
			rest = in.ConsumeAll()
		}
		return Item{
			Type: ItemLiteral,
			Val:  in.Combine(in.Text(lead), in.Text(rest)),
		}, true, nil
	})
}
