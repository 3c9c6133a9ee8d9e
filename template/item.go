package template

import (
	"fmt"

	"myitcv.io/stardust/parser"
)

//go:generate gobin -m -run golang.org/x/tools/cmd/stringer -type=ItemType -trimprefix=Item -output=gen_itemtype_string.go

// ItemType identifies the kind of an Item.
type ItemType int

const (
	// ItemLiteral is text to be output verbatim.
	ItemLiteral ItemType = iota

	// ItemExpression is code to be evaluated and its value interpolated.
	ItemExpression

	// ItemStatement is code to be executed for its side effects.
	ItemStatement

	// ItemComponent is reserved for child-template inclusion. The tokenizer
	// never produces it.
	ItemComponent
)

// Item is one segment of a tokenized template.
type Item struct {
	Type ItemType
	Val  parser.Text

	// Pos is the byte offset in the source where the item started.
	Pos int
}

// Literal returns a literal item with text s.
func Literal(s string) Item {
	return Item{Type: ItemLiteral, Val: parser.Owned(s)}
}

// Expression returns an expression item with code s.
func Expression(s string) Item {
	return Item{Type: ItemExpression, Val: parser.Owned(s)}
}

// Statement returns a statement item with code s.
func Statement(s string) Item {
	return Item{Type: ItemStatement, Val: parser.Owned(s)}
}

func (i Item) Text() string {
	return i.Val.String()
}

func (i Item) String() string {
	return fmt.Sprintf("{typ: %v, val: %q}", i.Type, i.Val.String())
}
