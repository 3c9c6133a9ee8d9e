package template

import (
	"strings"

	"myitcv.io/stardust/parser"
)

// Render writes items back out as template source using d. Tokenizing the
// result with d gives items equal to MergeLiterals(items), provided the items
// themselves came from tokenizing with d. Statement text is preceded by a
// single space.
func Render(items []Item, d Delims) string {
	var sb strings.Builder

	// one pass, so the escape of one opener is never itself re-escaped
	// when the statement opener contains the expression opener
	lit := strings.NewReplacer(
		d.StmtOpen, d.escapeOpen(d.StmtOpen),
		d.ExprOpen, d.escapeOpen(d.ExprOpen),
	)

	for _, i := range MergeLiterals(items) {
		switch i.Type {
		case ItemLiteral:
			lit.WriteString(&sb, i.Text())
		case ItemExpression:
			sb.WriteString(d.ExprOpen)
			sb.WriteString(strings.ReplaceAll(i.Text(), d.ExprClose, d.escapeClose(d.ExprClose)))
			sb.WriteString(d.ExprClose)
		case ItemStatement:
			sb.WriteString(d.StmtOpen)
			sb.WriteString(" ")
			sb.WriteString(strings.ReplaceAll(i.Text(), d.StmtClose, d.escapeClose(d.StmtClose)))
			sb.WriteString(d.StmtClose)
		}
	}

	return sb.String()
}

// MergeLiterals coalesces runs of adjacent literal items into one item
// positioned at the start of the run. Other items are returned as is.
func MergeLiterals(items []Item) []Item {
	var res []Item
	for _, i := range items {
		if n := len(res); n > 0 && i.Type == ItemLiteral && res[n-1].Type == ItemLiteral {
			res[n-1].Val = parser.Owned(res[n-1].Text() + i.Text())
			continue
		}
		res = append(res, i)
	}
	return res
}
