package template

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Delims are the markers that open and close embedded code.
//
// Each marker has an escaped form: an opener followed by another copy of its
// last character stands for the opener as literal text ({{ for {, <## for
// <#), and a closer whose first character is doubled stands for the closer
// inside a block (}} for }, ##> for #>).
type Delims struct {
	ExprOpen  string
	ExprClose string
	StmtOpen  string
	StmtClose string
}

// DefaultDelims returns { } <# #>.
func DefaultDelims() Delims {
	return Delims{
		ExprOpen:  "{",
		ExprClose: "}",
		StmtOpen:  "<#",
		StmtClose: "#>",
	}
}

// ParseDelims parses four space-separated markers in the order expression
// open, expression close, statement open, statement close.
func ParseDelims(s string) (Delims, error) {
	fs := strings.Fields(s)
	if len(fs) != 4 {
		return Delims{}, fmt.Errorf("expected 4 delimiters; got %d in %q", len(fs), s)
	}
	d := Delims{
		ExprOpen:  fs[0],
		ExprClose: fs[1],
		StmtOpen:  fs[2],
		StmtClose: fs[3],
	}
	if err := d.Validate(); err != nil {
		return Delims{}, err
	}
	return d, nil
}

// Validate reports whether the tokenizer can tell d's markers and their
// escaped forms apart.
func (d Delims) Validate() error {
	for _, m := range []struct{ name, v string }{
		{"expression open", d.ExprOpen},
		{"expression close", d.ExprClose},
		{"statement open", d.StmtOpen},
		{"statement close", d.StmtClose},
	} {
		if m.v == "" {
			return fmt.Errorf("%v delimiter is empty", m.name)
		}
		if strings.TrimSpace(m.v) != m.v {
			return fmt.Errorf("%v delimiter %q has surrounding white space", m.name, m.v)
		}
	}
	if strings.HasPrefix(d.StmtOpen, d.ExprOpen) {
		return fmt.Errorf("expression open %q shadows statement open %q", d.ExprOpen, d.StmtOpen)
	}
	if strings.HasPrefix(d.escapeOpen(d.ExprOpen), d.StmtOpen) || strings.HasPrefix(d.escapeOpen(d.StmtOpen), d.ExprOpen) {
		return fmt.Errorf("escaped openers of %q and %q overlap", d.ExprOpen, d.StmtOpen)
	}
	return nil
}

func (d Delims) String() string {
	return strings.Join([]string{d.ExprOpen, d.ExprClose, d.StmtOpen, d.StmtClose}, " ")
}

// escapeOpen returns s followed by its last character.
func (d Delims) escapeOpen(s string) string {
	_, w := utf8.DecodeLastRuneInString(s)
	return s + s[len(s)-w:]
}

// escapeClose returns s with its first character doubled.
func (d Delims) escapeClose(s string) string {
	_, w := utf8.DecodeRuneInString(s)
	return s[:w] + s
}

// starters returns the first character of each opener; a literal run ends
// before any of them.
func (d Delims) starters() string {
	_, ew := utf8.DecodeRuneInString(d.ExprOpen)
	_, sw := utf8.DecodeRuneInString(d.StmtOpen)
	return d.ExprOpen[:ew] + d.StmtOpen[:sw]
}
