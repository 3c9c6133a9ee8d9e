package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const usageWidth = 80

type usageErr struct {
	err     string
	flagSet *flag.FlagSet
}

func (u usageErr) Error() string { return u.err }

type flagErr string

func (f flagErr) Error() string { return string(f) }

type usage struct {
	*flag.FlagSet
	out io.Writer
}

func (u usage) usage() {
	res := new(strings.Builder)
	fmt.Fprint(res, `
Usage:

  stardust [flags] [FILE ...]

stardust tokenizes each FILE (or stdin when none is given) into literal,
expression and statement items and prints them.

Flags:
`[1:])

	// this feels a bit gross...
	u.SetOutput(res)
	u.PrintDefaults()
	u.SetOutput(u.out)

	fmt.Fprintln(u.out, foldOnSpaces(res.String(), usageWidth))
}

// foldOnSpaces wraps each line of input at white space so that lines stay
// narrower than width. Width is counted in NFC characters. A wrapped line
// keeps the indent of the line it came from; a single word wider than width
// is left whole.
func foldOnSpaces(input string, width int) string {
	res := new(strings.Builder)

	for i, line := range strings.Split(input, "\n") {
		if i > 0 {
			res.WriteString("\n")
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]

		res.WriteString(indent)
		n := charCount(indent)
		start := n

		for _, w := range words {
			wn := charCount(w)
			if n > start && n+1+wn >= width {
				res.WriteString("\n")
				res.WriteString(indent)
				n = start
			}
			if n > start {
				res.WriteString(" ")
				n++
			}
			res.WriteString(w)
			n += wn
		}
	}

	return res.String()
}

func charCount(s string) int {
	var it norm.Iter
	it.InitString(norm.NFC, s)

	n := 0
	for !it.Done() {
		it.Next()
		n++
	}
	return n
}
