// stardust tokenizes templates and prints the resulting items.
//
// It is a debugging aid for template authors and for code generators that
// consume myitcv.io/stardust/template: it shows exactly which parts of a
// template are literal text, which are expressions and which are
// statements.
package main // import "myitcv.io/stardust/cmd/stardust"

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/xerrors"

	"myitcv.io/stardust/parser"
	"myitcv.io/stardust/template"
)

const (
	outText   = "text"
	outJson   = "json"
	outRender = "render"

	envDelims = "STARDUST_DELIMS"
)

type context struct {
	fDebug  *bool
	fOut    *string
	fMerge  *bool
	fNFC    *bool
	fDelims *string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	tk   *template.Tokenizer
	args []string
}

func main() { os.Exit(main1()) }

func main1() int {
	c := &context{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	err := c.mainerr(os.Args[1:])
	if err == nil {
		return 0
	}
	switch err := err.(type) {
	case usageErr:
		fmt.Fprintln(c.stderr, err.Error())
		err.flagSet.Usage()
		return 2
	case flagErr:
		return 2
	}
	fmt.Fprintln(c.stderr, err)
	return 1
}

func (c *context) mainerr(args []string) error {
	fs := flag.NewFlagSet("stardust", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = usage{fs, c.stderr}.usage

	defDelims := os.Getenv(envDelims)
	if defDelims == "" {
		defDelims = template.DefaultDelims().String()
	}

	c.fDebug = fs.Bool("debug", false, "print debug information to stderr")
	c.fOut = fs.String("out", outText, "output format; text(default)|json|render")
	c.fMerge = fs.Bool("merge", false, "merge adjacent literal items before printing")
	c.fNFC = fs.Bool("nfc", false, "normalize input to Unicode NFC before tokenizing; offsets then refer to the normalized text")
	c.fDelims = fs.String("delims", defDelims, "space-separated expression open, expression close, statement open and statement close markers (default from $"+envDelims+")")

	if err := fs.Parse(args); err != nil {
		return flagErr(err.Error())
	}

	switch *c.fOut {
	case outText, outJson, outRender:
	default:
		return usageErr{fmt.Sprintf("unknown option to -out: %v", *c.fOut), fs}
	}

	d, err := template.ParseDelims(*c.fDelims)
	if err != nil {
		return usageErr{fmt.Sprintf("bad -delims: %v", err), fs}
	}
	c.tk, err = template.New(d)
	if err != nil {
		return err
	}
	c.debugf("delimiters: %v", d)

	c.args = fs.Args()
	if len(c.args) == 0 {
		return c.run("<stdin>", c.stdin)
	}

	for _, fn := range c.args {
		f, err := os.Open(fn)
		if err != nil {
			return xerrors.Errorf("failed to open %v: %w", fn, err)
		}
		err = c.run(fn, f)
		f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *context) run(name string, r io.Reader) error {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return xerrors.Errorf("failed to read %v: %w", name, err)
	}

	src := string(b)
	if *c.fNFC {
		src = norm.NFC.String(src)
	}
	c.debugf("%v: read %d bytes", name, len(src))

	items, err := c.tk.Parse(src)
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			line, col := parser.LineCol(src, perr.Pos)
			return fmt.Errorf("%v:%d:%d: %v", name, line, col, perr.Msg)
		}
		return xerrors.Errorf("failed to tokenize %v: %w", name, err)
	}
	c.debugf("%v: %d items", name, len(items))

	if *c.fMerge {
		items = template.MergeLiterals(items)
	}

	out := new(bytes.Buffer)
	p := printer{out: out, src: src, name: name}
	switch *c.fOut {
	case outText:
		p.text(items, len(c.args) > 1)
	case outJson:
		if err := p.json(items); err != nil {
			return err
		}
	case outRender:
		out.WriteString(template.Render(items, c.tk.Delims()))
	}

	if _, err := io.Copy(c.stdout, out); err != nil {
		return xerrors.Errorf("failed to write output for %v: %w", name, err)
	}
	return nil
}

func (c *context) debugf(format string, args ...interface{}) {
	if format[len(format)-1] != '\n' {
		format += "\n"
	}
	if *c.fDebug {
		fmt.Fprintf(c.stderr, format, args...)
	}
}
