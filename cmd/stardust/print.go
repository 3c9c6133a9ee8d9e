package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/xerrors"

	"myitcv.io/stardust/parser"
	"myitcv.io/stardust/template"
)

type printer struct {
	out  *bytes.Buffer
	src  string
	name string
}

// text prints one item per line as
//
//	[name:]line:col: Type "text"
func (p printer) text(items []template.Item, withName bool) {
	for _, i := range items {
		if withName {
			fmt.Fprintf(p.out, "%v:", p.name)
		}
		line, col := parser.LineCol(p.src, i.Pos)
		fmt.Fprintf(p.out, "%d:%d: %v %q\n", line, col, i.Type, i.Text())
	}
}

type jsonItem struct {
	File string `json:"file"`
	Type string `json:"type"`
	Pos  int    `json:"pos"`
	Text string `json:"text"`

	// Owned is true when Text had to be assembled rather than sliced from
	// the source.
	Owned bool `json:"owned"`
}

func (p printer) json(items []template.Item) error {
	enc := json.NewEncoder(p.out)
	enc.SetEscapeHTML(false)
	for _, i := range items {
		v := jsonItem{
			File:  p.name,
			Type:  i.Type.String(),
			Pos:   i.Pos,
			Text:  i.Text(),
			Owned: i.Val.IsOwned(),
		}
		if err := enc.Encode(v); err != nil {
			return xerrors.Errorf("failed to encode item %v: %w", i, err)
		}
	}
	return nil
}
