package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/feedxml/encode"
	"github.com/signadot/feedxml/format"
	"github.com/signadot/feedxml/ir"
	"github.com/signadot/feedxml/libdiff"
	"github.com/signadot/feedxml/parse"
	"github.com/signadot/feedxml/shape"
)

func trace(cfg *TraceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Trace.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := inputArg(args)
	if err != nil {
		return err
	}
	doc, err := parse.ParseFile(path, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	return writeTrace(cc.Out, cfg.pipeline().Trace(doc), doc, cfg.Full, cfg.colors(cc.Out))
}

func writeTrace(w io.Writer, stages []shape.StageResult, in *ir.Node, full bool, colors *libdiff.Colors) error {
	prev, err := dump(in)
	if err != nil {
		return err
	}
	for _, st := range stages {
		cur, err := dump(st.Node)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "# %s\n", st.Name)
		lines := libdiff.Lines(prev, cur)
		switch {
		case full:
			fmt.Fprint(w, cur)
		case !libdiff.Changed(lines):
			fmt.Fprintln(w, " (unchanged)")
		default:
			if err := libdiff.Write(w, lines, colors); err != nil {
				return err
			}
		}
		prev = cur
	}
	return nil
}

func dump(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
