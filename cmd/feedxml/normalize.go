package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/feedxml"
	"github.com/signadot/feedxml/encode"
	"github.com/signadot/feedxml/format"
	"github.com/signadot/feedxml/parse"
)

func normalize(cfg *NormalizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Normalize.Parse(cc, args)
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
	f := cfg.outFormat(format.YAMLFormat)
	if f.IsXML() {
		return feedxml.CreateXML(doc, cc.Out, cfg.feedOpts()...)
	}
	return encode.Encode(cfg.pipeline().Run(doc), cc.Out, cfg.encOpts(f)...)
}
