package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/feedxml"
	"github.com/signadot/feedxml/encode"
	"github.com/signadot/feedxml/envelope"
	"github.com/signadot/feedxml/eval"
	"github.com/signadot/feedxml/format"
	"github.com/signadot/feedxml/ir"
	"github.com/signadot/feedxml/parse"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	args, err = parseEnvExtras(cfg, cc, args)
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
	var patch *ir.Node
	if cfg.Patch != "" {
		patch, err = parse.ParseFile(cfg.Patch, parse.ParseFormat(format.JSONFormat))
		if err != nil {
			return fmt.Errorf("error reading patch: %w", err)
		}
	}
	data, err := cfg.envelopeData(doc, patch)
	if err != nil {
		return err
	}
	theLog.Debug("build", "merchant", data.MerchantIdentifier, "type", data.MessageType)
	if data.MerchantIdentifier == "" || data.MessageType == "" {
		theLog.Warn("incomplete header", "merchant", data.MerchantIdentifier, "type", data.MessageType)
	}
	envOpts := []envelope.Option{envelope.AttrKey(cfg.keys().Attr)}
	if cfg.Schema != "" {
		envOpts = append(envOpts, envelope.SchemaLocation(cfg.Schema))
	}
	node := envelope.New(data, envOpts...)

	f := cfg.outFormat(format.XMLFormat)
	if f.IsXML() {
		return feedxml.CreateXML(node, cc.Out, cfg.feedOpts()...)
	}
	node = cfg.pipeline().Run(node)
	return encode.Encode(ir.FromField(envelope.RootName, node), cc.Out, cfg.encOpts(f)...)
}

// envelopeData expands, patches and splits doc into envelope data.
func (cfg *BuildConfig) envelopeData(doc, patch *ir.Node) (envelope.Data, error) {
	env := cfg.Env
	if env == nil {
		env = eval.Env{}
	}
	if cfg.OSEnv {
		env = env.WithOSEnv()
	}
	doc, err := eval.ExpandEnv(doc, env)
	if err != nil {
		return envelope.Data{}, err
	}
	if patch != nil {
		doc, err = eval.ApplyPatch(doc, patch)
		if err != nil {
			return envelope.Data{}, err
		}
	}
	var data envelope.Data
	if ir.Has(doc, "Message") || ir.Has(doc, envelope.RootName) {
		data, err = envelope.FromNode(doc)
		if err != nil {
			return envelope.Data{}, err
		}
	} else {
		data.Message = doc
	}
	if cfg.Merchant != "" {
		data.MerchantIdentifier = cfg.Merchant
	}
	if cfg.Type != "" {
		data.MessageType = cfg.Type
	}
	return data, nil
}

func parseEnvExtras(cfg *BuildConfig, cc *cli.Context, args []string) ([]string, error) {
	delim := -1
	for i, arg := range args {
		if arg == "--" {
			delim = i
			break
		}
	}
	if delim == -1 {
		return args, nil
	}
	f := envOptTypeFunc(cfg.Env)
	ret := args[:delim]
	for _, arg := range args[delim+1:] {
		if _, err := f(cc, arg); err != nil {
			return nil, err
		}
	}
	return ret, nil
}
