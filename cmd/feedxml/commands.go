package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/feedxml/eval"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: xml/x, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "feedxml").
		WithSynopsis("feedxml [opts] command [opts]").
		WithDescription("feedxml builds feed envelopes and renders them as XML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return feedxmlMain(cfg, cc, args)
		}).
		WithSubs(
			BuildCommand(cfg),
			NormalizeCommand(cfg),
			TraceCommand(cfg))
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg, Env: eval.Env{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "e",
		Description: "set an expression variable",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
	})
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [-m merchant] [-t type] [-p patch] [-e path=val]... [file] [-- path=val ...]").
		WithDescription(buildDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

const buildDescription = `build reads a message document and writes it as a feed envelope.

The document is JSON or YAML read from file or stdin. If it has a Message
field, its MerchantIdentifier (or Header.MerchantIdentifier) and MessageType
fields fill the envelope header, otherwise the whole document is the message.
-m and -t override what the document says.

Before the envelope is built, string values are expanded against the
environment given with '-e path=val' or after '--':

  .[expr]    is replaced by the value of expr
  $[expr]    is replaced by the text of expr's value inside a string

and the RFC 6902 JSON patch given with -p, if any, is applied.`

func envOptTypeFunc(env eval.Env) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		path, val, ok := strings.Cut(a, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("%w: expected path=val, got %q", cli.ErrUsage, a)
		}
		if err := env.Set(path, val); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func NormalizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NormalizeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Normalize, "normalize").
		WithAliases("n", "norm").
		WithSynopsis("normalize [file]").
		WithDescription("print the canonical form of a document (yaml unless -O is given)").
		WithRun(func(cc *cli.Context, args []string) error {
			return normalize(cfg, cc, args)
		})
}

func TraceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TraceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Trace, "trace").
		WithAliases("tr").
		WithSynopsis("trace [file]").
		WithDescription("show how each normalization stage changes a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return trace(cfg, cc, args)
		})
}
