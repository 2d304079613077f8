package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/feedxml"
	"github.com/signadot/feedxml/encode"
	"github.com/signadot/feedxml/eval"
	"github.com/signadot/feedxml/format"
	"github.com/signadot/feedxml/ir"
	"github.com/signadot/feedxml/libdiff"
	"github.com/signadot/feedxml/parse"
	"github.com/signadot/feedxml/shape"
)

type MainConfig struct {
	Pretty  bool   `cli:"name=pretty desc='indent output'"`
	Color   bool   `cli:"name=color desc='color diffs'"`
	Charset string `cli:"name=charset desc='xml output character set (default ISO-8859-1)'"`
	AttrKey string `cli:"name=attr desc='attribute field name (default @)'"`
	TextKey string `cli:"name=text desc='literal text field name (default _cdata)'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log pipeline stages'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) keys() ir.Keys {
	keys := ir.DefaultKeys()
	if cfg.AttrKey != "" {
		keys.Attr = cfg.AttrKey
	}
	if cfg.TextKey != "" {
		keys.Text = cfg.TextKey
	}
	return keys
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.InFormat == nil {
		return nil
	}
	return []parse.ParseOption{parse.ParseFormat(*cfg.InFormat)}
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) pipeline() *shape.Pipeline {
	return shape.NewPipeline(shape.WithKeys(cfg.keys()), shape.WithLogger(theLog))
}

func (cfg *MainConfig) encOpts(f format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.Keys(cfg.keys()),
		encode.Pretty(cfg.Pretty),
	}
	if cfg.Charset != "" {
		res = append(res, encode.Charset(cfg.Charset))
	}
	return res
}

func (cfg *MainConfig) feedOpts() []feedxml.Option {
	return []feedxml.Option{
		feedxml.WithPipeline(cfg.pipeline()),
		feedxml.WithEncodeOptions(cfg.encOpts(format.XMLFormat)...),
	}
}

// colors returns diff colors when -color is set, or when it is not given
// and w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *libdiff.Colors {
	if cfg.Color {
		return libdiff.NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return nil
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return libdiff.NewColors()
	}
	return nil
}

type BuildConfig struct {
	*MainConfig
	Env eval.Env

	Merchant string `cli:"name=m aliases=merchant desc='merchant identifier'"`
	Type     string `cli:"name=t aliases=type desc='message type'"`
	Patch    string `cli:"name=p aliases=patch desc='json patch file applied to the document'"`
	OSEnv    bool   `cli:"name=osenv desc='expose the process environment as env'"`
	Schema   string `cli:"name=schema desc='schema location (default amzn-envelope.xsd)'"`

	Build *cli.Command
}

type NormalizeConfig struct {
	*MainConfig

	Normalize *cli.Command
}

type TraceConfig struct {
	*MainConfig
	Full bool `cli:"name=full desc='print every stage output, not only diffs'"`

	Trace *cli.Command
}
