package encode

import (
	"github.com/signadot/feedxml/format"
	"github.com/signadot/feedxml/ir"
)

const DefaultCharset = "ISO-8859-1"

type EncState struct {
	format  format.Format
	root    string
	keys    ir.Keys
	pretty  bool
	charset string
	decl    bool
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Root names the document element. Without it an XML document must be a
// single field object whose field is the document element.
func Root(name string) EncodeOption {
	return func(es *EncState) { es.root = name }
}

func Keys(keys ir.Keys) EncodeOption {
	return func(es *EncState) { es.keys = keys }
}

func Pretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

func Charset(name string) EncodeOption {
	return func(es *EncState) { es.charset = name }
}

// Declaration controls the <?xml ...?> line.
func Declaration(v bool) EncodeOption {
	return func(es *EncState) { es.decl = v }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
