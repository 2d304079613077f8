package encode

import (
	"io"

	"github.com/signadot/feedxml/format"
	"github.com/signadot/feedxml/ir"
)

// Encode writes node to w. The default format is XML in the
// DefaultCharset with a declaration and no indentation.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		keys:    ir.DefaultKeys(),
		charset: DefaultCharset,
		decl:    true,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.YAMLFormat:
		return encodeYAML(node, w)
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	default:
		return encodeXML(node, w, es)
	}
}
