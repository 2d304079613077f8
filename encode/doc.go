package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/feedxml/ir"
)

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	_, err = w.Write(d)
	return err
}

// toYAML keeps object field order through yaml.MapSlice.
func toYAML(node *ir.Node) any {
	if ir.IsAbsent(node) {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f, Value: toYAML(node.Values[i])}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAML(v)
		}
		return res
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64
		case node.Float64 != nil:
			return *node.Float64
		}
		return node.Number
	default:
		return node.String
	}
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := ir.ToJSON(node)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	if es.pretty {
		buf := bytes.NewBuffer(nil)
		if err := json.Indent(buf, d, "", "  "); err != nil {
			return err
		}
		d = buf.Bytes()
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}
