// Package parse decodes JSON or YAML documents into ir nodes.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/feedxml/format"
	"github.com/signadot/feedxml/ir"
)

type parseOpts struct {
	format format.Format
	strict bool
}

type ParseOption func(*parseOpts)

// ParseFormat restricts input to a format. JSONFormat rejects YAML only
// syntax; any other format accepts both.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.strict = f.IsJSON()
	}
}

// Parse decodes d keeping object field order. null becomes the absent
// marker and booleans become the strings "true" and "false".
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	po := &parseOpts{format: format.YAMLFormat}
	for _, opt := range opts {
		opt(po)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmpty
	}
	if po.strict && !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid json", ErrParse)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAML(v)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

// ParseFile parses the named file, "-" being stdin.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	if path == "-" {
		return ParseReader(os.Stdin, opts...)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	node, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		seen := make(map[string]bool, len(x))
		for _, item := range x {
			key := fmt.Sprint(item.Key)
			if seen[key] {
				return nil, fmt.Errorf("%w %q", ErrDupField, key)
			}
			seen[key] = true
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i := range x {
			val, err := fromYAML(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	default:
		node, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return node, nil
	}
}
