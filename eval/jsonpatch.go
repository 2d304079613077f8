package eval

import (
	"fmt"
	"slices"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/feedxml/debug"
	"github.com/signadot/feedxml/format"
	"github.com/signadot/feedxml/ir"
	"github.com/signadot/feedxml/parse"
)

// ApplyPatch applies the RFC 6902 patch held by patch to a copy of doc.
// Fields of objects which survive the patch keep their original order,
// added fields follow them.
func ApplyPatch(doc, patch *ir.Node) (*ir.Node, error) {
	pd, err := ir.ToJSON(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := ir.ToJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patch gave %s\n", out)
	}
	res, err := parse.Parse(out, parse.ParseFormat(format.JSONFormat))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return keepOrder(doc, res), nil
}

func keepOrder(orig, patched *ir.Node) *ir.Node {
	if orig == nil || patched == nil || orig.Type != patched.Type {
		return patched
	}
	switch patched.Type {
	case ir.ArrayType:
		for i, v := range patched.Values {
			if i < len(orig.Values) {
				patched.Values[i] = keepOrder(orig.Values[i], v)
			}
		}
	case ir.ObjectType:
		kvs := patched.KeyVals()
		slices.SortStableFunc(kvs, func(a, b ir.KeyVal) int {
			return rank(orig, a.Key) - rank(orig, b.Key)
		})
		for i := range kvs {
			kvs[i].Val = keepOrder(ir.Get(orig, kvs[i].Key), kvs[i].Val)
		}
		return ir.FromKeyVals(kvs)
	}
	return patched
}

// rank orders fields known to orig by position and puts new ones last.
func rank(orig *ir.Node, field string) int {
	i := slices.Index(orig.Fields, field)
	if i == -1 {
		return len(orig.Fields)
	}
	return i
}
