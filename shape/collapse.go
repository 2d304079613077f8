package shape

import "github.com/signadot/feedxml/ir"

// CollapseDuplicates returns a Func which applies SlurpDuplicates to every
// array held by an object field, and to node itself, before recursing.
// Reserved fields are copied as is.
func CollapseDuplicates(keys ir.Keys) Func {
	visit := Every(func(visit Func, node *ir.Node) *ir.Node {
		kvs := make([]ir.KeyVal, len(node.Fields))
		for i, f := range node.Fields {
			v := node.Values[i]
			if !keys.IsReserved(f) {
				v = visit(SlurpDuplicates(v))
			}
			kvs[i] = ir.KeyVal{Key: f, Val: v}
		}
		return ir.FromKeyVals(kvs)
	})
	return func(node *ir.Node) *ir.Node {
		return visit(SlurpDuplicates(node))
	}
}

// SlurpDuplicates replaces each entry {k: [e1, e2, ...]} of an array by
// e1, e2, ... when every ei is an object with a field k. Other entries are
// kept. Non arrays are returned unchanged.
func SlurpDuplicates(node *ir.Node) *ir.Node {
	if node == nil || node.Type != ir.ArrayType {
		return node
	}
	vals := make([]*ir.Node, 0, len(node.Values))
	for _, item := range node.Values {
		vals = append(vals, slurpItem(item)...)
	}
	return ir.FromSlice(vals)
}

func slurpItem(item *ir.Node) []*ir.Node {
	keep := []*ir.Node{item}
	if item == nil || item.Type != ir.ObjectType || len(item.Fields) != 1 {
		return keep
	}
	k, v := item.Fields[0], item.Values[0]
	if v == nil || v.Type != ir.ArrayType {
		return keep
	}
	for _, sub := range v.Values {
		if !ir.Has(sub, k) {
			return keep
		}
	}
	return v.Values
}
