package shape

import (
	"slices"

	"github.com/signadot/feedxml/ir"
)

// EnsureArrays returns a Func which rewrites every container valued field f
// of an object:
//
//   - an array of scalars [s1, s2] becomes [{f: s1}, {f: s2}]
//   - anything else is replaced by its FanOut and recursed into
//
// Slots left empty by the recursion are dropped, and so is a field with
// no slots left. Reserved fields and scalar fields are copied as is.
func EnsureArrays(keys ir.Keys) Func {
	return Every(func(visit Func, node *ir.Node) *ir.Node {
		kvs := make([]ir.KeyVal, 0, len(node.Fields))
		for i, f := range node.Fields {
			v := node.Values[i]
			switch {
			case keys.IsReserved(f), !ir.IsContainer(v):
			case IsSimpleArray(v):
				items := make([]*ir.Node, len(v.Values))
				for j, item := range v.Values {
					items[j] = ir.FromField(f, item)
				}
				v = ir.FromSlice(items)
			default:
				v = visit(ir.FromSlice(FanOut(v)))
				v.Values = slices.DeleteFunc(v.Values, ir.IsEmpty)
			}
			if ir.IsContainer(v) && v.Len() == 0 && !keys.IsReserved(f) {
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: f, Val: v})
		}
		return ir.FromKeyVals(kvs)
	})
}

// IsSimpleArray reports whether node is an array holding only scalars.
func IsSimpleArray(node *ir.Node) bool {
	if node == nil || node.Type != ir.ArrayType {
		return false
	}
	for _, v := range node.Values {
		if !ir.IsScalar(v) {
			return false
		}
	}
	return true
}

// FanOut flattens node into sibling slots. An object gives one single
// field object per field, in order; an array gives the concatenation of
// the fan-out of its elements; a scalar gives itself. Absent values give
// nothing.
func FanOut(node *ir.Node) []*ir.Node {
	if ir.IsAbsent(node) {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := make([]*ir.Node, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = ir.FromField(f, node.Values[i])
		}
		return res
	case ir.ArrayType:
		var res []*ir.Node
		for _, v := range node.Values {
			res = append(res, FanOut(v)...)
		}
		return res
	default:
		return []*ir.Node{node}
	}
}
