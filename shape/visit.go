package shape

import "github.com/signadot/feedxml/ir"

// Func maps a tree to a new tree.
type Func func(*ir.Node) *ir.Node

// MappingFunc handles the object case of a traversal; visit continues the
// same traversal on children.
type MappingFunc func(visit Func, node *ir.Node) *ir.Node

// Every builds a traversal which calls fn on objects, maps itself over
// array elements in order and returns anything else unchanged.
func Every(fn MappingFunc) Func {
	var visit Func
	visit = func(node *ir.Node) *ir.Node {
		if node == nil {
			return nil
		}
		switch node.Type {
		case ir.ObjectType:
			return fn(visit, node)
		case ir.ArrayType:
			vals := make([]*ir.Node, len(node.Values))
			for i, v := range node.Values {
				vals[i] = visit(v)
			}
			return ir.FromSlice(vals)
		default:
			return node
		}
	}
	return visit
}
