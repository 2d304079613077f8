package shape

import "github.com/signadot/feedxml/ir"

// Fields are tested after recursion, so a field left empty by
// its own children goes too.
var stripEmpty = Every(func(visit Func, node *ir.Node) *ir.Node {
	kvs := make([]ir.KeyVal, 0, len(node.Fields))
	for i, f := range node.Fields {
		v := visit(node.Values[i])
		if ir.IsEmpty(v) {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: f, Val: v})
	}
	return ir.FromKeyVals(kvs)
})

// StripEmpty returns node without object fields whose value is an empty
// object or array. Scalars are always kept.
func StripEmpty(node *ir.Node) *ir.Node {
	return stripEmpty(node)
}
