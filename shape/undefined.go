package shape

import "github.com/signadot/feedxml/ir"

var stripUndefined = Every(func(visit Func, node *ir.Node) *ir.Node {
	kvs := make([]ir.KeyVal, 0, len(node.Fields))
	for i, f := range node.Fields {
		v := node.Values[i]
		if ir.IsAbsent(v) {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: f, Val: visit(v)})
	}
	return ir.FromKeyVals(kvs)
})

// StripUndefined returns node without object fields whose value is absent,
// at any depth.
func StripUndefined(node *ir.Node) *ir.Node {
	return stripUndefined(node)
}
