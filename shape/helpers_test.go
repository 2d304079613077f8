package shape

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"

	"github.com/signadot/feedxml/ir"
)

func val(v any) *ir.Node {
	switch x := v.(type) {
	case nil:
		return ir.Absent()
	case *ir.Node:
		return x
	case int:
		return ir.FromInt(int64(x))
	case float64:
		return ir.FromFloat(x)
	case string:
		return ir.FromString(x)
	default:
		panic(fmt.Sprintf("val: %T", v))
	}
}

func obj(kvs ...any) *ir.Node {
	if len(kvs)%2 != 0 {
		panic("obj: odd number of arguments")
	}
	res := make([]ir.KeyVal, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		res = append(res, ir.KeyVal{Key: kvs[i].(string), Val: val(kvs[i+1])})
	}
	return ir.FromKeyVals(res)
}

func arr(vs ...any) *ir.Node {
	res := make([]*ir.Node, len(vs))
	for i := range vs {
		res[i] = val(vs[i])
	}
	return ir.FromSlice(res)
}

func checkTree(t *testing.T, want, got *ir.Node) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

var genKeys = []string{"a", "b", "c", ir.DefaultAttrKey, ir.DefaultTextKey}

// genTree draws arbitrary trees, absent markers and empty containers
// included.
func genTree(t *rapid.T, depth int) *ir.Node {
	kind := rapid.IntRange(0, 4).Draw(t, "kind")
	if depth <= 0 {
		kind = rapid.IntRange(0, 2).Draw(t, "leaf")
	}
	switch kind {
	case 0:
		return ir.Absent()
	case 1:
		return ir.FromInt(rapid.Int64Range(-3, 3).Draw(t, "int"))
	case 2:
		return ir.FromString(rapid.SampledFrom([]string{"", "x", "y"}).Draw(t, "str"))
	case 3:
		n := rapid.IntRange(0, 3).Draw(t, "len")
		vals := make([]*ir.Node, n)
		for i := range vals {
			vals[i] = genTree(t, depth-1)
		}
		return ir.FromSlice(vals)
	default:
		n := rapid.IntRange(0, 3).Draw(t, "fields")
		var kvs []ir.KeyVal
		seen := map[string]bool{}
		for range n {
			k := rapid.SampledFrom(genKeys).Draw(t, "key")
			if seen[k] {
				continue
			}
			seen[k] = true
			kvs = append(kvs, ir.KeyVal{Key: k, Val: genTree(t, depth-1)})
		}
		return ir.FromKeyVals(kvs)
	}
}

// genCanonical draws an object already in the shape the pipeline produces.
// Keys are named after their level so that no entry looks like a duplicate
// wrapper.
func genCanonical(t *rapid.T, depth int) *ir.Node {
	n := rapid.IntRange(1, 3).Draw(t, "fields")
	var kvs []ir.KeyVal
	if rapid.Bool().Draw(t, "attrs") {
		kvs = append(kvs, ir.KeyVal{Key: ir.DefaultAttrKey, Val: obj("id", "1")})
	}
	for i := range n {
		kvs = append(kvs, ir.KeyVal{
			Key: fmt.Sprintf("L%d%c", depth, 'a'+i),
			Val: genCanonicalValue(t, depth),
		})
	}
	return ir.FromKeyVals(kvs)
}

func genCanonicalValue(t *rapid.T, depth int) *ir.Node {
	if depth <= 0 || rapid.Bool().Draw(t, "scalar") {
		if rapid.Bool().Draw(t, "num") {
			return ir.FromInt(rapid.Int64Range(0, 9).Draw(t, "int"))
		}
		return ir.FromString(rapid.SampledFrom([]string{"", "x", "y"}).Draw(t, "str"))
	}
	n := rapid.IntRange(1, 3).Draw(t, "len")
	vals := make([]*ir.Node, n)
	for i := range vals {
		k := fmt.Sprintf("L%d%c", depth-1, 'a'+rapid.IntRange(0, 2).Draw(t, "child"))
		vals[i] = ir.FromField(k, genCanonicalValue(t, depth-1))
	}
	return ir.FromSlice(vals)
}

func walk(node *ir.Node, f func(*ir.Node)) {
	if node == nil {
		return
	}
	f(node)
	for _, v := range node.Values {
		walk(v, f)
	}
}
