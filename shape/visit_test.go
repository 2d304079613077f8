package shape

import (
	"testing"

	"github.com/signadot/feedxml/ir"
)

func TestEveryDispatch(t *testing.T) {
	calls := 0
	visit := Every(func(visit Func, node *ir.Node) *ir.Node {
		calls++
		kvs := node.KeyVals()
		for i := range kvs {
			kvs[i].Key += "!"
			kvs[i].Val = visit(kvs[i].Val)
		}
		return ir.FromKeyVals(kvs)
	})

	s := ir.FromString("x")
	if got := visit(s); got != s {
		t.Errorf("scalar should be returned unchanged")
	}
	if got := visit(nil); got != nil {
		t.Errorf("nil should be returned unchanged")
	}
	if calls != 0 {
		t.Errorf("fn called %d times for leaves", calls)
	}

	in := arr(obj("a", arr(obj("b", 1), 2)), "z")
	want := arr(obj("a!", arr(obj("b!", 1), 2)), "z")
	got := visit(in)
	checkTree(t, want, got)
	if calls != 2 {
		t.Errorf("fn called %d times, want 2", calls)
	}
	checkTree(t, arr(obj("a", arr(obj("b", 1), 2)), "z"), in)
}
