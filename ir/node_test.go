package ir

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestText(t *testing.T) {
	tests := []struct {
		node *Node
		want string
	}{
		{FromString("abc"), "abc"},
		{FromInt(-12), "-12"},
		{FromFloat(1.01), "1.01"},
		{FromFloat(3), "3"},
		{FromNumber("1e400"), "1e400"},
		{Absent(), ""},
		{FromSlice(nil), ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := tt.node.Text(); got != tt.want {
			t.Errorf("Text() = %q, want %q", got, tt.want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromString("x")})},
		{Key: "b", Val: FromFloat(2.5)},
	})
	c := orig.Clone()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}
	*c.Values[0].Values[0].Int64 = 7
	c.Fields[1] = "z"
	if *orig.Values[0].Values[0].Int64 != 1 {
		t.Errorf("clone shares number storage")
	}
	if orig.Fields[1] != "b" {
		t.Errorf("clone shares fields")
	}
}

func TestGetHas(t *testing.T) {
	obj := FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}})
	if !Has(obj, "a") || Has(obj, "b") {
		t.Errorf("Has gave wrong answer")
	}
	if Get(obj, "a").Text() != "1" {
		t.Errorf("Get(a) = %v", Get(obj, "a"))
	}
	if Get(obj, "b") != nil {
		t.Errorf("Get(b) should be nil")
	}
	if Has(FromString("a"), "a") {
		t.Errorf("Has on scalar")
	}
}

func TestPredicates(t *testing.T) {
	if !IsAbsent(nil) || !IsAbsent(Absent()) || IsAbsent(FromString("")) {
		t.Errorf("IsAbsent")
	}
	if !IsEmpty(FromSlice(nil)) || !IsEmpty(FromKeyVals(nil)) || IsEmpty(FromString("")) || IsEmpty(nil) {
		t.Errorf("IsEmpty")
	}
	if !IsContainer(FromSlice(nil)) || IsContainer(FromInt(0)) || IsContainer(nil) {
		t.Errorf("IsContainer")
	}
	if !IsScalar(FromInt(0)) || IsScalar(Absent()) {
		t.Errorf("IsScalar")
	}
}

func TestToJSON(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromString("a\"b")},
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromFloat(1.5), Absent()})},
		{Key: "m", Val: FromKeyVals(nil)},
	})
	d, err := ToJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":"a\"b","a":[1,1.5,null],"m":{}}`
	if string(d) != want {
		t.Errorf("got %s want %s", d, want)
	}
}

func TestFromAny(t *testing.T) {
	got, err := FromAny(map[string]any{
		"b": []any{true, nil, json.Number("12"), uint64(1 << 63)},
		"a": 1.25,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromFloat(1.25)},
		{Key: "b", Val: FromSlice([]*Node{
			FromString("true"),
			Absent(),
			FromInt(12),
			FromNumber("9223372036854775808"),
		})},
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromAny (-want +got):\n%s", diff)
	}

	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if _, err := FromAny([]KeyVal{{Key: "a"}, {Key: "a"}}); !errors.Is(err, ErrDupField) {
		t.Errorf("expected ErrDupField, got %v", err)
	}
}
