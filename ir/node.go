package ir

import (
	"slices"
	"strconv"
)

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Number: y.Number,
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	return res
}

func Absent() *Node {
	return &Node{Type: AbsentType}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber holds a number whose textual form must be kept as is.
func FromNumber(v string) *Node {
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromField returns the single field mapping {key: val}.
func FromField(key string, val *Node) *Node {
	return &Node{
		Type:   ObjectType,
		Fields: []string{key},
		Values: []*Node{val},
	}
}

func FromSlice(ySlice []*Node) *Node {
	if ySlice == nil {
		ySlice = []*Node{}
	}
	return &Node{
		Type:   ArrayType,
		Values: ySlice,
	}
}

func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	i := slices.Index(y.Fields, field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

func Has(y *Node, field string) bool {
	return y != nil && y.Type == ObjectType && slices.Contains(y.Fields, field)
}

// KeyVals returns the fields of an object node in order.
func (y *Node) KeyVals() []KeyVal {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = KeyVal{Key: f, Val: y.Values[i]}
	}
	return res
}

// Len is the number of entries of a container and 0 otherwise.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	return len(y.Values)
}

// Text renders a scalar as element text. Non scalars give "".
func (y *Node) Text() string {
	if y == nil {
		return ""
	}
	switch y.Type {
	case StringType:
		return y.String
	case NumberType:
		switch {
		case y.Int64 != nil:
			return strconv.FormatInt(*y.Int64, 10)
		case y.Float64 != nil:
			return strconv.FormatFloat(*y.Float64, 'f', -1, 64)
		default:
			return y.Number
		}
	}
	return ""
}
