package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

// ToJSON encodes node as JSON, keeping object fields in order.
// Absent values encode as null.
func ToJSON(node *Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, node *Node) error {
	if IsAbsent(node) {
		buf.WriteString("null")
		return nil
	}
	switch node.Type {
	case StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case NumberType:
		if node.Float64 != nil && (math.IsNaN(*node.Float64) || math.IsInf(*node.Float64, 0)) {
			return fmt.Errorf("%w: %v is not a json number", ErrUnsupported, *node.Float64)
		}
		buf.WriteString(node.Text())
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, node.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: type %s", ErrUnsupported, node.Type)
	}
	return nil
}

// FromAny converts a plain go value into a node. Maps are converted with
// sorted keys since they carry no order; use []KeyVal to keep one.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Absent(), nil
	case *Node:
		if x == nil {
			return Absent(), nil
		}
		return x.Clone(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromString(strconv.FormatBool(x)), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		if f, err := x.Float64(); err == nil {
			return FromFloat(f), nil
		}
		return FromNumber(x.String()), nil
	case []any:
		vals := make([]*Node, len(x))
		for i := range x {
			y, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return FromSlice(vals), nil
	case []KeyVal:
		kvs := make([]KeyVal, len(x))
		for i := range x {
			if slices.ContainsFunc(kvs[:i], func(kv KeyVal) bool { return kv.Key == x[i].Key }) {
				return nil, fmt.Errorf("%w %q", ErrDupField, x[i].Key)
			}
			y, err := FromAny(x[i].Val)
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: x[i].Key, Val: y}
		}
		return FromKeyVals(kvs), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]KeyVal, len(keys))
		for i, k := range keys {
			y, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: k, Val: y}
		}
		return FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return FromNumber(strconv.FormatUint(u, 10))
	}
	return FromInt(int64(u))
}
