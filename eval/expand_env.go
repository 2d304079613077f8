package eval

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/signadot/feedxml/debug"
	"github.com/signadot/feedxml/ir"
)

// ExpandEnv returns a copy of node with strings evaluated against env.
// A string which is exactly ".[expr]" is replaced by the value of expr,
// and "$[expr]" inside any string is replaced by the text of its value.
func ExpandEnv(node *ir.Node, env Env) (*ir.Node, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case ir.ObjectType:
		kvs := node.KeyVals()
		for i := range kvs {
			v, err := ExpandEnv(kvs[i].Val, env)
			if err != nil {
				return nil, err
			}
			kvs[i].Val = v
		}
		return ir.FromKeyVals(kvs), nil
	case ir.ArrayType:
		vals := make([]*ir.Node, len(node.Values))
		for i, v := range node.Values {
			ev, err := ExpandEnv(v, env)
			if err != nil {
				return nil, err
			}
			vals[i] = ev
		}
		return ir.FromSlice(vals), nil
	case ir.StringType:
		raw := getRaw(node.String)
		if raw == "" {
			v, err := ExpandString(node.String, env)
			if err != nil {
				return nil, err
			}
			return ir.FromString(v), nil
		}
		val, err := expr.Eval(raw, map[string]any(env))
		if err != nil {
			return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, raw, err)
		}
		if debug.Eval() {
			debug.Logf("eval %q gave %#v\n", raw, val)
		}
		repl, err := ir.FromAny(val)
		if err != nil {
			return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, raw, err)
		}
		return repl, nil
	default:
		return node, nil
	}
}

func getRaw(v string) string {
	if !isRawEnvRef(v) {
		return ""
	}
	return v[2 : len(v)-1]
}

func isRawEnvRef(s string) bool {
	return len(s) > 3 && strings.HasPrefix(s, ".[") && strings.HasSuffix(s, "]")
}

// ExpandString interpolates every $[expr] of v. A "$[" without a closing
// bracket is kept as is.
func ExpandString(v string, env Env) (string, error) {
	var buf strings.Builder
	for {
		i := strings.Index(v, "$[")
		if i == -1 {
			buf.WriteString(v)
			return buf.String(), nil
		}
		j := strings.IndexByte(v[i+2:], ']')
		if j == -1 {
			buf.WriteString(v)
			return buf.String(), nil
		}
		buf.WriteString(v[:i])
		key := v[i+2 : i+2+j]
		x, err := expr.Eval(strings.TrimSpace(key), map[string]any(env))
		if err != nil {
			return "", fmt.Errorf("%w: evaluating %q: %w", ErrEval, key, err)
		}
		if debug.Eval() {
			debug.Logf("eval %q gave %#v\n", key, x)
		}
		s, err := anyToString(x)
		if err != nil {
			return "", fmt.Errorf("%w: result of %q: %w", ErrEval, key, err)
		}
		buf.WriteString(s)
		v = v[i+2+j+1:]
	}
}

func anyToString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case json.Number:
		return x.String(), nil
	default:
		node, err := ir.FromAny(v)
		if err != nil {
			return "", err
		}
		if ir.IsScalar(node) {
			return node.Text(), nil
		}
		d, err := ir.ToJSON(node)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
}
