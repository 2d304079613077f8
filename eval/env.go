// Package eval evaluates payload documents before they are shaped:
// expression expansion against an environment and JSON patching.
package eval

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrEval  = errors.New("eval error")
	ErrPatch = errors.New("patch error")
)

type Env map[string]any

// ParseEnv builds an Env from "path=value" pairs. Dotted paths create
// nested maps: "a.b=1" gives {"a": {"b": "1"}}.
func ParseEnv(pairs []string) (Env, error) {
	env := Env{}
	for _, pair := range pairs {
		path, val, ok := strings.Cut(pair, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("%w: expected path=value, got %q", ErrEval, pair)
		}
		if err := env.Set(path, val); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func (env Env) Set(path string, val any) error {
	parts := strings.Split(path, ".")
	m := map[string]any(env)
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p]
		if !ok {
			nm := map[string]any{}
			m[p] = nm
			m = nm
			continue
		}
		nm, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q is not a map in %q", ErrEval, p, path)
		}
		m = nm
	}
	m[parts[len(parts)-1]] = val
	return nil
}

// WithOSEnv exposes the process environment under "env".
func (env Env) WithOSEnv() Env {
	osEnv := map[string]any{}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		osEnv[k] = v
	}
	env["env"] = osEnv
	return env
}
