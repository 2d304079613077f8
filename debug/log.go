package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/feedxml/encode"
	"github.com/signadot/feedxml/format"
	"github.com/signadot/feedxml/ir"
)

var out io.Writer = os.Stderr

type YAML struct{ *ir.Node }

func (y YAML) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return buf.String()
}

// Logf writes to stderr, rendering trees and plain json values readably.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = YAML{x}.String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
