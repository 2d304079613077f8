package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Stages bool
	Eval   bool
	Patch  bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Stages = boolEnv("FEEDXML_DEBUG_STAGES")
	d.Eval = boolEnv("FEEDXML_DEBUG_EVAL")
	d.Patch = boolEnv("FEEDXML_DEBUG_PATCH")
	d.Encode = boolEnv("FEEDXML_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Stages() bool {
	return d.Stages
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Encode() bool {
	return d.Encode
}
