// Package debug provides environment controlled debug switches and
// a shared logger for the jv packages.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Pool  bool
	Parse bool
	Lazy  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Pool = boolEnv("JV_DEBUG_POOL")
	d.Parse = boolEnv("JV_DEBUG_PARSE")
	d.Lazy = boolEnv("JV_DEBUG_LAZY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Pool() bool {
	return d.Pool
}
func Parse() bool {
	return d.Parse
}
func Lazy() bool {
	return d.Lazy
}

// SetAll turns every debug switch on or off.
func SetAll(v bool) {
	d.Pool = v
	d.Parse = v
	d.Lazy = v
}
