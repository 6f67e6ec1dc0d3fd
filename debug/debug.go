// Package debug provides an env-gated stderr trace channel.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Validate bool
	LSP      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TOON_DEBUG_PARSE")
	d.Validate = boolEnv("TOON_DEBUG_VALIDATE")
	d.LSP = boolEnv("TOON_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Validate() bool {
	return d.Validate
}
func LSP() bool {
	return d.LSP
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
