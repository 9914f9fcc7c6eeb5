package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Convert bool
	Emit    bool
	Input   bool
	Patch   bool
	Query   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("YSER_DEBUG_CONVERT")
	d.Emit = boolEnv("YSER_DEBUG_EMIT")
	d.Input = boolEnv("YSER_DEBUG_INPUT")
	d.Patch = boolEnv("YSER_DEBUG_PATCH")
	d.Query = boolEnv("YSER_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}
func Emit() bool {
	return d.Emit
}
func Input() bool {
	return d.Input
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
