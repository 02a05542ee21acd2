package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Norm   bool
	Diff   bool
	Render bool
}

var d *debug

func init() {
	d = &debug{}
	d.Norm = boolEnv("YD_DEBUG_NORM")
	d.Diff = boolEnv("YD_DEBUG_DIFF")
	d.Render = boolEnv("YD_DEBUG_RENDER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Norm() bool {
	return d.Norm
}
func Diff() bool {
	return d.Diff
}
func Render() bool {
	return d.Render
}
