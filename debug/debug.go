package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Order   bool
	Compare bool
	Axis    bool
	Select  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Order = boolEnv("XP_DEBUG_ORDER")
	d.Compare = boolEnv("XP_DEBUG_COMPARE")
	d.Axis = boolEnv("XP_DEBUG_AXIS")
	d.Select = boolEnv("XP_DEBUG_SELECT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Order() bool {
	return d.Order
}
func Compare() bool {
	return d.Compare
}
func Axis() bool {
	return d.Axis
}
func Select() bool {
	return d.Select
}
