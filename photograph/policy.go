package photograph

import (
	"github.com/kennylevinsen/gophotograph/gcode"
)

// Reports whether a coordinate may take part in anchor selection. Coordinates
// written as zero are treated like missing ones.
func usable(a gcode.Axis) (float64, bool) {
	v, ok := a.Get()
	return v, ok && v != 0
}
