package photograph

import (
	"github.com/kennylevinsen/gophotograph/gcode"
	"github.com/kennylevinsen/gophotograph/vector"
)

// Finds the move with the lowest Y in the layer. Ties on Y go to the lower X,
// but only when that X is usable.
func cornerOfLayer(layer []gcode.Line) (int, vector.Vector, bool) {
	var (
		best   int
		lowest vector.Vector
		found  bool
	)
	for _, l := range layer {
		if !l.Token.IsMotion() {
			continue
		}
		y, ok := usable(l.Token.Y)
		if !ok {
			continue
		}
		x, xok := usable(l.Token.X)
		if !found || y < lowest.Y || (y == lowest.Y && xok && x < lowest.X) {
			best, found = l.Index, true
			lowest = vector.Vector{X: l.Token.X.Value(), Y: y}
		}
	}
	return best, lowest, found
}
