package photograph

import (
	"github.com/kennylevinsen/gophotograph/gcode"
	"github.com/kennylevinsen/gophotograph/vector"
)

// Finds the move in the layer nearest to last. The first of equally near
// moves wins.
func closestOfLayer(layer []gcode.Line, last vector.Vector) (int, vector.Vector, bool) {
	var (
		best     int
		point    vector.Vector
		distance float64
		found    bool
	)
	for _, l := range layer {
		if !l.Token.IsMotion() {
			continue
		}
		x, xok := usable(l.Token.X)
		y, yok := usable(l.Token.Y)
		if !xok || !yok {
			continue
		}
		p := vector.Vector{X: x, Y: y}
		if d := p.DistanceSq(last); !found || d < distance {
			best, point, distance, found = l.Index, p, d, true
		}
	}
	return best, point, found
}
