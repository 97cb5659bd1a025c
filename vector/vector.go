package vector

// Vector is a point or direction in the XY plane.
type Vector struct {
	X, Y float64
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector) Diff(o Vector) Vector {
	return Vector{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// Squared euclidean distance between two points. Avoids the square root, as
// callers only ever compare distances.
func (v Vector) DistanceSq(o Vector) float64 {
	d := v.Diff(o)
	return d.Dot(d)
}
