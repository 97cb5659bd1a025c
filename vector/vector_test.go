package vector

import (
	"testing"
)

func TestDistanceSq(t *testing.T) {
	cases := []struct {
		a, b Vector
		want float64
	}{
		{Vector{0, 0}, Vector{0, 0}, 0},
		{Vector{0, 0}, Vector{3, 4}, 25},
		{Vector{2, 2}, Vector{2, 3}, 1},
		{Vector{2, 2}, Vector{10, 10}, 128},
		{Vector{-1, -1}, Vector{1, 1}, 8},
	}
	for _, c := range cases {
		if got := c.a.DistanceSq(c.b); got != c.want {
			t.Errorf("%v to %v: expected %g, got %g", c.a, c.b, c.want, got)
		}
		if got := c.b.DistanceSq(c.a); got != c.want {
			t.Errorf("%v to %v: expected symmetric %g, got %g", c.b, c.a, c.want, got)
		}
	}
}

func TestDiff(t *testing.T) {
	a := Vector{1.5, -2}
	b := Vector{0.5, 4}
	if d := a.Diff(b); d != (Vector{1, -6}) {
		t.Errorf("expected {1 -6}, got %v", d)
	}
}
