package photograph

import (
	"errors"
	"testing"
)

func TestParseProcedure(t *testing.T) {
	cases := map[string]Procedure{
		"end":                         EndOfLayer,
		"End of Layer":                EndOfLayer,
		" corner ":                    LayerCorner,
		"corner-of-layer":             LayerCorner,
		"closest":                     LeastChange,
		"Least Change between Layers": LeastChange,
		"LEAST-CHANGE":                LeastChange,
	}
	for in, want := range cases {
		got, err := ParseProcedure(in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestParseProcedureUnknown(t *testing.T) {
	_, err := ParseProcedure("middle")
	if !errors.Is(err, ErrUnknownProcedure) {
		t.Errorf("expected ErrUnknownProcedure, got %v", err)
	}
}

func TestProcedureRoundTrip(t *testing.T) {
	for _, p := range []Procedure{EndOfLayer, LayerCorner, LeastChange} {
		var got Procedure
		if err := got.Set(p.String()); err != nil {
			t.Fatalf("%v: unexpected error: %v", p, err)
		}
		if got != p {
			t.Errorf("expected %v, got %v", p, got)
		}
		if back, _ := ParseProcedure(p.Title()); back != p {
			t.Errorf("expected title %q to parse to %v, got %v", p.Title(), p, back)
		}
	}
}
