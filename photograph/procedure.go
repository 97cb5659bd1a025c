package photograph

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownProcedure = errors.New("unknown photograph procedure")

// Procedure selects where trigger commands are placed.
type Procedure int

const (
	// Before the first layer and after every layer.
	EndOfLayer Procedure = iota
	// After the move with the lowest Y of each layer.
	LayerCorner
	// After the move of each layer closest to the previous photograph.
	LeastChange
)

var procedureNames = map[string]Procedure{
	"end":                         EndOfLayer,
	"end-of-layer":                EndOfLayer,
	"end of layer":                EndOfLayer,
	"corner":                      LayerCorner,
	"corner-of-layer":             LayerCorner,
	"corner of layer":             LayerCorner,
	"closest":                     LeastChange,
	"least-change":                LeastChange,
	"least change between layers": LeastChange,
}

// Parses a procedure name. Short names, hyphenated names and the settings
// labels ("Corner of Layer") are accepted, case-insensitively.
func ParseProcedure(s string) (Procedure, error) {
	if p, ok := procedureNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return EndOfLayer, fmt.Errorf("%w: %q", ErrUnknownProcedure, s)
}

func (p Procedure) String() string {
	switch p {
	case EndOfLayer:
		return "end"
	case LayerCorner:
		return "corner"
	case LeastChange:
		return "closest"
	}
	return fmt.Sprintf("Procedure(%d)", int(p))
}

func (p Procedure) Title() string {
	switch p {
	case EndOfLayer:
		return "End of Layer"
	case LayerCorner:
		return "Corner of Layer"
	case LeastChange:
		return "Least Change between Layers"
	}
	return p.String()
}

// Set and Type let a Procedure be used directly as a command line flag.
func (p *Procedure) Set(s string) error {
	v, err := ParseProcedure(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p *Procedure) Type() string {
	return "procedure"
}
