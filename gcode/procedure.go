package gcode

import (
	"fmt"
)

// Skeinforge-style crafting procedures record their name in the header of the
// program, between the extruder initialization tags.
const (
	procedureKeyword          = "(<procedureName>"
	ExtruderInitializationEnd = "(</extruderInitialization>)"
	craftingKeyword           = "(<crafting>)"
)

func ProcedureLine(name string) string {
	return fmt.Sprintf("(<procedureName> %s </procedureName>)", name)
}

// Reports whether the named procedure has already been applied to the
// document. Only the header is searched.
func (doc *Document) ProcedureDone(name string) bool {
	for _, l := range doc.Lines {
		switch l.Token.Keyword {
		case ExtruderInitializationEnd, craftingKeyword:
			return false
		case procedureKeyword:
			if len(l.Token.Fields) > 0 && l.Token.Fields[0] == name {
				return true
			}
		}
	}
	return false
}
