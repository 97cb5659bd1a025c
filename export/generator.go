package export

import (
	"github.com/kennylevinsen/gophotograph/gcode"
)

// Emitter receives the annotated program in order: source lines as they are
// replayed, and trigger commands where a procedure decided to take a picture.
type Emitter interface {
	Line(gcode.Line)
	Trigger()
}
