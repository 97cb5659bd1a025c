package photograph

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/kennylevinsen/gophotograph/export"
	"github.com/kennylevinsen/gophotograph/gcode"
)

// Name under which the procedure is recorded in crafted programs.
const Name = "photograph"

const (
	SkippedEmpty    = "empty"
	SkippedDone     = "already photographed"
	SkippedInactive = "inactive"
)

type Settings struct {
	Activate  bool
	Procedure Procedure
	Trigger   string

	// Record the procedure name in the program header, so that crafting the
	// output again leaves it untouched. This adds a line that is not a
	// trigger, so it is off by default.
	Stamp bool
}

var ErrInvalidTrigger = errors.New("invalid trigger command")

// Checks that a trigger command is a single bare word. Anything else could
// carry a comment, a second line, a coordinate or a layer marker into the
// output.
func ValidTrigger(trigger string) error {
	switch {
	case trigger == "":
		return fmt.Errorf("%w: empty", ErrInvalidTrigger)
	case strings.IndexFunc(trigger, unicode.IsSpace) >= 0:
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidTrigger, trigger)
	case strings.ContainsAny(trigger, ";()"):
		return fmt.Errorf("%w: %q contains a comment", ErrInvalidTrigger, trigger)
	}
	if gcode.Tokenize(trigger).IsMotion() {
		return fmt.Errorf("%w: %q is a motion command", ErrInvalidTrigger, trigger)
	}
	return nil
}

func DefaultSettings() Settings {
	return Settings{
		Activate:  true,
		Procedure: EndOfLayer,
		Trigger:   export.DefaultTrigger,
	}
}

// Adds the procedure line ahead of the line at index at.
type stamper struct {
	*export.Assembler
	at   int
	done bool
}

func (s *stamper) Line(l gcode.Line) {
	if !s.done && l.Index == s.at {
		s.Put(gcode.ProcedureLine(Name))
		s.done = true
	}
	s.Assembler.Line(l)
}

// Crafts the program text with the given settings. Empty programs, programs
// already photographed and inactive settings return the text unchanged, with
// Stats.Skipped saying why.
func CraftText(text string, s Settings, log *slog.Logger) (string, Stats) {
	doc := gcode.Parse(text)
	switch {
	case doc.Length() == 0:
		return text, Stats{Procedure: s.Procedure, Skipped: SkippedEmpty}
	case doc.ProcedureDone(Name):
		return text, Stats{Procedure: s.Procedure, Skipped: SkippedDone}
	case !s.Activate:
		return text, Stats{Procedure: s.Procedure, Skipped: SkippedInactive}
	}

	var asm export.Assembler
	asm.Init(doc, s.Trigger)

	var out export.Emitter = &asm
	if s.Stamp {
		if at, ok := doc.Find(gcode.ExtruderInitializationEnd); ok {
			out = &stamper{Assembler: &asm, at: at}
		} else {
			asm.Put(gcode.ProcedureLine(Name))
		}
	}

	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	stats := New(s.Procedure, log).Craft(doc, out)
	if n := asm.Triggers(); n != stats.Photographs {
		log.Error("trigger count mismatch", "emitted", n, "photographs", stats.Photographs)
	}
	return asm.Retrieve(), stats
}
