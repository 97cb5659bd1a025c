package export

import (
	"strings"

	"github.com/kennylevinsen/gophotograph/gcode"
)

const DefaultTrigger = "M240"

// Assembler accumulates the output program as text.
type Assembler struct {
	TriggerCommand string
	Newline        string
	Terminated     bool
	Lines          []string

	// Terminator of each entry in Lines, empty for added lines.
	endings  []string
	triggers int
}

// Initializes the assembler to reproduce the line endings of doc.
func (s *Assembler) Init(doc *gcode.Document, trigger string) {
	if trigger == "" {
		trigger = DefaultTrigger
	}
	s.TriggerCommand = trigger
	s.Newline = doc.Newline
	s.Terminated = doc.Terminated
	s.Lines = make([]string, 0, doc.Length())
	s.endings = make([]string, 0, doc.Length())
	s.triggers = 0
}

func (s *Assembler) put(x, newline string) {
	s.Lines = append(s.Lines, x)
	s.endings = append(s.endings, newline)
}

// Adds a line of text, terminated like the rest of the document.
func (s *Assembler) Put(x string) {
	s.put(x, "")
}

func (s *Assembler) Line(l gcode.Line) {
	s.put(l.Text, l.Newline)
}

func (s *Assembler) Trigger() {
	s.Put(s.TriggerCommand)
	s.triggers++
}

// Number of trigger commands added so far.
func (s *Assembler) Triggers() int {
	return s.triggers
}

// Fetch the generated program. Source lines keep their own terminator; added
// lines, and a source line that lost its place at the end, use Newline.
func (s *Assembler) Retrieve() string {
	newline := s.Newline
	if newline == "" {
		newline = "\n"
	}

	var b strings.Builder
	for i, x := range s.Lines {
		b.WriteString(x)
		end := s.endings[i]
		if end == "" {
			end = newline
		}
		if i == len(s.Lines)-1 && !s.Terminated {
			end = ""
		}
		b.WriteString(end)
	}
	return b.String()
}
