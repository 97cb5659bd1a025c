package gcode

// Axis holds one coordinate of a motion command. An axis that was never
// written is distinct from one written as zero.
type Axis struct {
	value float64
	set   bool
}

func SetAxis(v float64) Axis {
	return Axis{v, true}
}

// Value of the axis, or 0 if unset.
func (a Axis) Value() float64 {
	return a.value
}

func (a Axis) Get() (float64, bool) {
	return a.value, a.set
}

// Token is the interpreted form of a single program line.
type Token struct {
	Keyword string
	Fields  []string
	X, Y    Axis
}

// Lines with no content outside of comments produce an empty token.
func (t Token) Empty() bool {
	return t.Keyword == ""
}

func (t Token) IsMotion() bool {
	return t.Keyword == MotionKeyword
}

// Line is a source line of the program. The text is kept verbatim,
// comments included.
type Line struct {
	Index int
	Text  string
	Token Token

	// The line's own terminator, "\n" or "\r\n", empty for a final line
	// without one.
	Newline string
}

type Document struct {
	Lines []Line

	// Separator for added lines, taken from the first line of the input.
	Newline string

	// Whether the input ended with a line separator.
	Terminated bool
}

func (doc *Document) AppendLine(text, newline string) {
	doc.Lines = append(doc.Lines, Line{len(doc.Lines), text, Tokenize(text), newline})
}

func (doc *Document) Length() int {
	return len(doc.Lines)
}

// Returns the index of the first line with the given keyword.
func (doc *Document) Find(keyword string) (int, bool) {
	for _, l := range doc.Lines {
		if l.Token.Keyword == keyword {
			return l.Index, true
		}
	}
	return 0, false
}

// Returns the index of the layer end marker closing the layer that starts at
// start. A layer that is never closed has no end.
func (doc *Document) LayerEnd(start int) (int, bool) {
	for i := start; i < len(doc.Lines); i++ {
		if doc.Lines[i].Token.Marker() == LayerEnd {
			return i, true
		}
	}
	return 0, false
}
