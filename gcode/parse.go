package gcode

import (
	"math"
	"strconv"
	"strings"
)

// Splits a line into its words, ignoring everything after a semicolon, and
// everything after an opening bracket that does not start the line. Bracketed
// lines are kept whole, as that is where the layer markers live.
func splitBeforeComment(line string) []string {
	if idx := strings.IndexByte(line, ';'); idx >= 0 {
		line = line[:idx]
	}
	if idx := strings.IndexByte(line, '('); idx > 0 {
		line = line[:idx]
	}
	return strings.Fields(line)
}

// Finds the first parameter starting with the given address and parses the
// remainder as a number.
func parseAxis(address byte, params []string) Axis {
	for _, p := range params {
		if len(p) == 0 || p[0] != address {
			continue
		}
		f, err := strconv.ParseFloat(p[1:], 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Axis{}
		}
		return SetAxis(f)
	}
	return Axis{}
}

// Tokenizes a single line. Never fails; unknown content yields a token that
// is neither motion nor marker.
func Tokenize(line string) Token {
	words := splitBeforeComment(line)
	if len(words) == 0 {
		return Token{}
	}

	t := Token{Keyword: words[0], Fields: words[1:]}
	if t.IsMotion() {
		t.X = parseAxis('X', t.Fields)
		t.Y = parseAxis('Y', t.Fields)
	}
	return t
}

// Parses a program into lines. Every line keeps its own terminator, so
// input mixing "\n" and "\r\n" comes back out unchanged.
func Parse(input string) *Document {
	doc := Document{Newline: "\n"}
	if input == "" {
		return &doc
	}

	lines := strings.SplitAfter(input, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, l := range lines {
		newline := ""
		if strings.HasSuffix(l, "\r\n") {
			newline = "\r\n"
		} else if strings.HasSuffix(l, "\n") {
			newline = "\n"
		}
		if i == 0 && newline != "" {
			doc.Newline = newline
		}
		doc.AppendLine(strings.TrimSuffix(l, newline), newline)
	}
	doc.Terminated = doc.Lines[len(doc.Lines)-1].Newline != ""
	return &doc
}
