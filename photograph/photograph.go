package photograph

import (
	"io"
	"log/slog"

	"github.com/kennylevinsen/gophotograph/export"
	"github.com/kennylevinsen/gophotograph/gcode"
	"github.com/kennylevinsen/gophotograph/vector"
)

// Anchor records where a trigger command was placed.
type Anchor struct {
	// Ordinal of the most recent layer start, 0 before the first layer.
	Layer int

	// Index of the source line the trigger follows, or precedes for the
	// trigger ahead of the first layer.
	Line int

	Point vector.Vector
}

type Stats struct {
	Procedure   Procedure
	Layers      int
	Photographs int
	Anchors     []Anchor

	// Set when the program was returned untouched, see CraftText.
	Skipped string
}

// Photographer places trigger commands into a program according to its
// procedure. Its state is reset on every call to Craft, so an instance can be
// reused but not shared between goroutines.
type Photographer struct {
	Procedure Procedure

	log        *slog.Logger
	firstLayer bool

	// Point of the previous photograph, used by LeastChange only.
	last vector.Vector

	stats Stats
}

func New(p Procedure, log *slog.Logger) *Photographer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Photographer{Procedure: p, log: log}
}

func (p *Photographer) reset() {
	p.firstLayer = true
	p.last = vector.Vector{}
	p.stats = Stats{Procedure: p.Procedure}
}

// Replays doc into out, adding trigger commands.
func (p *Photographer) Craft(doc *gcode.Document, out export.Emitter) Stats {
	p.reset()
	switch p.Procedure {
	case EndOfLayer:
		p.endOfLayer(doc, out)
	default:
		p.replay(doc, out)
	}
	return p.stats
}

func (p *Photographer) photograph(out export.Emitter, l gcode.Line, at vector.Vector) {
	out.Trigger()
	p.stats.Photographs++
	p.stats.Anchors = append(p.stats.Anchors, Anchor{p.stats.Layers, l.Index, at})
	p.log.Debug("photograph",
		"procedure", p.Procedure.String(),
		"layer", p.stats.Layers,
		"line", l.Index,
		"x", at.X,
		"y", at.Y,
	)
}

func (p *Photographer) endOfLayer(doc *gcode.Document, out export.Emitter) {
	for _, l := range doc.Lines {
		switch l.Token.Marker() {
		case gcode.LayerStart:
			p.stats.Layers++
			if p.firstLayer {
				p.firstLayer = false
				p.photograph(out, l, vector.Vector{})
			}
			out.Line(l)
		case gcode.LayerEnd:
			out.Line(l)
			p.photograph(out, l, vector.Vector{})
		default:
			out.Line(l)
		}
	}
}

// Looks ahead from each layer start to pick the anchor, then replays the
// layer, photographing right after the anchor.
func (p *Photographer) replay(doc *gcode.Document, out export.Emitter) {
	var (
		anchor int
		point  vector.Vector
		found  bool
	)
	for _, l := range doc.Lines {
		if l.Token.Marker() == gcode.LayerStart {
			p.stats.Layers++
			anchor, point, found = p.anchor(doc, l.Index)
		}
		out.Line(l)
		if found && l.Index == anchor {
			p.photograph(out, l, point)
		}
	}
}

func (p *Photographer) anchor(doc *gcode.Document, start int) (int, vector.Vector, bool) {
	end, ok := doc.LayerEnd(start)
	if !ok {
		p.log.Debug("layer is never closed", "line", start)
		return 0, vector.Vector{}, false
	}
	layer := doc.Lines[start:end]

	switch p.Procedure {
	case LayerCorner:
		return cornerOfLayer(layer)
	case LeastChange:
		idx, at, found := closestOfLayer(layer, p.last)
		if found {
			p.last = at
		}
		return idx, at, found
	}
	return 0, vector.Vector{}, false
}
