package gcode

const (
	MotionKeyword     = "G1"
	LayerStartKeyword = "(<layer>"
	LayerEndKeyword   = "(</layer>)"
)

type Marker int

const (
	NoMarker Marker = iota
	LayerStart
	LayerEnd
)

func (t Token) Marker() Marker {
	switch t.Keyword {
	case LayerStartKeyword:
		return LayerStart
	case LayerEndKeyword:
		return LayerEnd
	}
	return NoMarker
}
