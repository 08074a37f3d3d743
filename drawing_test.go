package mapmachine

import (
	"github.com/paulmach/orb"
)

// planeProjector treats input coordinates as drawing-plane points already
type planeProjector struct {
	scale float64
}

func (pp planeProjector) Project(geo orb.Point) orb.Point {
	return geo
}

func (pp planeProjector) ScaleAt(geo orb.Point) float64 {
	return pp.scale
}

type sinkOpKind uint16

const (
	SINK_OP_PATH = sinkOpKind(iota + 1)
	SINK_OP_CIRCLE
	SINK_OP_TEXT
)

type sinkOp struct {
	kind     sinkOpKind
	commands []PathCommand
	center   orb.Point
	radius   float64
	style    Style
	text     string
}

// recordSink captures the ordered primitive stream for assertions
type recordSink struct {
	ops []sinkOp
}

func (rs *recordSink) Path(commands []PathCommand, style Style) {
	rs.ops = append(rs.ops, sinkOp{kind: SINK_OP_PATH, commands: commands, style: style})
}

func (rs *recordSink) Circle(center orb.Point, radius float64, style Style) {
	rs.ops = append(rs.ops, sinkOp{kind: SINK_OP_CIRCLE, center: center, radius: radius, style: style})
}

func (rs *recordSink) TextPath(commands []PathCommand, text string, fontFamily string, fontSize float64) {
	rs.ops = append(rs.ops, sinkOp{kind: SINK_OP_TEXT, commands: commands, text: text})
}

func hasCurve(commands []PathCommand) bool {
	for i := range commands {
		if commands[i].Kind == PATH_CURVE_TO {
			return true
		}
	}
	return false
}

// Round rounds x to given unit, for tolerant float comparisons
func Round(x, unit float64) float64 {
	if x > 0 {
		return float64(int64(x/unit+0.5)) * unit
	}
	return float64(int64(x/unit-0.5)) * unit
}
