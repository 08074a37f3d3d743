package mapmachine

import (
	"github.com/paulmach/orb"
)

// PathCommandKind kind of a single path drawing command
type PathCommandKind uint16

const (
	PATH_MOVE_TO = PathCommandKind(iota + 1)
	PATH_LINE_TO
	PATH_CURVE_TO
	PATH_CLOSE
)

func (iotaIdx PathCommandKind) String() string {
	return [...]string{"moveto", "lineto", "curveto", "close"}[iotaIdx-1]
}

// PathCommand one command of a path primitive. Curve commands carry two
// control points of a cubic Bezier segment, straight commands carry the
// target point only
type PathCommand struct {
	Kind     PathCommandKind
	Point    orb.Point
	Control1 orb.Point
	Control2 orb.Point
}

// MoveTo starts a new subpath at given point
func MoveTo(point orb.Point) PathCommand {
	return PathCommand{Kind: PATH_MOVE_TO, Point: point}
}

// LineTo continues the path with a straight segment
func LineTo(point orb.Point) PathCommand {
	return PathCommand{Kind: PATH_LINE_TO, Point: point}
}

// CurveTo continues the path with a cubic Bezier segment
func CurveTo(control1, control2, point orb.Point) PathCommand {
	return PathCommand{Kind: PATH_CURVE_TO, Point: point, Control1: control1, Control2: control2}
}

// ClosePath closes the current subpath
func ClosePath() PathCommand {
	return PathCommand{Kind: PATH_CLOSE}
}

// Style resolved drawing attributes of a single primitive. Empty color means
// the corresponding paint (fill or stroke) is absent
type Style struct {
	Fill        string // hex color
	Stroke      string // hex color
	StrokeWidth float64
	LineCap     string
	LineJoin    string
	Dash        []float64 // alternating dash/gap lengths
	Opacity     float64   // 0 is treated as fully opaque
	Blur        float64   // gaussian blur deviation, 0 for none
}

// Sink consumer of the ordered drawing primitive stream
type Sink interface {
	Path(commands []PathCommand, style Style)
	Circle(center orb.Point, radius float64, style Style)
}

// TextPathSink optional sink extension for text drawn along a path
type TextPathSink interface {
	TextPath(commands []PathCommand, text string, fontFamily string, fontSize float64)
}

// RenderOptions explicit drawing switches passed through draw calls
type RenderOptions struct {
	Blur     bool // blur borders of bridges
	Captions bool // draw road names along the lines
	Debug    bool // draw junction geometry markers instead of surfaces
}
