package mapmachine

import (
	"github.com/paulmach/orb"
)

// Junction geometry around one segment end is clamped to this distance from
// the shared node, so that pathological narrow intersections stay bounded
const junctionClipDistance = 100.0

// RoadSegment one drawable line part of a road. Point1 is the end incident to
// the junction being resolved. Connection fields are populated by the
// junction resolver, everything else is computed at construction
type RoadSegment struct {
	Point1 orb.Point
	Point2 orb.Point
	Lanes  []Lane
	Width  float64 // total width in drawing units

	turned      orb.Point // unit normal of the direction vector
	RightVector orb.Point // turned scaled by half width
	LeftVector  orb.Point

	RightConnection *orb.Point // computed against the clockwise neighbour
	LeftConnection  *orb.Point // computed against the counter-clockwise neighbour
	RightProjection *orb.Point // left connection mirrored across the centerline
	LeftProjection  *orb.Point

	LeftOuter  *orb.Point // final corner points near the junction
	RightOuter *orb.Point
	Anchor     *orb.Point // clamped centerline point the outer corners hang off

	middle *orb.Point // unclamped anchor candidate
	scale  float64
}

// NewRoadSegment builds a segment between two projected points
func NewRoadSegment(point1, point2 orb.Point, lanes []Lane, scale float64) *RoadSegment {
	segment := &RoadSegment{
		Point1: point1,
		Point2: point2,
		Lanes:  lanes,
		scale:  scale,
	}
	if len(lanes) > 0 {
		for i := range lanes {
			segment.Width += lanes[i].EffectiveWidth(scale)
		}
	} else {
		segment.Width = 1
	}

	segment.turned = norm(turnByAngle(sub(point2, point1), halfPi))
	segment.RightVector = mul(segment.turned, segment.Width/2)
	segment.LeftVector = mul(segment.turned, -segment.Width/2)
	return segment
}

// Angle returns angle between the segment direction and x axis
func (segment *RoadSegment) Angle() float64 {
	return computeAngle(sub(segment.Point2, segment.Point1))
}

// Recompute derives projections, outer corners and the anchor from the
// connection fields. Idempotent, safe to call after every connection change
func (segment *RoadSegment) Recompute() {
	if segment.LeftConnection != nil {
		projection := add(*segment.LeftConnection, sub(segment.RightVector, segment.LeftVector))
		segment.RightProjection = &projection
	}
	if segment.RightConnection != nil {
		projection := add(*segment.RightConnection, sub(segment.LeftVector, segment.RightVector))
		segment.LeftProjection = &projection
	}
	if segment.LeftConnection == nil || segment.RightConnection == nil {
		return
	}

	// The farther corner candidate wins, so the junction surface does not
	// pinch inward
	a := findDistance(*segment.RightConnection, segment.Point1)
	b := findDistance(*segment.RightProjection, segment.Point1)
	if a > b {
		segment.RightOuter = segment.RightConnection
		segment.LeftOuter = segment.LeftProjection
	} else {
		segment.RightOuter = segment.RightProjection
		segment.LeftOuter = segment.LeftConnection
	}
	middle := sub(*segment.RightOuter, segment.RightVector)
	segment.middle = &middle

	if findDistance(middle, segment.Point1) > junctionClipDistance {
		anchor := add(segment.Point1, mul(norm(sub(middle, segment.Point1)), junctionClipDistance))
		segment.Anchor = &anchor
		rightOuter := add(anchor, segment.RightVector)
		leftOuter := add(anchor, segment.LeftVector)
		segment.RightOuter = &rightOuter
		segment.LeftOuter = &leftOuter
	} else {
		segment.Anchor = &middle
	}
}

// Draw renders the segment body from its far end down to the connection points
func (segment *RoadSegment) Draw(sink Sink) {
	if segment.LeftConnection == nil || segment.RightConnection == nil {
		return
	}
	sink.Path([]PathCommand{
		MoveTo(add(segment.Point2, segment.RightVector)),
		LineTo(add(segment.Point2, segment.LeftVector)),
		LineTo(*segment.LeftConnection),
		LineTo(*segment.RightConnection),
		ClosePath(),
	}, Style{Fill: "#CCCCCC"})
}

// DrawEntrance renders the junction-adjacent cap quadrilateral
func (segment *RoadSegment) DrawEntrance(sink Sink, isDebug bool) {
	if segment.LeftConnection == nil || segment.RightConnection == nil {
		return
	}
	commands := []PathCommand{
		MoveTo(*segment.RightProjection),
		LineTo(*segment.RightConnection),
		LineTo(*segment.LeftProjection),
		LineTo(*segment.LeftConnection),
		ClosePath(),
	}
	if isDebug {
		sink.Path(commands, Style{Stroke: "#880088", StrokeWidth: 0.5})
		return
	}
	sink.Path(commands, Style{Fill: "#88FF88"})
}

// DrawLanes renders interior lane separators between the anchor and the far end
func (segment *RoadSegment) DrawLanes(sink Sink) {
	if segment.Anchor == nil || len(segment.Lanes) < 2 {
		return
	}
	for index := 1; index < len(segment.Lanes); index++ {
		shift := sub(segment.RightVector, mul(segment.turned, float64(index)*segment.Width/float64(len(segment.Lanes))))
		sink.Path([]PathCommand{
			MoveTo(add(*segment.Anchor, shift)),
			LineTo(add(segment.Point2, shift)),
		}, Style{
			Stroke:      "#FFFFFF",
			StrokeWidth: 2,
			Dash:        []float64{7, 7},
		})
	}
}

// DrawNormal renders the segment as a plain thick stroke
func (segment *RoadSegment) DrawNormal(sink Sink) {
	sink.Path([]PathCommand{
		MoveTo(segment.Point1),
		LineTo(segment.Point2),
	}, Style{Stroke: "#8888FF", StrokeWidth: segment.Width})
}

// DrawDebug renders centerline, boundary lines and resolved point markers
func (segment *RoadSegment) DrawDebug(sink Sink) {
	sink.Path([]PathCommand{
		MoveTo(segment.Point1), LineTo(segment.Point2),
	}, Style{Stroke: "#000000", StrokeWidth: 1})
	sink.Path([]PathCommand{
		MoveTo(add(segment.Point1, segment.RightVector)),
		LineTo(add(segment.Point2, segment.RightVector)),
	}, Style{Stroke: "#FF0000", StrokeWidth: 0.5})
	sink.Path([]PathCommand{
		MoveTo(add(segment.Point1, segment.LeftVector)),
		LineTo(add(segment.Point2, segment.LeftVector)),
	}, Style{Stroke: "#0000FF", StrokeWidth: 0.5})

	const opacity = 0.4
	if segment.RightConnection != nil {
		sink.Circle(*segment.RightConnection, 2.5, Style{Fill: "#FF0000", Opacity: opacity})
	}
	if segment.LeftConnection != nil {
		sink.Circle(*segment.LeftConnection, 2.5, Style{Fill: "#0000FF", Opacity: opacity})
	}
	if segment.RightProjection != nil {
		sink.Circle(*segment.RightProjection, 1.5, Style{Fill: "#FF0000", Opacity: opacity})
	}
	if segment.LeftProjection != nil {
		sink.Circle(*segment.LeftProjection, 1.5, Style{Fill: "#0000FF", Opacity: opacity})
	}
	if segment.RightOuter != nil {
		sink.Circle(*segment.RightOuter, 3.5, Style{Stroke: "#FF0000", StrokeWidth: 0.5, Opacity: opacity})
	}
	if segment.LeftOuter != nil {
		sink.Circle(*segment.LeftOuter, 3.5, Style{Stroke: "#0000FF", StrokeWidth: 0.5, Opacity: opacity})
	}
	if segment.Anchor != nil {
		sink.Circle(*segment.Anchor, 2, Style{Fill: "#000000"})
	}
}
