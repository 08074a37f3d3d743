package mapmachine

import (
	"sort"

	"github.com/paulmach/orb"
)

// Intersection junction of road segments sharing one node. All segments must
// have their first point at the shared node
type Intersection struct {
	Segments []*RoadSegment
}

// pairConnection resolved point joining the right boundary of a segment with
// the left boundary of its cyclic successor
type pairConnection struct {
	point orb.Point
	ok    bool
}

// NewIntersection resolves connection geometry for segments meeting at one
// node. Resolution is two pure passes over side tables which are merged into
// the segment records by index, so no segment is mutated mid-computation
func NewIntersection(segments []*RoadSegment) *Intersection {
	sorted := make([]*RoadSegment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Angle() < sorted[j].Angle()
	})
	intersection := &Intersection{Segments: sorted}

	n := len(sorted)
	if n == 0 {
		return intersection
	}

	// First pass: intersect right boundary of every segment with the left
	// boundary of its cyclic successor. Parallel boundaries are left
	// unresolved and handled by the fallback pass
	connections := make([]pairConnection, n)
	for index := 0; index < n; index++ {
		segment1 := sorted[index]
		segment2 := sorted[(index+1)%n]
		point, err := lineIntersection(
			add(segment1.Point1, segment1.RightVector),
			add(segment1.Point2, segment1.RightVector),
			add(segment2.Point1, segment2.LeftVector),
			add(segment2.Point2, segment2.LeftVector),
		)
		if err != nil {
			continue
		}
		connections[index] = pairConnection{point: point, ok: true}
	}
	for index := 0; index < n; index++ {
		if !connections[index].ok {
			continue
		}
		right := connections[index].point
		left := connections[index].point
		sorted[index].RightConnection = &right
		sorted[(index+1)%n].LeftConnection = &left
	}
	for index := 0; index < n; index++ {
		sorted[index].Recompute()
	}

	// Fallback pass: adjacent pairs that got no connection use their own
	// mirrored projections as the missing connection and outer corner
	type fallback struct {
		rightConnection1 *orb.Point
		leftConnection2  *orb.Point
	}
	fallbacks := make([]fallback, n)
	for index := 0; index < n; index++ {
		segment1 := sorted[index]
		segment2 := sorted[(index+1)%n]
		if segment1.RightConnection != nil || segment2.LeftConnection != nil {
			continue
		}
		fallbacks[index] = fallback{
			rightConnection1: copyPoint(segment1.RightProjection),
			leftConnection2:  copyPoint(segment2.LeftProjection),
		}
	}
	for index := 0; index < n; index++ {
		segment1 := sorted[index]
		segment2 := sorted[(index+1)%n]
		if fallbacks[index].rightConnection1 != nil {
			segment1.RightConnection = fallbacks[index].rightConnection1
			segment1.RightOuter = copyPoint(fallbacks[index].rightConnection1)
		}
		if fallbacks[index].leftConnection2 != nil {
			segment2.LeftConnection = fallbacks[index].leftConnection2
			segment2.LeftOuter = copyPoint(fallbacks[index].leftConnection2)
		}
	}
	for index := 0; index < n; index++ {
		sorted[index].Recompute()
	}

	return intersection
}

func copyPoint(point *orb.Point) *orb.Point {
	if point == nil {
		return nil
	}
	clone := *point
	return &clone
}

// InnerPolygon returns the closed loop of left connection points in cyclic
// order, the filled junction surface
func (intersection *Intersection) InnerPolygon() []PathCommand {
	var commands []PathCommand
	for _, segment := range intersection.Segments {
		if segment.LeftConnection == nil {
			continue
		}
		if len(commands) == 0 {
			commands = append(commands, MoveTo(*segment.LeftConnection))
			continue
		}
		commands = append(commands, LineTo(*segment.LeftConnection))
	}
	if len(commands) > 0 {
		commands = append(commands, ClosePath())
	}
	return commands
}

// OuterPolygon returns the boundary loop interleaving every segment's left
// connection and outer corner points
func (intersection *Intersection) OuterPolygon() []PathCommand {
	var commands []PathCommand
	appendPoint := func(point *orb.Point) {
		if point == nil {
			return
		}
		if len(commands) == 0 {
			commands = append(commands, MoveTo(*point))
			return
		}
		commands = append(commands, LineTo(*point))
	}
	for _, segment := range intersection.Segments {
		appendPoint(segment.LeftConnection)
		appendPoint(segment.LeftOuter)
		appendPoint(segment.RightOuter)
	}
	if len(commands) > 0 {
		commands = append(commands, ClosePath())
	}
	return commands
}

// Draw renders all segment caps and the junction surface
func (intersection *Intersection) Draw(sink Sink, options RenderOptions) {
	if options.Debug {
		sink.Path(intersection.OuterPolygon(), Style{Fill: "#0000FF", Opacity: 0.2})
		sink.Path(intersection.InnerPolygon(), Style{Fill: "#FF0000", Opacity: 0.2})
		for _, segment := range intersection.Segments {
			segment.DrawDebug(sink)
		}
		return
	}

	for _, segment := range intersection.Segments {
		segment.DrawEntrance(sink, false)
	}
	sink.Path(intersection.InnerPolygon(), Style{Fill: "#FF8888"})
	for _, segment := range intersection.Segments {
		segment.DrawLanes(sink)
	}
}
