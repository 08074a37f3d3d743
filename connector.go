package mapmachine

import (
	"math"

	"github.com/paulmach/orb"
)

// ConnectorKind topology class of a node shared by road ends
type ConnectorKind uint16

const (
	CONNECTOR_SIMPLE = ConnectorKind(iota + 1)
	CONNECTOR_TRANSITION
	CONNECTOR_MULTIWAY
)

func (iotaIdx ConnectorKind) String() string {
	return [...]string{"simple", "transition", "multiway"}[iotaIdx-1]
}

// classifyConnector picks the connector kind from node topology. Roads of
// equal width, or a node placed mid-way along a road, keep the width of the
// primary road; differing widths joined end to end get a transition taper.
// Nodes with more than two incident road ends have no finished geometry yet
// and stay unresolved
func classifyConnector(widthsEqual, bothEndpoints bool, incident int) ConnectorKind {
	if incident > 2 {
		return CONNECTOR_MULTIWAY
	}
	if widthsEqual || !bothEndpoints {
		return CONNECTOR_SIMPLE
	}
	return CONNECTOR_TRANSITION
}

// RoadConnection one road end touching a shared node
type RoadConnection struct {
	Road  *Road
	Index int // node index inside the road
}

// taperCurve one cubic side of the width transition taper
type taperCurve struct {
	start    orb.Point
	control1 orb.Point
	control2 orb.Point
	end      orb.Point
}

// Connector resolved geometry joining exactly two road ends at a shared node
type Connector struct {
	Kind     ConnectorKind
	Priority int
	MinLayer float64
	MaxLayer float64

	road1  *Road
	road2  *Road
	index1 int
	index2 int
	point  orb.Point
	scale  float64

	curve1 taperCurve
	curve2 taperCurve
}

// NewConnector classifies and builds the connector for road ends sharing one
// node. Transition connectors shorten both road polylines to make room for
// the taper, so a connector must be built at most once per node
func NewConnector(connections []RoadConnection, projector Projector, scale float64) *Connector {
	connector := &Connector{
		road1:    connections[0].Road,
		index1:   connections[0].Index,
		scale:    scale,
		MinLayer: math.Inf(1),
		MaxLayer: math.Inf(-1),
	}
	connector.Priority = connector.road1.Matcher.Priority
	for i := range connections {
		layer := connections[i].Road.Layer
		connector.MinLayer = math.Min(connector.MinLayer, layer)
		connector.MaxLayer = math.Max(connector.MaxLayer, layer)
	}
	connector.point = projector.Project(connector.road1.Nodes[connector.index1].Coordinate)

	if len(connections) != 2 {
		connector.Kind = classifyConnector(false, false, len(connections))
		return connector
	}

	connector.road2 = connections[1].Road
	connector.index2 = connections[1].Index

	widthsEqual := connector.road1.resolvedWidth() == connector.road2.resolvedWidth()
	bothEndpoints := connector.road1.isEndpointIndex(connector.index1) &&
		connector.road2.isEndpointIndex(connector.index2)
	connector.Kind = classifyConnector(widthsEqual, bothEndpoints, len(connections))

	if connector.Kind == CONNECTOR_TRANSITION {
		connector.buildTaper()
	}
	return connector
}

// buildTaper shortens both roads at the junction and spans two cubic curves
// between their offset corner points, forming an S-shaped width transition
func (connector *Connector) buildTaper() {
	length := math.Abs(connector.road2.resolvedWidth()-connector.road1.resolvedWidth()) * connector.scale
	connector.road1.Line.Shorten(connector.index1, length)
	connector.road2.Line.Shorten(connector.index2, length)

	points1 := connectorCurvePoints(
		connector.road1, connector.scale, connector.point,
		connector.road1.Line.Points[connector.index1],
	)
	points2 := connectorCurvePoints(
		connector.road2, connector.scale, connector.point,
		connector.road2.Line.Points[connector.index2],
	)
	connector.curve1 = taperCurve{start: points1[0], control1: points1[1], control2: points2[2], end: points2[3]}
	connector.curve2 = taperCurve{start: points2[0], control1: points2[1], control2: points1[2], end: points1[3]}
}

// connectorCurvePoints returns the four corner points of a road end around
// the junction center: end+left, center+left, center+right, end+right
func connectorCurvePoints(road *Road, scale float64, center, roadEnd orb.Point) [4]orb.Point {
	width := road.resolvedWidth() / 2.0 * scale

	direction := norm(sub(roadEnd, center))
	left := mul(turnByAngle(direction, halfPi), width)
	right := mul(turnByAngle(direction, -halfPi), width)

	return [4]orb.Point{
		add(roadEnd, left),
		add(center, left),
		add(center, right),
		add(roadEnd, right),
	}
}

// taperPathCommands returns the closed path bounded by the two taper curves
func (connector *Connector) taperPathCommands() []PathCommand {
	return []PathCommand{
		MoveTo(connector.curve1.start),
		CurveTo(connector.curve1.control1, connector.curve1.control2, connector.curve1.end),
		LineTo(connector.curve2.start),
		CurveTo(connector.curve2.control1, connector.curve2.control2, connector.curve2.end),
		ClosePath(),
	}
}

// Draw renders the connector fill pass
func (connector *Connector) Draw(sink Sink, options RenderOptions) {
	switch connector.Kind {
	case CONNECTOR_SIMPLE:
		sink.Circle(
			connector.point,
			connector.road1.resolvedWidth()*connector.scale/2,
			Style{Fill: connector.road1.color().Hex()},
		)
	case CONNECTOR_TRANSITION:
		for _, end := range []RoadConnection{
			{Road: connector.road1, Index: connector.index1},
			{Road: connector.road2, Index: connector.index2},
		} {
			sink.Circle(
				end.Road.Line.Points[end.Index],
				end.Road.resolvedWidth()*connector.scale/2,
				Style{Fill: end.Road.color().Hex()},
			)
		}
		sink.Path(connector.taperPathCommands(), Style{Fill: connector.road1.color().Hex()})
	case CONNECTOR_MULTIWAY:
		// No finished geometry for 3+ road ends, roads render unconnected
	}
}

// DrawBorder renders the connector border pass
func (connector *Connector) DrawBorder(sink Sink, options RenderOptions) {
	switch connector.Kind {
	case CONNECTOR_SIMPLE:
		sink.Circle(
			connector.point,
			connector.road1.resolvedWidth()*connector.scale/2+1,
			Style{Fill: connector.road1.borderColor().Hex()},
		)
	case CONNECTOR_TRANSITION:
		style := connector.road1.style(connector.scale, true, true)
		style.Blur = connector.road1.blurDeviation(options, true)
		sink.Path(connector.taperPathCommands(), style)
	case CONNECTOR_MULTIWAY:
	}
}
