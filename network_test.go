package mapmachine

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

func TestRoadsAppendAdjacency(t *testing.T) {
	roads := NewRoads()
	roadA := testRoad(t, nil, 6,
		RoadNode{ID: 1, Coordinate: orb.Point{0, 0}},
		RoadNode{ID: 2, Coordinate: orb.Point{10, 0}},
	)
	roadB := testRoad(t, nil, 6,
		RoadNode{ID: 2, Coordinate: orb.Point{10, 0}},
		RoadNode{ID: 3, Coordinate: orb.Point{20, 0}},
	)
	roads.Append(roadA)
	roads.Append(roadB)

	shared := roads.NodeConnections(2)
	if len(shared) != 2 {
		t.Fatalf("Shared node must have 2 adjacent road ends, but got %d", len(shared))
	}
	if shared[0].Road != roadA || shared[0].Index != 1 {
		t.Errorf("First adjacency must be road A end, but got %v", shared[0])
	}
	if shared[1].Road != roadB || shared[1].Index != 0 {
		t.Errorf("Second adjacency must be road B start, but got %v", shared[1])
	}
}

func TestRoadsLayerOrdering(t *testing.T) {
	roads := NewRoads()
	roadGround := testRoad(t, nil, 6,
		RoadNode{ID: 1, Coordinate: orb.Point{0, 0}},
		RoadNode{ID: 2, Coordinate: orb.Point{10, 0}},
	)
	roadBridge := testRoad(t, osm.Tags{{Key: "layer", Value: "1"}}, 6,
		RoadNode{ID: 2, Coordinate: orb.Point{10, 0}},
		RoadNode{ID: 3, Coordinate: orb.Point{20, 0}},
	)
	roads.Append(roadGround)
	roads.Append(roadBridge)

	sink := &recordSink{}
	roads.Draw(sink, planeProjector{scale: 1}, RenderOptions{})

	// Ground layer: road border, connector border, road fill. Bridge layer:
	// road border, road fill, connector fill
	if len(sink.ops) != 6 {
		t.Fatalf("Draw must emit 6 primitives, but got %d", len(sink.ops))
	}

	borderCircle, fillCircle := -1, -1
	bridgeFill := -1
	borderHex := roadGround.borderColor().Hex()
	for i, op := range sink.ops {
		if op.kind == SINK_OP_CIRCLE {
			if op.style.Fill == borderHex {
				borderCircle = i
			} else {
				fillCircle = i
			}
		}
		if op.kind == SINK_OP_PATH && op.style.Stroke == roadBridge.color().Hex() {
			bridgeFill = i
		}
	}
	if borderCircle != 1 {
		t.Errorf("Connector border must follow the ground road border at position 1, but got %d", borderCircle)
	}
	if bridgeFill < 0 || borderCircle > bridgeFill {
		t.Errorf("Connector border at %d must come before the bridge road fill at %d", borderCircle, bridgeFill)
	}
	if fillCircle != len(sink.ops)-1 {
		t.Errorf("Connector fill must be the last primitive, but got position %d", fillCircle)
	}
}

func TestRoadsTransitionScenario(t *testing.T) {
	roads := NewRoads()
	roadA := testRoad(t, nil, 6,
		RoadNode{ID: 1, Coordinate: orb.Point{0, 0}},
		RoadNode{ID: 2, Coordinate: orb.Point{10, 0}},
	)
	roadB := testRoad(t, nil, 10,
		RoadNode{ID: 2, Coordinate: orb.Point{10, 0}},
		RoadNode{ID: 3, Coordinate: orb.Point{20, 0}},
	)
	roads.Append(roadA)
	roads.Append(roadB)

	sink := &recordSink{}
	roads.Draw(sink, planeProjector{scale: 1}, RenderOptions{})

	connectors := roads.Connectors()
	if len(connectors) != 1 || connectors[0].Kind != CONNECTOR_TRANSITION {
		t.Fatalf("Scenario must resolve one transition connector, but got %v", connectors)
	}
	if roadA.Line.Points[1] != (orb.Point{6, 0}) {
		t.Errorf("Road A must end at x=6, but got %v", roadA.Line.Points[1])
	}
	if roadB.Line.Points[0] != (orb.Point{14, 0}) {
		t.Errorf("Road B must end at x=14, but got %v", roadB.Line.Points[0])
	}

	radii := []float64{}
	taperFills := 0
	for _, op := range sink.ops {
		switch op.kind {
		case SINK_OP_CIRCLE:
			radii = append(radii, Round(op.radius, 0.0005))
		case SINK_OP_PATH:
			if op.style.Fill != "" && hasCurve(op.commands) {
				taperFills++
			}
		}
	}
	if len(radii) != 2 || radii[0] != 3 || radii[1] != 5 {
		t.Errorf("End caps must be circles of radius 3 and 5, but got %v", radii)
	}
	if taperFills != 1 {
		t.Errorf("Draw must contain exactly one taper fill path, but got %d", taperFills)
	}
}

func TestRoadsDrawIdempotent(t *testing.T) {
	roads := NewRoads()
	roadA := testRoad(t, nil, 6,
		RoadNode{ID: 1, Coordinate: orb.Point{0, 0}},
		RoadNode{ID: 2, Coordinate: orb.Point{10, 0}},
	)
	roadB := testRoad(t, nil, 10,
		RoadNode{ID: 2, Coordinate: orb.Point{10, 0}},
		RoadNode{ID: 3, Coordinate: orb.Point{20, 0}},
	)
	roads.Append(roadA)
	roads.Append(roadB)

	roads.Draw(&recordSink{}, planeProjector{scale: 1}, RenderOptions{})
	roads.Draw(&recordSink{}, planeProjector{scale: 1}, RenderOptions{})

	// Connector resolution must not shorten the taper ends twice
	if roadA.Line.Points[1] != (orb.Point{6, 0}) {
		t.Errorf("Road A end must stay at x=6 after repeated draw, but got %v", roadA.Line.Points[1])
	}
	if len(roads.Connectors()) != 1 {
		t.Errorf("Repeated draw must keep one connector, but got %d", len(roads.Connectors()))
	}
}

func TestRoadsMultiwaySkipped(t *testing.T) {
	roads := NewRoads()
	center := RoadNode{ID: 10, Coordinate: orb.Point{0, 0}}
	for i, end := range []orb.Point{{10, 0}, {0, 10}, {-10, 0}} {
		roads.Append(testRoad(t, nil, 6,
			center,
			RoadNode{ID: osm.NodeID(20 + i), Coordinate: end},
		))
	}

	sink := &recordSink{}
	roads.Draw(sink, planeProjector{scale: 1}, RenderOptions{})

	if len(roads.Connectors()) != 0 {
		t.Errorf("Node with 3 road ends must produce no connector, but got %d", len(roads.Connectors()))
	}
	// Three roads, border and fill passes only
	if len(sink.ops) != 6 {
		t.Errorf("Draw must emit 6 road strokes, but got %d", len(sink.ops))
	}
}

func TestRoadsPriorityOrdering(t *testing.T) {
	minor, err := NewRoadMatcher("#FFFFFF", "#BBBBBB", 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	major, err := NewRoadMatcher("#FFAA66", "#CC7700", 10, 5)
	if err != nil {
		t.Fatal(err)
	}

	roads := NewRoads()
	// Appended major first: priority order must still put minor first
	roads.Append(NewRoad(nil, []RoadNode{
		{ID: 1, Coordinate: orb.Point{0, 0}},
		{ID: 2, Coordinate: orb.Point{10, 0}},
	}, major, planeProjector{scale: 1}, false))
	roads.Append(NewRoad(nil, []RoadNode{
		{ID: 3, Coordinate: orb.Point{0, 5}},
		{ID: 4, Coordinate: orb.Point{10, 5}},
	}, minor, planeProjector{scale: 1}, false))

	sink := &recordSink{}
	roads.Draw(sink, planeProjector{scale: 1}, RenderOptions{})

	if len(sink.ops) != 4 {
		t.Fatalf("Draw must emit 4 road strokes, but got %d", len(sink.ops))
	}
	if sink.ops[0].style.Stroke != minor.BorderColor.Hex() {
		t.Errorf("Lower priority border must be drawn first, but got stroke %s", sink.ops[0].style.Stroke)
	}
	if sink.ops[1].style.Stroke != major.BorderColor.Hex() {
		t.Errorf("Higher priority border must be drawn second, but got stroke %s", sink.ops[1].style.Stroke)
	}
}
