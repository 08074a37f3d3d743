package mapmachine

import (
	"sort"

	"github.com/paulmach/osm"
)

// Roads whole road structure of the map
type Roads struct {
	roads []*Road
	nodes map[osm.NodeID][]RoadConnection

	resolved   bool
	connectors []*Connector
}

// NewRoads creates an empty road structure
func NewRoads() *Roads {
	return &Roads{
		nodes: make(map[osm.NodeID][]RoadConnection),
	}
}

// Append registers the road and its node adjacency
func (roads *Roads) Append(road *Road) {
	roads.roads = append(roads.roads, road)
	for index := range road.Nodes {
		id := road.Nodes[index].ID
		roads.nodes[id] = append(roads.nodes[id], RoadConnection{Road: road, Index: index})
	}
}

// resolveConnectors builds a connector for every node shared by exactly two
// road ends. Runs once: transition connectors shorten road geometry, so
// repeating the pass would taper the roads again. Nodes are processed in ID
// order to keep the draw sequence deterministic
func (roads *Roads) resolveConnectors(projector Projector, scale float64) {
	if roads.resolved {
		return
	}
	roads.resolved = true

	ids := make([]osm.NodeID, 0, len(roads.nodes))
	for id := range roads.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		connected := roads.nodes[id]
		if len(connected) <= 1 {
			// Dead end
			continue
		}
		if classifyConnector(false, false, len(connected)) == CONNECTOR_MULTIWAY {
			// Known gap: no finished multiway geometry, roads stay unconnected
			continue
		}
		roads.connectors = append(roads.connectors, NewConnector(connected, projector, scale))
	}
}

// Draw renders the whole road system in layer order. Within one layer: road
// borders by ascending priority, then connector borders anchored at their
// minimum layer, road fills, connector fills anchored at their maximum layer,
// and lane separators. Captions go on top of everything when requested
func (roads *Roads) Draw(sink Sink, projector Projector, options RenderOptions) {
	if len(roads.roads) == 0 {
		return
	}

	scale := projector.ScaleAt(roads.roads[0].Nodes[0].Coordinate)
	roads.resolveConnectors(projector, scale)

	layeredRoads := make(map[float64][]*Road)
	for _, road := range roads.roads {
		layeredRoads[road.Layer] = append(layeredRoads[road.Layer], road)
	}

	// A connector spanning two layers appears in both buckets: its border
	// belongs to the lower layer pass, its fill to the higher one
	layeredConnectors := make(map[float64][]*Connector)
	for _, connector := range roads.connectors {
		layeredConnectors[connector.MinLayer] = append(layeredConnectors[connector.MinLayer], connector)
		if connector.MaxLayer != connector.MinLayer {
			layeredConnectors[connector.MaxLayer] = append(layeredConnectors[connector.MaxLayer], connector)
		}
	}

	layers := make([]float64, 0, len(layeredRoads))
	for layer := range layeredRoads {
		layers = append(layers, layer)
	}
	sort.Float64s(layers)

	for _, layer := range layers {
		layerRoads := make([]*Road, len(layeredRoads[layer]))
		copy(layerRoads, layeredRoads[layer])
		sort.SliceStable(layerRoads, func(i, j int) bool {
			return layerRoads[i].Matcher.Priority < layerRoads[j].Matcher.Priority
		})
		connectors := layeredConnectors[layer]

		for _, road := range layerRoads {
			road.Draw(sink, projector, true, options)
		}
		for _, connector := range connectors {
			if connector.MinLayer == layer {
				connector.DrawBorder(sink, options)
			}
		}

		for _, road := range layerRoads {
			road.Draw(sink, projector, false, options)
		}
		for _, connector := range connectors {
			if connector.MaxLayer == layer {
				connector.Draw(sink, options)
			}
		}

		for _, road := range layerRoads {
			road.DrawLanes(sink, projector, road.Matcher.BorderColor)
		}
	}

	if options.Captions {
		for _, road := range roads.roads {
			road.DrawCaption(sink)
		}
	}
}

// Connectors returns connectors resolved by the last Draw call
func (roads *Roads) Connectors() []*Connector {
	return roads.connectors
}

// Roads returns all registered roads in append order
func (roads *Roads) Roads() []*Road {
	return roads.roads
}

// NodeConnections returns road ends adjacent to given node
func (roads *Roads) NodeConnections(id osm.NodeID) []RoadConnection {
	return roads.nodes[id]
}
