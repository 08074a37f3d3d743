package mapmachine

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
)

// RoadsConfiguration controls which ways become roads and how they are
// projected and styled
type RoadsConfiguration struct {
	// Matchers is keyed by the value of the `highway` tag. Ways with no
	// matching entry are skipped
	Matchers map[string]RoadMatcher
	// Projector is optional: when nil, a flat projector centered at the
	// centroid of all road nodes is built with UnitsPerKm
	Projector  Projector
	UnitsPerKm float64
	Verbose    bool
}

// DefaultRoadsConfiguration returns a small built-in style table for common
// highway classes
func DefaultRoadsConfiguration() RoadsConfiguration {
	matchers := make(map[string]RoadMatcher)
	classes := []struct {
		tags         []string
		color        string
		border       string
		defaultWidth float64
		priority     int
	}{
		{[]string{"motorway", "motorway_link"}, "#FFAA66", "#CC7700", 15, 42},
		{[]string{"trunk", "trunk_link", "primary", "primary_link"}, "#FFCC88", "#CC8800", 13, 41},
		{[]string{"secondary", "secondary_link"}, "#FFEEAA", "#CCAA44", 11, 40},
		{[]string{"tertiary", "tertiary_link"}, "#FFFFCC", "#CCCC66", 10, 39},
		{[]string{"residential", "unclassified", "road"}, "#FFFFFF", "#BBBBBB", 8, 38},
		{[]string{"service"}, "#FFFFFF", "#CCCCCC", 4, 37},
	}
	for _, class := range classes {
		matcher, err := NewRoadMatcher(class.color, class.border, class.defaultWidth, class.priority)
		if err != nil {
			continue
		}
		for _, tag := range class.tags {
			matchers[tag] = matcher
		}
	}
	return RoadsConfiguration{
		Matchers:   matchers,
		UnitsPerKm: 1000,
	}
}

type loaderWay struct {
	id    osm.WayID
	tags  osm.Tags
	nodes []osm.NodeID
}

// ImportRoadsFromOSMFile imports roads from file of PBF-format (in OSM terms)
/*
	File should have PBF (Protocolbuffer Binary Format) extension according to https://github.com/paulmach/osm
*/
func ImportRoadsFromOSMFile(fileName string, cfg RoadsConfiguration) (*Roads, Projector, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, nil, errors.Wrap(err, "File open")
	}
	defer f.Close()

	scannerWays := osmpbf.New(context.Background(), f, 4)
	defer scannerWays.Close()

	ways := []loaderWay{}
	nodesSeen := make(map[osm.NodeID]struct{})

	if cfg.Verbose {
		fmt.Printf("Scanning ways...")
	}
	st := time.Now()
	for scannerWays.Scan() {
		obj := scannerWays.Object()
		if obj.ObjectID().Type() != "way" {
			continue
		}
		way := obj.(*osm.Way)
		highway := way.Tags.Find("highway")
		if highway == "" {
			continue
		}
		if _, ok := cfg.Matchers[highway]; !ok {
			continue
		}
		nodeIDs := make([]osm.NodeID, len(way.Nodes))
		for i := range way.Nodes {
			nodeIDs[i] = way.Nodes[i].ID
			nodesSeen[way.Nodes[i].ID] = struct{}{}
		}
		tags := make(osm.Tags, len(way.Tags))
		copy(tags, way.Tags)
		ways = append(ways, loaderWay{id: way.ID, tags: tags, nodes: nodeIDs})
	}
	if scannerWays.Err() != nil {
		return nil, nil, errors.Wrap(scannerWays.Err(), "Scanner error on Ways")
	}
	if cfg.Verbose {
		fmt.Printf("Done in %v\n\tWays: %d\n", time.Since(st), len(ways))
	}

	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Can't repeat seeking")
	}

	scannerNodes := osmpbf.New(context.Background(), f, 4)
	defer scannerNodes.Close()

	nodes := make(map[osm.NodeID]orb.Point)
	if cfg.Verbose {
		fmt.Printf("Scanning nodes...")
	}
	st = time.Now()
	for scannerNodes.Scan() {
		obj := scannerNodes.Object()
		if obj.ObjectID().Type() != "node" {
			continue
		}
		node := obj.(*osm.Node)
		if _, ok := nodesSeen[node.ID]; !ok {
			continue
		}
		nodes[node.ID] = orb.Point{node.Lon, node.Lat}
	}
	if scannerNodes.Err() != nil {
		return nil, nil, errors.Wrap(scannerNodes.Err(), "Scanner error on Nodes")
	}
	if cfg.Verbose {
		fmt.Printf("Done in %v\n\tNodes: %d\n", time.Since(st), len(nodes))
	}

	projector := cfg.Projector
	if projector == nil {
		coordinates := make([]orb.Point, 0, len(nodes))
		for _, point := range nodes {
			coordinates = append(coordinates, point)
		}
		unitsPerKm := cfg.UnitsPerKm
		if unitsPerKm <= 0 {
			unitsPerKm = 1000
		}
		projector = NewFlatProjector(findCentroid(coordinates), unitsPerKm)
	}

	roads := NewRoads()
	if cfg.Verbose {
		fmt.Printf("Preparing roads...")
	}
	st = time.Now()
	for _, way := range ways {
		roadNodes := make([]RoadNode, 0, len(way.nodes))
		complete := true
		for _, id := range way.nodes {
			point, ok := nodes[id]
			if !ok {
				complete = false
				break
			}
			roadNodes = append(roadNodes, RoadNode{ID: id, Coordinate: point})
		}
		if !complete || len(roadNodes) < 2 {
			if cfg.Verbose {
				fmt.Printf("[WARNING]: Way '%d' has incomplete geometry and is skipped\n", way.id)
			}
			continue
		}
		matcher := cfg.Matchers[way.tags.Find("highway")]
		roads.Append(NewRoad(way.tags, roadNodes, matcher, projector, cfg.Verbose))
	}
	if cfg.Verbose {
		fmt.Printf("Done in %v\n\tRoads: %d\n", time.Since(st), len(roads.roads))
	}

	return roads, projector, nil
}
