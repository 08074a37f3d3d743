package mapmachine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// RoadNode input node of a road: stable identity plus geographic coordinate
type RoadNode struct {
	ID         osm.NodeID
	Coordinate orb.Point // lon/lat
}

// Road drawable road or track on the map
type Road struct {
	Tags    osm.Tags
	Nodes   []RoadNode
	Matcher RoadMatcher
	Line    *Polyline
	Width   float64 // road width in meters, 0 when unknown
	Lanes   []Lane
	Layer   float64
}

// NewRoad builds a road from its tags and nodes, projecting the geometry onto
// the drawing plane. Malformed numeric tag values are reported when verbose
// is enabled and ignored otherwise
func NewRoad(tags osm.Tags, nodes []RoadNode, matcher RoadMatcher, projector Projector, verbose bool) *Road {
	road := &Road{
		Tags:    tags,
		Nodes:   nodes,
		Matcher: matcher,
		Width:   matcher.DefaultWidth,
	}

	points := make([]orb.Point, len(nodes))
	for i := range nodes {
		points[i] = projector.Project(nodes[i].Coordinate)
	}
	road.Line = NewPolyline(points)

	road.processTags(verbose)
	return road
}

func (road *Road) processTags(verbose bool) {
	lanes := road.Tags.Find("lanes")
	if lanes != "" {
		lanesNum, err := strconv.Atoi(lanes)
		if err != nil || lanesNum <= 0 {
			if verbose {
				fmt.Printf("[WARNING]: Provided `lanes` tag value should be a positive integer. Got '%s'\n", lanes)
			}
		} else {
			road.Width = float64(lanesNum) * defaultLaneWidth
			road.Lanes = make([]Lane, lanesNum)
		}
	}

	laneWidths := road.Tags.Find("width:lanes")
	if laneWidths != "" {
		widths, err := parseLaneWidths(laneWidths)
		if err != nil {
			if verbose {
				fmt.Printf("[WARNING]: Provided `width:lanes` tag value should be a list of numbers. Got '%s'\n", laneWidths)
			}
		} else if len(widths) == len(road.Lanes) {
			for i := range road.Lanes {
				road.Lanes[i].Width = widths[i]
			}
		}
	}

	lanesForward := road.Tags.Find("lanes:forward")
	if lanesForward != "" {
		number, err := strconv.Atoi(lanesForward)
		if err != nil || number < 0 {
			if verbose {
				fmt.Printf("[WARNING]: Provided `lanes:forward` tag value should be an integer. Got '%s'\n", lanesForward)
			}
		} else {
			for i := len(road.Lanes) - number; i < len(road.Lanes); i++ {
				if i >= 0 {
					road.Lanes[i].SetForward(true)
				}
			}
		}
	}

	lanesBackward := road.Tags.Find("lanes:backward")
	if lanesBackward != "" {
		number, err := strconv.Atoi(lanesBackward)
		if err != nil || number < 0 {
			if verbose {
				fmt.Printf("[WARNING]: Provided `lanes:backward` tag value should be an integer. Got '%s'\n", lanesBackward)
			}
		} else {
			for i := 0; i < number && i < len(road.Lanes); i++ {
				road.Lanes[i].SetForward(false)
			}
		}
	}

	width := road.Tags.Find("width")
	if width != "" {
		value, err := strconv.ParseFloat(width, 64)
		if err != nil {
			if verbose {
				fmt.Printf("[WARNING]: Provided `width` tag value should be a number. Got '%s'\n", width)
			}
		} else {
			road.Width = value
		}
	}

	layer := road.Tags.Find("layer")
	if layer != "" {
		value, err := strconv.ParseFloat(layer, 64)
		if err != nil {
			if verbose {
				fmt.Printf("[WARNING]: Provided `layer` tag value should be a number. Got '%s'\n", layer)
			}
		} else {
			road.Layer = value
		}
	}
}

func parseLaneWidths(value string) ([]float64, error) {
	parts := strings.Split(value, "|")
	widths := make([]float64, len(parts))
	for i := range parts {
		width, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return nil, err
		}
		widths[i] = width
	}
	return widths, nil
}

// resolvedWidth returns road width in meters falling back to the matcher default
func (road *Road) resolvedWidth() float64 {
	if road.Width > 0 {
		return road.Width
	}
	return road.Matcher.DefaultWidth
}

// isEndpointIndex reports whether the node index addresses a polyline end
func (road *Road) isEndpointIndex(index int) bool {
	return index == 0 || index == len(road.Nodes)-1
}

// color returns road main color. Tunnels are drawn lighter
func (road *Road) color() colorful.Color {
	color := road.Matcher.Color
	if road.Tags.Find("tunnel") == "yes" {
		h, s, l := color.Hsl()
		color = colorful.Hsl(h, s, math.Min(1, l+0.2))
	}
	return color
}

// borderColor returns road border color
func (road *Road) borderColor() colorful.Color {
	color := road.Matcher.BorderColor
	if road.Tags.Find("bridge") == "yes" {
		color, _ = colorful.Hex("#666666")
	}
	if road.Tags.Find("ford") == "yes" {
		color, _ = colorful.Hex("#88BBFF")
	}
	if road.Tags.Find("embankment") == "yes" {
		color, _ = colorful.Hex("#666666")
	}
	return color
}

// style returns stroke style of the road for the border or fill pass.
// forStroke requests the thin outline variant used for connector borders
func (road *Road) style(scale float64, isBorder, forStroke bool) Style {
	width := road.resolvedWidth()

	var color colorful.Color
	borderWidth := 0.0
	if isBorder {
		color = road.borderColor()
		borderWidth = 2.0
	} else {
		color = road.color()
	}

	extraWidth := 0.0
	if isBorder {
		if road.Tags.Find("bridge") == "yes" {
			extraWidth = 0.5
		}
		if road.Tags.Find("ford") == "yes" {
			extraWidth = 2.0
		}
		if road.Tags.Find("embankment") == "yes" {
			extraWidth = 4.0
		}
	}

	style := Style{
		Stroke:      color.Hex(),
		StrokeWidth: scale*width + extraWidth + borderWidth,
		LineCap:     "butt",
		LineJoin:    "round",
	}
	if forStroke {
		style.StrokeWidth = 2 + extraWidth
	}
	if isBorder && road.Tags.Find("embankment") == "yes" {
		style.Dash = []float64{1, 3}
	}
	if isBorder && road.Tags.Find("tunnel") == "yes" {
		style.Dash = []float64{3, 3}
	}
	return style
}

// blurDeviation returns blur strength for the pass, 0 when blur does not apply
func (road *Road) blurDeviation(options RenderOptions, isBorder bool) float64 {
	if options.Blur && isBorder && road.Tags.Find("bridge") == "yes" {
		return 2
	}
	return 0
}

// Draw renders the road stroke for the border or fill pass
func (road *Road) Draw(sink Sink, projector Projector, isBorder bool, options RenderOptions) {
	if len(road.Nodes) == 0 {
		return
	}
	scale := projector.ScaleAt(road.Nodes[0].Coordinate)
	style := road.style(scale, isBorder, false)
	style.Blur = road.blurDeviation(options, isBorder)
	sink.Path(road.Line.PathCommands(), style)
}

// DrawLanes renders interior lane separators as offset parallel strokes
func (road *Road) DrawLanes(sink Sink, projector Projector, color colorful.Color) {
	if len(road.Lanes) < 2 || len(road.Nodes) == 0 {
		return
	}
	scale := projector.ScaleAt(road.Nodes[0].Coordinate)
	width := road.resolvedWidth()

	for index := 1; index < len(road.Lanes); index++ {
		offset := scale * (-width/2 + float64(index)*width/float64(len(road.Lanes)))
		sink.Path(road.Line.OffsetPathCommands(offset), Style{
			Stroke:      color.Hex(),
			StrokeWidth: 1,
			LineJoin:    "round",
			Opacity:     0.5,
		})
	}
}

// DrawCaption renders road name along its path when the sink supports text
func (road *Road) DrawCaption(sink Sink) {
	name := road.Tags.Find("name")
	if name == "" {
		return
	}
	textSink, ok := sink.(TextPathSink)
	if !ok {
		return
	}
	textSink.TextPath(road.Line.OffsetPathCommands(3), name, "Roboto", 10)
}
