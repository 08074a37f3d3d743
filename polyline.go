package mapmachine

import (
	"github.com/paulmach/orb"
)

// Polyline road geometry projected onto the drawing plane
type Polyline struct {
	Points orb.LineString
}

// NewPolyline wraps projected points into a polyline
func NewPolyline(points []orb.Point) *Polyline {
	return &Polyline{Points: orb.LineString(points)}
}

// Shorten moves the end point with given index towards its neighbour by length.
// Index must address one of the two polyline ends
func (line *Polyline) Shorten(index int, length float64) {
	if len(line.Points) < 2 {
		return
	}
	neighbour := 1
	if index != 0 {
		neighbour = len(line.Points) - 2
	}
	point := line.Points[index]
	vector := mul(norm(sub(line.Points[neighbour], point)), length)
	line.Points[index] = add(point, vector)
}

// PathCommands returns drawing commands tracing the polyline
func (line *Polyline) PathCommands() []PathCommand {
	return linePathCommands(line.Points)
}

// OffsetPathCommands returns drawing commands for the polyline offset
// perpendicularly by given distance. Zero distance traces the polyline itself
func (line *Polyline) OffsetPathCommands(distance float64) []PathCommand {
	if distance == 0 {
		return line.PathCommands()
	}
	return linePathCommands(offsetCurve(line.Points, distance))
}

func linePathCommands(points orb.LineString) []PathCommand {
	if len(points) == 0 {
		return nil
	}
	commands := make([]PathCommand, 0, len(points))
	commands = append(commands, MoveTo(points[0]))
	for i := 1; i < len(points); i++ {
		commands = append(commands, LineTo(points[i]))
	}
	return commands
}
