package mapmachine

import (
	"math"

	"github.com/paulmach/orb"
)

// Projector maps geographic coordinates (lon/lat degrees) onto the drawing
// plane and supplies the linear scale turning meters into drawing units
type Projector interface {
	Project(geo orb.Point) orb.Point
	ScaleAt(geo orb.Point) float64
}

// FlatProjector equirectangular projection around a fixed origin. Y axis is
// flipped so that north points up in screen space
type FlatProjector struct {
	Origin     orb.Point // lon/lat of the drawing plane origin
	UnitsPerKm float64   // drawing units per kilometer on the ground
}

// NewFlatProjector creates a projector centered at given origin
func NewFlatProjector(origin orb.Point, unitsPerKm float64) FlatProjector {
	return FlatProjector{Origin: origin, UnitsPerKm: unitsPerKm}
}

// Project implements Projector
func (fp FlatProjector) Project(geo orb.Point) orb.Point {
	kmPerDegree := earthRadius * pi180
	x := (geo[0] - fp.Origin[0]) * math.Cos(degreesToRadians(fp.Origin[1])) * kmPerDegree * fp.UnitsPerKm
	y := (fp.Origin[1] - geo[1]) * kmPerDegree * fp.UnitsPerKm
	return orb.Point{x, y}
}

// ScaleAt implements Projector: drawing units per meter
func (fp FlatProjector) ScaleAt(geo orb.Point) float64 {
	return fp.UnitsPerKm / 1000.0
}
