package mapmachine

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	earthRadius = 6370.986884258304
	pi180       = math.Pi / 180.0
	pi180Rev    = 180.0 / math.Pi
	halfPi      = math.Pi / 2.0

	// Determinant threshold below which two lines are considered parallel
	parallelEps = 1e-9
)

// ErrParallelLines is returned when an intersection point of two (near) parallel lines is requested
var ErrParallelLines = errors.New("lines are parallel")

// add returns p + q
func add(p, q orb.Point) orb.Point {
	return orb.Point{p[0] + q[0], p[1] + q[1]}
}

// sub returns p - q
func sub(p, q orb.Point) orb.Point {
	return orb.Point{p[0] - q[0], p[1] - q[1]}
}

// mul returns vector v scaled by f
func mul(v orb.Point, f float64) orb.Point {
	return orb.Point{v[0] * f, v[1] * f}
}

// vectorLength returns Euclidean length of vector v
func vectorLength(v orb.Point) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1])
}

// norm returns the unit vector of v. Zero vector stays zero
func norm(v orb.Point) orb.Point {
	l := vectorLength(v)
	if l == 0 {
		return orb.Point{}
	}
	return orb.Point{v[0] / l, v[1] / l}
}

// findDistance returns distance between two points on the drawing plane
func findDistance(p, q orb.Point) float64 {
	return vectorLength(sub(p, q))
}

// turnByAngle rotates vector v by given angle (radians, counter-clockwise)
func turnByAngle(v orb.Point, angle float64) orb.Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return orb.Point{v[0]*cos - v[1]*sin, v[0]*sin + v[1]*cos}
}

// computeAngle returns angle between vector v and x axis in range [0, 2*Pi)
func computeAngle(v orb.Point) float64 {
	angle := math.Atan2(v[1], v[0])
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// lineIntersection returns intersection point of two infinite lines.
// p1, p2 - two points of the first line
// p3, p4 - two points of the second line
// Returns ErrParallelLines when the determinant vanishes, so degenerate
// junction geometry can be skipped instead of producing NaN points.
func lineIntersection(p1, p2, p3, p4 orb.Point) (orb.Point, error) {
	// Calculate the coefficients of the linear equations
	a1 := p2[1] - p1[1]
	b1 := p1[0] - p2[0]
	c1 := a1*p1[0] + b1*p1[1]
	a2 := p4[1] - p3[1]
	b2 := p3[0] - p4[0]
	c2 := a2*p3[0] + b2*p3[1]

	// Calculate the determinant
	det := a1*b2 - a2*b1
	if math.Abs(det) <= parallelEps {
		return orb.Point{}, ErrParallelLines
	}

	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	return orb.Point{x, y}, nil
}

// offsetCurve returns given line offset perpendicularly by distance.
// Positive distance offsets to the left of travel direction
func offsetCurve(line orb.LineString, distance float64) orb.LineString {
	if len(line) < 2 {
		return line
	}

	var result orb.LineString
	var segments [][2]orb.Point

	// Offset every segment of the line
	for i := 1; i < len(line); i++ {
		direction := norm(sub(line[i], line[i-1]))
		offset := mul(orb.Point{-direction[1], direction[0]}, distance)
		segments = append(segments, [2]orb.Point{add(line[i-1], offset), add(line[i], offset)})
	}

	result = append(result, segments[0][0])
	// Re-intersect adjacent offset segments to restore the joints
	for i := 1; i < len(segments); i++ {
		seg1 := segments[i-1]
		seg2 := segments[i]
		intersection, err := lineIntersection(seg1[0], seg1[1], seg2[0], seg2[1])
		if err != nil {
			// Collinear segments share the joint already
			result = append(result, seg2[0])
			continue
		}
		result = append(result, intersection)
	}
	result = append(result, segments[len(segments)-1][1])
	return result
}

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// radiansTodegrees r = deg * 180 / pi
func radiansTodegrees(d float64) float64 {
	return d * pi180Rev
}

// findCentroid returns center point for given geographic line (not middle point)
func findCentroid(line []orb.Point) orb.Point {
	totalPoints := len(line)
	if totalPoints == 0 {
		return orb.Point{}
	}
	if totalPoints == 1 {
		return line[0]
	}
	x, y, z := 0.0, 0.0, 0.0
	for i := 0; i < totalPoints; i++ {
		longitude := degreesToRadians(line[i][0])
		latitude := degreesToRadians(line[i][1])
		c1 := math.Cos(latitude)
		x += c1 * math.Cos(longitude)
		y += c1 * math.Sin(longitude)
		z += math.Sin(latitude)
	}

	x /= float64(totalPoints)
	y /= float64(totalPoints)
	z /= float64(totalPoints)

	centralLongitude := math.Atan2(y, x)
	centralSquareRoot := math.Sqrt(x*x + y*y)
	centralLatitude := math.Atan2(z, centralSquareRoot)

	return orb.Point{
		radiansTodegrees(centralLongitude),
		radiansTodegrees(centralLatitude),
	}
}
