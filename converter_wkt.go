package mapmachine

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(pts []orb.Point) string {
	return wkt.MarshalString(orb.LineString(pts))
}

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt orb.Point) string {
	return wkt.MarshalString(pt)
}

// WKT returns WKT representation of the projected road geometry
func (road *Road) WKT() string {
	return PrepareWKTLinestring(road.Line.Points)
}
