// Package geo builds map geometry for contact locations: points for
// addresses and great-circle arcs between a contact's current and past homes.
// Coordinates follow the GeoJSON convention, orb.Point{longitude, latitude}.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DefaultArcSegments is the number of segments used for map arcs.
const DefaultArcSegments = 50

// minArcAngle is the central angle in radians below which two points are
// treated as coincident and joined by a straight segment.
const minArcAngle = 1e-12

// GreatCircle returns segments+1 points along the shortest great-circle path
// from start to end, both endpoints included. segments < 1 is treated as 1.
func GreatCircle(start, end orb.Point, segments int) orb.LineString {
	if segments < 1 {
		segments = 1
	}

	lat1, lon1 := radians(start.Lat()), radians(start.Lon())
	lat2, lon2 := radians(end.Lat()), radians(end.Lon())

	d := centralAngle(start, end)
	if d < minArcAngle || math.Abs(d-math.Pi) < minArcAngle {
		// Coincident or antipodal: the path is degenerate or not unique.
		return orb.LineString{start, end}
	}

	line := make(orb.LineString, 0, segments+1)
	sinD := math.Sin(d)
	for i := 0; i <= segments; i++ {
		f := float64(i) / float64(segments)
		a := math.Sin((1-f)*d) / sinD
		b := math.Sin(f*d) / sinD

		x := a*math.Cos(lat1)*math.Cos(lon1) + b*math.Cos(lat2)*math.Cos(lon2)
		y := a*math.Cos(lat1)*math.Sin(lon1) + b*math.Cos(lat2)*math.Sin(lon2)
		z := a*math.Sin(lat1) + b*math.Sin(lat2)

		lat := math.Atan2(z, math.Sqrt(x*x+y*y))
		lon := math.Atan2(y, x)
		line = append(line, orb.Point{degrees(lon), degrees(lat)})
	}
	// Pin the endpoints so callers can match them against the source points.
	line[0], line[len(line)-1] = start, end
	return line
}

// centralAngle is the angular distance between two points in radians.
func centralAngle(a, b orb.Point) float64 {
	return orbgeo.DistanceHaversine(a, b) / orb.EarthRadius
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
