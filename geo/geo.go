// Package geo holds the small geometric helpers shared by track statistics,
// photo anchoring and the flythrough camera.
package geo

import (
	"math"

	"github.com/jftuga/geodist"
)

// Point is a bare WGS84 coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b Point) float64 {
	_, km := geodist.HaversineDistance(
		geodist.Coord{Lat: a.Lat, Lon: a.Lon},
		geodist.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return km * 1000.0
}

// NearestPointIndex returns the index of the point closest to target,
// comparing squared distances in degree space. That is a deliberate
// simplification: anchors sit close to the track, so the latitude-dependent
// longitude scaling does not matter for visual anchoring. Ties resolve to
// the first minimal index in scan order. Returns -1 for an empty slice.
func NearestPointIndex(points []Point, target Point) int {
	best := -1
	bestDist := math.Inf(1)

	for i, p := range points {
		dLat := p.Lat - target.Lat
		dLon := p.Lon - target.Lon
		d := dLat*dLat + dLon*dLon
		if d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best
}

// Bearing returns the initial forward azimuth from a to b in degrees [0, 360).
func Bearing(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	deg := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(deg+360, 360)
}
