package photo

import (
	"sort"

	"gitlab.com/begraf/trailplay/geo"
	"gitlab.com/begraf/trailplay/track"
)

// Position is an anchor projected onto the track's progress axis.
type Position struct {
	Anchor          Anchor  `json:"anchor"`
	ProgressPercent float64 `json:"progressPercent"`
}

// DerivePositions projects every anchor onto its nearest track point and
// expresses that point as a progress percentage. The result is sorted
// ascending by percentage; anchors projecting onto the same point keep
// their insertion order. It is a pure function, recomputed whenever the
// track or the anchor collection changes.
//
// With fewer than two points there is no progress axis and the result is
// empty.
func DerivePositions(points []track.Point, anchors []Anchor) []Position {
	if len(points) < 2 || len(anchors) == 0 {
		return nil
	}

	geoPoints := make([]geo.Point, len(points))
	for i, p := range points {
		geoPoints[i] = p.LatLon()
	}

	positions := make([]Position, 0, len(anchors))
	for _, a := range anchors {
		idx := geo.NearestPointIndex(geoPoints, geo.Point{Lat: a.Lat, Lon: a.Lon})
		positions = append(positions, Position{
			Anchor:          a,
			ProgressPercent: track.IndexToPercent(idx, len(points)),
		})
	}

	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].ProgressPercent < positions[j].ProgressPercent
	})

	return positions
}
