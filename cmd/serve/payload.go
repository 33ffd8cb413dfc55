package serve

import (
	"encoding/json"

	"gitlab.com/begraf/trailplay/track"
)

// latLng serializes as a [lat, lon] pair, the shape the map script expects.
type latLng struct {
	Lat float64
	Lon float64
}

func (p latLng) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

type trackJSON struct {
	Name       string     `json:"name"`
	Color      string     `json:"color"`
	Points     []latLng   `json:"points"`
	Elevations []*float64 `json:"elevations"`
}

type statsJSON struct {
	TotalDistance float64 `json:"totalDistance"`
	ElevationGain float64 `json:"elevationGain"`
	ElevationLoss float64 `json:"elevationLoss"`
	PointCount    int     `json:"pointCount"`
	HasElevation  bool    `json:"hasElevation"`
}

type boundsJSON struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
}

// trackPayload bundles everything the presentation surfaces need in one
// response. Only the first track drives playback; the rest is drawn as
// context.
func (api *serveAPI) trackPayload(set *track.Set) map[string]any {
	tracks := make([]trackJSON, 0, len(set.Tracks))

	names := make([]string, len(set.Tracks))
	for i, t := range set.Tracks {
		names[i] = t.Name
	}
	colors := api.palette.HexColors(names...)

	for i, t := range set.Tracks {
		tj := trackJSON{
			Name:       t.Name,
			Color:      colors[i],
			Points:     make([]latLng, 0, len(t.Points)),
			Elevations: make([]*float64, 0, len(t.Points)),
		}

		for _, p := range t.Points {
			tj.Points = append(tj.Points, latLng{Lat: p.Lat, Lon: p.Lon})

			if p.Elevation.IsSome() {
				ele := p.Elevation.Get()
				tj.Elevations = append(tj.Elevations, &ele)
			} else {
				tj.Elevations = append(tj.Elevations, nil)
			}
		}

		tracks = append(tracks, tj)
	}

	first := set.First()

	return map[string]any{
		"tracks": tracks,
		"bounds": boundsJSON{
			MinLat: set.Bounds.MinLat,
			MaxLat: set.Bounds.MaxLat,
			MinLon: set.Bounds.MinLon,
			MaxLon: set.Bounds.MaxLon,
		},
		"stats": statsJSON{
			TotalDistance: first.TotalDistance,
			ElevationGain: first.ElevationGain,
			ElevationLoss: first.ElevationLoss,
			PointCount:    len(first.Points),
			HasElevation:  first.HasElevation(),
		},
		"photoPositions": api.session.Positions(),
	}
}
