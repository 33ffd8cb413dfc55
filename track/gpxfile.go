package track

import (
	"fmt"
	"time"

	"github.com/tkrajina/gpxgo/gpx"

	"gitlab.com/begraf/trailplay/option"
)

// LoadGPXFile reads a locally authored GPX file through gpxgo. Tour files
// are trusted input, so the strict attribute handling of the upload parser
// is not needed here.
func LoadGPXFile(gpxFilePath string) (*Set, error) {
	gpxData, err := gpx.ParseFile(gpxFilePath)
	if err != nil {
		return nil, fmt.Errorf("read GPX file: %w", err)
	}

	var tracks []*Track

	for _, trk := range gpxData.Tracks {
		var points []Point

		for _, segment := range trk.Segments {
			for _, p := range segment.Points {
				ele := option.None[float64]()
				if p.Elevation.NotNull() {
					ele = option.Some(p.Elevation.Value())
				}

				ts := option.None[time.Time]()
				if !p.Timestamp.IsZero() {
					ts = option.Some(p.Timestamp)
				}

				points = append(points, Point{
					Lat:       p.Latitude,
					Lon:       p.Longitude,
					Elevation: ele,
					Time:      ts,
				})
			}
		}

		if len(points) == 0 {
			continue
		}

		tracks = append(tracks, FromPoints(trk.Name, points))
	}

	return NewSet(tracks)
}
