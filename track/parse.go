package track

import (
	"encoding/xml"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"gitlab.com/begraf/trailplay/config"
	"gitlab.com/begraf/trailplay/option"
)

// The upload parser decodes the GPX structure itself instead of delegating
// to a library: the upload contract distinguishes a point with absent
// lat/lon attributes from a point at coordinate zero, which requires
// pointer-typed attributes.

type gpxDocument struct {
	XMLName xml.Name   `xml:"gpx"`
	Tracks  []gpxTrack `xml:"trk"`
}

type gpxTrack struct {
	Name     string       `xml:"name"`
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxPoint struct {
	Lat       *float64 `xml:"lat,attr"`
	Lon       *float64 `xml:"lon,attr"`
	Elevation *float64 `xml:"ele"`
	Time      string   `xml:"time"`
}

// Parse converts an uploaded GPX document into a Set.
//
// Each <trk> yields one track in document order; segments are concatenated,
// so no distance accumulates across track boundaries but it does across
// segment boundaries. Points lacking their coordinate attributes are
// discarded; tracks left without points are dropped without failing the
// parse. A document without the GPX root structure fails with ErrFormat,
// a valid document yielding zero points fails with ErrNoTracks.
func Parse(data []byte) (*Set, error) {
	var doc gpxDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	var tracks []*Track

	for _, trk := range doc.Tracks {
		var points []Point

		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				if p.Lat == nil || p.Lon == nil {
					continue
				}

				points = append(points, Point{
					Lat:       *p.Lat,
					Lon:       *p.Lon,
					Elevation: option.FromPtr(p.Elevation),
					Time:      parsePointTime(p.Time),
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

func parsePointTime(raw string) option.Option[time.Time] {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return option.None[time.Time]()
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return option.None[time.Time]()
	}

	return option.Some(ts)
}

// ParseFile loads a track file from disk, dispatching on the file
// extension.
func ParseFile(trackFilePath string) (*Set, error) {
	data, err := os.ReadFile(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("read track file: %w", err)
	}

	return ParseNamed(path.Base(trackFilePath), data)
}

// ParseNamed parses raw track data, using the file name's extension to pick
// the decoder.
func ParseNamed(name string, data []byte) (*Set, error) {
	ext := strings.ToLower(path.Ext(name))

	if slices.Contains(config.GPXExtensions(), ext) {
		return Parse(data)
	}

	if slices.Contains(config.NMEAExtensions(), ext) {
		return ParseNMEA(data)
	}

	return nil, fmt.Errorf("%w: unknown track extension '%s'", ErrFormat, ext)
}
