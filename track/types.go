package track

import (
	"time"

	"gitlab.com/begraf/trailplay/geo"
	"gitlab.com/begraf/trailplay/option"
)

// Point is a single recorded trail position. Elevation and Time are
// optional because many recorders omit them.
type Point struct {
	Lat       float64
	Lon       float64
	Elevation option.Option[float64]
	Time      option.Option[time.Time]
}

func (p Point) LatLon() geo.Point {
	return geo.Point{Lat: p.Lat, Lon: p.Lon}
}

// Track is one recorded trail. The statistics are computed once from the
// point sequence and never mutated afterwards.
type Track struct {
	Name          string
	Points        []Point
	TotalDistance float64 // meters
	ElevationGain float64 // meters
	ElevationLoss float64 // meters
}

// StartTime returns the timestamp of the first point carrying one.
func (t *Track) StartTime() option.Option[time.Time] {
	for _, p := range t.Points {
		if p.Time.IsSome() {
			return p.Time
		}
	}
	return option.None[time.Time]()
}

// HasElevation reports whether at least one point carries an elevation
// sample. Without any, the profile surface renders a placeholder.
func (t *Track) HasElevation() bool {
	for _, p := range t.Points {
		if p.Elevation.IsSome() {
			return true
		}
	}
	return false
}

type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

func (b BoundingBox) extend(p Point) BoundingBox {
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
	if p.Lon < b.MinLon {
		b.MinLon = p.Lon
	}
	if p.Lon > b.MaxLon {
		b.MaxLon = p.Lon
	}
	return b
}

// Set is the result of one successful parse. Bounds covers every point of
// every track. Playback consumes only the first track; further tracks are
// presentation data.
type Set struct {
	Tracks []*Track
	Bounds BoundingBox
}

// First returns the playback track.
func (s *Set) First() *Track {
	return s.Tracks[0]
}

// FromPoints builds a track with its accumulated statistics. Distance
// accumulates pairwise great-circle distance between consecutive points.
// Gain and loss compare each elevation sample against the previous point
// that carried one; gaps are not interpolated.
func FromPoints(name string, points []Point) *Track {
	t := &Track{Name: name, Points: points}

	prevEle := option.None[float64]()

	for i, p := range points {
		if i > 0 {
			t.TotalDistance += geo.Distance(points[i-1].LatLon(), p.LatLon())
		}

		if p.Elevation.IsSome() {
			if prevEle.IsSome() {
				diff := p.Elevation.Get() - prevEle.Get()
				if diff > 0 {
					t.ElevationGain += diff
				} else {
					t.ElevationLoss += -diff
				}
			}
			prevEle = p.Elevation
		}
	}

	return t
}

// NewSet folds the bounding box over all tracks. Tracks without points must
// already have been dropped; a set without any points is rejected so that
// consumers never see undefined bounds.
func NewSet(tracks []*Track) (*Set, error) {
	var (
		bounds BoundingBox
		seeded bool
	)

	for _, t := range tracks {
		for _, p := range t.Points {
			if !seeded {
				bounds = BoundingBox{MinLat: p.Lat, MaxLat: p.Lat, MinLon: p.Lon, MaxLon: p.Lon}
				seeded = true
				continue
			}
			bounds = bounds.extend(p)
		}
	}

	if !seeded {
		return nil, ErrNoTracks
	}

	return &Set{Tracks: tracks, Bounds: bounds}, nil
}
