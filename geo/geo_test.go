package geo

import (
	"math"
	"testing"
)

func TestDistanceZeroForIdenticalPoints(t *testing.T) {
	p := Point{Lat: 50.08804, Lon: 14.42076}
	if d := Distance(p, p); d != 0 {
		t.Errorf("expected zero distance, got %v", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := Point{Lat: 50.08804, Lon: 14.42076}  // Prague
	b := Point{Lat: 48.20849, Lon: 16.37208}  // Vienna
	d1 := Distance(a, b)
	d2 := Distance(b, a)
	if math.Abs(d1-d2) > 1e-6 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistancePragueVienna(t *testing.T) {
	a := Point{Lat: 50.08804, Lon: 14.42076}
	b := Point{Lat: 48.20849, Lon: 16.37208}
	// Roughly 250 km apart.
	d := Distance(a, b)
	if d < 240000 || d > 260000 {
		t.Errorf("unexpected Prague-Vienna distance: %v m", d)
	}
}

func TestNearestPointIndex(t *testing.T) {
	points := []Point{
		{Lat: 50.000, Lon: 14.000},
		{Lat: 50.001, Lon: 14.001},
		{Lat: 50.002, Lon: 14.002},
	}

	tests := []struct {
		name   string
		target Point
		want   int
	}{
		{"exact first", Point{50.000, 14.000}, 0},
		{"near middle", Point{50.0011, 14.0009}, 1},
		{"past the end", Point{50.010, 14.010}, 2},
	}

	for _, tt := range tests {
		if got := NearestPointIndex(points, tt.target); got != tt.want {
			t.Errorf("%s: got index %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestNearestPointIndexTieResolvesToFirst(t *testing.T) {
	points := []Point{
		{Lat: 50.000, Lon: 14.000},
		{Lat: 50.002, Lon: 14.000},
	}
	// Equidistant from both points.
	if got := NearestPointIndex(points, Point{50.001, 14.000}); got != 0 {
		t.Errorf("tie should resolve to first index, got %d", got)
	}
}

func TestNearestPointIndexEmpty(t *testing.T) {
	if got := NearestPointIndex(nil, Point{0, 0}); got != -1 {
		t.Errorf("expected -1 for empty slice, got %d", got)
	}
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"due north", Point{50, 14}, Point{51, 14}, 0},
		{"due south", Point{51, 14}, Point{50, 14}, 180},
		{"due east on equator", Point{0, 14}, Point{0, 15}, 90},
		{"due west on equator", Point{0, 15}, Point{0, 14}, 270},
	}

	for _, tt := range tests {
		got := Bearing(tt.a, tt.b)
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBearingRange(t *testing.T) {
	a := Point{Lat: 50.0, Lon: 14.0}
	b := Point{Lat: 49.5, Lon: 13.2}
	got := Bearing(a, b)
	if got < 0 || got >= 360 {
		t.Errorf("bearing %v outside [0, 360)", got)
	}
}
