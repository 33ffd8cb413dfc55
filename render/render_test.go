package render

import (
	"image"
	"testing"

	"gitlab.com/begraf/trailplay/option"
	"gitlab.com/begraf/trailplay/track"
)

func renderTrack() ([]track.Point, track.BoundingBox) {
	points := []track.Point{
		{Lat: 50.000, Lon: 14.000, Elevation: option.Some(200.0)},
		{Lat: 50.001, Lon: 14.001, Elevation: option.Some(210.0)},
		{Lat: 50.002, Lon: 14.002, Elevation: option.Some(205.0)},
	}
	bounds := track.BoundingBox{MinLat: 50.0, MaxLat: 50.002, MinLon: 14.0, MaxLon: 14.002}
	return points, bounds
}

func TestFrameSize(t *testing.T) {
	points, bounds := renderTrack()

	img := Frame(points, bounds, 50, FrameOptions{Width: 320, Height: 240})
	if got := img.Bounds(); got != image.Rect(0, 0, 320, 240) {
		t.Errorf("unexpected frame bounds %v", got)
	}
}

func TestFrameDefaults(t *testing.T) {
	points, bounds := renderTrack()

	img := Frame(points, bounds, 0, FrameOptions{})
	if got := img.Bounds(); got != image.Rect(0, 0, 800, 600) {
		t.Errorf("unexpected default bounds %v", got)
	}
}

func TestFrameMarkerMoves(t *testing.T) {
	points, bounds := renderTrack()

	start := Frame(points, bounds, 0, FrameOptions{Width: 200, Height: 200})
	end := Frame(points, bounds, 100, FrameOptions{Width: 200, Height: 200})

	if imagesEqual(start, end) {
		t.Errorf("frames at 0%% and 100%% should differ")
	}
}

func TestProfilePlaceholderWithoutElevation(t *testing.T) {
	points := []track.Point{
		{Lat: 50.0, Lon: 14.0},
		{Lat: 50.001, Lon: 14.0},
	}

	img := Profile(points, FrameOptions{Width: 200, Height: 100})
	if got := img.Bounds(); got != image.Rect(0, 0, 200, 100) {
		t.Errorf("unexpected placeholder bounds %v", got)
	}
}

func TestProfileWithElevation(t *testing.T) {
	points, _ := renderTrack()

	with := Profile(points, FrameOptions{Width: 200, Height: 100})
	without := Profile(points[:0], FrameOptions{Width: 200, Height: 100})

	if imagesEqual(with, without) {
		t.Errorf("profile with elevation should differ from placeholder")
	}
}

func TestPaletteStable(t *testing.T) {
	p := NewPalette()

	first := p.HexColor("ridge")
	if first != p.HexColor("ridge") {
		t.Errorf("palette color changed between calls")
	}

	colors := p.HexColors("a", "b", "a")
	if colors[0] != colors[2] {
		t.Errorf("same name should map to same color")
	}
}

func TestFrameCountNeverBelowTwo(t *testing.T) {
	tests := []struct {
		name      string
		seconds   int
		framerate float64
		want      int
	}{
		{"default window", 15, 30, 450},
		{"one second at one fps", 1, 1, 2},
		{"sub-second framerate", 2, 0.25, 2},
	}

	for _, tt := range tests {
		if got := frameCount(tt.seconds, tt.framerate); got != tt.want {
			t.Errorf("%s: frameCount(%d, %v) = %d, want %d", tt.name, tt.seconds, tt.framerate, got, tt.want)
		}
	}
}

func imagesEqual(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	for y := a.Bounds().Min.Y; y < a.Bounds().Max.Y; y++ {
		for x := a.Bounds().Min.X; x < a.Bounds().Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				return false
			}
		}
	}
	return true
}
