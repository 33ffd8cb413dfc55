package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"gitlab.com/begraf/trailplay/track"
)

// FrameOptions sizes the exported frame. Zero values fall back to a
// 800x600 canvas.
type FrameOptions struct {
	Width  int
	Height int
}

func (o FrameOptions) withDefaults() FrameOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	return o
}

const frameMargin = 40.0

// projector maps coordinates into canvas space. The projection is plain
// equirectangular over the track's bounding box; at trail scale the
// distortion is invisible.
type projector struct {
	bounds track.BoundingBox
	scale  float64
	offX   float64
	offY   float64
}

func newProjector(bounds track.BoundingBox, width, height int) projector {
	spanLon := bounds.MaxLon - bounds.MinLon
	spanLat := bounds.MaxLat - bounds.MinLat

	usableW := float64(width) - 2*frameMargin
	usableH := float64(height) - 2*frameMargin

	scale := math.Inf(1)
	if spanLon > 0 {
		scale = usableW / spanLon
	}
	if spanLat > 0 {
		scale = math.Min(scale, usableH/spanLat)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	offX := frameMargin + (usableW-spanLon*scale)/2
	offY := frameMargin + (usableH-spanLat*scale)/2

	return projector{bounds: bounds, scale: scale, offX: offX, offY: offY}
}

func (pr projector) xy(p track.Point) (float64, float64) {
	x := pr.offX + (p.Lon-pr.bounds.MinLon)*pr.scale
	// Canvas y grows downwards.
	y := pr.offY + (pr.bounds.MaxLat-p.Lat)*pr.scale
	return x, y
}

// Frame renders one playback frame: the whole route in a muted stroke, the
// travelled part colored by elevation, and the marker at the current
// progress position.
func Frame(points []track.Point, bounds track.BoundingBox, progress float64, opts FrameOptions) image.Image {
	opts = opts.withDefaults()

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(0.96, 0.96, 0.94)
	dc.Clear()

	if len(points) < 2 {
		return dc.Image()
	}

	pr := newProjector(bounds, opts.Width, opts.Height)

	// Full route.
	dc.SetRGB(0.75, 0.75, 0.75)
	dc.SetLineWidth(3)
	strokePath(dc, pr, points)

	// Travelled part, segment by segment so the elevation gradient shows.
	markerIndex := track.PercentToIndex(progress, len(points))
	minEle, maxEle := elevationRange(points)

	dc.SetLineWidth(4)
	for i := 1; i <= markerIndex; i++ {
		c := elevationColor(points[i], minEle, maxEle)
		dc.SetColor(c)

		x1, y1 := pr.xy(points[i-1])
		x2, y2 := pr.xy(points[i])
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	// Marker.
	mx, my := pr.xy(points[markerIndex])
	dc.SetRGB(0.85, 0.15, 0.1)
	dc.DrawCircle(mx, my, 7)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	dc.DrawCircle(mx, my, 7)
	dc.Stroke()

	return dc.Image()
}

func strokePath(dc *gg.Context, pr projector, points []track.Point) {
	x, y := pr.xy(points[0])
	dc.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = pr.xy(p)
		dc.LineTo(x, y)
	}
	dc.Stroke()
}

var (
	lowElevationColor, _  = colorful.Hex("#2c7fb8")
	highElevationColor, _ = colorful.Hex("#d95f0e")
	flatTrackColor, _     = colorful.Hex("#41ab5d")
)

func elevationRange(points []track.Point) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if p.Elevation.IsNone() {
			continue
		}
		e := p.Elevation.Get()
		if e < min {
			min = e
		}
		if e > max {
			max = e
		}
	}
	return min, max
}

func elevationColor(p track.Point, minEle, maxEle float64) colorful.Color {
	if p.Elevation.IsNone() || minEle >= maxEle {
		return flatTrackColor
	}

	t := (p.Elevation.Get() - minEle) / (maxEle - minEle)
	return lowElevationColor.BlendLuv(highElevationColor, t)
}
