package render

import (
	"image"

	"github.com/fogleman/gg"

	"gitlab.com/begraf/trailplay/track"
)

// Profile renders the elevation profile as a filled area chart over the
// point index axis. Tracks without elevation data get an informational
// placeholder instead of an error.
func Profile(points []track.Point, opts FrameOptions) image.Image {
	opts = opts.withDefaults()

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	minEle, maxEle := elevationRange(points)
	if len(points) < 2 || minEle > maxEle {
		return placeholder(dc, opts)
	}
	if minEle == maxEle {
		// A perfectly flat profile still gets a visible band.
		minEle -= 1
		maxEle += 1
	}

	usableW := float64(opts.Width) - 2*frameMargin
	usableH := float64(opts.Height) - 2*frameMargin

	xAt := func(i int) float64 {
		return frameMargin + float64(i)/float64(len(points)-1)*usableW
	}
	yAt := func(ele float64) float64 {
		return frameMargin + (1-(ele-minEle)/(maxEle-minEle))*usableH
	}

	// Elevation gaps carry the last seen sample forward for drawing only;
	// the statistics never interpolate.
	lastEle := minEle

	dc.MoveTo(xAt(0), float64(opts.Height)-frameMargin)
	for i, p := range points {
		if p.Elevation.IsSome() {
			lastEle = p.Elevation.Get()
		}
		dc.LineTo(xAt(i), yAt(lastEle))
	}
	dc.LineTo(xAt(len(points)-1), float64(opts.Height)-frameMargin)
	dc.ClosePath()

	dc.SetRGBA(0.17, 0.5, 0.72, 0.35)
	dc.FillPreserve()
	dc.SetRGB(0.17, 0.5, 0.72)
	dc.SetLineWidth(2)
	dc.Stroke()

	return dc.Image()
}

// placeholder draws a dashed midline, the "no elevation data" rendering.
func placeholder(dc *gg.Context, opts FrameOptions) image.Image {
	dc.SetRGB(0.8, 0.8, 0.8)
	dc.SetLineWidth(2)
	dc.SetDash(8, 6)
	mid := float64(opts.Height) / 2
	dc.DrawLine(frameMargin, mid, float64(opts.Width)-frameMargin, mid)
	dc.Stroke()
	return dc.Image()
}
