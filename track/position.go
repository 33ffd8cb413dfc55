package track

import "math"

// The progress axis maps a percentage in [0, 100] onto point indices.
// Marker placement, the chart cursor and the photo trigger all go through
// these two functions so they agree on "the current point" for a given
// percentage. Both require at least two points; a single point has no
// progress axis and is rejected at the parse boundary.

// PercentToIndex returns the point index for a progress percentage,
// clamped to [0, pointCount-1].
func PercentToIndex(percent float64, pointCount int) int {
	if pointCount < 2 {
		return 0
	}

	index := int(math.Floor(percent / 100.0 * float64(pointCount-1)))

	if index < 0 {
		return 0
	}
	if index > pointCount-1 {
		return pointCount - 1
	}

	return index
}

// IndexToPercent is the inverse mapping onto [0, 100].
func IndexToPercent(index, pointCount int) float64 {
	if pointCount < 2 {
		return 0
	}

	return float64(index) / float64(pointCount-1) * 100.0
}
