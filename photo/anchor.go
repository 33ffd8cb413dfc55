// Package photo manages the photos a user pins to map locations and their
// projection onto the playback track.
package photo

import (
	"time"

	"github.com/google/uuid"
)

// Anchor is a user-attached photo tied to a coordinate. Anchors are
// append-only for the lifetime of a session; replacing the track replaces
// the whole collection.
type Anchor struct {
	ID          string  `json:"id"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	ImageRef    string  `json:"imageRef"`
	Description string  `json:"description"`
	CapturedAt  int64   `json:"capturedAt"` // epoch milliseconds
}

// NewAnchor assigns a fresh id. capturedAt comes from the image's EXIF data
// when available, otherwise the ingestion time.
func NewAnchor(lat, lon float64, imageRef, description string, capturedAt time.Time) Anchor {
	return Anchor{
		ID:          uuid.NewString(),
		Lat:         lat,
		Lon:         lon,
		ImageRef:    imageRef,
		Description: description,
		CapturedAt:  capturedAt.UnixMilli(),
	}
}
