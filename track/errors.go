package track

import "errors"

// Errors surfaced at the upload boundary.
var (
	// ErrFormat marks a document missing the expected GPX structure.
	ErrFormat = errors.New("document does not contain a recognizable track structure")

	// ErrNoTracks marks a structurally valid document that yielded no
	// usable track points.
	ErrNoTracks = errors.New("document contains no usable tracks")
)
