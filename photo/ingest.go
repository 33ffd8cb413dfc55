package photo

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"

	"gitlab.com/begraf/trailplay/config"
)

// Ingest prepares an uploaded photo for inline delivery: the longest edge
// is capped, the result re-encoded as JPEG and wrapped into a data URI.
// The returned time is the EXIF capture time when present, otherwise now.
func Ingest(r io.Reader) (imageRef string, capturedAt time.Time, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("read photo: %w", err)
	}

	capturedAt = captureTime(data)

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("decode photo: %w", err)
	}

	edge := config.DefaultPhotoEdge()
	img = imaging.Fit(img, edge, edge, imaging.Lanczos)

	var buf bytes.Buffer
	err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(config.DefaultPhotoJPEGQuality()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("encode photo: %w", err)
	}

	imageRef = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	return imageRef, capturedAt, nil
}

func captureTime(data []byte) time.Time {
	return CaptureTime(bytes.NewReader(data))
}

// CaptureTime extracts the EXIF capture time of an image, falling back to
// the current time when the image carries none.
func CaptureTime(r io.Reader) time.Time {
	x, err := exif.Decode(r)
	if err != nil {
		return time.Now()
	}

	ts, err := x.DateTime()
	if err != nil {
		return time.Now()
	}

	return ts
}
