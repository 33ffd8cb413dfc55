package config

import (
	"time"

	"github.com/spf13/viper"
)

var (
	KeyListenAddress     = "serve.listen"
	KeyResourceDirectory = "serve.resources"
	KeyTourFile          = "serve.tour"
	KeyPlaybackDuration  = "playback.duration_ms"
	KeyPhotoTolerance    = "playback.photo_tolerance"
	KeyPhotoDisplayTime  = "playback.photo_display_ms"
	KeyExportSeconds     = "export.seconds"
	KeyExportFramerate   = "export.framerate"
)

func ListenAddress() string {
	if viper.IsSet(KeyListenAddress) {
		return viper.GetString(KeyListenAddress)
	}
	return ":8000"
}

func ResourceDirectory() string {
	if viper.IsSet(KeyResourceDirectory) {
		return viper.GetString(KeyResourceDirectory)
	}
	return "./res"
}

func HasTourFile() bool {
	return viper.IsSet(KeyTourFile)
}

func TourFile() string {
	return viper.GetString(KeyTourFile)
}

// PlaybackDuration is the wall-clock time of a full 0-100% traversal.
// It is a presentation constant, not derived from the recording's duration.
func PlaybackDuration() time.Duration {
	if viper.IsSet(KeyPlaybackDuration) {
		return time.Duration(viper.GetInt(KeyPlaybackDuration)) * time.Millisecond
	}
	return 10 * time.Second
}

// PhotoTolerance is the progress-percentage window within which a photo
// anchor counts as reached.
func PhotoTolerance() float64 {
	if viper.IsSet(KeyPhotoTolerance) {
		return viper.GetFloat64(KeyPhotoTolerance)
	}
	return 1.0
}

func PhotoDisplayTime() time.Duration {
	if viper.IsSet(KeyPhotoDisplayTime) {
		return time.Duration(viper.GetInt(KeyPhotoDisplayTime)) * time.Millisecond
	}
	return 3 * time.Second
}

func ExportSeconds() int {
	if viper.IsSet(KeyExportSeconds) {
		return viper.GetInt(KeyExportSeconds)
	}
	return 15
}

func ExportFramerate() float64 {
	if viper.IsSet(KeyExportFramerate) {
		return viper.GetFloat64(KeyExportFramerate)
	}
	return 30.0
}

func DefaultPhotoEdge() int {
	return 800
}

func DefaultPhotoJPEGQuality() int {
	return 70
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

func NMEAExtensions() []string {
	return []string{".nmea", ".log"}
}
