package track

import (
	"errors"
	"testing"
)

func TestParseNMEA(t *testing.T) {
	log := "$GPRMC,081836,A,3751.65,S,14507.36,E,000.0,360.0,130998,011.3,E*62\n" +
		"$GPRMC,081837,A,3751.66,S,14507.37,E,000.0,360.0,130998,011.3,E*61\n"

	set, err := ParseNMEA([]byte(log))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	trk := set.First()
	if len(trk.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(trk.Points))
	}
	if trk.Points[0].Lat >= 0 {
		t.Errorf("expected southern latitude, got %v", trk.Points[0].Lat)
	}
	if trk.Points[0].Elevation.IsSome() {
		t.Errorf("RMC fixes must not carry elevation")
	}
	if trk.Points[0].Time.IsNone() {
		t.Errorf("RMC fixes should carry a timestamp")
	}
}

func TestParseNMEAEmptyLog(t *testing.T) {
	_, err := ParseNMEA([]byte("\n\n"))
	if !errors.Is(err, ErrNoTracks) {
		t.Errorf("expected ErrNoTracks, got %v", err)
	}
}

func TestParseNMEAGarbageIsFormatError(t *testing.T) {
	_, err := ParseNMEA([]byte("not an nmea sentence"))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}
