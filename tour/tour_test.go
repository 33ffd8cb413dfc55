package tour

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const tourSource = `---
title: Ridge crossing
date: 2021-06-05
gpx: track.gpx
photos:
  - file: photos/summit.jpg
    lat: 50.001
    lon: 14.001
    description: At the summit
---

# Ridge crossing

A short crossing with one ![cairn](photos/cairn.jpg) along the way.
`

const tourGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk><name>Ridge</name><trkseg>
    <trkpt lat="50.0" lon="14.0"><ele>200</ele></trkpt>
    <trkpt lat="50.001" lon="14.001"><ele>210</ele></trkpt>
    <trkpt lat="50.002" lon="14.002"><ele>205</ele></trkpt>
  </trkseg></trk>
</gpx>`

func writeTour(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	tourPath := filepath.Join(dir, "tour.md")

	if err := os.WriteFile(tourPath, []byte(tourSource), 0o644); err != nil {
		t.Fatalf("write tour: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "track.gpx"), []byte(tourGPX), 0o644); err != nil {
		t.Fatalf("write gpx: %v", err)
	}

	return tourPath
}

func TestLoadTour(t *testing.T) {
	tr, err := Load(writeTour(t))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if tr.Title != "Ridge crossing" {
		t.Errorf("unexpected title %q", tr.Title)
	}
	if !tr.Date.Equal(time.Date(2021, 6, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", tr.Date)
	}
	if tr.GPXPath != "track.gpx" {
		t.Errorf("unexpected gpx path %q", tr.GPXPath)
	}
	if len(tr.Photos) != 1 || tr.Photos[0].Description != "At the summit" {
		t.Errorf("unexpected photos: %+v", tr.Photos)
	}
}

func TestTourBodyRendersWithoutFrontMatter(t *testing.T) {
	tr, err := Load(writeTour(t))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if strings.Contains(tr.BodyHTML, "gpx:") {
		t.Errorf("front matter leaked into body: %s", tr.BodyHTML)
	}
	if !strings.Contains(tr.BodyHTML, "Ridge crossing") {
		t.Errorf("heading missing from body: %s", tr.BodyHTML)
	}
}

func TestTourBodyRewritesRelativeImages(t *testing.T) {
	tr, err := Load(writeTour(t))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !strings.Contains(tr.BodyHTML, `src="/resource/photos/cairn.jpg"`) {
		t.Errorf("relative image not rewritten: %s", tr.BodyHTML)
	}
}

func TestTourLoadTrack(t *testing.T) {
	tr, err := Load(writeTour(t))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	set, err := tr.LoadTrack()
	if err != nil {
		t.Fatalf("load track failed: %v", err)
	}

	if len(set.First().Points) != 3 {
		t.Errorf("expected 3 points, got %d", len(set.First().Points))
	}
}

func TestTourAnchors(t *testing.T) {
	tr, err := Load(writeTour(t))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	anchors := tr.Anchors()
	if len(anchors) != 1 {
		t.Fatalf("expected 1 anchor, got %d", len(anchors))
	}
	if anchors[0].ImageRef != "/resource/photos/summit.jpg" {
		t.Errorf("unexpected image ref %q", anchors[0].ImageRef)
	}
	if anchors[0].ID == "" {
		t.Errorf("anchor id missing")
	}
}

func TestLoadRequiresGPX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.md")
	if err := os.WriteFile(path, []byte("---\ntitle: No track\n---\nbody\n"), 0o644); err != nil {
		t.Fatalf("write tour: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("expected error for tour without gpx reference")
	}
}

func TestScaffoldRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.md")

	err := Scaffold(path, &Tour{
		Title:   "New tour",
		Date:    time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC),
		GPXPath: "track.gpx",
	})
	if err != nil {
		t.Fatalf("scaffold failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffolded tour: %v", err)
	}
	if loaded.Title != "New tour" || loaded.GPXPath != "track.gpx" {
		t.Errorf("scaffold round trip mismatch: %+v", loaded)
	}
}

func TestScaffoldRefusesOverwrite(t *testing.T) {
	path := writeTour(t)
	if err := Scaffold(path, &Tour{Title: "x", GPXPath: "y"}); err == nil {
		t.Errorf("expected error when scaffolding over an existing file")
	}
}
