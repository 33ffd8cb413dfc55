// Package tour loads trail tour documents: markdown files whose YAML
// front matter names the recording and the photos pinned along it, and
// whose body becomes the description shown in the player.
package tour

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v2"

	"gitlab.com/begraf/trailplay/photo"
	"gitlab.com/begraf/trailplay/track"
)

// Photo describes one pinned photo in the front matter.
type Photo struct {
	File        string  `yaml:"file"`
	Lat         float64 `yaml:"lat"`
	Lon         float64 `yaml:"lon"`
	Description string  `yaml:"description,omitempty"`
}

type frontMatter struct {
	Title  string   `yaml:"title"`
	Date   yamlDate `yaml:"date"`
	GPX    string   `yaml:"gpx"`
	Photos []Photo  `yaml:"photos,omitempty"`
}

// Tour is a loaded tour document. Paths inside the document are relative
// to its directory.
type Tour struct {
	Path     string
	Title    string
	Date     time.Time
	GPXPath  string
	Photos   []Photo
	BodyHTML string
}

// Directory returns the tour's base directory, the root for resolving
// track and photo references.
func (t *Tour) Directory() string {
	return filepath.Dir(t.Path)
}

// Load reads and renders a tour document.
func Load(tourFilePath string) (*Tour, error) {
	source, err := os.ReadFile(tourFilePath)
	if err != nil {
		return nil, fmt.Errorf("read tour file: %w", err)
	}

	t := &Tour{Path: tourFilePath}

	fmSource, _, err := splitFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("tour front matter: %w", err)
	}

	var fm frontMatter
	if err := yaml.Unmarshal(fmSource, &fm); err != nil {
		return nil, fmt.Errorf("parse tour front matter: %w", err)
	}

	if fm.GPX == "" {
		return nil, fmt.Errorf("tour file '%s' names no gpx track", tourFilePath)
	}

	t.Title = fm.Title
	t.Date = time.Time(fm.Date)
	t.GPXPath = fm.GPX
	t.Photos = fm.Photos

	// The meta extension keeps the front matter out of the rendered body.
	gmark := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var buffer bytes.Buffer
	pc := parser.NewContext()
	if err := gmark.Convert(source, &buffer, parser.WithContext(pc)); err != nil {
		return nil, fmt.Errorf("render tour body: %w", err)
	}

	t.BodyHTML, err = rewriteResourceLinks(buffer.String())
	if err != nil {
		return nil, fmt.Errorf("rewrite tour body: %w", err)
	}

	return t, nil
}

// LoadTrack parses the GPX file the tour refers to.
func (t *Tour) LoadTrack() (*track.Set, error) {
	gpxPath := t.GPXPath
	if !filepath.IsAbs(gpxPath) {
		gpxPath = filepath.Join(t.Directory(), gpxPath)
	}

	return track.LoadGPXFile(gpxPath)
}

// Anchors converts the tour's photo list into session anchors. Images stay
// on disk and are referenced through the resource route; their capture
// time comes from EXIF data when readable.
func (t *Tour) Anchors() []photo.Anchor {
	anchors := make([]photo.Anchor, 0, len(t.Photos))

	for _, p := range t.Photos {
		capturedAt := time.Now()
		if f, err := os.Open(filepath.Join(t.Directory(), p.File)); err == nil {
			capturedAt = photo.CaptureTime(f)
			f.Close()
		}

		anchors = append(anchors, photo.NewAnchor(
			p.Lat, p.Lon,
			"/resource/"+filepath.ToSlash(p.File),
			p.Description,
			capturedAt,
		))
	}

	return anchors
}

type yamlDate time.Time

func (t *yamlDate) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var txt string
	if err := unmarshal(&txt); err != nil {
		return err
	}

	if txt == "" {
		*t = yamlDate(time.Time{})
		return nil
	}

	date, err := time.Parse("2006-01-02", txt)
	if err != nil {
		return err
	}

	*t = yamlDate(date)
	return nil
}

func (t yamlDate) MarshalYAML() (interface{}, error) {
	return time.Time(t).Format("2006-01-02"), nil
}
