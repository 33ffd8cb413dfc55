package serve

import (
	"errors"
	"html/template"
	"image/png"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"gitlab.com/begraf/trailplay/photo"
	"gitlab.com/begraf/trailplay/playback"
	"gitlab.com/begraf/trailplay/render"
	"gitlab.com/begraf/trailplay/track"
	"gitlab.com/begraf/trailplay/tour"
)

type serveAPI struct {
	session *playback.Session
	palette *render.Palette

	mu  sync.Mutex
	set *track.Set
	tr  *tour.Tour
}

func newServeAPI(session *playback.Session) *serveAPI {
	return &serveAPI{
		session: session,
		palette: render.NewPalette(),
	}
}

func (api *serveAPI) installSet(set *track.Set) {
	api.mu.Lock()
	api.set = set
	api.tr = nil
	api.mu.Unlock()

	api.session.ReplaceTrack(set.First())
}

func (api *serveAPI) installTour(t *tour.Tour) error {
	set, err := t.LoadTrack()
	if err != nil {
		return err
	}

	api.mu.Lock()
	api.set = set
	api.tr = t
	api.mu.Unlock()

	api.session.ReplaceTrack(set.First())
	api.session.SetAnchors(t.Anchors())

	return nil
}

func (api *serveAPI) currentSet() *track.Set {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.set
}

func (api *serveAPI) currentTour() *tour.Tour {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.tr
}

// ServeIndex renders the player page.
func (api *serveAPI) ServeIndex(c *gin.Context) {
	data := gin.H{
		"HasTrack": api.currentSet() != nil,
	}

	if t := api.currentTour(); t != nil {
		data["TourTitle"] = t.Title
		data["TourDate"] = t.Date
		data["HasTourDate"] = !t.Date.IsZero()
		data["TourBody"] = template.HTML(t.BodyHTML)
	}

	c.HTML(http.StatusOK, "index.html", data)
}

// UploadTrack accepts a GPX or NMEA file and replaces the session track.
// Parse failures surface as a one-line message; no partial state is
// applied.
func (api *serveAPI) UploadTrack(c *gin.Context) {
	fileHeader, err := c.FormFile("track")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no track file in upload"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not open upload"})
		return
	}
	defer f.Close()

	data := make([]byte, fileHeader.Size)
	if _, err := io.ReadFull(f, data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	set, err := track.ParseNamed(fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, track.ErrNoTracks):
			c.JSON(http.StatusBadRequest, gin.H{"error": "the file contains no usable tracks"})
		case errors.Is(err, track.ErrFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": "the file is not a recognizable track recording"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "track upload failed"})
		}
		return
	}

	api.installSet(set)

	c.JSON(http.StatusOK, api.trackPayload(set))
}

// ServeTrack returns the payload the map and chart surfaces consume.
func (api *serveAPI) ServeTrack(c *gin.Context) {
	set := api.currentSet()
	if set == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no track loaded"})
		return
	}

	c.JSON(http.StatusOK, api.trackPayload(set))
}

// UploadPhoto attaches a photo anchor at the given map coordinate.
func (api *serveAPI) UploadPhoto(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.PostForm("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.PostForm("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo needs a map coordinate"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no photo in upload"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not open photo"})
		return
	}
	defer f.Close()

	imageRef, capturedAt, err := photo.Ingest(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not process photo"})
		return
	}

	anchor := photo.NewAnchor(lat, lon, imageRef, c.PostForm("description"), capturedAt)
	api.session.AddAnchor(anchor)

	c.JSON(http.StatusOK, anchor)
}

func (api *serveAPI) ServePhotos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"anchors":   api.session.Anchors(),
		"positions": api.session.Positions(),
	})
}

func (api *serveAPI) Play(c *gin.Context) {
	if err := api.session.Play(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "load a track first"})
		return
	}
	c.JSON(http.StatusOK, api.session.Status())
}

func (api *serveAPI) Pause(c *gin.Context) {
	api.session.Pause()
	c.JSON(http.StatusOK, api.session.Status())
}

func (api *serveAPI) Seek(c *gin.Context) {
	raw := c.Query("percent")
	if raw == "" {
		raw = c.PostForm("percent")
	}

	percent, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seek needs a percent value"})
		return
	}

	api.session.Seek(percent)
	c.JSON(http.StatusOK, api.session.Status())
}

func (api *serveAPI) ResetPlayback(c *gin.Context) {
	api.session.Reset()
	c.JSON(http.StatusOK, api.session.Status())
}

func (api *serveAPI) PlaybackState(c *gin.Context) {
	c.JSON(http.StatusOK, api.session.Status())
}

// ServeProfile renders the elevation profile chart.
func (api *serveAPI) ServeProfile(c *gin.Context) {
	img := render.Profile(api.session.Points(), render.FrameOptions{Width: 900, Height: 220})

	c.Header("Content-Type", "image/png")
	c.Header("Cache-Control", "no-store")
	if err := png.Encode(c.Writer, img); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// ServeResource delivers tour-relative files (photos referenced from the
// tour document).
func (api *serveAPI) ServeResource(c *gin.Context) {
	t := api.currentTour()
	if t == nil {
		c.Status(http.StatusNotFound)
		return
	}

	name := strings.TrimPrefix(c.Param("name"), "/")
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		c.Status(http.StatusNotFound)
		return
	}

	c.File(filepath.Join(t.Directory(), clean))
}
