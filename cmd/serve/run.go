package serve

import (
	"html/template"
	"log"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodsign/monday"
	"github.com/spf13/cobra"

	"gitlab.com/begraf/trailplay/config"
	"gitlab.com/begraf/trailplay/playback"
	"gitlab.com/begraf/trailplay/tour"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	session := playback.NewSession(playback.Config{
		Duration:    config.PlaybackDuration(),
		Tolerance:   config.PhotoTolerance(),
		DisplayTime: config.PhotoDisplayTime(),
	})

	api := newServeAPI(session)

	if config.HasTourFile() {
		t, err := tour.Load(config.TourFile())
		if err != nil {
			log.Fatalf("could not load tour: %s", err)
		}
		if err := api.installTour(t); err != nil {
			log.Fatalf("could not install tour: %s", err)
		}
		log.Printf("loaded tour '%s'", t.Title)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/", api.ServeIndex)
	r.POST("/api/track", api.UploadTrack)
	r.GET("/api/track", api.ServeTrack)
	r.POST("/api/photos", api.UploadPhoto)
	r.GET("/api/photos", api.ServePhotos)
	r.POST("/api/playback/play", api.Play)
	r.POST("/api/playback/pause", api.Pause)
	r.POST("/api/playback/seek", api.Seek)
	r.POST("/api/playback/reset", api.ResetPlayback)
	r.GET("/api/playback/state", api.PlaybackState)
	r.GET("/api/profile.png", api.ServeProfile)
	r.GET("/resource/*name", api.ServeResource)

	r.SetFuncMap(template.FuncMap{
		"tourDateDisplay": func(t time.Time) string {
			return monday.Format(t, "January 2, 2006", monday.LocaleEnUS)
		},
	})

	resourceDir := config.ResourceDirectory()
	r.LoadHTMLGlob(filepath.Join(resourceDir, "templates/*"))
	r.Static("/static", filepath.Join(resourceDir, "static"))

	return r.Run(config.ListenAddress())
}
