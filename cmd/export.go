package cmd

import (
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/begraf/trailplay/config"
	"gitlab.com/begraf/trailplay/render"
	"gitlab.com/begraf/trailplay/track"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [TRACK-FILE]",
	Short: "Render a track traversal into a video file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var exportFlags struct {
	output string
	width  int
	height int
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFlags.output, "output", "o", "trailplay.mp4", "Output video file")
	exportCmd.Flags().IntVar(&exportFlags.width, "width", 0, "Frame width in pixels")
	exportCmd.Flags().IntVar(&exportFlags.height, "height", 0, "Frame height in pixels")
	exportCmd.Flags().Int("seconds", 0, "Length of the video in seconds (default 15)")
	exportCmd.Flags().Float64("framerate", 0, "Frames per second (default 30)")

	for key, name := range map[string]string{
		config.KeyExportSeconds:   "seconds",
		config.KeyExportFramerate: "framerate",
	} {
		if err := viper.BindPFlag(key, exportCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	set, err := track.ParseFile(args[0])
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar

	opts := render.ExportOptions{
		Frame: render.FrameOptions{
			Width:  exportFlags.width,
			Height: exportFlags.height,
		},
		Seconds:    config.ExportSeconds(),
		Framerate:  config.ExportFramerate(),
		OutputFile: exportFlags.output,
		OnFrame: func(frame, total int) {
			if bar == nil {
				bar = progressbar.Default(int64(total), "rendering")
			}
			_ = bar.Add(1)
		},
	}

	return render.ExportVideo(set.First().Points, set.Bounds, opts)
}
