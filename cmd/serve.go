package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/begraf/trailplay/cmd/serve"
	"gitlab.com/begraf/trailplay/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the trail player web interface",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "Listen address (default :8000)")
	serveCmd.Flags().StringP("tour", "t", "", "Tour document to preload")
	serveCmd.Flags().StringP(
		"resource-dir",
		"R",
		"",
		"Directory containing templates and static files",
	)

	for key, name := range map[string]string{
		config.KeyListenAddress:     "listen",
		config.KeyTourFile:          "tour",
		config.KeyResourceDirectory: "resource-dir",
	} {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}
