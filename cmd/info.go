package cmd

import (
	"fmt"

	"github.com/goodsign/monday"
	"github.com/spf13/cobra"

	"gitlab.com/begraf/trailplay/track"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [TRACK-FILE]",
	Short: "Print statistics of a track recording",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	set, err := track.ParseFile(args[0])
	if err != nil {
		return err
	}

	for i, t := range set.Tracks {
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("track %d", i+1)
		}

		fmt.Printf("%s\n", name)

		if start := t.StartTime(); start.IsSome() {
			fmt.Printf("  recorded:  %s\n", monday.Format(start.Get(), "Monday, January 2, 2006", monday.LocaleEnUS))
		}

		fmt.Printf("  points:    %d\n", len(t.Points))
		fmt.Printf("  distance:  %.2f km\n", t.TotalDistance/1000.0)

		if t.HasElevation() {
			fmt.Printf("  ascent:    %.0f m\n", t.ElevationGain)
			fmt.Printf("  descent:   %.0f m\n", t.ElevationLoss)
		} else {
			fmt.Printf("  elevation: no data\n")
		}
	}

	b := set.Bounds
	fmt.Printf("bounds: (%.5f, %.5f) - (%.5f, %.5f)\n", b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)

	return nil
}
