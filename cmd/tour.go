package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"gitlab.com/begraf/trailplay/tour"
	"gitlab.com/begraf/trailplay/track"
)

// tourCmd represents the gen tour command
var tourCmd = &cobra.Command{
	Use:   "tour [GPX-FILE]",
	Short: "Interactive process to generate a new tour document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenTour,
}

func init() {
	genCmd.AddCommand(tourCmd)
}

func runGenTour(cmd *cobra.Command, args []string) error {
	gpxPath := ""
	date := time.Now()

	if len(args) == 1 {
		gpxPath = strings.TrimSpace(args[0])

		// Prefill the date from the recording when possible.
		if set, err := track.ParseFile(gpxPath); err == nil {
			if start := set.First().StartTime(); start.IsSome() {
				date = start.Get()
			}
		} else {
			log.Printf("Warning: could not read '%s': %s", gpxPath, err)
		}
	}

	title := ""
	{
		prompt := survey.Input{
			Message: "Title",
		}
		err := survey.AskOne(&prompt, &title, survey.WithValidator(survey.Required))
		exitOnInterrupt(err)
	}

	date = promptDate(date)

	if gpxPath == "" {
		prompt := survey.Input{
			Message: "GPX track file",
		}
		err := survey.AskOne(&prompt, &gpxPath, survey.WithValidator(survey.Required))
		exitOnInterrupt(err)
	}

	outPath := fmt.Sprintf("%s-tour.md", date.Format("2006-01-02"))
	{
		prompt := survey.Input{
			Message: "Output file",
			Default: outPath,
		}
		err := survey.AskOne(&prompt, &outPath)
		exitOnInterrupt(err)
	}

	t := &tour.Tour{
		Title:   title,
		Date:    date,
		GPXPath: relativeToTour(outPath, gpxPath),
	}

	if err := tour.Scaffold(outPath, t); err != nil {
		return err
	}

	log.Printf("created tour document: %s", outPath)
	fmt.Printf("\ntrailplay serve --tour %s\n\n", outPath)

	return nil
}

// relativeToTour rewrites the track path relative to the tour document's
// directory, so the document stays valid when the directory moves.
func relativeToTour(tourPath, gpxPath string) string {
	base, err := filepath.Abs(filepath.Dir(tourPath))
	if err != nil {
		return gpxPath
	}

	abs, err := filepath.Abs(gpxPath)
	if err != nil {
		return gpxPath
	}

	rel, err := filepath.Rel(base, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return gpxPath
	}

	return rel
}

func promptDate(initial time.Time) time.Time {
	dateStr := initial.Format("2006-01-02")

	prompt := survey.Input{
		Message: "Date",
		Default: dateStr,
	}
	err := survey.AskOne(
		&prompt,
		&dateStr,
		survey.WithValidator(func(ans interface{}) error {
			_, err := time.Parse("2006-01-02", ans.(string))
			return err
		}),
	)
	exitOnInterrupt(err)

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		// Should not happen due to validator
		panic(err)
	}

	return date
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		os.Exit(1)
	}
}
