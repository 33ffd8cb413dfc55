package render

import (
	"fmt"
	"image/png"
	"os"
	"os/exec"

	"gitlab.com/begraf/trailplay/track"
)

// ExportOptions controls the fixed-window video export.
type ExportOptions struct {
	Frame      FrameOptions
	Seconds    int
	Framerate  float64
	OutputFile string

	// OnFrame, when set, is called after each rendered frame.
	OnFrame func(frame, total int)
}

// frameCount returns the number of frames covering the export window. The
// progress axis needs a first and a last frame, so very low framerates
// still yield two.
func frameCount(seconds int, framerate float64) int {
	n := int(float64(seconds) * framerate)
	if n < 2 {
		return 2
	}
	return n
}

// ExportVideo renders a full 0-100% traversal into a video file covering a
// fixed time window, piping PNG frames into an ffmpeg child process.
func ExportVideo(points []track.Point, bounds track.BoundingBox, opts ExportOptions) error {
	if len(points) < 2 {
		return fmt.Errorf("track has no progress axis to export")
	}
	if opts.Seconds <= 0 {
		opts.Seconds = 15
	}
	if opts.Framerate <= 0 {
		opts.Framerate = 30
	}
	if opts.OutputFile == "" {
		opts.OutputFile = "trailplay.mp4"
	}

	totalFrames := frameCount(opts.Seconds, opts.Framerate)

	cmd := exec.Command(
		"ffmpeg", "-y",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-r", fmt.Sprintf("%f", opts.Framerate),
		"-i", "-",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-r", fmt.Sprintf("%f", opts.Framerate),
		opts.OutputFile,
	)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdin pipe: %w", err)
	}
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	for i := 0; i < totalFrames; i++ {
		progress := float64(i) / float64(totalFrames-1) * 100.0

		img := Frame(points, bounds, progress, opts.Frame)
		if err := png.Encode(stdin, img); err != nil {
			stdin.Close()
			_ = cmd.Wait()
			return fmt.Errorf("encode frame %d: %w", i, err)
		}

		if opts.OnFrame != nil {
			opts.OnFrame(i+1, totalFrames)
		}
	}

	if err := stdin.Close(); err != nil {
		return fmt.Errorf("close ffmpeg input: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}

	return nil
}
