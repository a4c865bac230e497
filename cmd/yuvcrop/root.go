package main

import (
	"fmt"
	"os"
	"runtime"

	zxingcam "github.com/ericlevine/zxingcam"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// geometry holds the frame and crop flags shared by every subcommand.
type geometry struct {
	width, height int
	left, top     int
	cropWidth     int
	cropHeight    int
}

var (
	verbose bool
	geom    geometry
)

var rootCmd = &cobra.Command{
	Use:   "yuvcrop",
	Short: "Crop raw YUV 4:2:0 camera frames",
	Long: `yuvcrop reads raw planar YUV 4:2:0 frames (NV21, NV12, I420) and exposes
a cropped window of them: the luminance matrix, single rows, a sharpened
greyscale preview, a binarized image and a reassembled cropped YUV buffer.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.IntVar(&geom.width, "width", 0, "frame width in pixels (required)")
	pf.IntVar(&geom.height, "height", 0, "frame height in pixels (required)")
	pf.IntVar(&geom.left, "left", 0, "crop left edge")
	pf.IntVar(&geom.top, "top", 0, "crop top edge")
	pf.IntVar(&geom.cropWidth, "crop-width", 0, "crop width (default: to the right edge)")
	pf.IntVar(&geom.cropHeight, "crop-height", 0, "crop height (default: to the bottom edge)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"yuvcrop %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[yuvcrop] "+format+"\n", args...)
	}
}

// crop returns the crop extent, filling unset dimensions with the rest of
// the frame.
func (g geometry) crop() (width, height int) {
	width, height = g.cropWidth, g.cropHeight
	if width == 0 {
		width = g.width - g.left
	}
	if height == 0 {
		height = g.height - g.top
	}
	return width, height
}

// source wraps data in a PlanarYUVLuminanceSource using the geometry flags.
func (g geometry) source(data []byte) (*zxingcam.PlanarYUVLuminanceSource, error) {
	if g.width <= 0 || g.height <= 0 {
		return nil, fmt.Errorf("--width and --height are required")
	}
	width, height := g.crop()
	s, err := zxingcam.NewPlanarYUVLuminanceSource(data, g.width, g.height, g.left, g.top, width, height)
	if err != nil {
		return nil, err
	}
	logVerbose("frame %dx%d, crop %dx%d at (%d,%d)", g.width, g.height, width, height, g.left, g.top)
	return s, nil
}

// loadSource reads a raw frame file and wraps it.
func loadSource(path string) (*zxingcam.PlanarYUVLuminanceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	logVerbose("read %s: %d bytes", path, len(data))
	return geom.source(data)
}
