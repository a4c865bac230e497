package main

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/ericlevine/zxingcam/internal/frame"
	"github.com/spf13/cobra"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var synthOut string

var synthCmd = &cobra.Command{
	Use:   "synth <image>",
	Short: "Encode a PNG/JPEG/GIF/BMP/TIFF/WebP image as a raw NV21 frame",
	Args:  cobra.ExactArgs(1),
	RunE:  runSynth,
}

func init() {
	synthCmd.Flags().StringVarP(&synthOut, "output", "o", "frame.nv21", "output file")
	rootCmd.AddCommand(synthCmd)
}

func runSynth(_ *cobra.Command, args []string) error {
	img, err := imaging.Open(args[0], imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	data, err := frame.FromImage(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(synthOut, data, 0o644); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	b := img.Bounds()
	fmt.Printf("%s --width %d --height %d\n", synthOut, b.Dx(), b.Dy())
	return nil
}
