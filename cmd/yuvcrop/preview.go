package main

import (
	"fmt"

	"github.com/disintegration/imaging"
	zxingcam "github.com/ericlevine/zxingcam"
	"github.com/ericlevine/zxingcam/binarizer"
	"github.com/spf13/cobra"
)

var (
	previewOut  string
	previewGain float32
	binarizeOut string
)

var previewCmd = &cobra.Command{
	Use:   "preview <frame>",
	Short: "Render a sharpened greyscale preview of the crop as PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var binarizeCmd = &cobra.Command{
	Use:   "binarize <frame>",
	Short: "Render the global-histogram black matrix of the crop as PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runBinarize,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOut, "output", "o", "preview.png", "output image")
	previewCmd.Flags().Float32Var(&previewGain, "gain", 0, "sharpening gain (0 selects the default)")
	binarizeCmd.Flags().StringVarP(&binarizeOut, "output", "o", "binarized.png", "output image")
	rootCmd.AddCommand(previewCmd, binarizeCmd)
}

func runPreview(_ *cobra.Command, args []string) error {
	s, err := loadSource(args[0])
	if err != nil {
		return err
	}
	pixels := s.RenderCroppedGreyscaleWith(zxingcam.SharpenOptions{Gain: previewGain})
	img := zxingcam.PixelsToImage(pixels, s.Width(), s.Height())
	if err := imaging.Save(img, previewOut); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	logVerbose("wrote %s", previewOut)
	return nil
}

func runBinarize(_ *cobra.Command, args []string) error {
	s, err := loadSource(args[0])
	if err != nil {
		return err
	}
	bitmap := zxingcam.NewBinaryBitmap(binarizer.NewGlobalHistogram(s))
	matrix, err := bitmap.BlackMatrix()
	if err != nil {
		return fmt.Errorf("binarize: %w", err)
	}
	logVerbose("%d of %d pixels black", matrix.Count(), s.Width()*s.Height())
	if err := imaging.Save(zxingcam.BitMatrixToImage(matrix), binarizeOut); err != nil {
		return fmt.Errorf("save binarized image: %w", err)
	}
	logVerbose("wrote %s", binarizeOut)
	return nil
}
