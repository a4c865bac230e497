package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ericlevine/zxingcam/internal/digest"
	"github.com/ericlevine/zxingcam/internal/frame"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var batchOut string

var batchCmd = &cobra.Command{
	Use:   "batch <stream>",
	Short: "Reassemble the crop of every frame in a raw multi-frame stream",
	Long: `batch splits a raw stream of concatenated YUV 4:2:0 frames, reassembles the
crop of each one and writes it to the output directory under a
content-addressed name. Identical crops are written once.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOut, "output", "o", "crops", "output directory")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat stream: %w", err)
	}
	total := frame.Count(info.Size(), geom.width, geom.height)
	if total == 0 {
		return fmt.Errorf("stream %s holds no whole %dx%d frames", args[0], geom.width, geom.height)
	}
	if err := os.MkdirAll(batchOut, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetDescription("Cropping"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	reader := frame.NewReader(f, geom.width, geom.height)
	seen := map[string]bool{}
	for {
		data, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", reader.Frames(), err)
		}
		s, err := geom.source(data)
		if err != nil {
			return err
		}
		out, err := s.CroppedYUV()
		if err != nil {
			return fmt.Errorf("frame %d: %w", reader.Frames()-1, err)
		}
		name := digest.ContentHash(out, 16) + ".yuv"
		if !seen[name] {
			seen[name] = true
			if err := os.WriteFile(filepath.Join(batchOut, name), out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Printf("%d frames, %d unique crops in %s\n", reader.Frames(), len(seen), batchOut)
	return nil
}
