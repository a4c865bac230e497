package main

import (
	"fmt"
	"os"

	"github.com/ericlevine/zxingcam/internal/digest"
	"github.com/spf13/cobra"
)

var reassembleOut string

var reassembleCmd = &cobra.Command{
	Use:   "reassemble <frame>",
	Short: "Write the crop as a self-contained YUV 4:2:0 buffer",
	Args:  cobra.ExactArgs(1),
	RunE:  runReassemble,
}

func init() {
	reassembleCmd.Flags().StringVarP(&reassembleOut, "output", "o", "crop.yuv", "output file")
	rootCmd.AddCommand(reassembleCmd)
}

func runReassemble(_ *cobra.Command, args []string) error {
	s, err := loadSource(args[0])
	if err != nil {
		return err
	}
	out, err := s.CroppedYUV()
	if err != nil {
		return err
	}
	if err := os.WriteFile(reassembleOut, out, 0o644); err != nil {
		return fmt.Errorf("write crop: %w", err)
	}
	fmt.Printf("%s %dx%d %s\n", reassembleOut, s.Width(), s.Height(), digest.ContentHash(out, 16))
	return nil
}
