package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/ericlevine/zxingcam/internal/digest"
	"github.com/spf13/cobra"
)

var matrixOut string

var matrixCmd = &cobra.Command{
	Use:   "matrix <frame>",
	Short: "Write the cropped luminance matrix",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatrix,
}

var rowCmd = &cobra.Command{
	Use:   "row <frame> <y>",
	Short: "Print one cropped luminance row as hex",
	Args:  cobra.ExactArgs(2),
	RunE:  runRow,
}

func init() {
	matrixCmd.Flags().StringVarP(&matrixOut, "output", "o", "", "output file (default: print fingerprint only)")
	rootCmd.AddCommand(matrixCmd, rowCmd)
}

func runMatrix(_ *cobra.Command, args []string) error {
	s, err := loadSource(args[0])
	if err != nil {
		return err
	}
	// A full-frame crop returns the whole buffer; keep only the Y plane.
	matrix := s.Matrix()[:s.Width()*s.Height()]
	if matrixOut != "" {
		if err := os.WriteFile(matrixOut, matrix, 0o644); err != nil {
			return fmt.Errorf("write matrix: %w", err)
		}
		logVerbose("wrote %s", matrixOut)
	}
	fmt.Printf("%dx%d %s\n", s.Width(), s.Height(), digest.ContentHash(matrix, 16))
	return nil
}

func runRow(_ *cobra.Command, args []string) error {
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("parse row index: %w", err)
	}
	s, err := loadSource(args[0])
	if err != nil {
		return err
	}
	row, err := s.Row(y, nil)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(row))
	return nil
}
