// Command yuvcrop crops raw YUV 4:2:0 camera frames and renders the derived
// luminance products: matrices, rows, sharpened previews, binarized images
// and reassembled YUV buffers.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "yuvcrop: %v\n", err)
		os.Exit(1)
	}
}
