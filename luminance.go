// Package zxingcam exposes camera frames to barcode readers as greyscale
// luminance. The central type, PlanarYUVLuminanceSource, presents a cropped
// window of a planar YUV frame without copying the luminance plane unless it
// has to.
package zxingcam

import "github.com/ericlevine/zxingcam/bitutil"

// LuminanceSource provides access to greyscale luminance values for an image.
// Implementations are read-only and safe for concurrent readers.
type LuminanceSource interface {
	// Row returns row y of luminance data. If row is large enough it is
	// reused; otherwise a new slice is allocated. The returned slice has
	// exactly Width() bytes.
	Row(y int, row []byte) ([]byte, error)

	// Matrix returns the entire luminance matrix, row-major. The result may
	// alias the source's storage and must not be modified.
	Matrix() []byte

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int

	// CropSupported reports whether Crop can be called.
	CropSupported() bool

	// Crop returns a view of the rectangle at (left, top) with the given
	// extent, in this source's coordinates.
	Crop(left, top, width, height int) (LuminanceSource, error)
}

// Binarizer converts luminance data to 1-bit black/white data.
type Binarizer interface {
	// BlackRow returns a row of black/white values.
	BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error)

	// BlackMatrix returns the 2D matrix of black/white values.
	BlackMatrix() (*bitutil.BitMatrix, error)

	// LuminanceSource returns the underlying LuminanceSource.
	LuminanceSource() LuminanceSource

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}
