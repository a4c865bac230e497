package zxingcam

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when binarization finds no usable black point.
	ErrNotFound = errors.New("black point not found")

	// ErrCropUnsupported is returned by sources that cannot be cropped.
	ErrCropUnsupported = errors.New("luminance source does not support cropping")

	// ErrMissingChroma is returned when a YUV buffer ends before its chroma
	// plane does.
	ErrMissingChroma = errors.New("yuv buffer is missing its chroma plane")
)

// InvalidCropError reports a crop rectangle that does not fit within the
// image data it was requested from.
type InvalidCropError struct {
	DataWidth, DataHeight    int
	Left, Top, Width, Height int
	Reason                   string
}

func (e *InvalidCropError) Error() string {
	return fmt.Sprintf("crop rectangle %dx%d at (%d,%d) invalid for %dx%d image data: %s",
		e.Width, e.Height, e.Left, e.Top, e.DataWidth, e.DataHeight, e.Reason)
}

// RowOutOfBoundsError reports a row request outside [0, Height).
type RowOutOfBoundsError struct {
	Y      int
	Height int
}

func (e *RowOutOfBoundsError) Error() string {
	return fmt.Sprintf("requested row is outside the image: %d (height %d)", e.Y, e.Height)
}
