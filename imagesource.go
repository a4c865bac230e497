package zxingcam

import (
	"image"
	"image/color"

	"github.com/ericlevine/zxingcam/bitutil"
)

// ImageLuminanceSource is a LuminanceSource over a decoded Go image. It
// converts to luminance once, at construction, and does not support
// cropping.
type ImageLuminanceSource struct {
	luminances []byte
	width      int
	height     int
}

// NewImageLuminanceSource creates a LuminanceSource from a Go image.Image
// using (306*R + 601*G + 117*B + 0x200) >> 10 on 8-bit components.
// Fully transparent pixels become white.
func NewImageLuminanceSource(img image.Image) *ImageLuminanceSource {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	luminances := make([]byte, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			luminances[y*w+x] = Luminance(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return &ImageLuminanceSource{
		luminances: luminances,
		width:      w,
		height:     h,
	}
}

// NewGrayImageLuminanceSource creates a LuminanceSource from a *image.Gray,
// using the pixel data directly without conversion.
func NewGrayImageLuminanceSource(img *image.Gray) *ImageLuminanceSource {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	luminances := make([]byte, w*h)
	for y := 0; y < h; y++ {
		srcOff := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(luminances[y*w:], img.Pix[srcOff:srcOff+w])
	}
	return &ImageLuminanceSource{
		luminances: luminances,
		width:      w,
		height:     h,
	}
}

// Luminance converts a colour to an 8-bit luminance value.
func Luminance(c color.Color) byte {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0xFF
	}
	r8 := r >> 8
	g8 := g >> 8
	b8 := b >> 8
	return byte((306*r8 + 601*g8 + 117*b8 + 0x200) >> 10)
}

// Row returns a row of luminance data.
func (s *ImageLuminanceSource) Row(y int, row []byte) ([]byte, error) {
	if y < 0 || y >= s.height {
		return nil, &RowOutOfBoundsError{Y: y, Height: s.height}
	}
	if len(row) < s.width {
		row = make([]byte, s.width)
	}
	offset := y * s.width
	copy(row, s.luminances[offset:offset+s.width])
	return row[:s.width], nil
}

// Matrix returns a copy of the luminance matrix.
func (s *ImageLuminanceSource) Matrix() []byte {
	result := make([]byte, len(s.luminances))
	copy(result, s.luminances)
	return result
}

// Width returns the width of the image.
func (s *ImageLuminanceSource) Width() int {
	return s.width
}

// Height returns the height of the image.
func (s *ImageLuminanceSource) Height() int {
	return s.height
}

// CropSupported returns false.
func (s *ImageLuminanceSource) CropSupported() bool { return false }

// Crop always fails with ErrCropUnsupported.
func (s *ImageLuminanceSource) Crop(left, top, width, height int) (LuminanceSource, error) {
	return nil, ErrCropUnsupported
}

// BitMatrixToImage converts a BitMatrix to a grayscale image where set bits
// are black (0) and unset bits white (255).
func BitMatrixToImage(matrix *bitutil.BitMatrix) *image.Gray {
	w := matrix.Width()
	h := matrix.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if matrix.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
