// Package frame handles raw YUV 4:2:0 camera frames as they come off a
// capture device or out of a dump file.
package frame

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	zxingcam "github.com/ericlevine/zxingcam"
)

// ErrOddDimensions is returned when a frame would need to split a 2x2 chroma
// block.
var ErrOddDimensions = errors.New("frame dimensions must be even")

// Size returns the length in bytes of a width x height YUV 4:2:0 frame.
func Size(width, height int) int {
	return width * height * 3 / 2
}

// Count returns how many whole frames fit in n bytes.
func Count(n int64, width, height int) int64 {
	size := int64(Size(width, height))
	if size == 0 {
		return 0
	}
	return n / size
}

// FromImage encodes img as an NV21 frame: the Y plane followed by a
// half-resolution plane of interleaved V and U samples, each the average of
// a 2x2 block.
func FromImage(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w%2 != 0 || h%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrOddDimensions, w, h)
	}

	out := make([]byte, Size(w, h))
	copy(out, zxingcam.NewImageLuminanceSource(img).Matrix())

	chroma := out[w*h:]
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x += 2 {
			var cb, cr int
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					r, g, b, _ := img.At(bounds.Min.X+x+dx, bounds.Min.Y+y+dy).RGBA()
					_, u, v := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(b>>8))
					cb += int(u)
					cr += int(v)
				}
			}
			i := (y/2)*w + x
			chroma[i] = byte(cr / 4)
			chroma[i+1] = byte(cb / 4)
		}
	}
	return out, nil
}

// Reader reads consecutive fixed-size frames from a raw stream.
type Reader struct {
	r    io.Reader
	size int
	n    int
}

// NewReader returns a Reader for width x height 4:2:0 frames.
func NewReader(r io.Reader, width, height int) *Reader {
	return &Reader{r: r, size: Size(width, height)}
}

// Next returns the next frame in a newly allocated buffer. It returns io.EOF
// when the stream ends on a frame boundary and io.ErrUnexpectedEOF when it
// ends inside a frame.
func (fr *Reader) Next() ([]byte, error) {
	if fr.size == 0 {
		return nil, io.EOF
	}
	buf := make([]byte, fr.size)
	if _, err := io.ReadFull(fr.r, buf); err != nil {
		return nil, err
	}
	fr.n++
	return buf, nil
}

// Frames returns the number of frames read so far.
func (fr *Reader) Frames() int { return fr.n }
