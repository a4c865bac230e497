package zxingcam

import "image"

// sharpenKernel is a 3x3 Laplacian sharpen, row-major. Its taps sum to 1.
var sharpenKernel = [9]int{
	-1, -1, -1,
	-1, 9, -1,
	-1, -1, -1,
}

const defaultSharpenGain = 2.0

// SharpenOptions configures RenderCroppedGreyscaleWith.
type SharpenOptions struct {
	// Gain multiplies every kernel tap. Zero selects the default gain of 2.
	Gain float32
}

// RenderCroppedGreyscale renders the crop as a sharpened greyscale preview
// using the default options. See RenderCroppedGreyscaleWith.
func (s *PlanarYUVLuminanceSource) RenderCroppedGreyscale() []uint32 {
	return s.RenderCroppedGreyscaleWith(SharpenOptions{})
}

// RenderCroppedGreyscaleWith renders the crop as Width()*Height() opaque
// 0xAARRGGBB pixels for display.
//
// Each luma byte is treated as a colour packed into the low byte, so its
// red and green channels are zero and blue carries the value. The kernel
// runs on every interior pixel with each channel clamped to [0, 255]; the
// one-pixel border keeps its unfiltered value. Every pixel is then
// collapsed to grey by replicating its lowest channel byte.
//
// The result is a visual aid, not a colorimetric conversion.
func (s *PlanarYUVLuminanceSource) RenderCroppedGreyscaleWith(opts SharpenOptions) []uint32 {
	gain := opts.Gain
	if gain == 0 {
		gain = defaultSharpenGain
	}
	width := s.width
	height := s.height

	raw := make([]uint32, width*height)
	inputOffset := s.top*s.dataWidth + s.left
	for y := 0; y < height; y++ {
		outputOffset := y * width
		for x := 0; x < width; x++ {
			raw[outputOffset+x] = uint32(s.yuvData[inputOffset+x])
		}
		inputOffset += s.dataWidth
	}

	filtered := make([]uint32, width*height)
	copy(filtered, raw)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var r, g, b int
			tap := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					c := raw[(y+dy)*width+x+dx]
					weight := float32(sharpenKernel[tap]) * gain
					r += int(float32(c>>16&0xFF) * weight)
					g += int(float32(c>>8&0xFF) * weight)
					b += int(float32(c&0xFF) * weight)
					tap++
				}
			}
			filtered[y*width+x] = packARGB(clampChannel(r), clampChannel(g), clampChannel(b))
		}
	}

	pixels := make([]uint32, width*height)
	for i, c := range filtered {
		grey := c & 0xFF
		pixels[i] = 0xFF000000 | grey*0x00010101
	}
	return pixels
}

// RenderCroppedGreyscaleImage returns RenderCroppedGreyscale as an image
// ready for encoding.
func (s *PlanarYUVLuminanceSource) RenderCroppedGreyscaleImage() *image.RGBA {
	return PixelsToImage(s.RenderCroppedGreyscale(), s.width, s.height)
}

// PixelsToImage converts row-major 0xAARRGGBB pixels to an *image.RGBA.
func PixelsToImage(pixels []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, c := range pixels[:width*height] {
		p := img.Pix[i*4 : i*4+4 : i*4+4]
		p[0] = uint8(c >> 16)
		p[1] = uint8(c >> 8)
		p[2] = uint8(c)
		p[3] = uint8(c >> 24)
	}
	return img
}

func packARGB(r, g, b int) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func clampChannel(v int) int {
	return min(255, max(0, v))
}
