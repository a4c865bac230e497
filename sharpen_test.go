package zxingcam_test

import (
	"bytes"
	"image/color"
	"testing"

	zxingcam "github.com/ericlevine/zxingcam"
)

func grey(v uint32) uint32 {
	return 0xFF000000 | v*0x010101
}

func flatFrame(width, height int, v byte) []byte {
	data := bytes.Repeat([]byte{v}, width*height*3/2)
	return data
}

func TestSharpenFlatFieldUnitGain(t *testing.T) {
	s := mustSource(t, flatFrame(5, 5, 50), 5, 5, 0, 0, 5, 5)
	pixels := s.RenderCroppedGreyscaleWith(zxingcam.SharpenOptions{Gain: 1})
	if len(pixels) != 25 {
		t.Fatalf("len(pixels) = %d, want 25", len(pixels))
	}
	for i, p := range pixels {
		if p != grey(50) {
			t.Errorf("pixel %d = %#08x, want %#08x", i, p, grey(50))
		}
	}
}

func TestSharpenFlatFieldDefaultGain(t *testing.T) {
	tests := []struct {
		value          byte
		border, inside uint32
	}{
		{50, grey(50), grey(100)},
		{200, grey(200), grey(255)},
		{0, grey(0), grey(0)},
	}
	for _, tc := range tests {
		s := mustSource(t, flatFrame(4, 4, tc.value), 4, 4, 0, 0, 4, 4)
		pixels := s.RenderCroppedGreyscale()
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				want := tc.border
				if x > 0 && x < 3 && y > 0 && y < 3 {
					want = tc.inside
				}
				if got := pixels[y*4+x]; got != want {
					t.Errorf("value %d: pixel (%d,%d) = %#08x, want %#08x", tc.value, x, y, got, want)
				}
			}
		}
	}
}

func TestSharpenImpulse(t *testing.T) {
	data := make([]byte, 5*5*3/2)
	data[2*5+2] = 10
	s := mustSource(t, data, 5, 5, 0, 0, 5, 5)
	pixels := s.RenderCroppedGreyscaleWith(zxingcam.SharpenOptions{Gain: 1})
	for i, p := range pixels {
		want := grey(0)
		if i == 12 {
			want = grey(90)
		}
		if p != want {
			t.Errorf("pixel %d = %#08x, want %#08x", i, p, want)
		}
	}
}

func TestSharpenSmallCropIsUnfiltered(t *testing.T) {
	s := mustSource(t, sequence(16), 4, 4, 1, 1, 2, 2)
	pixels := s.RenderCroppedGreyscale()
	want := []uint32{grey(5), grey(6), grey(9), grey(10)}
	for i := range want {
		if pixels[i] != want[i] {
			t.Errorf("pixel %d = %#08x, want %#08x", i, pixels[i], want[i])
		}
	}
}

func TestSharpenReadsOnlyTheCrop(t *testing.T) {
	data := sequence(8 * 8 * 3 / 2)
	for y := 2; y < 5; y++ {
		for x := 3; x < 6; x++ {
			data[y*8+x] = 77
		}
	}
	s := mustSource(t, data, 8, 8, 3, 2, 3, 3)
	for i, p := range s.RenderCroppedGreyscaleWith(zxingcam.SharpenOptions{Gain: 1}) {
		if p != grey(77) {
			t.Errorf("pixel %d = %#08x, want %#08x", i, p, grey(77))
		}
	}
}

func TestRenderCroppedGreyscaleImage(t *testing.T) {
	s := mustSource(t, flatFrame(6, 4, 30), 6, 4, 1, 0, 4, 3)
	img := s.RenderCroppedGreyscaleImage()
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, want 4x3", b)
	}
	if got, want := img.RGBAAt(0, 0), (color.RGBA{R: 30, G: 30, B: 30, A: 255}); got != want {
		t.Errorf("border = %v, want %v", got, want)
	}
	if got, want := img.RGBAAt(1, 1), (color.RGBA{R: 60, G: 60, B: 60, A: 255}); got != want {
		t.Errorf("interior = %v, want %v", got, want)
	}
}

func BenchmarkRenderCroppedGreyscale(b *testing.B) {
	s, err := zxingcam.NewPlanarYUVLuminanceSource(yuvFrame(640, 480), 640, 480, 160, 120, 320, 240)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.RenderCroppedGreyscale()
	}
}
