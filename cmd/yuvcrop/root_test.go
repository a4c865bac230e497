package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	zxingcam "github.com/ericlevine/zxingcam"
)

func TestGeometryCropDefaults(t *testing.T) {
	tests := []struct {
		g            geometry
		wantW, wantH int
	}{
		{geometry{width: 8, height: 6}, 8, 6},
		{geometry{width: 8, height: 6, left: 2, top: 1}, 6, 5},
		{geometry{width: 8, height: 6, left: 2, top: 1, cropWidth: 4, cropHeight: 2}, 4, 2},
	}
	for _, tc := range tests {
		w, h := tc.g.crop()
		if w != tc.wantW || h != tc.wantH {
			t.Errorf("%+v.crop() = %dx%d, want %dx%d", tc.g, w, h, tc.wantW, tc.wantH)
		}
	}
}

func TestGeometrySource(t *testing.T) {
	data := make([]byte, 8*6*3/2)
	if _, err := (geometry{}).source(data); err == nil {
		t.Error("missing frame size should fail")
	}
	_, err := geometry{width: 8, height: 6, left: 6, cropWidth: 4}.source(data)
	var cropErr *zxingcam.InvalidCropError
	if !errors.As(err, &cropErr) {
		t.Errorf("error = %v, want *InvalidCropError", err)
	}
	s, err := geometry{width: 8, height: 6, left: 2, top: 2}.source(data)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width() != 6 || s.Height() != 4 {
		t.Errorf("crop = %dx%d, want 6x4", s.Width(), s.Height())
	}
}

func TestRunReassemble(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "frame.nv21")
	data := make([]byte, 4*4*3/2)
	for i := range data {
		data[i] = byte(i)
	}
	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatal(err)
	}

	geom = geometry{width: 4, height: 4, left: 1, top: 2, cropWidth: 2, cropHeight: 2}
	reassembleOut = filepath.Join(dir, "crop.yuv")
	t.Cleanup(func() { geom = geometry{} })

	if err := runReassemble(reassembleCmd, []string{in}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(reassembleOut)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{9, 10, 13, 14, 21, 22}; !bytes.Equal(got, want) {
		t.Errorf("crop.yuv = %v, want %v", got, want)
	}
}
