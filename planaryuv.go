package zxingcam

// PlanarYUVLuminanceSource is a LuminanceSource over YUV data returned from a
// camera driver, optionally cropped to a rectangle within the full frame.
// Cropping away the perimeter speeds up decoding.
//
// Any pixel format whose Y plane is planar and comes first works for the
// luminance operations, including YCbCr_420_SP (NV21) and YCbCr_422_SP.
// CroppedYUV additionally needs a 4:2:0 chroma plane after the Y plane.
//
// The source never modifies yuvData. Callers must not modify it while a
// source built on it is in use.
type PlanarYUVLuminanceSource struct {
	yuvData    []byte
	dataWidth  int
	dataHeight int
	left       int
	top        int
	width      int
	height     int
}

// NewPlanarYUVLuminanceSource wraps yuvData, a dataWidth x dataHeight frame,
// and crops it to the width x height rectangle at (left, top). It returns an
// *InvalidCropError if the rectangle does not fit within the frame, has a
// negative origin or extent, or if yuvData is shorter than the Y plane.
// A zero width or height is accepted.
func NewPlanarYUVLuminanceSource(yuvData []byte, dataWidth, dataHeight, left, top, width, height int) (*PlanarYUVLuminanceSource, error) {
	invalid := func(reason string) error {
		return &InvalidCropError{
			DataWidth:  dataWidth,
			DataHeight: dataHeight,
			Left:       left,
			Top:        top,
			Width:      width,
			Height:     height,
			Reason:     reason,
		}
	}
	switch {
	case left+width > dataWidth || top+height > dataHeight:
		return nil, invalid("crop rectangle does not fit within image data")
	case left < 0 || top < 0:
		return nil, invalid("negative crop origin")
	case width < 0 || height < 0:
		return nil, invalid("negative crop extent")
	case len(yuvData) < dataWidth*dataHeight:
		return nil, invalid("buffer is shorter than the luminance plane")
	}
	return &PlanarYUVLuminanceSource{
		yuvData:    yuvData,
		dataWidth:  dataWidth,
		dataHeight: dataHeight,
		left:       left,
		top:        top,
		width:      width,
		height:     height,
	}, nil
}

// Row returns crop-local row y. If row has room for Width() bytes it is
// overwritten and returned, resliced to Width(); otherwise a new slice is
// allocated.
func (s *PlanarYUVLuminanceSource) Row(y int, row []byte) ([]byte, error) {
	if y < 0 || y >= s.height {
		return nil, &RowOutOfBoundsError{Y: y, Height: s.height}
	}
	if len(row) < s.width {
		row = make([]byte, s.width)
	}
	offset := (y+s.top)*s.dataWidth + s.left
	copy(row, s.yuvData[offset:offset+s.width])
	return row[:s.width], nil
}

// Matrix returns the cropped luminance plane, row-major.
//
// When the crop covers the whole frame the source buffer itself is returned.
// Its length is then that of the caller's buffer, which includes the chroma
// plane, so only the first Width()*Height() bytes are luminance.
func (s *PlanarYUVLuminanceSource) Matrix() []byte {
	width := s.width
	height := s.height

	if width == s.dataWidth && height == s.dataHeight {
		return s.yuvData
	}

	area := width * height
	matrix := make([]byte, area)
	inputOffset := s.top*s.dataWidth + s.left

	// Full-width crops are one contiguous run of the Y plane.
	if width == s.dataWidth {
		copy(matrix, s.yuvData[inputOffset:inputOffset+area])
		return matrix
	}

	for y := 0; y < height; y++ {
		outputOffset := y * width
		copy(matrix[outputOffset:outputOffset+width], s.yuvData[inputOffset:inputOffset+width])
		inputOffset += s.dataWidth
	}
	return matrix
}

// Width returns the crop width.
func (s *PlanarYUVLuminanceSource) Width() int { return s.width }

// Height returns the crop height.
func (s *PlanarYUVLuminanceSource) Height() int { return s.height }

// Left returns the crop's horizontal offset within the frame.
func (s *PlanarYUVLuminanceSource) Left() int { return s.left }

// Top returns the crop's vertical offset within the frame.
func (s *PlanarYUVLuminanceSource) Top() int { return s.top }

// DataWidth returns the width of the full frame.
func (s *PlanarYUVLuminanceSource) DataWidth() int { return s.dataWidth }

// DataHeight returns the height of the full frame.
func (s *PlanarYUVLuminanceSource) DataHeight() int { return s.dataHeight }

// CropSupported always returns true.
func (s *PlanarYUVLuminanceSource) CropSupported() bool { return true }

// Crop returns a new source over the same buffer, restricted to the given
// rectangle in this crop's coordinates.
func (s *PlanarYUVLuminanceSource) Crop(left, top, width, height int) (LuminanceSource, error) {
	if left < 0 || top < 0 || width < 0 || height < 0 || left+width > s.width || top+height > s.height {
		return nil, &InvalidCropError{
			DataWidth:  s.width,
			DataHeight: s.height,
			Left:       left,
			Top:        top,
			Width:      width,
			Height:     height,
			Reason:     "crop rectangle does not fit within the current crop",
		}
	}
	cropped, err := NewPlanarYUVLuminanceSource(s.yuvData, s.dataWidth, s.dataHeight,
		s.left+left, s.top+top, width, height)
	if err != nil {
		return nil, err
	}
	return cropped, nil
}
