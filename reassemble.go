package zxingcam

// CroppedYUV reassembles the crop as a self-contained YUV 4:2:0 buffer of
// Width()*Height()*3/2 bytes: the cropped Y plane followed by chroma.
//
// Chroma is copied one full crop-width run per even output row y, starting
// at the frame's chroma plane offset ((top+y)/2)*dataWidth + left. The
// horizontal offset and width are not halved, so the chroma section does not
// have the row packing of a textbook 4:2:0 crop. Runs that would extend past
// the output (odd heights) or the source buffer are truncated.
//
// It returns ErrMissingChroma if the buffer ends before the frame's chroma
// plane.
func (s *PlanarYUVLuminanceSource) CroppedYUV() ([]byte, error) {
	lumaSize := s.dataWidth * s.dataHeight
	if len(s.yuvData) < lumaSize+lumaSize/2 {
		return nil, ErrMissingChroma
	}
	width := s.width
	height := s.height
	ret := make([]byte, width*height*3/2)

	inputOffset := s.top*s.dataWidth + s.left
	for y := 0; y < height; y++ {
		outputOffset := y * width
		copy(ret[outputOffset:outputOffset+width], s.yuvData[inputOffset:inputOffset+width])
		inputOffset += s.dataWidth
	}

	chroma := ret[width*height:]
	for y := 0; y < height; y += 2 {
		outputOffset := width * (y >> 1)
		inputOffset := lumaSize + ((s.top+y)>>1)*s.dataWidth + s.left
		if outputOffset >= len(chroma) || inputOffset >= len(s.yuvData) {
			break
		}
		end := min(inputOffset+width, len(s.yuvData))
		copy(chroma[outputOffset:], s.yuvData[inputOffset:end])
	}
	return ret, nil
}
