// Package binarizer converts luminance sources to black/white bit data.
package binarizer

import (
	zxingcam "github.com/ericlevine/zxingcam"
	"github.com/ericlevine/zxingcam/bitutil"
)

const (
	luminanceBits    = 5
	luminanceShift   = 8 - luminanceBits
	luminanceBuckets = 1 << luminanceBits
)

// GlobalHistogram picks a single black point from a histogram of luminance
// values. It is cheap, and works well on evenly lit crops.
//
// A GlobalHistogram keeps scratch buffers between calls and must not be
// used from multiple goroutines at once.
type GlobalHistogram struct {
	source     zxingcam.LuminanceSource
	luminances []byte
	buckets    [luminanceBuckets]int
}

// NewGlobalHistogram creates a new GlobalHistogram binarizer.
func NewGlobalHistogram(source zxingcam.LuminanceSource) *GlobalHistogram {
	return &GlobalHistogram{source: source}
}

// LuminanceSource returns the underlying source.
func (g *GlobalHistogram) LuminanceSource() zxingcam.LuminanceSource {
	return g.source
}

// Width returns the image width.
func (g *GlobalHistogram) Width() int { return g.source.Width() }

// Height returns the image height.
func (g *GlobalHistogram) Height() int { return g.source.Height() }

// BlackRow binarizes row y against a black point estimated from that row
// alone, after a [-1 4 -1]/2 sharpen along the row.
func (g *GlobalHistogram) BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	width := g.source.Width()
	g.initArrays(width)
	luminances, err := g.source.Row(y, g.luminances)
	if err != nil {
		return nil, err
	}
	for _, l := range luminances {
		g.buckets[int(l)>>luminanceShift]++
	}
	blackPoint, err := estimateBlackPoint(g.buckets[:])
	if err != nil {
		return nil, err
	}

	if row == nil || row.Size() < width {
		row = bitutil.NewBitArray(width)
	} else {
		row.Clear()
	}
	if width < 3 {
		for x, l := range luminances {
			if int(l) < blackPoint {
				row.Set(x)
			}
		}
		return row, nil
	}
	left := int(luminances[0])
	center := int(luminances[1])
	for x := 1; x < width-1; x++ {
		right := int(luminances[x+1])
		if ((center*4)-left-right)/2 < blackPoint {
			row.Set(x)
		}
		left = center
		center = right
	}
	return row, nil
}

// BlackMatrix samples four rows across the middle three fifths of the image
// to pick a black point, then thresholds the whole luminance matrix.
func (g *GlobalHistogram) BlackMatrix() (*bitutil.BitMatrix, error) {
	width := g.source.Width()
	height := g.source.Height()
	if width < 1 || height < 1 {
		return nil, zxingcam.ErrNotFound
	}

	g.initArrays(width)
	for y := 1; y < 5; y++ {
		luminances, err := g.source.Row(height*y/5, g.luminances)
		if err != nil {
			return nil, err
		}
		right := (width * 4) / 5
		for x := width / 5; x < right; x++ {
			g.buckets[int(luminances[x])>>luminanceShift]++
		}
	}
	blackPoint, err := estimateBlackPoint(g.buckets[:])
	if err != nil {
		return nil, err
	}

	matrix := bitutil.NewBitMatrixWithSize(width, height)
	luminances := g.source.Matrix()
	for y := 0; y < height; y++ {
		offset := y * width
		for x := 0; x < width; x++ {
			if int(luminances[offset+x]) < blackPoint {
				matrix.Set(x, y)
			}
		}
	}
	return matrix, nil
}

func (g *GlobalHistogram) initArrays(luminanceSize int) {
	if len(g.luminances) < luminanceSize {
		g.luminances = make([]byte, luminanceSize)
	}
	g.buckets = [luminanceBuckets]int{}
}

// estimateBlackPoint finds the two tallest, well separated peaks in the
// histogram and returns the deepest valley between them, scaled back to a
// luminance value.
func estimateBlackPoint(buckets []int) (int, error) {
	numBuckets := len(buckets)
	maxBucketCount := 0
	firstPeak := 0
	firstPeakSize := 0
	for x := 0; x < numBuckets; x++ {
		if buckets[x] > firstPeakSize {
			firstPeak = x
			firstPeakSize = buckets[x]
		}
		if buckets[x] > maxBucketCount {
			maxBucketCount = buckets[x]
		}
	}

	// Favour peaks far from the first one.
	secondPeak := 0
	secondPeakScore := 0
	for x := 0; x < numBuckets; x++ {
		dist := x - firstPeak
		score := buckets[x] * dist * dist
		if score > secondPeakScore {
			secondPeak = x
			secondPeakScore = score
		}
	}

	if firstPeak > secondPeak {
		firstPeak, secondPeak = secondPeak, firstPeak
	}

	if secondPeak-firstPeak <= numBuckets/16 {
		return 0, zxingcam.ErrNotFound
	}

	bestValley := secondPeak - 1
	bestValleyScore := -1
	for x := secondPeak - 1; x > firstPeak; x-- {
		fromFirst := x - firstPeak
		score := fromFirst * fromFirst * (secondPeak - x) * (maxBucketCount - buckets[x])
		if score > bestValleyScore {
			bestValley = x
			bestValleyScore = score
		}
	}

	return bestValley << luminanceShift, nil
}
