package video

import (
	"image"
)

// EdgeParams controls how Sobel gradient magnitudes are classified.
type EdgeParams struct {
	// Threshold is compared against the squared gradient magnitude. Only values
	// strictly greater than Threshold count as strong edges.
	Threshold int
	// Strong is written for pixels above Threshold
	Strong uint8
	// Weak is written for every other interior pixel
	Weak uint8
}

// DefaultEdgeParams classifies a gradient magnitude above 128 as a strong edge.
var DefaultEdgeParams = EdgeParams{
	Threshold: 128 * 128,
	Strong:    0xFF,
	Weak:      0x1F,
}

// EdgeMap runs a 3x3 Sobel operator over src and returns a newly allocated
// width*height map with no row padding. Border pixels have no full
// neighbourhood and stay 0, so frames narrower or shorter than 3 pixels produce
// an all-zero map.
func EdgeMap(src *image.Gray, params EdgeParams) []uint8 {
	bounds := src.Rect
	width := bounds.Dx()
	height := bounds.Dy()
	dst := make([]uint8, width*height)
	stride := src.Stride
	pix := src.Pix

	for j := 1; j < height-1; j++ {
		for i := 1; i < width-1; i++ {
			offset := src.PixOffset(bounds.Min.X+i, bounds.Min.Y+j)

			a00 := int(pix[offset-stride-1])
			a01 := int(pix[offset-stride])
			a02 := int(pix[offset-stride+1])
			a10 := int(pix[offset-1])
			a12 := int(pix[offset+1])
			a20 := int(pix[offset+stride-1])
			a21 := int(pix[offset+stride])
			a22 := int(pix[offset+stride+1])

			// -1 0 1
			// -2 0 2
			// -1 0 1
			xSum := -a00 - 2*a10 - a20 + a02 + 2*a12 + a22

			//  1  2  1
			//  0  0  0
			// -1 -2 -1
			ySum := a00 + 2*a01 + a02 - a20 - 2*a21 - a22

			if xSum*xSum+ySum*ySum > params.Threshold {
				dst[j*width+i] = params.Strong
			} else {
				dst[j*width+i] = params.Weak
			}
		}
	}

	return dst
}

// DetectEdges computes an independent edge map for each of the Y, U and V planes.
func DetectEdges(y, u, v *image.Gray, params EdgeParams) (ey, eu, ev []uint8) {
	return EdgeMap(y, params), EdgeMap(u, params), EdgeMap(v, params)
}
