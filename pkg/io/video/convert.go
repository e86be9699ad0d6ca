package video

import (
	"image"

	"github.com/pion/yuvproc/pkg/frame"
)

// YUVToRGB converts one full-range YUV sample to RGB with fixed BT.601 coefficients.
// Each channel is truncated toward zero and then clamped to [0, 255].
func YUVToRGB(y, u, v uint8) (r, g, b uint8) {
	yy := float64(y)
	cb := float64(int(u) - frame.ChromaBias)
	cr := float64(int(v) - frame.ChromaBias)

	// The float64 conversions stop the compiler from fusing multiply-adds, which
	// would change where truncation lands on some architectures.
	r = clamp(int(yy + float64(1.370705*cr)))
	g = clamp(int(yy - float64(0.698001*cr) - float64(0.337633*cb)))
	b = clamp(int(yy + float64(1.732446*cb)))
	return
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}

// ConvertToRGB converts three full-resolution planes to a newly allocated buffer
// of packed R, G, B triplets in row-major order without row padding. The frame
// size is taken from y, and u and v must cover at least the same area. Every
// plane is addressed through its own stride.
func ConvertToRGB(y, u, v *image.Gray) []uint8 {
	bounds := y.Rect
	dx := bounds.Dx()
	dy := bounds.Dy()
	dst := make([]uint8, 3*dx*dy)

	i := 0
	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		yi := y.PixOffset(bounds.Min.X, row)
		ui := u.PixOffset(bounds.Min.X, row)
		vi := v.PixOffset(bounds.Min.X, row)
		for col := 0; col < dx; col++ {
			dst[i+0], dst[i+1], dst[i+2] = YUVToRGB(y.Pix[yi+col], u.Pix[ui+col], v.Pix[vi+col])
			i += 3
		}
	}

	return dst
}
