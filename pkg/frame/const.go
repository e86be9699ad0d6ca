package frame

// PlaneID names one of the three sample planes of a YUV frame.
type PlaneID int

const (
	// PlaneY is the luma plane
	PlaneY PlaneID = iota
	// PlaneU is the blue-difference chroma plane, biased by 128
	PlaneU
	// PlaneV is the red-difference chroma plane, biased by 128
	PlaneV
)

// Planes lists every plane in processing order.
var Planes = [...]PlaneID{PlaneY, PlaneU, PlaneV}

func (p PlaneID) String() string {
	switch p {
	case PlaneY:
		return "Y"
	case PlaneU:
		return "U"
	case PlaneV:
		return "V"
	default:
		return "unknown"
	}
}

// ChromaBias is the offset stored in U and V samples.
const ChromaBias = 128

// Format names a raw camera frame layout understood by NewDecoder.
type Format string

const (
	// FormatI420 https://www.fourcc.org/pixel-format/yuv-i420/
	FormatI420 Format = "I420"
	// FormatI444 is a planar YUV format without sub-sampling
	FormatI444 Format = "I444"
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	FormatNV12 Format = "NV12"
	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	FormatNV21 Format = "NV21"
	// FormatYUY2 https://www.fourcc.org/pixel-format/yuv-yuy2/
	FormatYUY2 Format = "YUY2"
	// FormatUYVY https://www.fourcc.org/pixel-format/yuv-uyvy/
	FormatUYVY Format = "UYVY"
)

// FormatYUYV is an alias of FormatYUY2
const FormatYUYV = FormatYUY2
