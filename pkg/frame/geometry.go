package frame

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a frame's dimensions or strides can't describe
// a valid planar image.
var ErrInvalidGeometry = errors.New("invalid frame geometry")

// Geometry describes the layout of a planar YUV frame. Every plane has Height rows
// and Width samples per row, but each plane may pad its rows to its own stride.
type Geometry struct {
	Width, Height int
	StrideY       int
	StrideU       int
	StrideV       int
}

// NewGeometry returns the geometry of an unpadded frame, stride == width for every plane.
func NewGeometry(width, height int) Geometry {
	return Geometry{
		Width:   width,
		Height:  height,
		StrideY: width,
		StrideU: width,
		StrideV: width,
	}
}

// Stride returns the row stride of plane p.
func (g Geometry) Stride(p PlaneID) int {
	switch p {
	case PlaneU:
		return g.StrideU
	case PlaneV:
		return g.StrideV
	default:
		return g.StrideY
	}
}

// PlaneSize is the number of bytes plane p occupies including row padding.
func (g Geometry) PlaneSize(p PlaneID) int {
	return g.Stride(p) * g.Height
}

// Pixels is the number of logical pixels in the frame, padding excluded.
func (g Geometry) Pixels() int {
	return g.Width * g.Height
}

// Validate checks that g describes a usable frame.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidGeometry, g.Width, g.Height)
	}

	for _, p := range Planes {
		stride := g.Stride(p)
		if stride <= 0 {
			return fmt.Errorf("%w: plane %s has stride %d", ErrInvalidGeometry, p, stride)
		}
		if stride < g.Width {
			return fmt.Errorf("%w: plane %s stride (%d) less than width (%d)", ErrInvalidGeometry, p, stride, g.Width)
		}
	}

	return nil
}
