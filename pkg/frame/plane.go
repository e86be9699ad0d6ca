package frame

// Plane is one raw sample plane handed over by a camera. Samples are addressed
// as row*stride + col, with the stride taken from the frame's Geometry.
//
// Some devices hand out plane buffers that are shorter than stride*height when
// stride != width. Capacity is the number of leading bytes of Data that are valid;
// zero means all of Data.
type Plane struct {
	Data     []byte
	Capacity int
}

// NewPlane wraps data as a plane whose whole length is valid.
func NewPlane(data []byte) Plane {
	return Plane{Data: data}
}

// Valid returns the number of bytes in p that hold real samples.
func (p Plane) Valid() int {
	if p.Capacity == 0 {
		return len(p.Data)
	}
	return p.Capacity
}
