package video

import (
	"fmt"
	"image"

	"github.com/pion/logging"
	"github.com/pion/yuvproc/pkg/frame"
	"github.com/pion/yuvproc/pkg/io"
)

// Ingestor copies strided camera planes into work buffers it owns and reuses
// between frames. An Ingestor must not be used from multiple goroutines at once.
type Ingestor struct {
	buffers [3]WorkBuffer
	views   [3]image.Gray
	log     logging.LeveledLogger
}

// NewIngestor creates an Ingestor whose work buffers start with initialSize bytes
// each. A nil log falls back to the package logger.
func NewIngestor(initialSize int, log logging.LeveledLogger) *Ingestor {
	if log == nil {
		log = logger
	}

	in := &Ingestor{log: log}
	for i := range in.buffers {
		in.buffers[i] = *NewWorkBuffer(initialSize)
	}
	return in
}

// Ingest validates g and copies y, u and v into the work buffers. Each work
// buffer is grown to stride*height if it's shorter. Only the plane's valid
// bytes are copied, bounded by stride*height, so whatever lies past them in
// the work buffer is left over from earlier frames.
func (in *Ingestor) Ingest(g frame.Geometry, y, u, v frame.Plane) error {
	if err := g.Validate(); err != nil {
		return err
	}

	planes := [3]frame.Plane{y, u, v}
	for _, p := range frame.Planes {
		if n := planes[p].Capacity; n < 0 || n > len(planes[p].Data) {
			return fmt.Errorf("plane %s: %w", p, &io.BufferTooSmallError{
				RequiredSize: n,
				ActualSize:   len(planes[p].Data),
			})
		}
	}

	for _, p := range frame.Planes {
		size := g.PlaneSize(p)
		buff := &in.buffers[p]
		if buff.reserve(size) {
			in.log.Debugf("plane %s work buffer grown to %d bytes (%dx%d, stride %d)", p, size, g.Width, g.Height, g.Stride(p))
		}

		n := planes[p].Valid()
		if n > size {
			n = size
		}

		if _, err := io.CopyN(buff.buffer, planes[p].Data, n); err != nil {
			return fmt.Errorf("plane %s: %w", p, err)
		}

		in.views[p] = image.Gray{
			Pix:    buff.Bytes(size),
			Stride: g.Stride(p),
			Rect:   image.Rect(0, 0, g.Width, g.Height),
		}
	}

	return nil
}

// Planes returns views of the most recently ingested Y, U and V planes. The views
// alias the work buffers and are only valid until the next Ingest.
func (in *Ingestor) Planes() (y, u, v *image.Gray) {
	return &in.views[frame.PlaneY], &in.views[frame.PlaneU], &in.views[frame.PlaneV]
}

// Cap returns the length of each work buffer, indexed by frame.PlaneID.
func (in *Ingestor) Cap() [3]int {
	return [3]int{in.buffers[0].Len(), in.buffers[1].Len(), in.buffers[2].Len()}
}
