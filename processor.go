// Package yuvproc converts planar YUV camera frames to RGB and extracts Sobel
// edge maps from them. A Processor keeps its plane work buffers between frames
// so a steady stream of same-sized frames causes no work-buffer allocation.
package yuvproc

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pion/logging"
	"github.com/pion/yuvproc/pkg/frame"
	"github.com/pion/yuvproc/pkg/io/video"

	ilogging "github.com/pion/yuvproc/internal/logging"
)

// Processor converts or edge-detects YUV frames. Each call copies the input planes
// into the Processor's work buffers, so calls on one Processor are serialized.
// Separate Processors share nothing.
type Processor struct {
	ProcessorOptions

	mu       sync.Mutex
	id       uuid.UUID
	log      logging.LeveledLogger
	ingestor *video.Ingestor
}

// ProcessorOptions stores parameters used by Processor.
type ProcessorOptions struct {
	loggerFactory logging.LoggerFactory
	edgeParams    video.EdgeParams
	initialSize   int
}

// ProcessorOption is a type of Processor functional option.
type ProcessorOption func(*ProcessorOptions)

// WithLoggerFactory specifies the factory used to build the Processor's logger.
func WithLoggerFactory(f logging.LoggerFactory) ProcessorOption {
	return func(o *ProcessorOptions) {
		o.loggerFactory = f
	}
}

// WithEdgeParams overrides the Sobel threshold and the bytes written for strong
// and weak edges.
func WithEdgeParams(params video.EdgeParams) ProcessorOption {
	return func(o *ProcessorOptions) {
		o.edgeParams = params
	}
}

// WithInitialSize preallocates every plane work buffer with size bytes, typically
// stride*height of the expected camera resolution.
func WithInitialSize(size int) ProcessorOption {
	return func(o *ProcessorOptions) {
		o.initialSize = size
	}
}

// New creates a Processor.
func New(opts ...ProcessorOption) *Processor {
	po := ProcessorOptions{
		loggerFactory: ilogging.Factory(),
		edgeParams:    video.DefaultEdgeParams,
	}
	for _, o := range opts {
		o(&po)
	}
	if po.initialSize < 0 {
		po.initialSize = 0
	}

	id := uuid.New()
	log := po.loggerFactory.NewLogger("yuvproc/" + id.String())
	return &Processor{
		ProcessorOptions: po,
		id:               id,
		log:              log,
		ingestor:         video.NewIngestor(po.initialSize, log),
	}
}

// ID returns the unique identifier of p, also used as its logging scope.
func (p *Processor) ID() string {
	return p.id.String()
}

// ConvertToRGB converts a frame to packed RGB. The result holds
// 3*g.Width*g.Height bytes, one R, G, B triplet per pixel in row-major order with
// row padding removed, and is owned by the caller.
func (p *Processor) ConvertToRGB(g frame.Geometry, y, u, v frame.Plane) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ingestor.Ingest(g, y, u, v); err != nil {
		return nil, err
	}

	p.log.Tracef("converting %dx%d frame to RGB", g.Width, g.Height)
	return video.ConvertToRGB(p.ingestor.Planes()), nil
}

// DetectEdges computes a Sobel edge map for each of the three planes. Every map
// holds g.Width*g.Height bytes with row padding removed and is owned by the caller.
// Border pixels are always 0.
func (p *Processor) DetectEdges(g frame.Geometry, y, u, v frame.Plane) (ey, eu, ev []byte, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.ingestor.Ingest(g, y, u, v); err != nil {
		return nil, nil, nil, err
	}

	p.log.Tracef("detecting edges on %dx%d frame", g.Width, g.Height)
	yp, up, vp := p.ingestor.Planes()
	ey, eu, ev = video.DetectEdges(yp, up, vp, p.edgeParams)
	return ey, eu, ev, nil
}

// WorkBufferSizes reports the current length of each plane work buffer, in
// Y, U, V order.
func (p *Processor) WorkBufferSizes() [3]int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ingestor.Cap()
}
