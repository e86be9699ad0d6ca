package video

import (
	"errors"
	"image"

	"github.com/pion/yuvproc/pkg/frame"
	"golang.org/x/image/draw"
)

var errUnsupportedImageType = errors.New("transform: unsupported image type, expected *image.YCbCr")

// chromaUpsampler brings subsampled chroma planes up to luma resolution. The
// destination planes are kept between frames.
type chromaUpsampler struct {
	cb, cr image.Gray
}

// chromaFactors returns the horizontal and vertical chroma subsampling factors of sr.
func chromaFactors(sr image.YCbCrSubsampleRatio) (fx, fy int) {
	switch sr {
	case image.YCbCrSubsampleRatio422:
		return 2, 1
	case image.YCbCrSubsampleRatio420:
		return 2, 2
	case image.YCbCrSubsampleRatio440:
		return 1, 2
	case image.YCbCrSubsampleRatio411:
		return 4, 1
	case image.YCbCrSubsampleRatio410:
		return 4, 2
	default:
		return 1, 1
	}
}

func resizeGray(dst *image.Gray, w, h int) {
	if cap(dst.Pix) < w*h {
		dst.Pix = make([]uint8, w*h)
	}
	dst.Pix = dst.Pix[:w*h]
	dst.Stride = w
	dst.Rect = image.Rect(0, 0, w, h)
}

// planes returns geometry and plane buffers for src with chroma at full resolution.
//
// Chroma is scaled by exact integer factors, so luma pixel x always takes chroma
// column x/fx as image.YCbCr does. When the frame size isn't a multiple of the
// factors the scaled plane is wider than the frame and is handed over with a
// larger stride.
func (c *chromaUpsampler) planes(src *image.YCbCr) (frame.Geometry, [3]frame.Plane) {
	bounds := src.Rect
	w, h := bounds.Dx(), bounds.Dy()

	g := frame.Geometry{Width: w, Height: h, StrideY: src.YStride}
	y := frame.NewPlane(src.Y[src.YOffset(bounds.Min.X, bounds.Min.Y):])
	cbData := src.Cb[src.COffset(bounds.Min.X, bounds.Min.Y):]
	crData := src.Cr[src.COffset(bounds.Min.X, bounds.Min.Y):]

	fx, fy := chromaFactors(src.SubsampleRatio)
	if fx == 1 && fy == 1 {
		g.StrideU, g.StrideV = src.CStride, src.CStride
		return g, [3]frame.Plane{y, frame.NewPlane(cbData), frame.NewPlane(crData)}
	}

	// Chroma samples covering bounds, counted the way image.YCbCr.COffset does.
	cw := (bounds.Max.X+fx-1)/fx - bounds.Min.X/fx
	ch := (bounds.Max.Y+fy-1)/fy - bounds.Min.Y/fy
	srcRect := image.Rect(0, 0, cw, ch)
	stride := cw * fx

	resizeGray(&c.cb, stride, ch*fy)
	resizeGray(&c.cr, stride, ch*fy)
	draw.NearestNeighbor.Scale(&c.cb, c.cb.Rect, &image.Gray{Pix: cbData, Stride: src.CStride, Rect: srcRect}, srcRect, draw.Src, nil)
	draw.NearestNeighbor.Scale(&c.cr, c.cr.Rect, &image.Gray{Pix: crData, Stride: src.CStride, Rect: srcRect}, srcRect, draw.Src, nil)

	// A frame starting mid-block begins inside the first scaled block.
	off := (bounds.Min.Y%fy)*stride + bounds.Min.X%fx

	g.StrideU, g.StrideV = stride, stride
	return g, [3]frame.Plane{y, frame.NewPlane(c.cb.Pix[off:]), frame.NewPlane(c.cr.Pix[off:])}
}

// ingestFrom reads one frame from r and loads it into in.
func ingestFrom(r Reader, in *Ingestor, up *chromaUpsampler) (frame.Geometry, error) {
	img, release, err := r.Read()
	if err != nil {
		return frame.Geometry{}, err
	}
	if release != nil {
		defer release()
	}

	yuvImg, ok := img.(*image.YCbCr)
	if !ok {
		return frame.Geometry{}, errUnsupportedImageType
	}

	g, planes := up.planes(yuvImg)
	if err := in.Ingest(g, planes[frame.PlaneY], planes[frame.PlaneU], planes[frame.PlaneV]); err != nil {
		return frame.Geometry{}, err
	}
	return g, nil
}

// ToRGB24 converts r to a new reader that outputs *frame.RGB24Img frames.
// Every output frame is newly allocated and owned by the caller.
func ToRGB24(r Reader) Reader {
	in := NewIngestor(0, logger)
	var up chromaUpsampler
	return ReaderFunc(func() (image.Image, func(), error) {
		g, err := ingestFrom(r, in, &up)
		if err != nil {
			return nil, func() {}, err
		}

		pix := ConvertToRGB(in.Planes())
		return frame.NewRGB24Img(pix, g.Width, g.Height), func() {}, nil
	})
}

// ToEdges converts r to a new reader that outputs Sobel edge maps. Each output is
// an *image.YCbCr with 4:4:4 sampling whose Y, Cb and Cr planes hold the edge maps
// of the corresponding input planes.
func ToEdges(r Reader, params EdgeParams) Reader {
	in := NewIngestor(0, logger)
	var up chromaUpsampler
	return ReaderFunc(func() (image.Image, func(), error) {
		g, err := ingestFrom(r, in, &up)
		if err != nil {
			return nil, func() {}, err
		}

		y, u, v := in.Planes()
		ey, eu, ev := DetectEdges(y, u, v, params)
		return &image.YCbCr{
			Y:              ey,
			Cb:             eu,
			Cr:             ev,
			YStride:        g.Width,
			CStride:        g.Width,
			SubsampleRatio: image.YCbCrSubsampleRatio444,
			Rect:           image.Rect(0, 0, g.Width, g.Height),
		}, func() {}, nil
	})
}
