// Command yuvproc converts a raw camera frame to a PNG, either as RGB or as the
// Sobel edge map of one of its planes.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/pion/yuvproc/internal/logging"
	"github.com/pion/yuvproc/pkg/frame"
	"github.com/pion/yuvproc/pkg/io/video"
)

var logger = logging.NewLogger("yuvproc/cmd")

func main() {
	var (
		in     = flag.String("in", "", "raw frame file")
		out    = flag.String("out", "out.png", "output PNG file")
		format = flag.String("format", string(frame.FormatI420), "raw frame format (I420, I444, NV12, NV21, YUY2, UYVY)")
		width  = flag.Int("width", 0, "frame width")
		height = flag.Int("height", 0, "frame height")
		mode   = flag.String("mode", "rgb", "rgb or edges")
		plane  = flag.String("plane", "Y", "plane written in edges mode (Y, U or V)")
	)
	flag.Parse()

	if *in == "" || *width <= 0 || *height <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*in, *out, frame.Format(*format), *width, *height, *mode, *plane); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(in, out string, format frame.Format, width, height int, mode, plane string) error {
	raw, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	decoder, err := frame.NewDecoder(format)
	if err != nil {
		return err
	}

	src := video.ReaderFunc(func() (image.Image, func(), error) {
		return decoder.Decode(raw, width, height)
	})

	var img image.Image
	switch mode {
	case "rgb":
		img, _, err = video.ToRGB24(src).Read()
	case "edges":
		img, _, err = video.ToEdges(src, video.DefaultEdgeParams).Read()
		if err == nil {
			img, err = edgePlane(img.(*image.YCbCr), plane)
		}
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}

	logger.Infof("wrote %dx%d %s output to %s", width, height, mode, out)
	return f.Close()
}

func edgePlane(edges *image.YCbCr, plane string) (*image.Gray, error) {
	var pix []uint8
	switch plane {
	case frame.PlaneY.String():
		pix = edges.Y
	case frame.PlaneU.String():
		pix = edges.Cb
	case frame.PlaneV.String():
		pix = edges.Cr
	default:
		return nil, fmt.Errorf("unknown plane %q", plane)
	}

	return &image.Gray{Pix: pix, Stride: edges.YStride, Rect: edges.Rect}, nil
}
