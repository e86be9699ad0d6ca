package frame

import (
	"fmt"
)

// NewDecoder returns a Decoder that produces *image.YCbCr frames from raw frames in format f.
func NewDecoder(f Format) (Decoder, error) {
	var decoder decoderFunc

	switch f {
	case FormatI420:
		decoder = decodeI420
	case FormatI444:
		decoder = decodeI444
	case FormatNV12:
		decoder = decodeNV12
	case FormatNV21:
		decoder = decodeNV21
	case FormatYUY2:
		decoder = decodeYUY2
	case FormatUYVY:
		decoder = decodeUYVY
	default:
		return nil, fmt.Errorf("%s is not supported", f)
	}

	return decoder, nil
}
