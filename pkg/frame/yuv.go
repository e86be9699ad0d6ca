package frame

import (
	"fmt"
	"image"
)

func noRelease() {}

func checkLength(frame []byte, expected int) error {
	if len(frame) < expected {
		return fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), expected)
	}
	return nil
}

// decodePlanar slices a planar frame without copying.
func decodePlanar(frame []byte, width, height int, sr image.YCbCrSubsampleRatio) (image.Image, func(), error) {
	cw, ch := width, height
	if sr == image.YCbCrSubsampleRatio420 {
		cw, ch = (width+1)/2, (height+1)/2
	}

	yi := width * height
	cbi := yi + cw*ch
	cri := cbi + cw*ch
	if err := checkLength(frame, cri); err != nil {
		return nil, noRelease, err
	}

	return &image.YCbCr{
		Y:              frame[:yi:yi],
		YStride:        width,
		Cb:             frame[yi:cbi:cbi],
		Cr:             frame[cbi:cri:cri],
		CStride:        cw,
		SubsampleRatio: sr,
		Rect:           image.Rect(0, 0, width, height),
	}, noRelease, nil
}

func decodeI420(frame []byte, width, height int) (image.Image, func(), error) {
	return decodePlanar(frame, width, height, image.YCbCrSubsampleRatio420)
}

func decodeI444(frame []byte, width, height int) (image.Image, func(), error) {
	return decodePlanar(frame, width, height, image.YCbCrSubsampleRatio444)
}

// decodeSemiPlanar splits the interleaved chroma plane of NV12/NV21 frames.
// cbFirst tells whether Cb precedes Cr in each chroma pair.
func decodeSemiPlanar(frame []byte, width, height int, cbFirst bool) (image.Image, func(), error) {
	cw, ch := (width+1)/2, (height+1)/2
	yi := width * height
	ci := yi + 2*cw*ch
	if err := checkLength(frame, ci); err != nil {
		return nil, noRelease, err
	}

	img := image.NewYCbCr(image.Rect(0, 0, width, height), image.YCbCrSubsampleRatio420)
	copy(img.Y, frame[:yi])

	cb, cr := img.Cb, img.Cr
	if !cbFirst {
		cb, cr = cr, cb
	}
	for i, j := yi, 0; i < ci; i, j = i+2, j+1 {
		cb[j] = frame[i]
		cr[j] = frame[i+1]
	}

	return img, noRelease, nil
}

func decodeNV12(frame []byte, width, height int) (image.Image, func(), error) {
	return decodeSemiPlanar(frame, width, height, true)
}

func decodeNV21(frame []byte, width, height int) (image.Image, func(), error) {
	return decodeSemiPlanar(frame, width, height, false)
}

// decodePacked422 unpacks 4:2:2 frames that store two pixels in four bytes.
// The offsets give the position of the first luma, second luma, Cb and Cr
// sample within each group.
func decodePacked422(frame []byte, width, height int, y0, y1, cbOff, crOff int) (image.Image, func(), error) {
	if width%2 != 0 {
		return nil, noRelease, fmt.Errorf("packed 4:2:2 frame width (%d) must be even", width)
	}

	fi := 2 * width * height
	if err := checkLength(frame, fi); err != nil {
		return nil, noRelease, err
	}

	img := image.NewYCbCr(image.Rect(0, 0, width, height), image.YCbCrSubsampleRatio422)

	fast := 0
	slow := 0
	for i := 0; i < fi; i += 4 {
		img.Y[fast] = frame[i+y0]
		img.Y[fast+1] = frame[i+y1]
		img.Cb[slow] = frame[i+cbOff]
		img.Cr[slow] = frame[i+crOff]
		fast += 2
		slow++
	}

	return img, noRelease, nil
}

func decodeYUY2(frame []byte, width, height int) (image.Image, func(), error) {
	return decodePacked422(frame, width, height, 0, 2, 1, 3)
}

func decodeUYVY(frame []byte, width, height int) (image.Image, func(), error) {
	return decodePacked422(frame, width, height, 1, 3, 0, 2)
}
