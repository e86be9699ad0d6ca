package video

import (
	"image"
	"math/rand"
	"reflect"
	"testing"
)

func grayPlane(w, h int, pix ...uint8) *image.Gray {
	return &image.Gray{Pix: pix, Stride: w, Rect: image.Rect(0, 0, w, h)}
}

func TestEdgeMapThresholdBoundary(t *testing.T) {
	cases := map[string]struct {
		right    uint8
		expected uint8
	}{
		// xSum = 32 + 2*32 + 32 = 128, so the squared magnitude equals the threshold
		"AtThreshold": {right: 32, expected: 0x1F},
		// xSum = 132
		"AboveThreshold": {right: 33, expected: 0xFF},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			src := grayPlane(3, 3,
				0, 7, c.right,
				0, 9, c.right,
				0, 7, c.right,
			)
			out := EdgeMap(src, DefaultEdgeParams)
			if out[4] != c.expected {
				t.Fatalf("expected center to be %#x, but got %#x", c.expected, out[4])
			}
		})
	}
}

func TestEdgeMapBorders(t *testing.T) {
	sizes := [][2]int{{3, 3}, {7, 5}, {5, 7}, {16, 9}}
	rnd := rand.New(rand.NewSource(7))

	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		pix := make([]uint8, w*h)
		rnd.Read(pix)

		out := EdgeMap(grayPlane(w, h, pix...), DefaultEdgeParams)
		if len(out) != w*h {
			t.Fatalf("%dx%d: expected %d bytes, but got %d", w, h, w*h, len(out))
		}

		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				b := out[row*w+col]
				border := row == 0 || col == 0 || row == h-1 || col == w-1
				if border && b != 0 {
					t.Fatalf("%dx%d: expected border (%d, %d) to be 0, but got %#x", w, h, col, row, b)
				}
				if !border && b != 0xFF && b != 0x1F {
					t.Fatalf("%dx%d: expected interior (%d, %d) to be classified, but got %#x", w, h, col, row, b)
				}
			}
		}
	}
}

func TestEdgeMapDegenerate(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 2}, {2, 6}, {6, 2}, {1, 9}}

	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		pix := make([]uint8, w*h)
		for i := range pix {
			pix[i] = uint8(i * 37)
		}

		out := EdgeMap(grayPlane(w, h, pix...), DefaultEdgeParams)
		if !reflect.DeepEqual(out, make([]uint8, w*h)) {
			t.Fatalf("%dx%d: expected an all-zero map, but got %v", w, h, out)
		}
	}
}

func TestEdgeMapVerticalEdge(t *testing.T) {
	src := grayPlane(5, 3,
		0, 0, 255, 255, 255,
		0, 0, 255, 255, 255,
		0, 0, 255, 255, 255,
	)

	out := EdgeMap(src, DefaultEdgeParams)
	expected := []uint8{
		0, 0, 0, 0, 0,
		0, 0xFF, 0xFF, 0x1F, 0,
		0, 0, 0, 0, 0,
	}
	if !reflect.DeepEqual(out, expected) {
		t.Fatalf("expected %v, but got %v", expected, out)
	}
}

func TestEdgeMapStrided(t *testing.T) {
	const w, h, stride = 6, 4, 9
	rnd := rand.New(rand.NewSource(3))
	dense := make([]uint8, w*h)
	rnd.Read(dense)

	padded := &image.Gray{Pix: pad(dense, w, h, stride), Stride: stride, Rect: image.Rect(0, 0, w, h)}

	expected := EdgeMap(grayPlane(w, h, dense...), DefaultEdgeParams)
	actual := EdgeMap(padded, DefaultEdgeParams)
	if !reflect.DeepEqual(expected, actual) {
		t.Fatalf("padded edge map differs:\n%v\n%v", expected, actual)
	}
}

func TestEdgeMapCustomParams(t *testing.T) {
	src := grayPlane(3, 3,
		10, 10, 12,
		10, 10, 12,
		10, 10, 12,
	)
	// xSum = 8, squared magnitude 64
	params := EdgeParams{Threshold: 63, Strong: 1, Weak: 2}

	if out := EdgeMap(src, params); out[4] != 1 {
		t.Fatalf("expected strong value 1, but got %d", out[4])
	}

	params.Threshold = 64
	if out := EdgeMap(src, params); out[4] != 2 {
		t.Fatalf("expected weak value 2, but got %d", out[4])
	}
}

func TestDetectEdgesPerPlane(t *testing.T) {
	flat := grayPlane(3, 3, 50, 50, 50, 50, 50, 50, 50, 50, 50)
	edge := grayPlane(3, 3,
		0, 0, 200,
		0, 0, 200,
		0, 0, 200,
	)

	ey, eu, ev := DetectEdges(flat, edge, flat, DefaultEdgeParams)
	if ey[4] != 0x1F || ev[4] != 0x1F {
		t.Fatalf("expected flat planes to be weak, got Y=%#x V=%#x", ey[4], ev[4])
	}
	if eu[4] != 0xFF {
		t.Fatalf("expected U plane to be strong, got %#x", eu[4])
	}
}
