package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// RGB is one quantized, gamma corrected pixel
type RGB [3]uint8

// Frame is the dense row-major pixel buffer produced by a render, top row first
type Frame struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// Set stores the pixel at column x, row y
func (f *Frame) Set(x, y int, c RGB) {
	f.Pixels[y*f.Width+x] = c
}

// At returns the pixel at column x, row y
func (f *Frame) At(x, y int) RGB {
	return f.Pixels[y*f.Width+x]
}

// Bytes flattens the frame into R, G, B byte triples
func (f *Frame) Bytes() []byte {
	out := make([]byte, 0, len(f.Pixels)*3)
	for _, p := range f.Pixels {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// Image converts the frame into an opaque RGBA image for encoding
func (f *Frame) Image() (*image.RGBA, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", f.Width, f.Height)
	}
	if len(f.Pixels) != f.Width*f.Height {
		return nil, fmt.Errorf("frame has %d pixels, expected %dx%d=%d",
			len(f.Pixels), f.Width, f.Height, f.Width*f.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return img, nil
}

// intensity keeps quantized values below 256
var intensity = core.NewInterval(0.000, 0.999)

// ToRGB converts a sum of linear samples into a display pixel:
// average, gamma 2 (square root), clamp to [0, 0.999] and scale to a byte
func ToRGB(colorSum core.Vec3, samples int) RGB {
	if samples <= 0 {
		return RGB{}
	}
	c := colorSum.Divide(float64(samples)).Sqrt()
	return RGB{toByte(c.X), toByte(c.Y), toByte(c.Z)}
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(256 * intensity.Clamp(v))
}
