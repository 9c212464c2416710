package scene

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"golang.org/x/image/colornames"
)

// NamedColor resolves an SVG 1.1 color name (case-insensitive) to a linear color.
// Byte values are squared after normalizing, undoing the gamma 2 applied on output.
func NamedColor(name string) (core.Vec3, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return core.Vec3{}, fmt.Errorf("unknown color name %q", name)
	}
	return linearColor(c), nil
}

// mustNamedColor is NamedColor for compile-time constant names
func mustNamedColor(name string) core.Vec3 {
	c, err := NamedColor(name)
	if err != nil {
		panic(err)
	}
	return c
}

func linearColor(c color.RGBA) core.Vec3 {
	channel := func(b uint8) float64 {
		v := float64(b) / 255.0
		return v * v
	}
	return core.NewVec3(channel(c.R), channel(c.G), channel(c.B))
}
