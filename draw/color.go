package draw

import (
	"github.com/oliverbestmann/vcl/gm"
)

var White = RGB(1, 1, 1)
var Black = RGB(0, 0, 0)

// Color is a non alpha pre-multiplied color value.
// A value of 1 indicates full color
type Color struct {
	R, G, B, A float32
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1.0)
}

func Gray(g float32) Color {
	return RGB(g, g, g)
}

// ColorOf converts a vertex color to an opaque Color.
func ColorOf(rgb gm.Vec3) Color {
	return RGB(rgb.X(), rgb.Y(), rgb.Z())
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Vec3 returns the color channels without alpha.
func (c Color) Vec3() gm.Vec3 {
	return gm.V3(c.R, c.G, c.B)
}

func (c Color) RGBA() (r, g, b, a uint32) {
	const MAX = 0xffff

	r = uint32(gm.Clamp(c.R*c.A*MAX, 0, MAX))
	g = uint32(gm.Clamp(c.G*c.A*MAX, 0, MAX))
	b = uint32(gm.Clamp(c.B*c.A*MAX, 0, MAX))
	a = uint32(gm.Clamp(c.A*MAX, 0, MAX))

	return
}

func (c Color) PremultipliedValues() (float32, float32, float32, float32) {
	r := c.R * c.A
	g := c.G * c.A
	b := c.B * c.A
	return r, g, b, c.A
}
