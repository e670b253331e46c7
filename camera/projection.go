package camera

import (
	"github.com/oliverbestmann/vcl/gm"
)

// Perspective describes a perspective projection.
type Perspective struct {
	FovY   gm.Rad
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultPerspective returns a projection with a vertical field of view of 50 degrees.
func DefaultPerspective(aspect float32) Perspective {
	return Perspective{
		FovY:   gm.DegToRad(50),
		Aspect: aspect,
		Near:   0.1,
		Far:    100,
	}
}

func (p Perspective) Matrix() gm.Mat4 {
	return gm.Perspective(p.FovY, p.Aspect, p.Near, p.Far)
}

func (p Perspective) Inverse() gm.Mat4 {
	return gm.PerspectiveInverse(p.FovY, p.Aspect, p.Near, p.Far)
}

// Orthographic describes an orthographic projection of the given box.
type Orthographic struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

func (o Orthographic) Matrix() gm.Mat4 {
	return gm.Orthographic(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)
}

func (o Orthographic) Inverse() gm.Mat4 {
	return gm.OrthographicInverse(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)
}

// Projection is implemented by Perspective and Orthographic.
type Projection interface {
	Matrix() gm.Mat4
	Inverse() gm.Mat4
}

var (
	_ Projection = Perspective{}
	_ Projection = Orthographic{}
)
