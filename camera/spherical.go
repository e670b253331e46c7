package camera

import (
	"github.com/oliverbestmann/vcl/gm"
)

// Spherical orbits around a center parameterized by the angles Theta around
// the z axis and Phi around the y axis.
type Spherical struct {
	Theta    gm.Rad
	Phi      gm.Rad
	Center   gm.Vec3
	Distance float32
}

// NewSpherical returns a camera at distance 5 of the origin.
func NewSpherical() *Spherical {
	return &Spherical{Distance: 5}
}

func (c *Spherical) Orientation() gm.Rotation {
	rPhi := gm.RotationFromAxisAngle(gm.V3(0, 1, 0), c.Phi)
	rTheta := gm.RotationFromAxisAngle(gm.V3(0, 0, 1), c.Theta)
	return rTheta.Mul(rPhi)
}

func (c *Spherical) Position() gm.Vec3 {
	return c.Orientation().Apply(gm.V3(0, 0, c.Distance)).Add(c.Center)
}

// Rotate adds the given angles to the spherical coordinates.
func (c *Spherical) Rotate(dTheta, dPhi gm.Rad) {
	c.Theta += dTheta
	c.Phi += dPhi
}

// ScaleDistance scales the distance to the center by 1 + magnitude.
func (c *Spherical) ScaleDistance(magnitude float32) {
	c.Distance = max(c.Distance*(1+magnitude), MinDistance)
}

// TranslateInPlane moves the center within the image plane.
func (c *Spherical) TranslateInPlane(tr gm.Vec2) {
	c.Center = c.Center.Sub(TranslationInPlane(tr, c.Orientation()))
}
