package camera

import (
	"github.com/oliverbestmann/vcl/gm"
)

// MinDistance is the smallest distance to the center of rotation.
const MinDistance = 0.01

// AroundCenter orbits around a center of rotation at a given distance.
type AroundCenter struct {
	Rotation gm.Rotation
	Center   gm.Vec3
	Distance float32
}

// NewAroundCenter returns a camera at distance 5 of the origin, looking along -z.
func NewAroundCenter() *AroundCenter {
	return &AroundCenter{Distance: 5}
}

func (c *AroundCenter) Orientation() gm.Rotation {
	return c.Rotation
}

func (c *AroundCenter) Position() gm.Vec3 {
	return c.Rotation.Apply(gm.V3(0, 0, c.Distance)).Add(c.Center)
}

// Trackball rotates the camera around its center following a cursor moving from p0 to p1.
func (c *AroundCenter) Trackball(p0, p1 gm.Vec2) {
	r := TrackballRotation(p0, p1, TrackballRadius)
	c.Rotation = c.Rotation.Mul(r.Inverse())
}

// RollPitchYaw rotates the camera in its own frame.
func (c *AroundCenter) RollPitchYaw(roll, pitch, yaw gm.Rad) {
	c.Rotation = c.Rotation.Mul(rollPitchYaw(roll, pitch, yaw))
}

// ScaleDistance scales the distance to the center by 1 + magnitude.
func (c *AroundCenter) ScaleDistance(magnitude float32) {
	c.Distance = max(c.Distance*(1+magnitude), MinDistance)
}

// TranslateInPlane moves the center of rotation within the image plane.
func (c *AroundCenter) TranslateInPlane(tr gm.Vec2) {
	c.Center = c.Center.Sub(TranslationInPlane(tr, c.Rotation))
}

// LookAt places the camera at eye, looking at center which becomes the new center of rotation.
func (c *AroundCenter) LookAt(eye, center, up gm.Vec3) {
	frame := LookAtFrame(eye, center, up)

	c.Rotation = frame.Rotation
	c.Center = center
	c.Distance = eye.DistanceTo(center)
}
