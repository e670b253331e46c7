package camera

import (
	"github.com/oliverbestmann/vcl/gm"
)

// Head is a first person camera rotating around its own position.
type Head struct {
	Rotation gm.Rotation
	Location gm.Vec3
}

func (c *Head) Orientation() gm.Rotation {
	return c.Rotation
}

func (c *Head) Position() gm.Vec3 {
	return c.Location
}

// Trackball turns the head following a cursor moving from p0 to p1.
func (c *Head) Trackball(p0, p1 gm.Vec2) {
	c.Rotation = c.Rotation.Mul(TrackballRotation(p0, p1, TrackballRadius))
}

// RollPitchYaw turns the head in its own frame.
func (c *Head) RollPitchYaw(roll, pitch, yaw gm.Rad) {
	c.Rotation = c.Rotation.Mul(rollPitchYaw(roll, pitch, yaw))
}

// TranslateInPlane moves the head within its image plane.
func (c *Head) TranslateInPlane(tr gm.Vec2) {
	c.Location = c.Location.Sub(TranslationInPlane(tr, c.Rotation))
}

// MoveForward moves the head along its viewing direction.
func (c *Head) MoveForward(distance float32) {
	c.Location = c.Location.Add(Front(c).Mul(distance))
}
