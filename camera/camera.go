// Package camera implements the camera models used to look at a scene: a
// camera orbiting around a center, a camera in spherical coordinates and a
// first person camera. All models expose their pose as a frame whose inverse
// is the view matrix.
package camera

import (
	"github.com/oliverbestmann/vcl/gm"
)

// Camera is implemented by all camera models. The camera looks along the
// negative z axis of its orientation, with y pointing up.
type Camera interface {
	Orientation() gm.Rotation
	Position() gm.Vec3
}

// Frame returns the pose of the camera in world space.
func Frame(c Camera) gm.AffineRT {
	return gm.AffineRT{
		Rotation:    c.Orientation(),
		Translation: c.Position(),
	}
}

// View returns the view matrix transforming world coordinates into camera coordinates.
func View(c Camera) gm.Mat4 {
	return Frame(c).Inverse().Matrix()
}

// FrameMatrix returns the matrix of the camera pose, the inverse of View.
func FrameMatrix(c Camera) gm.Mat4 {
	return Frame(c).Matrix()
}

// Front returns the viewing direction.
func Front(c Camera) gm.Vec3 {
	return c.Orientation().MatrixColZ().Neg()
}

// Up returns the up direction.
func Up(c Camera) gm.Vec3 {
	return c.Orientation().MatrixColY()
}

// Right returns the direction to the right of the camera.
func Right(c Camera) gm.Vec3 {
	return c.Orientation().MatrixColX()
}

// LookAtFrame returns the pose of a camera placed at eye looking at center.
// up must not be parallel to the viewing direction.
func LookAtFrame(eye, center, up gm.Vec3) gm.AffineRT {
	uz := eye.Sub(center).Normalized()
	ux := gm.Cross(up, uz).Normalized()
	uy := gm.Cross(uz, ux)

	r := gm.RotationBetweenPairs(gm.V3(1, 0, 0), gm.V3(0, 1, 0), ux, uy)

	return gm.AffineRT{Rotation: r, Translation: eye}
}

// RayDirection returns the unit direction in world space of the ray through
// the given point in normalized screen coordinates, both axes in [-1, 1].
func RayDirection(frame gm.AffineRT, perspectiveInverse gm.Mat4, screen gm.Vec2) gm.Vec3 {
	eye := perspectiveInverse.MulVec(gm.V4(screen.X(), screen.Y(), -1, 1))
	return frame.ApplyDir(gm.V3(eye.X(), eye.Y(), -1)).Normalized()
}

// TranslationInPlane maps a translation in the image plane of a camera with
// the given orientation to world space.
func TranslationInPlane(translation gm.Vec2, orientation gm.Rotation) gm.Vec3 {
	return orientation.Apply(gm.V3(translation.X(), translation.Y(), 0))
}

// rollPitchYaw returns the rotation applying roll around the viewing
// direction, pitch around x and yaw around y, in this order.
func rollPitchYaw(roll, pitch, yaw gm.Rad) gm.Rotation {
	rRoll := gm.RotationFromAxisAngle(gm.V3(0, 0, -1), roll)
	rPitch := gm.RotationFromAxisAngle(gm.V3(1, 0, 0), pitch)
	rYaw := gm.RotationFromAxisAngle(gm.V3(0, 1, 0), yaw)

	return rYaw.Mul(rPitch).Mul(rRoll)
}
