package camera

import (
	"github.com/chewxy/math32"
	"github.com/oliverbestmann/vcl/gm"
)

// TrackballRadius is the default radius of the virtual trackball.
const TrackballRadius = 1

// TrackballProjection projects a point in normalized screen coordinates onto
// a virtual trackball. Close to the center the point lies on a sphere, further
// outside it lies on a hyperbolic sheet.
func TrackballProjection(x, y, radius float32) gm.Vec3 {
	d := math32.Sqrt(x*x + y*y)

	var z float32
	if d < radius/math32.Sqrt(2) {
		z = math32.Sqrt(radius*radius-d*d) / radius
	} else {
		z = radius * radius / (2 * d)
	}

	return gm.V3(x, y, z)
}

// TrackballRotation returns the rotation of the virtual trackball when the
// cursor moves from p0 to p1. Tiny movements return the identity.
func TrackballRotation(p0, p1 gm.Vec2, radius float32) gm.Rotation {
	if p1.Sub(p0).Norm() <= 1e-4 {
		return gm.IdentityRotation()
	}

	s0 := TrackballProjection(p0.X(), p0.Y(), radius)
	s1 := TrackballProjection(p1.X(), p1.Y(), radius)

	return gm.RotationBetween(s0.Normalized(), s1.Normalized())
}
