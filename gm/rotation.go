package gm

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/oliverbestmann/vcl/check"
)

// UnitTolerance is the tolerance used to validate unit length and orthogonality
// of vectors passed to rotation constructors.
const UnitTolerance = 1e-4

// Rotation is a rotation in 3d space backed by a unit quaternion.
// The zero value is the identity rotation.
type Rotation struct {
	q Quat
}

var identityQuat = Quat{W: 1}

// IdentityRotation returns the rotation that does not rotate at all.
func IdentityRotation() Rotation {
	return Rotation{q: identityQuat}
}

// RotationFromQuat builds a rotation from a quaternion. The quaternion is normalized.
func RotationFromQuat(q Quat) Rotation {
	return Rotation{q: q.Normalized()}
}

// RotationFromAxisAngle returns a rotation of angle radians around axis.
// The axis does not need to be normalized but must not be zero.
func RotationFromAxisAngle(axis Vec3, angle Rad) Rotation {
	sin, cos := (angle / 2).SinCos()
	return Rotation{q: QuatOf(axis.Normalized().Mul(sin), cos)}
}

// RotationFromMatrix converts an orthonormal 3x3 matrix into a rotation.
func RotationFromMatrix(m Mat3) Rotation {
	xx, xy, xz := m.v[0], m.v[1], m.v[2]
	yx, yy, yz := m.v[3], m.v[4], m.v[5]
	zx, zy, zz := m.v[6], m.v[7], m.v[8]

	var q Quat

	trace := xx + yy + zz
	switch {
	case trace > 0:
		s := 0.5 / math32.Sqrt(trace+1)
		q = Quat{X: s * (zy - yz), Y: s * (xz - zx), Z: s * (yx - xy), W: 0.25 / s}

	case xx > yy && xx > zz:
		s := 2 * math32.Sqrt(1+xx-yy-zz)
		q = Quat{X: 0.25 * s, Y: (xy + yx) / s, Z: (xz + zx) / s, W: (zy - yz) / s}

	case yy > zz:
		s := 2 * math32.Sqrt(1+yy-xx-zz)
		q = Quat{X: (xy + yx) / s, Y: 0.25 * s, Z: (yz + zy) / s, W: (xz - zx) / s}

	default:
		s := 2 * math32.Sqrt(1+zz-xx-yy)
		q = Quat{X: (xz + zx) / s, Y: (yz + zy) / s, Z: 0.25 * s, W: (yx - xy) / s}
	}

	return Rotation{q: q.Normalized()}
}

// RotationBetween returns the shortest rotation that maps the unit vector e onto
// the unit vector target. For opposite vectors the rotation turns by π around
// OrthogonalVector(e).
func RotationBetween(e, target Vec3) Rotation {
	requireUnit("RotationBetween", e)
	requireUnit("RotationBetween", target)

	if e.Sub(target).Norm() < UnitTolerance {
		return IdentityRotation()
	}

	if e.Add(target).Norm() < UnitTolerance {
		return RotationFromAxisAngle(OrthogonalVector(e), math.Pi)
	}

	axis := Cross(e, target).Normalized()
	angle := math32.Acos(Clamp(e.Dot(target), -1, 1))
	return RotationFromAxisAngle(axis, Rad(angle))
}

// RotationBetweenPairs returns the rotation that maps the orthonormal pair (e1, e2)
// onto the orthonormal pair (t1, t2).
func RotationBetweenPairs(e1, e2, t1, t2 Vec3) Rotation {
	requireUnit("RotationBetweenPairs", e1)
	requireUnit("RotationBetweenPairs", e2)
	requireUnit("RotationBetweenPairs", t1)
	requireUnit("RotationBetweenPairs", t2)
	requireOrthogonal("RotationBetweenPairs", e1, e2)
	requireOrthogonal("RotationBetweenPairs", t1, t2)

	source := MatFromRows[float32, D3](e1, e2, Cross(e1, e2))
	target := MatFromRows[float32, D3](t1, t2, Cross(t1, t2))

	return RotationFromMatrix(target.Transpose().Mul(source))
}

func requireUnit(op string, v Vec3) {
	if Abs(v.Norm()-1) > UnitTolerance {
		check.Preconditionf("Rotation", op, "%s is not a unit vector", v)
	}
}

func requireOrthogonal(op string, a, b Vec3) {
	if Abs(a.Dot(b)) > UnitTolerance {
		check.Preconditionf("Rotation", op, "%s and %s are not orthogonal", a, b)
	}
}

// Quat returns the unit quaternion of the rotation.
func (r Rotation) Quat() Quat {
	if r.q == (Quat{}) {
		return identityQuat
	}

	return r.q
}

// Matrix returns the 3x3 rotation matrix.
func (r Rotation) Matrix() Mat3 {
	q := r.Quat()
	x, y, z, w := q.X, q.Y, q.Z, q.W

	return M3(
		1-2*(y*y+z*z), 2*(x*y-w*z), 2*(x*z+w*y),
		2*(x*y+w*z), 1-2*(x*x+z*z), 2*(y*z-w*x),
		2*(x*z-w*y), 2*(y*z+w*x), 1-2*(x*x+y*y),
	)
}

// Matrix4 returns the homogeneous 4x4 rotation matrix.
func (r Rotation) Matrix4() Mat4 {
	return Mat4Affine(r.Matrix(), Vec3{})
}

// AxisAngle returns a unit axis and the angle of the rotation around it.
// A rotation by (almost) zero reports the x axis and an angle of zero.
func (r Rotation) AxisAngle() (axis Vec3, angle Rad) {
	q := r.Quat()

	s := q.XYZ()
	c := s.Norm()
	if c < 1e-4 {
		return V3(1, 0, 0), 0
	}

	return s.Div(c), Rad(2 * math32.Atan2(c, q.W))
}

// Mul returns the rotation that applies other first and then r.
func (r Rotation) Mul(other Rotation) Rotation {
	return Rotation{q: r.Quat().Mul(other.Quat())}
}

// Apply rotates the vector v.
func (r Rotation) Apply(v Vec3) Vec3 {
	q := r.Quat()
	return q.Mul(QuatOf(v, 0)).Mul(q.Conjugate()).XYZ()
}

// ApplyVec4 rotates the xyz part of v and keeps w.
func (r Rotation) ApplyVec4(v Vec4) Vec4 {
	rotated := r.Apply(v.XYZ())
	return V4(rotated.X(), rotated.Y(), rotated.Z(), v.W())
}

// Inverse returns the rotation that reverts r.
func (r Rotation) Inverse() Rotation {
	return Rotation{q: r.Quat().Conjugate()}
}

// MulMat3 returns the product of the rotation matrix with m.
func (r Rotation) MulMat3(m Mat3) Mat3 {
	return r.Matrix().Mul(m)
}

// MulMat4 returns the product of the homogeneous rotation matrix with m.
func (r Rotation) MulMat4(m Mat4) Mat4 {
	return r.Matrix4().Mul(m)
}

// The rows and columns of the rotation matrix. The columns are the images of the coordinate axes.

func (r Rotation) MatrixRowX() Vec3 { return r.Matrix().Row(0) }
func (r Rotation) MatrixRowY() Vec3 { return r.Matrix().Row(1) }
func (r Rotation) MatrixRowZ() Vec3 { return r.Matrix().Row(2) }
func (r Rotation) MatrixColX() Vec3 { return r.Matrix().Col(0) }
func (r Rotation) MatrixColY() Vec3 { return r.Matrix().Col(1) }
func (r Rotation) MatrixColZ() Vec3 { return r.Matrix().Col(2) }

// Equal reports whether both rotations have the same effect. Note that q and -q
// describe the same rotation.
func (r Rotation) Equal(other Rotation) bool {
	a, b := r.Quat(), other.Quat()
	return a.Equal(b) || a.Equal(b.Scale(-1))
}

func (r Rotation) TypeName() string {
	return "Rotation"
}

func (r Rotation) String() string {
	axis, angle := r.AxisAngle()
	return fmt.Sprintf("rotation(axis=%s, angle=%v)", axis, angle)
}

// Lerp interpolates linearly between the quaternions of both rotations and
// normalizes the result. The shorter path is chosen.
func Lerp(r1, r2 Rotation, alpha float32) Rotation {
	q1, q2 := r1.Quat(), r2.Quat()
	if q1.Dot(q2) < 0 {
		q2 = q2.Scale(-1)
	}

	q := q1.Scale(1 - alpha).Add(q2.Scale(alpha))
	return Rotation{q: q.Normalized()}
}

// Slerp interpolates both rotations with constant angular velocity.
func Slerp(r1, r2 Rotation, alpha float32) Rotation {
	q1, q2 := r1.Quat(), r2.Quat()

	cos := q1.Dot(q2)
	if cos < 0 {
		q2 = q2.Scale(-1)
		cos = -cos
	}

	// almost parallel, the normalized lerp is accurate enough
	if cos > 0.9995 {
		return Lerp(r1, Rotation{q: q2}, alpha)
	}

	theta := math32.Acos(cos)
	sin := math32.Sin(theta)

	w1 := math32.Sin((1-alpha)*theta) / sin
	w2 := math32.Sin(alpha*theta) / sin

	return Rotation{q: q1.Scale(w1).Add(q2.Scale(w2)).Normalized()}
}
