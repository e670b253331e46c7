package gm

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/oliverbestmann/vcl/check"
)

// Quat is a quaternion x*i + y*j + z*k + w.
type Quat struct {
	X, Y, Z, W float32
}

// QuatOf builds the quaternion (v, w) from a vector part and a scalar part.
func QuatOf(v Vec3, w float32) Quat {
	return Quat{X: v.X(), Y: v.Y(), Z: v.Z(), W: w}
}

// Mul returns the hamilton product q*other.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.X*other.W + q.W*other.X + q.Y*other.Z - q.Z*other.Y,
		Y: q.Y*other.W + q.W*other.Y + q.Z*other.X - q.X*other.Z,
		Z: q.Z*other.W + q.W*other.Z + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

func (q Quat) Add(other Quat) Quat {
	return Quat{X: q.X + other.X, Y: q.Y + other.Y, Z: q.Z + other.Z, W: q.W + other.W}
}

func (q Quat) Sub(other Quat) Quat {
	return Quat{X: q.X - other.X, Y: q.Y - other.Y, Z: q.Z - other.Z, W: q.W - other.W}
}

// Scale multiplies all four components by s.
func (q Quat) Scale(s float32) Quat {
	return Quat{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

func (q Quat) Norm() float32 {
	return math32.Sqrt(q.Dot(q))
}

// Conjugate negates the vector part.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the multiplicative inverse. It panics for the zero quaternion.
func (q Quat) Inverse() Quat {
	normSqr := q.Dot(q)
	if normSqr < NormalizeThreshold*NormalizeThreshold {
		check.Preconditionf("Quat", "Inverse", "can not invert %s", q)
	}

	return q.Conjugate().Scale(1 / normSqr)
}

// Normalized returns the quaternion scaled to unit norm. It panics if the
// norm is smaller than NormalizeThreshold.
func (q Quat) Normalized() Quat {
	norm := q.Norm()
	if norm < NormalizeThreshold {
		check.Preconditionf("Quat", "Normalized", "can not normalize %s with norm %g", q, norm)
	}

	return q.Scale(1 / norm)
}

// XYZ returns the vector part.
func (q Quat) XYZ() Vec3 {
	return V3(q.X, q.Y, q.Z)
}

func (q Quat) Vec4() Vec4 {
	return V4(q.X, q.Y, q.Z, q.W)
}

func (q Quat) Equal(other Quat) bool {
	return q.Vec4().Equal(other.Vec4())
}

func (q Quat) TypeName() string {
	return "Quat"
}

func (q Quat) String() string {
	return fmt.Sprintf("quat(x=%v, y=%v, z=%v, w=%v)", q.X, q.Y, q.Z, q.W)
}
