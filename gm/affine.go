package gm

import (
	"fmt"

	"github.com/oliverbestmann/vcl/check"
)

// AffineRT is a rigid transformation: a Rotation followed by a Translation.
// The zero value is the identity transformation.
type AffineRT struct {
	Rotation    Rotation
	Translation Vec3
}

// IdentityRT returns the identity transformation.
func IdentityRT() AffineRT {
	return AffineRT{Rotation: IdentityRotation()}
}

// RotationAroundCenter returns the transformation that rotates points by r
// around the given center instead of the origin.
func RotationAroundCenter(r Rotation, center Vec3) AffineRT {
	return AffineRT{
		Rotation:    r,
		Translation: center.Sub(r.Apply(center)),
	}
}

// FrameFromAxes returns the frame located at position whose local x and y axes
// point along the orthonormal vectors ux and uy.
func FrameFromAxes(ux, uy, position Vec3) AffineRT {
	return AffineRT{
		Rotation:    RotationBetweenPairs(V3(1, 0, 0), V3(0, 1, 0), ux, uy),
		Translation: position,
	}
}

// Apply transforms the point p.
func (a AffineRT) Apply(p Vec3) Vec3 {
	return a.Rotation.Apply(p).Add(a.Translation)
}

// ApplyDir transforms a direction. Directions are only rotated.
func (a AffineRT) ApplyDir(v Vec3) Vec3 {
	return a.Rotation.Apply(v)
}

// ApplyVec4 transforms the homogeneous point p. The translation is weighted by p.W.
func (a AffineRT) ApplyVec4(p Vec4) Vec4 {
	xyz := a.Rotation.Apply(p.XYZ()).Add(a.Translation.Mul(p.W()))
	return V4(xyz.X(), xyz.Y(), xyz.Z(), p.W())
}

// Mul combines two transformations. The result applies other first, then a.
func (a AffineRT) Mul(other AffineRT) AffineRT {
	return AffineRT{
		Rotation:    a.Rotation.Mul(other.Rotation),
		Translation: a.Rotation.Apply(other.Translation).Add(a.Translation),
	}
}

// MulRotation returns a with the rotation r applied before a.
func (a AffineRT) MulRotation(r Rotation) AffineRT {
	return AffineRT{
		Rotation:    a.Rotation.Mul(r),
		Translation: a.Translation,
	}
}

// MulRT returns the transformation that applies a first, then r.
func (r Rotation) MulRT(a AffineRT) AffineRT {
	return AffineRT{
		Rotation:    r.Mul(a.Rotation),
		Translation: r.Apply(a.Translation),
	}
}

// Translate moves the transformation by offset in world space.
func (a AffineRT) Translate(offset Vec3) AffineRT {
	a.Translation = a.Translation.Add(offset)
	return a
}

// Inverse returns the transformation that reverts a.
func (a AffineRT) Inverse() AffineRT {
	inverse := a.Rotation.Inverse()
	return AffineRT{
		Rotation:    inverse,
		Translation: inverse.Apply(a.Translation).Neg(),
	}
}

// Matrix returns the homogeneous 4x4 matrix of the transformation.
func (a AffineRT) Matrix() Mat4 {
	return Mat4Affine(a.Rotation.Matrix(), a.Translation)
}

// Ux returns the local x axis of the frame in world space.
func (a AffineRT) Ux() Vec3 { return a.Rotation.MatrixColX() }

// Uy returns the local y axis of the frame in world space.
func (a AffineRT) Uy() Vec3 { return a.Rotation.MatrixColY() }

// Uz returns the local z axis of the frame in world space.
func (a AffineRT) Uz() Vec3 { return a.Rotation.MatrixColZ() }

func (a AffineRT) Equal(other AffineRT) bool {
	return a.Rotation.Equal(other.Rotation) && a.Translation.Equal(other.Translation)
}

func (a AffineRT) String() string {
	return fmt.Sprintf("rt(rotation=%s, translation=%s)", a.Rotation, a.Translation)
}

// AffineRTS is a similarity transformation: a uniform Scale, a Rotation
// and a Translation, applied in this order.
//
// Use IdentityRTS to build a new identity transformation, the zero value
// has a scale of zero.
type AffineRTS struct {
	Rotation    Rotation
	Translation Vec3
	Scale       float32
}

// IdentityRTS returns the identity transformation.
func IdentityRTS() AffineRTS {
	return AffineRTS{Rotation: IdentityRotation(), Scale: 1}
}

// RTSFromRT extends a rigid transformation with a scale of one.
func RTSFromRT(a AffineRT) AffineRTS {
	return AffineRTS{Rotation: a.Rotation, Translation: a.Translation, Scale: 1}
}

// Apply transforms the point p.
func (a AffineRTS) Apply(p Vec3) Vec3 {
	return a.Rotation.Apply(p).Mul(a.Scale).Add(a.Translation)
}

// ApplyDir scales and rotates a direction.
func (a AffineRTS) ApplyDir(v Vec3) Vec3 {
	return a.Rotation.Apply(v).Mul(a.Scale)
}

// ApplyVec4 transforms the homogeneous point p. The translation is weighted by p.W.
func (a AffineRTS) ApplyVec4(p Vec4) Vec4 {
	xyz := a.ApplyDir(p.XYZ()).Add(a.Translation.Mul(p.W()))
	return V4(xyz.X(), xyz.Y(), xyz.Z(), p.W())
}

// Mul combines two transformations. The result applies other first, then a.
func (a AffineRTS) Mul(other AffineRTS) AffineRTS {
	return AffineRTS{
		Rotation:    a.Rotation.Mul(other.Rotation),
		Translation: a.Rotation.Apply(other.Translation).Mul(a.Scale).Add(a.Translation),
		Scale:       a.Scale * other.Scale,
	}
}

func (a AffineRTS) MulRotation(r Rotation) AffineRTS {
	a.Rotation = a.Rotation.Mul(r)
	return a
}

// MulRTS returns the transformation that applies a first, then r.
func (r Rotation) MulRTS(a AffineRTS) AffineRTS {
	return AffineRTS{
		Rotation:    r.Mul(a.Rotation),
		Translation: r.Apply(a.Translation),
		Scale:       a.Scale,
	}
}

func (a AffineRTS) Translate(offset Vec3) AffineRTS {
	a.Translation = a.Translation.Add(offset)
	return a
}

// Scaled returns the transformation followed by a uniform scaling by s.
func (a AffineRTS) Scaled(s float32) AffineRTS {
	return AffineRTS{
		Rotation:    a.Rotation,
		Translation: a.Translation.Mul(s),
		Scale:       a.Scale * s,
	}
}

// DivScale returns the transformation followed by a uniform scaling by 1/s.
func (a AffineRTS) DivScale(s float32) AffineRTS {
	if s == 0 {
		check.Preconditionf("AffineRTS", "DivScale", "division by zero")
	}

	return a.Scaled(1 / s)
}

// Inverse returns the transformation that reverts a. It panics if the scale is zero.
func (a AffineRTS) Inverse() AffineRTS {
	if a.Scale == 0 {
		check.Preconditionf("AffineRTS", "Inverse", "can not invert a transformation with scale zero")
	}

	inverse := a.Rotation.Inverse()
	return AffineRTS{
		Rotation:    inverse,
		Translation: inverse.Apply(a.Translation).Mul(-1 / a.Scale),
		Scale:       1 / a.Scale,
	}
}

// Matrix returns the homogeneous 4x4 matrix of the transformation.
func (a AffineRTS) Matrix() Mat4 {
	return Mat4Affine(a.Rotation.Matrix().Scale(a.Scale), a.Translation)
}

func (a AffineRTS) Equal(other AffineRTS) bool {
	return a.Rotation.Equal(other.Rotation) &&
		a.Translation.Equal(other.Translation) &&
		ScalarEqual(a.Scale, other.Scale)
}

func (a AffineRTS) String() string {
	return fmt.Sprintf("rts(rotation=%s, translation=%s, scale=%v)", a.Rotation, a.Translation, a.Scale)
}
