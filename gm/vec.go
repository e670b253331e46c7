package gm

import (
	"fmt"
	"iter"
	"math"
	"strings"
	"unsafe"

	"github.com/oliverbestmann/vcl/check"
)

// Vec is a vector of N values of type S. The values are stored inline,
// a Vec never allocates. Entries beyond N are always zero, so two vectors
// can be compared using ==.
type Vec[S Scalar, N Size] struct {
	v [MaxSize]S
}

type Vec2 = Vec[float32, D2]
type Vec3 = Vec[float32, D3]
type Vec4 = Vec[float32, D4]

type Int2 = Vec[int32, D2]
type Int3 = Vec[int32, D3]
type Int4 = Vec[int32, D4]

type UInt3 = Vec[uint32, D3]

// VecOf creates a new vector from exactly N values.
func VecOf[S Scalar, N Size](values ...S) Vec[S, N] {
	var vec Vec[S, N]
	if len(values) != vec.Len() {
		check.SameSize(vec.TypeName(), "VecOf", len(values), vec.Len())
	}

	copy(vec.v[:], values)
	return vec
}

// VecSplat returns a vector with all entries set to value.
func VecSplat[S Scalar, N Size](value S) Vec[S, N] {
	var vec Vec[S, N]
	vec.Fill(value)
	return vec
}

func Vec2Of[S Scalar](x, y S) Vec[S, D2] {
	return Vec[S, D2]{v: [MaxSize]S{x, y}}
}

func Vec3Of[S Scalar](x, y, z S) Vec[S, D3] {
	return Vec[S, D3]{v: [MaxSize]S{x, y, z}}
}

func Vec4Of[S Scalar](x, y, z, w S) Vec[S, D4] {
	return Vec[S, D4]{v: [MaxSize]S{x, y, z, w}}
}

// V2 is a shortcut for Vec2Of with float32 values.
func V2(x, y float32) Vec2 {
	return Vec2Of(x, y)
}

// V3 is a shortcut for Vec3Of with float32 values.
func V3(x, y, z float32) Vec3 {
	return Vec3Of(x, y, z)
}

// V4 is a shortcut for Vec4Of with float32 values.
func V4(x, y, z, w float32) Vec4 {
	return Vec4Of(x, y, z, w)
}

// VecConvert converts each entry of the vector to the type T.
func VecConvert[T, S Scalar, N Size](vec Vec[S, N]) Vec[T, N] {
	var result Vec[T, N]
	for idx := range vec.Len() {
		result.v[idx] = T(vec.v[idx])
	}

	return result
}

// Len returns the number of entries.
func (v Vec[S, N]) Len() int {
	return sizeOf[N]()
}

func (v Vec[S, N]) TypeName() string {
	return fmt.Sprintf("Vec[%s,%d]", TypeNameOf[S](), v.Len())
}

func (v Vec[S, N]) checkIndex(op string, idx int) {
	if uint(idx) >= uint(v.Len()) {
		check.Index(v.TypeName(), op, idx, v.Len())
	}
}

// At returns the entry at idx. It panics if idx is out of range.
func (v Vec[S, N]) At(idx int) S {
	v.checkIndex("At", idx)
	return v.v[idx]
}

// Set sets the entry at idx. It panics if idx is out of range.
func (v *Vec[S, N]) Set(idx int, value S) {
	v.checkIndex("Set", idx)
	v.v[idx] = value
}

// Ptr returns a pointer to the entry at idx.
func (v *Vec[S, N]) Ptr(idx int) *S {
	v.checkIndex("Ptr", idx)
	return &v.v[idx]
}

// AtUnchecked returns the entry at idx without validating the index against N.
// idx must still be smaller than MaxSize.
func (v Vec[S, N]) AtUnchecked(idx int) S {
	return v.v[idx]
}

// SetUnchecked sets the entry at idx without validating the index against N.
// Writing beyond N breaks comparisons using ==.
func (v *Vec[S, N]) SetUnchecked(idx int, value S) {
	v.v[idx] = value
}

func (v Vec[S, N]) X() S { return v.At(0) }
func (v Vec[S, N]) Y() S { return v.At(1) }
func (v Vec[S, N]) Z() S { return v.At(2) }
func (v Vec[S, N]) W() S { return v.At(3) }

func (v *Vec[S, N]) SetX(value S) { v.Set(0, value) }
func (v *Vec[S, N]) SetY(value S) { v.Set(1, value) }
func (v *Vec[S, N]) SetZ(value S) { v.Set(2, value) }
func (v *Vec[S, N]) SetW(value S) { v.Set(3, value) }

// XY returns the first two entries.
func (v Vec[S, N]) XY() Vec[S, D2] {
	return Vec2Of(v.X(), v.Y())
}

// XYZ returns the first three entries.
func (v Vec[S, N]) XYZ() Vec[S, D3] {
	return Vec3Of(v.X(), v.Y(), v.Z())
}

// Fill sets all entries to value.
func (v *Vec[S, N]) Fill(value S) {
	for idx := range v.Len() {
		v.v[idx] = value
	}
}

// Data returns the entries as a slice backed by the vector itself.
func (v *Vec[S, N]) Data() []S {
	return v.v[:v.Len()]
}

// SizeInMemory returns the number of bytes occupied by the N entries.
func (v Vec[S, N]) SizeInMemory() int {
	return int(unsafe.Sizeof(v.v[0])) * v.Len()
}

// All iterates over the index and value of each entry.
func (v Vec[S, N]) All() iter.Seq2[int, S] {
	return func(yield func(int, S) bool) {
		for idx := range v.Len() {
			if !yield(idx, v.v[idx]) {
				return
			}
		}
	}
}

func (v Vec[S, N]) Add(other Vec[S, N]) Vec[S, N] {
	for idx := range v.Len() {
		v.v[idx] += other.v[idx]
	}

	return v
}

func (v Vec[S, N]) Sub(other Vec[S, N]) Vec[S, N] {
	for idx := range v.Len() {
		v.v[idx] -= other.v[idx]
	}

	return v
}

// MulEach multiplies the vectors component wise.
func (v Vec[S, N]) MulEach(other Vec[S, N]) Vec[S, N] {
	for idx := range v.Len() {
		v.v[idx] *= other.v[idx]
	}

	return v
}

// DivEach divides the vectors component wise.
func (v Vec[S, N]) DivEach(other Vec[S, N]) Vec[S, N] {
	for idx := range v.Len() {
		if other.v[idx] == 0 {
			check.Preconditionf(v.TypeName(), "DivEach", "division by zero in component %d", idx)
		}

		v.v[idx] /= other.v[idx]
	}

	return v
}

func (v Vec[S, N]) AddScalar(value S) Vec[S, N] {
	for idx := range v.Len() {
		v.v[idx] += value
	}

	return v
}

func (v Vec[S, N]) SubScalar(value S) Vec[S, N] {
	for idx := range v.Len() {
		v.v[idx] -= value
	}

	return v
}

// ScalarSub computes value - v for each component.
func (v Vec[S, N]) ScalarSub(value S) Vec[S, N] {
	for idx := range v.Len() {
		v.v[idx] = value - v.v[idx]
	}

	return v
}

func (v Vec[S, N]) Mul(value S) Vec[S, N] {
	for idx := range v.Len() {
		v.v[idx] *= value
	}

	return v
}

func (v Vec[S, N]) Div(value S) Vec[S, N] {
	if value == 0 {
		check.Preconditionf(v.TypeName(), "Div", "division by zero")
	}

	for idx := range v.Len() {
		v.v[idx] /= value
	}

	return v
}

func (v Vec[S, N]) Neg() Vec[S, N] {
	for idx := range v.Len() {
		v.v[idx] = -v.v[idx]
	}

	return v
}

func (v Vec[S, N]) Dot(other Vec[S, N]) S {
	var sum S
	for idx := range v.Len() {
		sum += v.v[idx] * other.v[idx]
	}

	return sum
}

func (v Vec[S, N]) NormSqr() S {
	return v.Dot(v)
}

// Norm returns the euclidean length of the vector.
func (v Vec[S, N]) Norm() S {
	return S(math.Sqrt(float64(v.NormSqr())))
}

// Normalized returns the vector scaled to unit length. It panics if the
// norm of the vector is smaller than NormalizeThreshold.
func (v Vec[S, N]) Normalized() Vec[S, N] {
	norm := v.Norm()
	if float64(norm) < NormalizeThreshold {
		check.Preconditionf(v.TypeName(), "Normalized", "can not normalize %s with norm %g", v, float64(norm))
	}

	return v.Div(norm)
}

// DistanceTo returns the euclidean distance between two points.
func (v Vec[S, N]) DistanceTo(other Vec[S, N]) S {
	return v.Sub(other).Norm()
}

// Clamp limits each component to the range [lo, hi].
func (v Vec[S, N]) Clamp(lo, hi S) Vec[S, N] {
	for idx := range v.Len() {
		v.v[idx] = Clamp(v.v[idx], lo, hi)
	}

	return v
}

// Abs returns the vector with the absolute value of each component.
func (v Vec[S, N]) Abs() Vec[S, N] {
	for idx := range v.Len() {
		v.v[idx] = Abs(v.v[idx])
	}

	return v
}

// MinComponent returns the smallest entry.
func (v Vec[S, N]) MinComponent() S {
	result := v.v[0]
	for idx := 1; idx < v.Len(); idx++ {
		result = min(result, v.v[idx])
	}

	return result
}

// MaxComponent returns the largest entry.
func (v Vec[S, N]) MaxComponent() S {
	result := v.v[0]
	for idx := 1; idx < v.Len(); idx++ {
		result = max(result, v.v[idx])
	}

	return result
}

// Lerp interpolates linearly between v and other.
func (v Vec[S, N]) Lerp(other Vec[S, N], alpha S) Vec[S, N] {
	return v.Add(other.Sub(v).Mul(alpha))
}

// Equal compares two vectors component wise using ScalarEqual.
func (v Vec[S, N]) Equal(other Vec[S, N]) bool {
	for idx := range v.Len() {
		if !ScalarEqual(v.v[idx], other.v[idx]) {
			return false
		}
	}

	return true
}

// IsZero returns true if all components are exactly zero.
func (v Vec[S, N]) IsZero() bool {
	return v == Vec[S, N]{}
}

var vecComponentNames = [MaxSize]string{"x", "y", "z", "w"}

func (v Vec[S, N]) String() string {
	var sb strings.Builder

	sb.WriteString("vec(")
	for idx := range v.Len() {
		if idx > 0 {
			sb.WriteString(", ")
		}

		_, _ = fmt.Fprintf(&sb, "%s=%v", vecComponentNames[idx], v.v[idx])
	}
	sb.WriteString(")")

	return sb.String()
}

// Cross returns the cross product of two 3d vectors.
func Cross[S Scalar](a, b Vec[S, D3]) Vec[S, D3] {
	return Vec3Of(
		a.v[1]*b.v[2]-a.v[2]*b.v[1],
		a.v[2]*b.v[0]-a.v[0]*b.v[2],
		a.v[0]*b.v[1]-a.v[1]*b.v[0],
	)
}

// OrthogonalVector returns a unit vector orthogonal to v. The result is
// the cross product of v with the coordinate axis least aligned with v.
func OrthogonalVector(v Vec3) Vec3 {
	abs := v.Abs()

	var axis Vec3
	switch {
	case abs.X() <= abs.Y() && abs.X() <= abs.Z():
		axis = V3(1, 0, 0)
	case abs.Y() <= abs.Z():
		axis = V3(0, 1, 0)
	default:
		axis = V3(0, 0, 1)
	}

	return Cross(v, axis).Normalized()
}

// Orthogonal2 returns v rotated by 90 degrees counter clockwise.
func Orthogonal2[S Scalar](v Vec[S, D2]) Vec[S, D2] {
	return Vec2Of(-v.v[1], v.v[0])
}

// Det2 returns the determinant of the 2x2 matrix with columns a and b.
func Det2[S Scalar](a, b Vec[S, D2]) S {
	return a.v[0]*b.v[1] - a.v[1]*b.v[0]
}
