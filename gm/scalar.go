package gm

import (
	"fmt"
	"math"
)

// Scalar is the set of element types supported by vectors, matrices and buffers.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the subset of Scalar types with a fractional part.
type Float interface {
	~float32 | ~float64
}

// Tolerance is the absolute difference up to which two floating point
// values compare equal.
const Tolerance = 1e-5

// NormalizeThreshold is the smallest norm a vector may have to be normalized.
const NormalizeThreshold = 1e-5

// IsFloat reports whether S is a floating point type.
func IsFloat[S Scalar]() bool {
	var one S = 1
	return one/2 != 0
}

// ScalarEqual compares two values. Floating point values are compared
// with an absolute Tolerance, integers must be identical.
func ScalarEqual[S Scalar](a, b S) bool {
	if a == b {
		return true
	}

	if !IsFloat[S]() {
		return false
	}

	return math.Abs(float64(a)-float64(b)) <= Tolerance
}

// Abs returns the absolute value of v.
func Abs[S Scalar](v S) S {
	if v < 0 {
		return -v
	}

	return v
}

// Clamp limits the value to the range [lo, hi].
func Clamp[S Scalar](value, lo, hi S) S {
	return min(hi, max(lo, value))
}

type typeNamer interface {
	TypeName() string
}

// TypeNameOf returns a human readable name of the type T. Types that
// have a TypeName method provide their own name.
func TypeNameOf[T any]() string {
	var zero T
	if named, ok := any(zero).(typeNamer); ok {
		return named.TypeName()
	}

	return fmt.Sprintf("%T", zero)
}
