package buffer

import (
	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
)

func requireSameSize[S gm.Scalar](op string, a, b Buffer[S]) {
	if len(a.data) != len(b.data) {
		check.SameSize(a.TypeName(), op, len(a.data), len(b.data))
	}
}

func zip[S gm.Scalar](op string, a, b Buffer[S], fn func(S, S) S) Buffer[S] {
	requireSameSize(op, a, b)

	result := make([]S, len(a.data))
	for idx := range a.data {
		result[idx] = fn(a.data[idx], b.data[idx])
	}

	return Buffer[S]{data: result}
}

func zipInPlace[S gm.Scalar](op string, dst *Buffer[S], other Buffer[S], fn func(S, S) S) {
	requireSameSize(op, *dst, other)

	for idx := range dst.data {
		dst.data[idx] = fn(dst.data[idx], other.data[idx])
	}
}

func add[S gm.Scalar](a, b S) S { return a + b }
func sub[S gm.Scalar](a, b S) S { return a - b }
func mul[S gm.Scalar](a, b S) S { return a * b }

// Add returns the element wise sum of a and b.
func Add[S gm.Scalar](a, b Buffer[S]) Buffer[S] {
	return zip("Add", a, b, add[S])
}

// Sub returns the element wise difference of a and b.
func Sub[S gm.Scalar](a, b Buffer[S]) Buffer[S] {
	return zip("Sub", a, b, sub[S])
}

// MulEach returns the element wise product of a and b.
func MulEach[S gm.Scalar](a, b Buffer[S]) Buffer[S] {
	return zip("MulEach", a, b, mul[S])
}

// DivEach returns the element wise quotient of a and b.
func DivEach[S gm.Scalar](a, b Buffer[S]) Buffer[S] {
	requireNoZero("DivEach", b)
	return zip("DivEach", a, b, func(x, y S) S { return x / y })
}

func AddInPlace[S gm.Scalar](dst *Buffer[S], other Buffer[S]) {
	zipInPlace("AddInPlace", dst, other, add[S])
}

func SubInPlace[S gm.Scalar](dst *Buffer[S], other Buffer[S]) {
	zipInPlace("SubInPlace", dst, other, sub[S])
}

func MulEachInPlace[S gm.Scalar](dst *Buffer[S], other Buffer[S]) {
	zipInPlace("MulEachInPlace", dst, other, mul[S])
}

func DivEachInPlace[S gm.Scalar](dst *Buffer[S], other Buffer[S]) {
	requireSameSize("DivEachInPlace", *dst, other)
	requireNoZero("DivEachInPlace", other)
	zipInPlace("DivEachInPlace", dst, other, func(x, y S) S { return x / y })
}

func requireNoZero[S gm.Scalar](op string, b Buffer[S]) {
	for idx, value := range b.data {
		if value == 0 {
			check.Preconditionf(b.TypeName(), op, "division by zero at index %d", idx)
		}
	}
}

// AddScalar adds value to each element.
func AddScalar[S gm.Scalar](b Buffer[S], value S) Buffer[S] {
	return Map(b, func(x S) S { return x + value })
}

// SubScalar subtracts value from each element.
func SubScalar[S gm.Scalar](b Buffer[S], value S) Buffer[S] {
	return Map(b, func(x S) S { return x - value })
}

// ScalarSub computes value - x for each element x.
func ScalarSub[S gm.Scalar](value S, b Buffer[S]) Buffer[S] {
	return Map(b, func(x S) S { return value - x })
}

// Mul multiplies each element with value.
func Mul[S gm.Scalar](b Buffer[S], value S) Buffer[S] {
	return Map(b, func(x S) S { return x * value })
}

// Div divides each element by value.
func Div[S gm.Scalar](b Buffer[S], value S) Buffer[S] {
	if value == 0 {
		check.Preconditionf(b.TypeName(), "Div", "division by zero")
	}

	return Map(b, func(x S) S { return x / value })
}

// Neg negates each element.
func Neg[S gm.Scalar](b Buffer[S]) Buffer[S] {
	return Map(b, func(x S) S { return -x })
}

// MulInPlace multiplies each element of dst with value.
func MulInPlace[S gm.Scalar](dst *Buffer[S], value S) {
	for idx := range dst.data {
		dst.data[idx] *= value
	}
}

// DivInPlace divides each element of dst by value.
func DivInPlace[S gm.Scalar](dst *Buffer[S], value S) {
	if value == 0 {
		check.Preconditionf(dst.TypeName(), "DivInPlace", "division by zero")
	}

	for idx := range dst.data {
		dst.data[idx] /= value
	}
}

// AddScalarInPlace adds value to each element of dst.
func AddScalarInPlace[S gm.Scalar](dst *Buffer[S], value S) {
	for idx := range dst.data {
		dst.data[idx] += value
	}
}

// SubScalarInPlace subtracts value from each element of dst.
func SubScalarInPlace[S gm.Scalar](dst *Buffer[S], value S) {
	for idx := range dst.data {
		dst.data[idx] -= value
	}
}

// Equal compares two buffers element wise using gm.ScalarEqual.
// Buffers of a different length are never equal.
func Equal[S gm.Scalar](a, b Buffer[S]) bool {
	return EqualFunc(a, b, gm.ScalarEqual[S])
}

// Linspace returns count values evenly spaced from a to b, both included.
func Linspace[S gm.Float](a, b S, count int) Buffer[S] {
	switch {
	case count < 0:
		check.Preconditionf(gm.TypeNameOf[Buffer[S]](), "Linspace", "negative count %d", count)
	case count == 1:
		return Of(a)
	}

	result := WithSize[S](count)
	for idx := range count {
		t := S(idx) / S(count-1)
		result.data[idx] = (1-t)*a + t*b
	}

	return result
}

// Min returns the smallest element. It panics on an empty buffer.
func Min[S gm.Scalar](b Buffer[S]) S {
	b.checkIndex("Min", 0)
	return minOf(b.data)
}

// Max returns the largest element. It panics on an empty buffer.
func Max[S gm.Scalar](b Buffer[S]) S {
	b.checkIndex("Max", 0)
	return maxOf(b.data)
}

// Average returns the arithmetic mean of the elements. It panics on an empty buffer.
func Average[S gm.Scalar](b Buffer[S]) S {
	b.checkIndex("Average", 0)

	var sum S
	for _, value := range b.data {
		sum += value
	}

	return sum / S(len(b.data))
}

// Sum returns the sum of all elements.
func Sum[S gm.Scalar](b Buffer[S]) S {
	var sum S
	for _, value := range b.data {
		sum += value
	}

	return sum
}

func minOf[S gm.Scalar](values []S) S {
	result := values[0]
	for _, value := range values[1:] {
		result = min(result, value)
	}

	return result
}

func maxOf[S gm.Scalar](values []S) S {
	result := values[0]
	for _, value := range values[1:] {
		result = max(result, value)
	}

	return result
}
