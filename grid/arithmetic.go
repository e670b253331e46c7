package grid

import (
	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
)

func requireSameDimension2[S gm.Scalar](op string, a, b Grid2D[S]) {
	if a.n1 != b.n1 || a.n2 != b.n2 {
		check.Fail(&check.Error{
			Kind:    check.SizeMismatch,
			Op:      op,
			Type:    a.TypeName(),
			Size:    []int{a.n1, a.n2, b.n1, b.n2},
			Message: "grid dimensions do not agree",
		})
	}
}

func requireSameDimension3[S gm.Scalar](op string, a, b Grid3D[S]) {
	if a.n1 != b.n1 || a.n2 != b.n2 || a.n3 != b.n3 {
		check.Fail(&check.Error{
			Kind:    check.SizeMismatch,
			Op:      op,
			Type:    a.TypeName(),
			Size:    []int{a.n1, a.n2, a.n3, b.n1, b.n2, b.n3},
			Message: "grid dimensions do not agree",
		})
	}
}

func with2[S gm.Scalar](g Grid2D[S], data buffer.Buffer[S]) Grid2D[S] {
	return Grid2D[S]{data: data, n1: g.n1, n2: g.n2}
}

func with3[S gm.Scalar](g Grid3D[S], data buffer.Buffer[S]) Grid3D[S] {
	return Grid3D[S]{data: data, n1: g.n1, n2: g.n2, n3: g.n3}
}

// Add2D returns the element wise sum of two grids of the same dimension.
func Add2D[S gm.Scalar](a, b Grid2D[S]) Grid2D[S] {
	requireSameDimension2("Add", a, b)
	return with2(a, buffer.Add(a.data, b.data))
}

// Sub2D returns the element wise difference of two grids of the same dimension.
func Sub2D[S gm.Scalar](a, b Grid2D[S]) Grid2D[S] {
	requireSameDimension2("Sub", a, b)
	return with2(a, buffer.Sub(a.data, b.data))
}

// MulEach2D returns the element wise product of two grids of the same dimension.
func MulEach2D[S gm.Scalar](a, b Grid2D[S]) Grid2D[S] {
	requireSameDimension2("MulEach", a, b)
	return with2(a, buffer.MulEach(a.data, b.data))
}

// DivEach2D returns the element wise quotient of two grids of the same dimension.
func DivEach2D[S gm.Scalar](a, b Grid2D[S]) Grid2D[S] {
	requireSameDimension2("DivEach", a, b)
	return with2(a, buffer.DivEach(a.data, b.data))
}

// Div2D divides each element by value.
func Div2D[S gm.Scalar](g Grid2D[S], value S) Grid2D[S] {
	return with2(g, buffer.Div(g.data, value))
}

func AddInPlace2D[S gm.Scalar](dst *Grid2D[S], other Grid2D[S]) {
	requireSameDimension2("AddInPlace", *dst, other)
	buffer.AddInPlace(&dst.data, other.data)
}

func SubInPlace2D[S gm.Scalar](dst *Grid2D[S], other Grid2D[S]) {
	requireSameDimension2("SubInPlace", *dst, other)
	buffer.SubInPlace(&dst.data, other.data)
}

func MulEachInPlace2D[S gm.Scalar](dst *Grid2D[S], other Grid2D[S]) {
	requireSameDimension2("MulEachInPlace", *dst, other)
	buffer.MulEachInPlace(&dst.data, other.data)
}

func DivEachInPlace2D[S gm.Scalar](dst *Grid2D[S], other Grid2D[S]) {
	requireSameDimension2("DivEachInPlace", *dst, other)
	buffer.DivEachInPlace(&dst.data, other.data)
}

// Scale2D multiplies each element with value.
func Scale2D[S gm.Scalar](g Grid2D[S], value S) Grid2D[S] {
	return with2(g, buffer.Mul(g.data, value))
}

// Equal2D reports whether both grids have the same dimension and equal elements.
func Equal2D[S gm.Scalar](a, b Grid2D[S]) bool {
	return a.n1 == b.n1 && a.n2 == b.n2 && buffer.Equal(a.data, b.data)
}

// Add3D returns the element wise sum of two grids of the same dimension.
func Add3D[S gm.Scalar](a, b Grid3D[S]) Grid3D[S] {
	requireSameDimension3("Add", a, b)
	return with3(a, buffer.Add(a.data, b.data))
}

// Sub3D returns the element wise difference of two grids of the same dimension.
func Sub3D[S gm.Scalar](a, b Grid3D[S]) Grid3D[S] {
	requireSameDimension3("Sub", a, b)
	return with3(a, buffer.Sub(a.data, b.data))
}

// MulEach3D returns the element wise product of two grids of the same dimension.
func MulEach3D[S gm.Scalar](a, b Grid3D[S]) Grid3D[S] {
	requireSameDimension3("MulEach", a, b)
	return with3(a, buffer.MulEach(a.data, b.data))
}

// DivEach3D returns the element wise quotient of two grids of the same dimension.
func DivEach3D[S gm.Scalar](a, b Grid3D[S]) Grid3D[S] {
	requireSameDimension3("DivEach", a, b)
	return with3(a, buffer.DivEach(a.data, b.data))
}

// Div3D divides each element by value.
func Div3D[S gm.Scalar](g Grid3D[S], value S) Grid3D[S] {
	return with3(g, buffer.Div(g.data, value))
}

func AddInPlace3D[S gm.Scalar](dst *Grid3D[S], other Grid3D[S]) {
	requireSameDimension3("AddInPlace", *dst, other)
	buffer.AddInPlace(&dst.data, other.data)
}

func SubInPlace3D[S gm.Scalar](dst *Grid3D[S], other Grid3D[S]) {
	requireSameDimension3("SubInPlace", *dst, other)
	buffer.SubInPlace(&dst.data, other.data)
}

func MulEachInPlace3D[S gm.Scalar](dst *Grid3D[S], other Grid3D[S]) {
	requireSameDimension3("MulEachInPlace", *dst, other)
	buffer.MulEachInPlace(&dst.data, other.data)
}

func DivEachInPlace3D[S gm.Scalar](dst *Grid3D[S], other Grid3D[S]) {
	requireSameDimension3("DivEachInPlace", *dst, other)
	buffer.DivEachInPlace(&dst.data, other.data)
}

// Scale3D multiplies each element with value.
func Scale3D[S gm.Scalar](g Grid3D[S], value S) Grid3D[S] {
	return with3(g, buffer.Mul(g.data, value))
}

// Equal3D reports whether both grids have the same dimension and equal elements.
func Equal3D[S gm.Scalar](a, b Grid3D[S]) bool {
	return a.n1 == b.n1 && a.n2 == b.n2 && a.n3 == b.n3 && buffer.Equal(a.data, b.data)
}
