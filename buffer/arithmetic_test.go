package buffer

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
)

func randomBuffer(size int) Buffer[float32] {
	b := WithSize[float32](size)
	for idx := range size {
		b.Set(idx, rand.Float32()*20-10)
	}

	return b
}

func TestArithmetic(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(4, -5, 6)

	require.Equal(t, Of(5, -3, 9), Add(a, b))
	require.Equal(t, Of(-3, 7, -3), Sub(a, b))
	require.Equal(t, Of(4, -10, 18), MulEach(a, b))
	require.Equal(t, Of(4, -2, 2), DivEach(b, Of(1, 2, 3)))
	require.Equal(t, Of(2, 3, 4), AddScalar(a, 1))
	require.Equal(t, Of(0, 1, 2), SubScalar(a, 1))
	require.Equal(t, Of(9, 8, 7), ScalarSub(10, a))
	require.Equal(t, Of(2, 4, 6), Mul(a, 2))
	require.Equal(t, Of(2, -2, 3), Div(b, 2))
	require.Equal(t, Of(-1, -2, -3), Neg(a))

	// the operands are not modified
	require.Equal(t, Of(1, 2, 3), a)
}

func TestArithmetic_InPlace(t *testing.T) {
	a := Of(1, 2, 3)

	AddInPlace(&a, Of(1, 1, 1))
	require.Equal(t, Of(2, 3, 4), a)

	SubInPlace(&a, Of(2, 2, 2))
	require.Equal(t, Of(0, 1, 2), a)

	MulEachInPlace(&a, Of(5, 5, 2))
	require.Equal(t, Of(0, 5, 4), a)

	MulInPlace(&a, 2)
	require.Equal(t, Of(0, 10, 8), a)

	AddScalarInPlace(&a, 2)
	require.Equal(t, Of(2, 12, 10), a)

	SubScalarInPlace(&a, 4)
	require.Equal(t, Of(-2, 8, 6), a)

	DivEachInPlace(&a, Of(2, 4, 3))
	require.Equal(t, Of(-1, 2, 2), a)

	DivInPlace(&a, -1)
	require.Equal(t, Of(1, -2, -2), a)
}

func TestArithmetic_SizeMismatch(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2)

	err := requireViolation(t, check.SizeMismatch, func() { Add(a, b) })
	require.Equal(t, []int{3, 2}, err.Size)
	require.Equal(t, "Add", err.Op)

	requireViolation(t, check.SizeMismatch, func() { Sub(a, b) })
	requireViolation(t, check.SizeMismatch, func() { MulEach(a, b) })
	requireViolation(t, check.SizeMismatch, func() { AddInPlace(&a, b) })
	requireViolation(t, check.SizeMismatch, func() { SubInPlace(&a, b) })
	requireViolation(t, check.SizeMismatch, func() { MulEachInPlace(&a, b) })
	requireViolation(t, check.SizeMismatch, func() { DivEachInPlace(&a, b) })

	// a failed operation leaves the destination untouched
	require.Equal(t, Of(1, 2, 3), a)
}

func TestArithmetic_DivisionByZero(t *testing.T) {
	requireViolation(t, check.Precondition, func() { Div(Of(1, 2), 0) })
	requireViolation(t, check.Precondition, func() { DivEach(Of(1, 2), Of(1, 0)) })

	a := Of(4, 6)
	err := requireViolation(t, check.Precondition, func() { DivEachInPlace(&a, Of(2, 0)) })
	require.Equal(t, "DivEachInPlace", err.Op)
	requireViolation(t, check.Precondition, func() { DivInPlace(&a, 0) })
	require.Equal(t, Of(4, 6), a)
}

func TestArithmetic_Properties(t *testing.T) {
	for range 100 {
		size := rand.IntN(20)
		a, b := randomBuffer(size), randomBuffer(size)

		require.True(t, Equal(Add(a, b), Add(b, a)))
		require.True(t, Equal(a, Sub(Add(a, b), b)))
		require.True(t, Equal(a, Neg(Neg(a))))
	}
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(Of(1, 2), Of(1, 2)))
	require.False(t, Equal(Of(1, 2), Of(1, 3)))
	require.False(t, Equal(Of(1, 2), Of(1, 2, 3)))
	require.True(t, Equal(New[int](), New[int]()))

	require.True(t, Equal(Of[float32](1, 2), Of[float32](1, 2+1e-6)))
	require.False(t, Equal(Of[float32](1, 2), Of[float32](1, 2.01)))

	require.True(t, EqualFunc(Of(gm.V2(1, 2)), Of(gm.V2(1, 2)), gm.Vec2.Equal))
}

func TestLinspace(t *testing.T) {
	require.Equal(t, Of(0.0, 0.25, 0.5, 0.75, 1.0), Linspace(0.0, 1.0, 5))
	require.Equal(t, Of[float32](2), Linspace[float32](2, 3, 1))
	require.Equal(t, 0, Linspace[float32](2, 3, 0).Len())

	b := Linspace[float32](-1, 3, 7)
	require.Equal(t, float32(-1), b.Front())
	require.Equal(t, float32(3), b.Back())
}

func TestStatistics(t *testing.T) {
	b := Of(4, -2, 7, 3)
	require.Equal(t, -2, Min(b))
	require.Equal(t, 7, Max(b))
	require.Equal(t, 3, Average(b))
	require.Equal(t, 12, Sum(b))

	require.InDelta(t, 2.5, Average(Of(1.0, 2.0, 3.0, 4.0)), 1e-9)

	var empty Buffer[float64]
	requireViolation(t, check.OutOfBounds, func() { Min(empty) })
	requireViolation(t, check.OutOfBounds, func() { Max(empty) })
	requireViolation(t, check.OutOfBounds, func() { Average(empty) })
}
