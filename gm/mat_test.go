package gm

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/vcl/check"
)

func TestMatMul(t *testing.T) {
	a := MatOf[int, D2, D3](
		1, 2, 3,
		4, 5, 6,
	)

	b := MatOf[int, D3, D2](
		5, -1,
		4, 8,
		-2, 2,
	)

	expected := MatOf[int, D2, D2](
		7, 21,
		28, 48,
	)

	require.Equal(t, expected, MatMul(a, b))
}

func TestMat_MulEach(t *testing.T) {
	a := MatOf[int, D2, D3](1, 2, 3, 4, 5, 6)
	b := MatOf[int, D2, D3](5, 2, -1, 2, 1, -2)
	require.Equal(t, MatOf[int, D2, D3](5, 4, -3, 8, 5, -12), a.MulEach(b))
}

func TestMat_MulVec(t *testing.T) {
	a := MatOf[int, D2, D3](1, 2, 3, 4, 5, 6)
	require.Equal(t, Vec2Of(10, 28), a.MulVec(Vec3Of(4, 0, 2)))
}

func TestMat_Associativity(t *testing.T) {
	randomMat := func() Mat[int, D3, D3] {
		var m Mat[int, D3, D3]
		for idx := range m.Len() {
			m.v[idx] = rand.IntN(21) - 10
		}

		return m
	}

	for range 100 {
		a, b, c := randomMat(), randomMat(), randomMat()
		require.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
	}
}

func TestMat_Transpose(t *testing.T) {
	m := MatOf[int, D2, D3](1, 2, 3, 4, 5, 6)

	transposed := m.Transpose()
	require.Equal(t, MatOf[int, D3, D2](1, 4, 2, 5, 3, 6), transposed)
	require.Equal(t, m, transposed.Transpose())

	require.Equal(t, m.Row(1), transposed.Col(1))
}

func TestMat_Accessors(t *testing.T) {
	m := MatOf[int, D2, D3](1, 2, 3, 4, 5, 6)
	require.Equal(t, 6, m.At(1, 2))
	require.Equal(t, 4, m.AtOffset(3))
	require.Equal(t, Vec3Of(4, 5, 6), m.Row(1))
	require.Equal(t, Vec2Of(3, 6), m.Col(2))

	m.Set(0, 1, 9)
	require.Equal(t, 9, m.At(0, 1))
	require.Equal(t, []int{1, 9, 3, 4, 5, 6}, m.Data())
	require.Equal(t, 6*8, m.SizeInMemory())

	t.Run("out of bounds", func(t *testing.T) {
		err := requireViolation(t, check.OutOfBounds, func() { m.At(2, 3) })
		require.Equal(t, []check.Reason{check.IndexAtEnd, check.IndexAtEnd}, err.Axes)

		err = requireViolation(t, check.OutOfBounds, func() { m.At(1, -1) })
		require.Equal(t, []check.Reason{check.NoReason, check.NegativeIndex}, err.Axes)

		requireViolation(t, check.OutOfBounds, func() { m.Row(2) })
		requireViolation(t, check.OutOfBounds, func() { m.AtOffset(6) })
	})

	t.Run("wrong number of values", func(t *testing.T) {
		requireViolation(t, check.SizeMismatch, func() { M3(1, 2, 3) })
	})
}

func TestMatIdentity(t *testing.T) {
	require.Equal(t, MatOf[int, D3, D4](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	), MatIdentity[int, D3, D4]())

	require.Equal(t, MatOf[int, D4, D3](
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		0, 0, 0,
	), MatIdentity[int, D4, D3]())

	m := M3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, m, m.Mul(Identity3()))
}

func TestRemoveRowColumn(t *testing.T) {
	m := MatOf[int, D4, D4](
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)

	require.Equal(t, MatOf[int, D3, D3](
		1, 2, 4,
		9, 10, 12,
		13, 14, 16,
	), RemoveRowColumn[D3, D3](m, 1, 2))

	require.Equal(t, MatOf[int, D3, D3](
		6, 7, 8,
		10, 11, 12,
		14, 15, 16,
	), RemoveRowColumn[D3, D3](m, 0, 0))

	rect := MatOf[int, D3, D4](
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	)

	require.Equal(t, MatOf[int, D2, D3](
		1, 2, 3,
		5, 6, 7,
	), RemoveRowColumn[D2, D3](rect, 2, 3))

	t.Run("invalid index", func(t *testing.T) {
		requireViolation(t, check.OutOfBounds, func() { RemoveRowColumn[D3, D3](m, 4, 0) })
		requireViolation(t, check.OutOfBounds, func() { RemoveRowColumn[D3, D3](m, 0, -1) })
	})

	t.Run("invalid result size", func(t *testing.T) {
		requireViolation(t, check.Precondition, func() { RemoveRowColumn[D2, D2](m, 0, 0) })
		requireViolation(t, check.Precondition, func() { RemoveRowColumn[D3, D4](m, 0, 0) })
	})
}

func TestSetBlock(t *testing.T) {
	var m Mat[int, D4, D4]
	SetBlock(&m, MatOf[int, D2, D2](1, 2, 3, 4), 1, 2)

	require.Equal(t, MatOf[int, D4, D4](
		0, 0, 0, 0,
		0, 0, 1, 2,
		0, 0, 3, 4,
		0, 0, 0, 0,
	), m)

	requireViolation(t, check.Precondition, func() {
		SetBlock(&m, MatOf[int, D2, D2](1, 2, 3, 4), 3, 0)
	})

	requireViolation(t, check.Precondition, func() {
		SetBlock(&m, MatOf[int, D2, D2](1, 2, 3, 4), 0, -1)
	})
}

func TestMatConvert(t *testing.T) {
	m := M3(1, 2, 3, 4, 5, 6, 7, 8, 9)

	require.Equal(t, M2(1, 2, 4, 5), MatConvert[D2, D2](m))
	require.Equal(t, M4(
		1, 2, 3, 0,
		4, 5, 6, 0,
		7, 8, 9, 0,
		0, 0, 0, 0,
	), MatConvert[D4, D4](m))
}

func TestMat_Det(t *testing.T) {
	require.Equal(t, float32(24), M3(2, 0, 0, 0, 3, 0, 0, 0, 4).Det())
	require.Equal(t, -2, MatOf[int, D2, D2](1, 2, 3, 4).Det())

	upper := MatOf[int, D4, D4](
		1, 5, 7, 9,
		0, 2, 6, 8,
		0, 0, 3, 4,
		0, 0, 0, 4,
	)
	require.Equal(t, 24, upper.Det())

	// swapping two rows flips the sign
	swapped := MatFromRows[int, D4](upper.Row(1), upper.Row(0), upper.Row(2), upper.Row(3))
	require.Equal(t, -24, swapped.Det())

	requireViolation(t, check.Precondition, func() { MatOf[int, D2, D3](1, 2, 3, 4, 5, 6).Det() })
}

func TestMatInverse(t *testing.T) {
	for range 50 {
		rotation := RandomRotation()
		m := Mat4Affine(rotation.Matrix().Scale(RandomIn[float32](0.5, 2)), RandomVec3().Mul(10))

		requireMatInDelta(t, Identity4(), m.Mul(MatInverse(m)), 1e-4)
		requireMatInDelta(t, Identity4(), MatInverse(m).Mul(m), 1e-4)
	}

	requireMatInDelta(t, M2(-2, 1, 1.5, -0.5), MatInverse(M2(1, 2, 3, 4)), 1e-6)

	requireViolation(t, check.Precondition, func() { MatInverse(M3(1, 2, 3, 2, 4, 6, 0, 0, 1)) })
}

func TestMat_Trace(t *testing.T) {
	require.Equal(t, float32(15), M3(1, 2, 3, 4, 5, 6, 7, 8, 9).Trace())
	require.InDelta(t, math.Sqrt(30), MatOf[float64, D2, D2](1, 2, 3, 4).Norm(), 1e-9)
}

func TestRotationMat2(t *testing.T) {
	m := RotationMat2(math.Pi / 2)

	requireVecInDelta(t, V2(-1, 1), m.MulVec(V2(1, 1)), 1e-6)
	requireVecInDelta(t, V2(0, 1), m.MulVec(V2(1, 0)), 1e-6)

	requireMatInDelta(t, RotationMat2(math.Pi*1.5), RotationMat2(math.Pi).Mul(m), 1e-6)
}

func TestMat_String(t *testing.T) {
	m := MatOf[int, D2, D3](1, 2, 3, 4, 5, 6)
	require.Equal(t, "mat((1, 2, 3), (4, 5, 6))", m.String())
	require.Equal(t, "Mat[int,2,3]", m.TypeName())
}
