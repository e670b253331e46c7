package buffer

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
)

func requireViolation(t *testing.T, kind check.Kind, fn func()) *check.Error {
	t.Helper()

	err := check.Catch(fn)
	require.Error(t, err)

	checkErr, ok := check.AsError(err)
	require.True(t, ok)
	require.Equal(t, kind, checkErr.Kind, "unexpected violation: %s", err)

	return checkErr
}

func TestBuffer_PushAndResize(t *testing.T) {
	b := Of(1, 2, 3)

	b.Push(9)
	require.Equal(t, []int{1, 2, 3, 9}, b.Data())
	require.Equal(t, 4, b.Len())
	require.Equal(t, 9, b.At(3))
	require.Equal(t, 9, b.Back())
	require.Equal(t, 1, b.Front())

	b.ResizeClear(2)
	require.Equal(t, []int{0, 0}, b.Data())

	b.Resize(4)
	b.Set(3, 7)
	require.Equal(t, []int{0, 0, 0, 7}, b.Data())

	// shrinking keeps the prefix, growing again yields zeros
	b.Resize(3)
	b.Resize(4)
	require.Equal(t, []int{0, 0, 0, 0}, b.Data())

	b.PushAll(Of(5, 6))
	require.Equal(t, []int{0, 0, 0, 0, 5, 6}, b.Data())

	b.Clear()
	require.True(t, b.IsEmpty())
}

func TestBuffer_CheckedAccess(t *testing.T) {
	b := Of[float32](1, 2, 3)

	err := requireViolation(t, check.OutOfBounds, func() { b.At(3) })
	require.Equal(t, []check.Reason{check.IndexAtEnd}, err.Axes)
	require.Equal(t, "Buffer[float32]", err.Type)
	require.Equal(t, "At", err.Op)

	err = requireViolation(t, check.OutOfBounds, func() { b.Set(-1, 0) })
	require.Equal(t, []check.Reason{check.NegativeIndex}, err.Axes)

	var empty Buffer[int]
	err = requireViolation(t, check.OutOfBounds, func() { empty.At(0) })
	require.Equal(t, []check.Reason{check.EmptyContainer}, err.Axes)

	requireViolation(t, check.OutOfBounds, func() { b.Ptr(10) })
	requireViolation(t, check.OutOfBounds, func() { empty.Back() })

	// unchecked access still works for valid indices
	b.SetUnchecked(1, 5)
	require.Equal(t, float32(5), b.AtUnchecked(1))

	*b.Ptr(0) = 4
	require.Equal(t, float32(4), b.At(0))
}

func TestBuffer_Uncaught(t *testing.T) {
	b := Of(1, 2, 3)
	require.Panics(t, func() { b.At(5) })
}

func TestBuffer_Clone(t *testing.T) {
	a := Of(1, 2, 3)
	shared := a
	clone := a.Clone()

	a.Set(0, 10)
	require.Equal(t, 10, shared.At(0))
	require.Equal(t, 1, clone.At(0))
}

func TestBuffer_Fill(t *testing.T) {
	b := WithSize[int](3)
	require.Equal(t, []int{0, 0, 0}, b.Data())

	b.Fill(4)
	require.Equal(t, []int{4, 4, 4}, b.Data())

	requireViolation(t, check.Precondition, func() { WithSize[int](-1) })
}

func TestBuffer_Memory(t *testing.T) {
	require.Equal(t, 12, Of[float32](1, 2, 3).SizeInMemory())
	require.Equal(t, 2*int(unsafe.Sizeof(gm.Vec3{})), Of(gm.V3(1, 2, 3), gm.V3(4, 5, 6)).SizeInMemory())
	require.Equal(t, "Buffer[Vec[float32,3]]", New[gm.Vec3]().TypeName())
}

func TestBuffer_String(t *testing.T) {
	b := Of(1, 2, 3)
	require.Equal(t, "buffer(1, 2, 3)", b.String())
	require.Equal(t, "1 2 3", Format(b, " ", "", ""))
	require.Equal(t, "[1;2;3]", Format(b, ";", "[", "]"))
	require.Equal(t, "buffer()", New[int]().String())
}

func TestBuffer_Iterators(t *testing.T) {
	b := Of(3, 4, 5)

	var sum int
	for idx, value := range b.All() {
		require.Equal(t, idx+3, value)
		sum += value
	}

	for value := range b.Values() {
		sum += value
	}

	require.Equal(t, 24, sum)
}

func TestMap(t *testing.T) {
	b := Map(Of(1, 2, 3), func(value int) gm.Vec2 {
		return gm.V2(float32(value), 0)
	})

	require.Equal(t, []gm.Vec2{gm.V2(1, 0), gm.V2(2, 0), gm.V2(3, 0)}, b.Data())
}
