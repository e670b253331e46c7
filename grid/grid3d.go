package grid

import (
	"fmt"
	"iter"

	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
)

// Grid3D is a dense grid of n1 x n2 x n3 values. The number of values stored
// always equals n1*n2*n3.
type Grid3D[T any] struct {
	data       buffer.Buffer[T]
	n1, n2, n3 int
}

// New3D returns a grid of n1 x n2 x n3 zero values.
func New3D[T any](n1, n2, n3 int) Grid3D[T] {
	requireDimension(gm.TypeNameOf[Grid3D[T]](), "New3D", n1, n2, n3)
	return Grid3D[T]{data: buffer.WithSize[T](n1 * n2 * n3), n1: n1, n2: n2, n3: n3}
}

// FromBuffer3D wraps an existing buffer with n1*n2*n3 values. The grid
// shares the storage of the buffer.
func FromBuffer3D[T any](data buffer.Buffer[T], n1, n2, n3 int) Grid3D[T] {
	requireDimension(gm.TypeNameOf[Grid3D[T]](), "FromBuffer3D", n1, n2, n3)

	if data.Len() != n1*n2*n3 {
		check.SameSize(gm.TypeNameOf[Grid3D[T]](), "FromBuffer3D", data.Len(), n1*n2*n3)
	}

	return Grid3D[T]{data: data, n1: n1, n2: n2, n3: n3}
}

func (g Grid3D[T]) TypeName() string {
	return fmt.Sprintf("Grid3D[%s]", gm.TypeNameOf[T]())
}

// Dimension returns the size of the grid along all three axes.
func (g Grid3D[T]) Dimension() (n1, n2, n3 int) {
	return g.n1, g.n2, g.n3
}

// Len returns the total number of values, n1*n2*n3.
func (g Grid3D[T]) Len() int {
	return g.data.Len()
}

// Resize changes the dimension of the grid. Values stored at offsets
// below the new size are kept.
func (g *Grid3D[T]) Resize(n1, n2, n3 int) {
	requireDimension(gm.TypeNameOf[Grid3D[T]](), "Resize", n1, n2, n3)

	g.data.Resize(n1 * n2 * n3)
	g.n1, g.n2, g.n3 = n1, n2, n3
}

func (g Grid3D[T]) checkIndex(op string, i, j, k int) {
	if uint(i) >= uint(g.n1) || uint(j) >= uint(g.n2) || uint(k) >= uint(g.n3) {
		check.Indices(g.TypeName(), op, []int{i, j, k}, []int{g.n1, g.n2, g.n3})
	}
}

func (g Grid3D[T]) offset(i, j, k int) int {
	return i + g.n1*(j+g.n2*k)
}

// Offset returns the position of the element (i, j, k) in the underlying buffer.
func (g Grid3D[T]) Offset(i, j, k int) int {
	g.checkIndex("Offset", i, j, k)
	return g.offset(i, j, k)
}

// Index returns the element index (i, j, k) stored at the given offset.
func (g Grid3D[T]) Index(offset int) (i, j, k int) {
	if uint(offset) >= uint(g.Len()) {
		check.Index(g.TypeName(), "Index", offset, g.Len())
	}

	return offset % g.n1, (offset / g.n1) % g.n2, offset / (g.n1 * g.n2)
}

func (g Grid3D[T]) At(i, j, k int) T {
	g.checkIndex("At", i, j, k)
	return g.data.AtUnchecked(g.offset(i, j, k))
}

func (g Grid3D[T]) Set(i, j, k int, value T) {
	g.checkIndex("Set", i, j, k)
	g.data.SetUnchecked(g.offset(i, j, k), value)
}

func (g Grid3D[T]) Ptr(i, j, k int) *T {
	g.checkIndex("Ptr", i, j, k)
	return g.data.Ptr(g.offset(i, j, k))
}

func (g Grid3D[T]) AtUnchecked(i, j, k int) T {
	return g.data.AtUnchecked(g.offset(i, j, k))
}

func (g Grid3D[T]) AtOffset(offset int) T {
	return g.data.At(offset)
}

func (g Grid3D[T]) SetOffset(offset int, value T) {
	g.data.Set(offset, value)
}

func (g Grid3D[T]) Fill(value T) {
	g.data.Fill(value)
}

// Buffer returns the buffer holding the values of the grid.
func (g Grid3D[T]) Buffer() buffer.Buffer[T] {
	return g.data
}

// Data returns the values in storage order.
func (g Grid3D[T]) Data() []T {
	return g.data.Data()
}

func (g Grid3D[T]) SizeInMemory() int {
	return g.data.SizeInMemory()
}

func (g Grid3D[T]) Clone() Grid3D[T] {
	return Grid3D[T]{data: g.data.Clone(), n1: g.n1, n2: g.n2, n3: g.n3}
}

// All iterates over all elements in storage order.
func (g Grid3D[T]) All() iter.Seq2[[3]int, T] {
	return func(yield func([3]int, T) bool) {
		for k := range g.n3 {
			for j := range g.n2 {
				for i := range g.n1 {
					if !yield([3]int{i, j, k}, g.data.AtUnchecked(g.offset(i, j, k))) {
						return
					}
				}
			}
		}
	}
}

func (g Grid3D[T]) String() string {
	return fmt.Sprintf("grid3d(%dx%dx%d, %s)", g.n1, g.n2, g.n3, buffer.Format(g.data, ", ", "[", "]"))
}
