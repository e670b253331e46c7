// Package grid implements dense two and three dimensional grids stored in a buffer.
//
// The element (i, j) of a Grid2D is stored at offset i + n1*j, the element
// (i, j, k) of a Grid3D at offset i + n1*(j + n2*k).
package grid

import (
	"fmt"
	"iter"

	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
)

// Grid2D is a dense grid of n1 x n2 values. The number of values stored
// always equals n1*n2.
type Grid2D[T any] struct {
	data   buffer.Buffer[T]
	n1, n2 int
}

// New2D returns a grid of n1 x n2 zero values.
func New2D[T any](n1, n2 int) Grid2D[T] {
	requireDimension(gm.TypeNameOf[Grid2D[T]](), "New2D", n1, n2)
	return Grid2D[T]{data: buffer.WithSize[T](n1 * n2), n1: n1, n2: n2}
}

// FromBuffer2D wraps an existing buffer with n1*n2 values. The grid
// shares the storage of the buffer.
func FromBuffer2D[T any](data buffer.Buffer[T], n1, n2 int) Grid2D[T] {
	requireDimension(gm.TypeNameOf[Grid2D[T]](), "FromBuffer2D", n1, n2)

	if data.Len() != n1*n2 {
		check.SameSize(gm.TypeNameOf[Grid2D[T]](), "FromBuffer2D", data.Len(), n1*n2)
	}

	return Grid2D[T]{data: data, n1: n1, n2: n2}
}

func requireDimension(typeName, op string, dimension ...int) {
	for _, n := range dimension {
		if n < 0 {
			check.Preconditionf(typeName, op, "negative grid dimension %v", dimension)
		}
	}
}

func (g Grid2D[T]) TypeName() string {
	return fmt.Sprintf("Grid2D[%s]", gm.TypeNameOf[T]())
}

// Dimension returns the size of the grid along both axes.
func (g Grid2D[T]) Dimension() (n1, n2 int) {
	return g.n1, g.n2
}

// Len returns the total number of values, n1*n2.
func (g Grid2D[T]) Len() int {
	return g.data.Len()
}

// Resize changes the dimension of the grid. Values stored at offsets
// below the new size are kept.
func (g *Grid2D[T]) Resize(n1, n2 int) {
	requireDimension(gm.TypeNameOf[Grid2D[T]](), "Resize", n1, n2)

	g.data.Resize(n1 * n2)
	g.n1, g.n2 = n1, n2
}

func (g Grid2D[T]) checkIndex(op string, i, j int) {
	if uint(i) >= uint(g.n1) || uint(j) >= uint(g.n2) {
		check.Indices(g.TypeName(), op, []int{i, j}, []int{g.n1, g.n2})
	}
}

// Offset returns the position of the element (i, j) in the underlying buffer.
func (g Grid2D[T]) Offset(i, j int) int {
	g.checkIndex("Offset", i, j)
	return i + g.n1*j
}

// Index returns the element index (i, j) stored at the given offset.
func (g Grid2D[T]) Index(offset int) (i, j int) {
	if uint(offset) >= uint(g.Len()) {
		check.Index(g.TypeName(), "Index", offset, g.Len())
	}

	return offset % g.n1, offset / g.n1
}

func (g Grid2D[T]) At(i, j int) T {
	g.checkIndex("At", i, j)
	return g.data.AtUnchecked(i + g.n1*j)
}

func (g Grid2D[T]) Set(i, j int, value T) {
	g.checkIndex("Set", i, j)
	g.data.SetUnchecked(i+g.n1*j, value)
}

func (g Grid2D[T]) Ptr(i, j int) *T {
	g.checkIndex("Ptr", i, j)
	return g.data.Ptr(i + g.n1*j)
}

func (g Grid2D[T]) AtUnchecked(i, j int) T {
	return g.data.AtUnchecked(i + g.n1*j)
}

func (g Grid2D[T]) AtOffset(offset int) T {
	return g.data.At(offset)
}

func (g Grid2D[T]) SetOffset(offset int, value T) {
	g.data.Set(offset, value)
}

func (g Grid2D[T]) Fill(value T) {
	g.data.Fill(value)
}

// Buffer returns the buffer holding the values of the grid.
func (g Grid2D[T]) Buffer() buffer.Buffer[T] {
	return g.data
}

// Data returns the values in storage order.
func (g Grid2D[T]) Data() []T {
	return g.data.Data()
}

func (g Grid2D[T]) SizeInMemory() int {
	return g.data.SizeInMemory()
}

func (g Grid2D[T]) Clone() Grid2D[T] {
	return Grid2D[T]{data: g.data.Clone(), n1: g.n1, n2: g.n2}
}

// All iterates over all elements in storage order.
func (g Grid2D[T]) All() iter.Seq2[[2]int, T] {
	return func(yield func([2]int, T) bool) {
		for j := range g.n2 {
			for i := range g.n1 {
				if !yield([2]int{i, j}, g.data.AtUnchecked(i+g.n1*j)) {
					return
				}
			}
		}
	}
}

func (g Grid2D[T]) String() string {
	return fmt.Sprintf("grid2d(%dx%d, %s)", g.n1, g.n2, buffer.Format(g.data, ", ", "[", "]"))
}
