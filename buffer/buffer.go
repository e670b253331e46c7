// Package buffer implements Buffer, a growable contiguous sequence of values
// with bounds checked access.
//
// Arithmetic is provided as functions for buffers of gm.Scalar values. Binary
// operations require both operands to have the same length.
package buffer

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
)

// Buffer owns a contiguous slice of values. The zero value is an empty buffer.
//
// Copying a Buffer shares the underlying storage, use Clone for a deep copy.
type Buffer[T any] struct {
	data []T
}

// New returns an empty buffer.
func New[T any]() Buffer[T] {
	return Buffer[T]{}
}

// WithSize returns a buffer holding size zero values.
func WithSize[T any](size int) Buffer[T] {
	if size < 0 {
		check.Preconditionf(gm.TypeNameOf[Buffer[T]](), "WithSize", "negative size %d", size)
	}

	return Buffer[T]{data: make([]T, size)}
}

// Of returns a buffer holding the given values.
func Of[T any](values ...T) Buffer[T] {
	return FromSlice(values)
}

// FromSlice returns a buffer holding a copy of values.
func FromSlice[T any](values []T) Buffer[T] {
	return Buffer[T]{data: slices.Clone(values)}
}

func (b Buffer[T]) TypeName() string {
	return fmt.Sprintf("Buffer[%s]", gm.TypeNameOf[T]())
}

// Len returns the number of elements.
func (b Buffer[T]) Len() int {
	return len(b.data)
}

func (b Buffer[T]) IsEmpty() bool {
	return len(b.data) == 0
}

func (b Buffer[T]) checkIndex(op string, idx int) {
	if uint(idx) >= uint(len(b.data)) {
		check.Index(b.TypeName(), op, idx, len(b.data))
	}
}

// At returns the element at idx. It panics if idx is out of range.
func (b Buffer[T]) At(idx int) T {
	b.checkIndex("At", idx)
	return b.data[idx]
}

// Set replaces the element at idx. It panics if idx is out of range.
func (b Buffer[T]) Set(idx int, value T) {
	b.checkIndex("Set", idx)
	b.data[idx] = value
}

// Ptr returns a pointer to the element at idx. The pointer is valid
// until the buffer is resized.
func (b Buffer[T]) Ptr(idx int) *T {
	b.checkIndex("Ptr", idx)
	return &b.data[idx]
}

// AtUnchecked returns the element at idx without a bounds check by the buffer.
func (b Buffer[T]) AtUnchecked(idx int) T {
	return b.data[idx]
}

// SetUnchecked replaces the element at idx without a bounds check by the buffer.
func (b Buffer[T]) SetUnchecked(idx int, value T) {
	b.data[idx] = value
}

// Front returns the first element.
func (b Buffer[T]) Front() T {
	b.checkIndex("Front", 0)
	return b.data[0]
}

// Back returns the last element.
func (b Buffer[T]) Back() T {
	b.checkIndex("Back", len(b.data)-1)
	return b.data[len(b.data)-1]
}

// Resize changes the length of the buffer. Existing elements are kept,
// new elements are zero.
func (b *Buffer[T]) Resize(size int) {
	if size < 0 {
		check.Preconditionf(b.TypeName(), "Resize", "negative size %d", size)
	}

	if size <= len(b.data) {
		clear(b.data[size:])
		b.data = b.data[:size]
		return
	}

	b.data = slices.Grow(b.data, size-len(b.data))[:size]
}

// ResizeClear changes the length of the buffer and sets all elements to zero.
func (b *Buffer[T]) ResizeClear(size int) {
	b.Resize(size)
	clear(b.data)
}

// Push appends a value to the end of the buffer.
func (b *Buffer[T]) Push(value T) {
	b.data = append(b.data, value)
}

// PushAll appends all values of other to the end of the buffer.
func (b *Buffer[T]) PushAll(other Buffer[T]) {
	b.data = append(b.data, other.data...)
}

// Fill sets all elements to value.
func (b Buffer[T]) Fill(value T) {
	for idx := range b.data {
		b.data[idx] = value
	}
}

// Clear removes all elements.
func (b *Buffer[T]) Clear() {
	b.Resize(0)
}

// Clone returns a deep copy of the buffer.
func (b Buffer[T]) Clone() Buffer[T] {
	return FromSlice(b.data)
}

// Data returns the elements. The slice is valid until the next call
// that changes the length of the buffer.
func (b Buffer[T]) Data() []T {
	return b.data
}

// SizeInMemory returns the number of bytes occupied by the elements.
func (b Buffer[T]) SizeInMemory() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * len(b.data)
}

// All iterates over index and value of each element.
func (b Buffer[T]) All() iter.Seq2[int, T] {
	return slices.All(b.data)
}

// Values iterates over the elements.
func (b Buffer[T]) Values() iter.Seq[T] {
	return slices.Values(b.data)
}

// Map applies fn to each element of b and returns the results.
func Map[T, U any](b Buffer[T], fn func(T) U) Buffer[U] {
	result := make([]U, len(b.data))
	for idx, value := range b.data {
		result[idx] = fn(value)
	}

	return Buffer[U]{data: result}
}

// EqualFunc reports whether both buffers have the same length and all elements
// are equal according to eq.
func EqualFunc[T any](a, b Buffer[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.data, b.data, eq)
}

func (b Buffer[T]) String() string {
	return Format(b, ", ", "buffer(", ")")
}
