// Package check implements the validation policy shared by all containers and math types.
//
// A violated check is a programming error: the failing operation panics with a *Error
// describing the violation. Callers that prefer an error value over a crash can wrap the
// code in Catch.
package check

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Kind classifies a violation.
type Kind uint8

const (
	// OutOfBounds is reported when an index does not address an element of a container.
	OutOfBounds Kind = iota + 1

	// SizeMismatch is reported when the operands of an operation do not have compatible sizes.
	SizeMismatch

	// Precondition is reported when numeric input does not satisfy the requirements of
	// a function, e.g. a non unit vector or a division by zero.
	Precondition
)

func (k Kind) String() string {
	switch k {
	case OutOfBounds:
		return "out of bounds"
	case SizeMismatch:
		return "size mismatch"
	case Precondition:
		return "precondition violated"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Reason categorizes an out of bounds access.
type Reason uint8

const (
	NoReason Reason = iota
	NegativeIndex
	EmptyContainer
	IndexAtEnd
	IndexBeyondEnd
)

func (r Reason) String() string {
	switch r {
	case NegativeIndex:
		return "containers can not be accessed with a negative index"
	case EmptyContainer:
		return "the container is empty, you may have forgotten to resize it or to push elements"
	case IndexAtEnd:
		return "the index reached the size of the container, indices start at 0"
	case IndexBeyondEnd:
		return "the index exceeds the size of the container"
	default:
		return ""
	}
}

// ReasonOf returns the category of an access of index into an axis of the given size.
// It returns NoReason if the index is valid.
func ReasonOf(index, size int) Reason {
	switch {
	case index < 0:
		return NegativeIndex
	case size == 0:
		return EmptyContainer
	case index == size:
		return IndexAtEnd
	case index > size:
		return IndexBeyondEnd
	default:
		return NoReason
	}
}

// Error describes a violated check.
type Error struct {
	Kind Kind

	// Op names the operation that failed, e.g. "At" or "Add".
	Op string

	// Type is the type name of the container that was accessed.
	Type string

	// Index holds the attempted index, one value per axis.
	Index []int

	// Size holds the size of the container, one value per axis. For a
	// size mismatch it holds the sizes of both operands.
	Size []int

	// Axes holds the reason per axis for out of bounds accesses.
	Axes []Reason

	Message string
}

func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Kind.String())
	if e.Type != "" || e.Op != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Type)
		if e.Op != "" {
			if e.Type != "" {
				sb.WriteString(".")
			}
			sb.WriteString(e.Op)
		}
	}

	switch e.Kind {
	case OutOfBounds:
		fmt.Fprintf(&sb, ": index %s, size %s", tuple(e.Index), tuple(e.Size))

		for axis, reason := range e.Axes {
			if reason == NoReason {
				continue
			}

			if len(e.Axes) > 1 {
				fmt.Fprintf(&sb, "; axis %d: %s", axis, reason)
			} else {
				fmt.Fprintf(&sb, "; %s", reason)
			}

			if reason == IndexAtEnd {
				fmt.Fprintf(&sb, ", the maximal index is %d", e.Size[axis]-1)
			}
		}

	case SizeMismatch:
		if len(e.Size) == 2 {
			fmt.Fprintf(&sb, ": sizes %d and %d do not agree", e.Size[0], e.Size[1])
		}
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	return sb.String()
}

func tuple(values []int) string {
	if len(values) == 1 {
		return fmt.Sprint(values[0])
	}

	parts := make([]string, len(values))
	for idx, value := range values {
		parts[idx] = fmt.Sprint(value)
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// Fail reports the violation by panicking with err.
func Fail(err *Error) {
	slog.Debug(
		"Check failed",
		slog.String("kind", err.Kind.String()),
		slog.String("type", err.Type),
		slog.String("op", err.Op),
	)

	panic(err)
}

// Index fails with an OutOfBounds error if index does not satisfy 0 <= index < size.
func Index(typeName, op string, index, size int) {
	if uint(index) < uint(size) {
		return
	}

	Fail(&Error{
		Kind:  OutOfBounds,
		Op:    op,
		Type:  typeName,
		Index: []int{index},
		Size:  []int{size},
		Axes:  []Reason{ReasonOf(index, size)},
	})
}

// Indices validates a multi dimensional index against the dimension of a container.
// All axes are validated and every violated axis is reported in the error.
func Indices(typeName, op string, index, dimension []int) {
	if len(index) != len(dimension) {
		Fail(&Error{
			Kind:    SizeMismatch,
			Op:      op,
			Type:    typeName,
			Size:    []int{len(index), len(dimension)},
			Message: "index and dimension have a different number of axes",
		})
	}

	valid := true
	for axis := range index {
		if uint(index[axis]) >= uint(dimension[axis]) {
			valid = false
			break
		}
	}

	if valid {
		return
	}

	reasons := make([]Reason, len(index))
	for axis := range index {
		reasons[axis] = ReasonOf(index[axis], dimension[axis])
	}

	Fail(&Error{
		Kind:  OutOfBounds,
		Op:    op,
		Type:  typeName,
		Index: append([]int(nil), index...),
		Size:  append([]int(nil), dimension...),
		Axes:  reasons,
	})
}

// SameSize fails with a SizeMismatch error if a and b differ.
func SameSize(typeName, op string, a, b int) {
	if a == b {
		return
	}

	Fail(&Error{
		Kind: SizeMismatch,
		Op:   op,
		Type: typeName,
		Size: []int{a, b},
	})
}

// That fails with a Precondition error if cond is false.
// The message is only formatted if the check fails.
func That(cond bool, op string, format string, args ...any) {
	if cond {
		return
	}

	Fail(&Error{
		Kind:    Precondition,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	})
}

// Preconditionf fails with a Precondition error raised by op on a value of typeName.
// Callers test the condition inline and only call Preconditionf on failure, so that
// no arguments are boxed on the fast path.
func Preconditionf(typeName, op string, format string, args ...any) {
	Fail(&Error{
		Kind:    Precondition,
		Op:      op,
		Type:    typeName,
		Message: fmt.Sprintf(format, args...),
	})
}

// Catch runs fn and converts a violation raised by fn into a returned error.
// Panics that are not caused by a violated check are propagated.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if checkErr, ok := r.(*Error); ok {
			err = checkErr
			return
		}

		panic(r)
	}()

	fn()
	return nil
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var checkErr *Error
	ok := errors.As(err, &checkErr)
	return checkErr, ok
}
