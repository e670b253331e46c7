// Package textio reads containers from whitespace and line delimited text.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/gm"
	"github.com/oliverbestmann/vcl/grid"
)

// ErrTooFewValues is returned when the input ends before a fixed size container is complete.
var ErrTooFewValues = errors.New("too few values")

// ParseScalar parses a single value of type S.
func ParseScalar[S gm.Scalar](token string) (S, error) {
	var zero S
	bits := int(unsafe.Sizeof(zero)) * 8

	switch {
	case gm.IsFloat[S]():
		value, err := strconv.ParseFloat(token, bits)
		return S(value), err

	case zero-1 > 0:
		value, err := strconv.ParseUint(token, 10, bits)
		return S(value), err

	default:
		value, err := strconv.ParseInt(token, 10, bits)
		return S(value), err
	}
}

// values yields the parsed whitespace separated values of r. Iteration stops
// after the first error.
func values[S gm.Scalar](r io.Reader) iter.Seq2[S, error] {
	return func(yield func(S, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Split(bufio.ScanWords)

		var idx int
		for scanner.Scan() {
			token := scanner.Text()

			value, err := ParseScalar[S](token)
			if err != nil {
				yield(value, fmt.Errorf("parse value %d %q: %w", idx, token, err))
				return
			}

			if !yield(value, nil) {
				return
			}

			idx++
		}

		if err := scanner.Err(); err != nil {
			var zero S
			yield(zero, fmt.Errorf("read values: %w", err))
		}
	}
}

// ReadBuffer reads all whitespace separated values of r.
func ReadBuffer[S gm.Scalar](r io.Reader) (buffer.Buffer[S], error) {
	var result buffer.Buffer[S]

	for value, err := range values[S](r) {
		if err != nil {
			return result, err
		}

		result.Push(value)
	}

	return result, nil
}

// ReadVec reads the first N values of r into a vector.
func ReadVec[S gm.Scalar, N gm.Size](r io.Reader) (gm.Vec[S, N], error) {
	var vec gm.Vec[S, N]

	var count int
	for value, err := range values[S](r) {
		if err != nil {
			return vec, err
		}

		vec.SetUnchecked(count, value)

		count++
		if count == vec.Len() {
			return vec, nil
		}
	}

	return vec, fmt.Errorf("read %s: got %d of %d values: %w", vec.TypeName(), count, vec.Len(), ErrTooFewValues)
}

// ReadVecBuffer reads groups of N values of r into a buffer of vectors,
// e.g. a list of positions with one point per line.
func ReadVecBuffer[S gm.Scalar, N gm.Size](r io.Reader) (buffer.Buffer[gm.Vec[S, N]], error) {
	var result buffer.Buffer[gm.Vec[S, N]]

	var vec gm.Vec[S, N]

	var count int
	for value, err := range values[S](r) {
		if err != nil {
			return result, err
		}

		vec.SetUnchecked(count, value)

		count++
		if count == vec.Len() {
			result.Push(vec)
			count = 0
		}
	}

	if count != 0 {
		return result, fmt.Errorf("read %s: trailing %d values: %w", result.TypeName(), count, ErrTooFewValues)
	}

	return result, nil
}

// ReadMat reads the first R*C values of r into a matrix in row major order.
func ReadMat[S gm.Scalar, R, C gm.Size](r io.Reader) (gm.Mat[S, R, C], error) {
	var m gm.Mat[S, R, C]
	cols := m.Cols()

	var count int
	for value, err := range values[S](r) {
		if err != nil {
			return m, err
		}

		m.SetUnchecked(count/cols, count%cols, value)

		count++
		if count == m.Len() {
			return m, nil
		}
	}

	return m, fmt.Errorf("read %s: got %d of %d values: %w", m.TypeName(), count, m.Len(), ErrTooFewValues)
}

// ReadBufferLines reads one buffer per non blank line of r.
func ReadBufferLines[S gm.Scalar](r io.Reader) (buffer.Buffer[buffer.Buffer[S]], error) {
	var result buffer.Buffer[buffer.Buffer[S]]

	// lines have no length limit
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)

	var lineNo int
	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, err := ReadBuffer[S](strings.NewReader(line))
		if err != nil {
			return result, fmt.Errorf("line %d: %w", lineNo, err)
		}

		result.Push(row)
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("read lines: %w", err)
	}

	return result, nil
}

// ReadGrid2D reads a grid with one row per non blank line. The values of
// a line are indexed by the first grid index, the lines by the second one.
func ReadGrid2D[S gm.Scalar](r io.Reader) (grid.Grid2D[S], error) {
	rows, err := ReadBufferLines[S](r)
	if err != nil {
		return grid.Grid2D[S]{}, err
	}

	if rows.IsEmpty() {
		return grid.New2D[S](0, 0), nil
	}

	n1 := rows.Front().Len()
	n2 := rows.Len()

	var data buffer.Buffer[S]
	for idx, row := range rows.All() {
		if row.Len() != n1 {
			return grid.Grid2D[S]{}, fmt.Errorf("row %d has %d values, expected %d", idx, row.Len(), n1)
		}

		data.PushAll(row)
	}

	return grid.FromBuffer2D(data, n1, n2), nil
}
