package gm

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/oliverbestmann/vcl/check"
)

// Mat describes a matrix with R rows and C columns of values of type S.
// The values are stored inline in row major order. Entries beyond R*C are
// always zero, so two matrices can be compared using ==.
type Mat[S Scalar, R, C Size] struct {
	v [MaxSize * MaxSize]S
}

type Mat2 = Mat[float32, D2, D2]
type Mat3 = Mat[float32, D3, D3]
type Mat4 = Mat[float32, D4, D4]

// MatOf creates a matrix from exactly R*C values given in row major order.
func MatOf[S Scalar, R, C Size](values ...S) Mat[S, R, C] {
	var m Mat[S, R, C]
	if len(values) != m.Len() {
		check.SameSize(m.TypeName(), "MatOf", len(values), m.Len())
	}

	copy(m.v[:], values)
	return m
}

// MatFromRows creates a matrix from exactly R row vectors.
func MatFromRows[S Scalar, R, C Size](rows ...Vec[S, C]) Mat[S, R, C] {
	var m Mat[S, R, C]
	if len(rows) != m.Rows() {
		check.SameSize(m.TypeName(), "MatFromRows", len(rows), m.Rows())
	}

	for row, vec := range rows {
		m.SetRow(row, vec)
	}

	return m
}

// MatFromCols creates a matrix from exactly C column vectors.
func MatFromCols[S Scalar, R, C Size](cols ...Vec[S, R]) Mat[S, R, C] {
	var m Mat[S, R, C]
	if len(cols) != m.Cols() {
		check.SameSize(m.TypeName(), "MatFromCols", len(cols), m.Cols())
	}

	for col, vec := range cols {
		m.SetCol(col, vec)
	}

	return m
}

// M2 creates a Mat2 from four values in row major order.
func M2(values ...float32) Mat2 {
	return MatOf[float32, D2, D2](values...)
}

// M3 creates a Mat3 from nine values in row major order.
func M3(values ...float32) Mat3 {
	return MatOf[float32, D3, D3](values...)
}

// M4 creates a Mat4 from sixteen values in row major order.
func M4(values ...float32) Mat4 {
	return MatOf[float32, D4, D4](values...)
}

// MatIdentity returns a matrix with ones on the diagonal and zeros everywhere
// else. For non square matrices the diagonal has min(R, C) entries.
func MatIdentity[S Scalar, R, C Size]() Mat[S, R, C] {
	var m Mat[S, R, C]
	for idx := range min(m.Rows(), m.Cols()) {
		m.v[idx*m.Cols()+idx] = 1
	}

	return m
}

func Identity2() Mat2 { return MatIdentity[float32, D2, D2]() }
func Identity3() Mat3 { return MatIdentity[float32, D3, D3]() }
func Identity4() Mat4 { return MatIdentity[float32, D4, D4]() }

// ScaleMat3 returns a matrix that scales each axis of a Vec3.
func ScaleMat3(scale Vec3) Mat3 {
	return M3(
		scale.X(), 0, 0,
		0, scale.Y(), 0,
		0, 0, scale.Z(),
	)
}

// RotationMat2 returns a matrix that rotates a Vec2 counter clockwise by the given angle.
func RotationMat2(angle Rad) Mat2 {
	sin, cos := angle.SinCos()
	return M2(
		cos, -sin,
		sin, cos,
	)
}

func (m Mat[S, R, C]) Rows() int { return sizeOf[R]() }
func (m Mat[S, R, C]) Cols() int { return sizeOf[C]() }

// Len returns the number of entries, R*C.
func (m Mat[S, R, C]) Len() int {
	return m.Rows() * m.Cols()
}

func (m Mat[S, R, C]) TypeName() string {
	return fmt.Sprintf("Mat[%s,%d,%d]", TypeNameOf[S](), m.Rows(), m.Cols())
}

func (m Mat[S, R, C]) checkIndex(op string, row, col int) {
	if uint(row) >= uint(m.Rows()) || uint(col) >= uint(m.Cols()) {
		check.Indices(m.TypeName(), op, []int{row, col}, []int{m.Rows(), m.Cols()})
	}
}

// At returns the entry at the given row and column.
func (m Mat[S, R, C]) At(row, col int) S {
	m.checkIndex("At", row, col)
	return m.v[row*m.Cols()+col]
}

func (m *Mat[S, R, C]) Set(row, col int, value S) {
	m.checkIndex("Set", row, col)
	m.v[row*m.Cols()+col] = value
}

func (m *Mat[S, R, C]) Ptr(row, col int) *S {
	m.checkIndex("Ptr", row, col)
	return &m.v[row*m.Cols()+col]
}

func (m Mat[S, R, C]) AtUnchecked(row, col int) S {
	return m.v[row*m.Cols()+col]
}

func (m *Mat[S, R, C]) SetUnchecked(row, col int, value S) {
	m.v[row*m.Cols()+col] = value
}

// AtOffset returns the entry at the given offset into the row major storage.
func (m Mat[S, R, C]) AtOffset(offset int) S {
	if uint(offset) >= uint(m.Len()) {
		check.Index(m.TypeName(), "AtOffset", offset, m.Len())
	}

	return m.v[offset]
}

func (m Mat[S, R, C]) Row(row int) Vec[S, C] {
	if uint(row) >= uint(m.Rows()) {
		check.Index(m.TypeName(), "Row", row, m.Rows())
	}

	var vec Vec[S, C]
	copy(vec.v[:], m.v[row*m.Cols():(row+1)*m.Cols()])
	return vec
}

func (m *Mat[S, R, C]) SetRow(row int, vec Vec[S, C]) {
	if uint(row) >= uint(m.Rows()) {
		check.Index(m.TypeName(), "SetRow", row, m.Rows())
	}

	copy(m.v[row*m.Cols():(row+1)*m.Cols()], vec.v[:vec.Len()])
}

func (m Mat[S, R, C]) Col(col int) Vec[S, R] {
	if uint(col) >= uint(m.Cols()) {
		check.Index(m.TypeName(), "Col", col, m.Cols())
	}

	var vec Vec[S, R]
	for row := range m.Rows() {
		vec.v[row] = m.v[row*m.Cols()+col]
	}

	return vec
}

func (m *Mat[S, R, C]) SetCol(col int, vec Vec[S, R]) {
	if uint(col) >= uint(m.Cols()) {
		check.Index(m.TypeName(), "SetCol", col, m.Cols())
	}

	for row := range m.Rows() {
		m.v[row*m.Cols()+col] = vec.v[row]
	}
}

func (m *Mat[S, R, C]) Fill(value S) {
	for idx := range m.Len() {
		m.v[idx] = value
	}
}

// Data returns the entries in row major order as a slice backed by the matrix.
func (m *Mat[S, R, C]) Data() []S {
	return m.v[:m.Len()]
}

// SizeInMemory returns the number of bytes occupied by the R*C entries.
func (m Mat[S, R, C]) SizeInMemory() int {
	return int(unsafe.Sizeof(m.v[0])) * m.Len()
}

func (m Mat[S, R, C]) Add(other Mat[S, R, C]) Mat[S, R, C] {
	for idx := range m.Len() {
		m.v[idx] += other.v[idx]
	}

	return m
}

func (m Mat[S, R, C]) Sub(other Mat[S, R, C]) Mat[S, R, C] {
	for idx := range m.Len() {
		m.v[idx] -= other.v[idx]
	}

	return m
}

// MulEach multiplies the matrices component wise.
func (m Mat[S, R, C]) MulEach(other Mat[S, R, C]) Mat[S, R, C] {
	for idx := range m.Len() {
		m.v[idx] *= other.v[idx]
	}

	return m
}

func (m Mat[S, R, C]) AddScalar(value S) Mat[S, R, C] {
	for idx := range m.Len() {
		m.v[idx] += value
	}

	return m
}

func (m Mat[S, R, C]) SubScalar(value S) Mat[S, R, C] {
	for idx := range m.Len() {
		m.v[idx] -= value
	}

	return m
}

// Scale multiplies each entry with value.
func (m Mat[S, R, C]) Scale(value S) Mat[S, R, C] {
	for idx := range m.Len() {
		m.v[idx] *= value
	}

	return m
}

func (m Mat[S, R, C]) Div(value S) Mat[S, R, C] {
	if value == 0 {
		check.Preconditionf(m.TypeName(), "Div", "division by zero")
	}

	for idx := range m.Len() {
		m.v[idx] /= value
	}

	return m
}

func (m Mat[S, R, C]) Neg() Mat[S, R, C] {
	for idx := range m.Len() {
		m.v[idx] = -m.v[idx]
	}

	return m
}

// Mul multiplies m with a square matrix. Use MatMul for non square operands.
func (m Mat[S, R, C]) Mul(other Mat[S, C, C]) Mat[S, R, C] {
	return MatMul(m, other)
}

// MulVec transforms the column vector vec.
func (m Mat[S, R, C]) MulVec(vec Vec[S, C]) Vec[S, R] {
	var result Vec[S, R]

	cols := m.Cols()
	for row := range m.Rows() {
		var sum S
		for col := range cols {
			sum += m.v[row*cols+col] * vec.v[col]
		}

		result.v[row] = sum
	}

	return result
}

// Transpose returns a new matrix with rows and columns swapped.
func (m Mat[S, R, C]) Transpose() Mat[S, C, R] {
	var result Mat[S, C, R]

	rows, cols := m.Rows(), m.Cols()
	for row := range rows {
		for col := range cols {
			result.v[col*rows+row] = m.v[row*cols+col]
		}
	}

	return result
}

// Trace returns the sum of the diagonal of a square matrix.
func (m Mat[S, R, C]) Trace() S {
	m.requireSquare("Trace")

	var sum S
	for idx := range m.Rows() {
		sum += m.v[idx*m.Cols()+idx]
	}

	return sum
}

// Norm returns the frobenius norm of the matrix.
func (m Mat[S, R, C]) Norm() S {
	var sum S
	for idx := range m.Len() {
		sum += m.v[idx] * m.v[idx]
	}

	return S(math.Sqrt(float64(sum)))
}

// Det returns the determinant of a square matrix.
func (m Mat[S, R, C]) Det() S {
	m.requireSquare("Det")

	var values [MaxSize * MaxSize]float64
	for idx := range m.Len() {
		values[idx] = float64(m.v[idx])
	}

	return S(determinant(values[:m.Len()], m.Rows()))
}

func (m Mat[S, R, C]) requireSquare(op string) {
	if m.Rows() != m.Cols() {
		check.Preconditionf(m.TypeName(), op, "matrix is not square")
	}
}

func (m Mat[S, R, C]) Equal(other Mat[S, R, C]) bool {
	for idx := range m.Len() {
		if !ScalarEqual(m.v[idx], other.v[idx]) {
			return false
		}
	}

	return true
}

func (m Mat[S, R, C]) String() string {
	var sb strings.Builder

	sb.WriteString("mat(")
	for row := range m.Rows() {
		if row > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString("(")
		for col := range m.Cols() {
			if col > 0 {
				sb.WriteString(", ")
			}

			_, _ = fmt.Fprint(&sb, m.v[row*m.Cols()+col])
		}
		sb.WriteString(")")
	}
	sb.WriteString(")")

	return sb.String()
}

// MatMul returns the matrix product a*b. Mismatching inner dimensions
// are rejected by the compiler.
func MatMul[S Scalar, R, K, C Size](a Mat[S, R, K], b Mat[S, K, C]) Mat[S, R, C] {
	var result Mat[S, R, C]

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	for row := range rows {
		for col := range cols {
			var sum S
			for k := range inner {
				sum += a.v[row*inner+k] * b.v[k*cols+col]
			}

			result.v[row*cols+col] = sum
		}
	}

	return result
}

// RemoveRowColumn returns the matrix without the given row and column.
// The result size R1 x C1 must be one row and one column smaller than m.
func RemoveRowColumn[R1, C1 Size, S Scalar, R, C Size](m Mat[S, R, C], row, col int) Mat[S, R1, C1] {
	var result Mat[S, R1, C1]
	if result.Rows() != m.Rows()-1 || result.Cols() != m.Cols()-1 {
		check.Preconditionf(m.TypeName(), "RemoveRowColumn",
			"result size %dx%d must be one row and one column smaller",
			result.Rows(), result.Cols())
	}

	m.checkIndex("RemoveRowColumn", row, col)

	var offset int
	for r := range m.Rows() {
		if r == row {
			continue
		}

		for c := range m.Cols() {
			if c == col {
				continue
			}

			result.v[offset] = m.v[r*m.Cols()+c]
			offset++
		}
	}

	return result
}

// SetBlock copies block into m with the top left corner of the block at (row, col).
func SetBlock[S Scalar, R, C, BR, BC Size](m *Mat[S, R, C], block Mat[S, BR, BC], row, col int) {
	if row < 0 || col < 0 || row+block.Rows() > m.Rows() || col+block.Cols() > m.Cols() {
		check.Preconditionf(m.TypeName(), "SetBlock",
			"block of size %dx%d at (%d,%d) exceeds the matrix",
			block.Rows(), block.Cols(), row, col)
	}

	for r := range block.Rows() {
		for c := range block.Cols() {
			m.v[(row+r)*m.Cols()+col+c] = block.v[r*block.Cols()+c]
		}
	}
}

// MatConvert copies the overlapping top left part of m into a matrix of
// size R1 x C1. Entries not covered by m are zero.
func MatConvert[R1, C1 Size, S Scalar, R, C Size](m Mat[S, R, C]) Mat[S, R1, C1] {
	var result Mat[S, R1, C1]

	for row := range min(m.Rows(), result.Rows()) {
		for col := range min(m.Cols(), result.Cols()) {
			result.v[row*result.Cols()+col] = m.v[row*m.Cols()+col]
		}
	}

	return result
}

// MatInverse returns the inverse of a square matrix. It panics if the
// matrix is singular.
func MatInverse[S Float, N Size](m Mat[S, N, N]) Mat[S, N, N] {
	n := m.Rows()

	// gauss jordan elimination on [m | identity]
	var a, inv [MaxSize][MaxSize]float64
	for row := range n {
		for col := range n {
			a[row][col] = float64(m.v[row*n+col])
		}

		inv[row][row] = 1
	}

	for col := range n {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}

		if math.Abs(a[pivot][col]) < 1e-12 {
			check.Preconditionf(m.TypeName(), "Inverse", "matrix is singular")
		}

		a[col], a[pivot] = a[pivot], a[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		scale := 1 / a[col][col]
		for k := range n {
			a[col][k] *= scale
			inv[col][k] *= scale
		}

		for row := range n {
			if row == col {
				continue
			}

			factor := a[row][col]
			for k := range n {
				a[row][k] -= factor * a[col][k]
				inv[row][k] -= factor * inv[col][k]
			}
		}
	}

	var result Mat[S, N, N]
	for row := range n {
		for col := range n {
			result.v[row*n+col] = S(inv[row][col])
		}
	}

	return result
}

// Mat4Affine returns the homogeneous 4x4 matrix of the linear part m and the translation t.
func Mat4Affine(m Mat3, t Vec3) Mat4 {
	result := MatConvert[D4, D4](m)
	result.SetCol(3, V4(t.X(), t.Y(), t.Z(), 1))
	return result
}

// determinant computes the determinant of the n x n matrix by laplace
// expansion along the first row.
func determinant(values []float64, n int) float64 {
	switch n {
	case 1:
		return values[0]
	case 2:
		return values[0]*values[3] - values[1]*values[2]
	}

	var det float64
	var minor [(MaxSize - 1) * (MaxSize - 1)]float64

	sign := 1.0
	for skip := range n {
		var offset int
		for row := 1; row < n; row++ {
			for col := range n {
				if col == skip {
					continue
				}

				minor[offset] = values[row*n+col]
				offset++
			}
		}

		det += sign * values[skip] * determinant(minor[:offset], n-1)
		sign = -sign
	}

	return det
}
