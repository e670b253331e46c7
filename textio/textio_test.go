package textio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/gm"
)

func TestParseScalar(t *testing.T) {
	f, err := ParseScalar[float32]("1.5")
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f)

	i, err := ParseScalar[int32]("-12")
	require.NoError(t, err)
	require.Equal(t, int32(-12), i)

	_, err = ParseScalar[uint32]("-1")
	require.Error(t, err)

	_, err = ParseScalar[int8]("300")
	require.Error(t, err)
}

func TestReadBuffer(t *testing.T) {
	values, err := ReadBuffer[float32](strings.NewReader("1 2.5\n -3\t4e1 \n"))
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2.5, -3, 40}, values.Data())

	empty, err := ReadBuffer[int](strings.NewReader("  \n"))
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	_, err = ReadBuffer[int](strings.NewReader("1 2 x 4"))
	require.ErrorContains(t, err, `parse value 2 "x"`)
}

func TestReadVec(t *testing.T) {
	vec, err := ReadVec[float32, gm.D3](strings.NewReader("1 2 3 4"))
	require.NoError(t, err)
	require.Equal(t, gm.V3(1, 2, 3), vec)

	_, err = ReadVec[float32, gm.D3](strings.NewReader("1 2"))
	require.ErrorIs(t, err, ErrTooFewValues)
}

func TestReadVecBuffer(t *testing.T) {
	positions, err := ReadVecBuffer[float32, gm.D3](strings.NewReader("0 0 0\n1 0 0\n0 1 0\n"))
	require.NoError(t, err)
	require.Equal(t, []gm.Vec3{gm.V3(0, 0, 0), gm.V3(1, 0, 0), gm.V3(0, 1, 0)}, positions.Data())

	_, err = ReadVecBuffer[float32, gm.D3](strings.NewReader("0 0 0\n1 0\n"))
	require.ErrorIs(t, err, ErrTooFewValues)
}

func TestReadMat(t *testing.T) {
	m, err := ReadMat[int, gm.D2, gm.D3](strings.NewReader("1 2 3\n4 5 6\n"))
	require.NoError(t, err)
	require.Equal(t, gm.MatFromRows[int, gm.D2, gm.D3](
		gm.Vec3Of(1, 2, 3),
		gm.Vec3Of(4, 5, 6),
	), m)

	_, err = ReadMat[int, gm.D2, gm.D2](strings.NewReader("1 2 3"))
	require.ErrorIs(t, err, ErrTooFewValues)
}

func TestReadBufferLines(t *testing.T) {
	lines, err := ReadBufferLines[int](strings.NewReader("1 2 3\n\n4\n5 6"))
	require.NoError(t, err)
	require.Equal(t, 3, lines.Len())
	require.Equal(t, []int{1, 2, 3}, lines.At(0).Data())
	require.Equal(t, []int{4}, lines.At(1).Data())
	require.Equal(t, []int{5, 6}, lines.At(2).Data())

	_, err = ReadBufferLines[int](strings.NewReader("1 2\n3 y\n"))
	require.ErrorContains(t, err, "line 2")
}

func TestReadGrid2D(t *testing.T) {
	g, err := ReadGrid2D[float32](strings.NewReader("0 1 2\n3 4 5\n"))
	require.NoError(t, err)

	n1, n2 := g.Dimension()
	require.Equal(t, 3, n1)
	require.Equal(t, 2, n2)
	require.Equal(t, float32(5), g.At(2, 1))
	require.Equal(t, float32(1), g.At(1, 0))

	_, err = ReadGrid2D[float32](strings.NewReader("0 1 2\n3 4\n"))
	require.ErrorContains(t, err, "row 1 has 2 values, expected 3")
}

func TestReadGrid2D_LongRows(t *testing.T) {
	const n1 = 12000

	row := strings.TrimSpace(strings.Repeat("0.123456 ", n1))
	require.Greater(t, len(row), 64*1024)

	g, err := ReadGrid2D[float32](strings.NewReader(row + "\n" + row + "\n"))
	require.NoError(t, err)

	width, height := g.Dimension()
	require.Equal(t, n1, width)
	require.Equal(t, 2, height)
	require.Equal(t, float32(0.123456), g.At(n1-1, 1))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n"), 0o644))

	require.True(t, FileExists(path))

	values, err := ReadFile(path, ReadBuffer[int])
	require.NoError(t, err)
	require.Equal(t, buffer.Of(1, 2, 3).Data(), values.Data())
}

func TestReadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	require.False(t, FileExists(path))

	_, err := ReadFile(path, ReadBuffer[int])
	require.ErrorIs(t, err, ErrFileNotFound)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorContains(t, err, "working directory")
}
