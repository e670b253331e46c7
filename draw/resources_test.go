package draw

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/vcl/gm"
)

func TestDecodeImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := DecodeImage(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	r, _, _, _ := img.At(1, 1).RGBA()
	require.Equal(t, uint32(0xffff), r)

	_, err = DecodeImage(bytes.NewReader([]byte("not an image")))
	require.ErrorContains(t, err, "decode image")
}

func TestCached(t *testing.T) {
	var values map[string]int

	var calls int
	load := func() (int, error) {
		calls++
		return 42, nil
	}

	value, err := cached(&values, "textures/../earth.png", load)
	require.NoError(t, err)
	require.Equal(t, 42, value)

	value, err = cached(&values, "earth.png", load)
	require.NoError(t, err)
	require.Equal(t, 42, value)
	require.Equal(t, 1, calls)

	_, err = cached(&values, "missing.png", func() (int, error) { return 0, errors.New("missing") })
	require.Error(t, err)
	require.NotContains(t, values, "missing.png")
}

func TestUniforms_Put(t *testing.T) {
	var uniforms Uniforms

	uniforms.Put("Time", 1.5)
	uniforms.Put("Light", gm.V3(1, 2, 3))
	uniforms.Put("Tint", RGBA(1, 1, 1, 0.5))
	uniforms.Put("Count", 3)

	require.Equal(t, float32(1.5), uniforms["Time"])
	require.Equal(t, []float32{1, 2, 3}, uniforms["Light"])
	require.Equal(t, []float32{0.5, 0.5, 0.5, 0.5}, uniforms["Tint"])
	require.Equal(t, 3, uniforms["Count"])
}

func TestUniforms_PutMatrixColumnMajor(t *testing.T) {
	var uniforms Uniforms

	m := gm.MatIdentity[float32, gm.D4, gm.D4]()
	m.Set(0, 3, 7)

	uniforms.Put("Model", m)

	values := uniforms["Model"].([]float32)
	require.Len(t, values, 16)
	require.Equal(t, float32(7), values[12])
}

func TestUniforms_PutStruct(t *testing.T) {
	var uniforms Uniforms

	uniforms.PutStruct(struct {
		Eye    gm.Vec3
		Scale  float32
		hidden int
	}{Eye: gm.V3(0, 0, 5), Scale: 2})

	require.Equal(t, []float32{0, 0, 5}, uniforms["Eye"])
	require.Equal(t, float32(2), uniforms["Scale"])
	require.NotContains(t, uniforms, "hidden")

	require.Panics(t, func() { uniforms.PutStruct(3) })
}
