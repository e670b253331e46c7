package draw

import (
	"fmt"
	"reflect"

	"github.com/oliverbestmann/vcl/gm"
)

// Uniforms holds the uniform values passed to a shader.
type Uniforms map[string]any

// Put sets the value of a uniform. Vectors, matrices, rotations and colors
// are converted to the float32 layouts expected by Kage. Matrices are
// passed in column major order.
func (u *Uniforms) Put(uniform string, value any) {
	if *u == nil {
		*u = Uniforms{}
	}

	(*u)[uniform] = toUniformValue(value)
}

// PutStruct sets one uniform per exported field of a struct value.
func (u *Uniforms) PutStruct(value any) {
	rv := reflect.ValueOf(value)
	ty := rv.Type()

	if ty.Kind() != reflect.Struct {
		panic(fmt.Errorf("PutStruct must be called with a struct type, got %s", ty.Kind()))
	}

	for idx := range rv.NumField() {
		field := ty.Field(idx)
		if field.Anonymous || !field.IsExported() {
			continue
		}

		u.Put(field.Name, rv.Field(idx).Interface())
	}
}

func toUniformValue(value any) any {
	switch value := value.(type) {
	case float64:
		return float32(value)

	case gm.Rad:
		return float32(value)

	case gm.Vec2:
		return []float32{value.X(), value.Y()}

	case gm.Vec3:
		return []float32{value.X(), value.Y(), value.Z()}

	case gm.Vec4:
		return []float32{value.X(), value.Y(), value.Z(), value.W()}

	case gm.Mat3:
		m := gm.Mat3ToMgl(value)
		return m[:]

	case gm.Mat4:
		m := gm.Mat4ToMgl(value)
		return m[:]

	case gm.Rotation:
		m := gm.Mat3ToMgl(value.Matrix())
		return m[:]

	case Color:
		r, g, b, a := value.PremultipliedValues()
		return []float32{r, g, b, a}

	default:
		return value
	}
}
