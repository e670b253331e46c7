package draw

import (
	"github.com/chewxy/math32"
	"github.com/oliverbestmann/vcl/gm"
)

// Phong holds the coefficients of the Phong illumination model.
type Phong struct {
	Ambient          float32
	Diffuse          float32
	Specular         float32
	SpecularExponent float32
}

// Shading configures the look of a mesh.
type Shading struct {
	// Color is multiplied with the per vertex colors.
	Color gm.Vec3
	Alpha float32

	UseTexture bool

	// TextureInverseY maps texture coordinate v=0 to the top of the texture
	// instead of the bottom.
	TextureInverseY bool

	Phong Phong
}

// DefaultShading returns an opaque white shading with a matte Phong model.
func DefaultShading() Shading {
	return Shading{
		Color:      gm.V3(1, 1, 1),
		Alpha:      1,
		UseTexture: true,
		Phong: Phong{
			Ambient:          0.3,
			Diffuse:          0.6,
			Specular:         0.3,
			SpecularExponent: 64,
		},
	}
}

// Shade computes the color of a surface point lit by a point light. Surfaces
// are lit from both sides, the normal is flipped towards the eye.
func (p Phong) Shade(color, position, normal, light, eye gm.Vec3) gm.Vec3 {
	n := normalizedOr(normal, gm.V3(0, 0, 1))
	l := normalizedOr(light.Sub(position), n)
	v := normalizedOr(eye.Sub(position), n)

	if n.Dot(v) < 0 {
		n = n.Neg()
	}

	diffuse := max(n.Dot(l), 0)

	var specular float32
	if diffuse > 0 {
		r := n.Mul(2 * n.Dot(l)).Sub(l)
		specular = math32.Pow(max(r.Dot(v), 0), p.SpecularExponent)
	}

	shaded := color.Mul(p.Ambient + p.Diffuse*diffuse).AddScalar(p.Specular * specular)
	return shaded.Clamp(0, 1)
}

func normalizedOr(v, fallback gm.Vec3) gm.Vec3 {
	norm := v.Norm()
	if norm < gm.NormalizeThreshold {
		return fallback
	}

	return v.Div(norm)
}
