package mesh

import (
	"github.com/chewxy/math32"
	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/gm"
)

// Circle samples n points on a circle of the given radius. The circle lies in
// the plane through center orthogonal to normal. The first and last sample coincide.
func Circle(radius float32, center, normal gm.Vec3, n int) buffer.Buffer[gm.Vec3] {
	requireSamples("Circle", "n", n, 3)

	r := gm.RotationBetween(unitZ, normal)

	points := buffer.WithSize[gm.Vec3](n)
	for k := range n {
		u := float32(k) / float32(n-1)
		sin, cos := math32.Sincos(2 * math32.Pi * u)

		points.SetUnchecked(k, r.Apply(gm.V3(cos, sin, 0).Mul(radius)).Add(center))
	}

	return points
}

// CurveLength returns the length of the polyline through points.
func CurveLength(points buffer.Buffer[gm.Vec3]) float32 {
	var length float32
	for idx := 1; idx < points.Len(); idx++ {
		length += points.AtUnchecked(idx - 1).DistanceTo(points.AtUnchecked(idx))
	}

	return length
}

// CurveSegments returns the line segments of the polyline through points as
// consecutive pairs of points.
func CurveSegments(points buffer.Buffer[gm.Vec3]) buffer.Buffer[gm.Vec3] {
	var segments buffer.Buffer[gm.Vec3]
	for idx := 1; idx < points.Len(); idx++ {
		segments.Push(points.AtUnchecked(idx - 1))
		segments.Push(points.AtUnchecked(idx))
	}

	return segments
}
