package mesh

import (
	"github.com/chewxy/math32"
	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/gm"
)

// Intersection describes the first hit of a ray with a shape.
type Intersection struct {
	Valid    bool
	Position gm.Vec3
	Normal   gm.Vec3

	// Distance is the ray parameter at the hit point.
	Distance float32
}

func noIntersection() Intersection {
	return Intersection{Normal: gm.V3(0, 0, 1)}
}

// RaySphere intersects the ray starting at origin with unit direction dir with
// a sphere. Only hits in front of the origin are reported. If the origin lies
// within the sphere, the exit point is returned.
func RaySphere(origin, dir, center gm.Vec3, radius float32) Intersection {
	d := origin.Sub(center)
	b := dir.Dot(d)
	c := d.NormSqr() - radius*radius

	delta := b*b - c
	if delta < 0 {
		return noIntersection()
	}

	sqrtDelta := math32.Sqrt(delta)
	t0 := -b - sqrtDelta
	t1 := -b + sqrtDelta

	t := t1
	if t0 > 0 {
		t = t0
	}

	if t <= 0 {
		return noIntersection()
	}

	position := origin.Add(dir.Mul(t))

	return Intersection{
		Valid:    true,
		Position: position,
		Normal:   position.Sub(center).Normalized(),
		Distance: t,
	}
}

// RaySpheresClosest intersects the ray with all spheres of the given radius
// centered at centers and returns the index of the closest hit sphere.
// It returns -1 if no sphere is hit.
func RaySpheresClosest(origin, dir gm.Vec3, centers buffer.Buffer[gm.Vec3], radius float32) (Intersection, int) {
	closest := noIntersection()
	closestIdx := -1

	for idx, center := range centers.All() {
		hit := RaySphere(origin, dir, center, radius)
		if !hit.Valid {
			continue
		}

		if closestIdx == -1 || hit.Distance < closest.Distance {
			closest = hit
			closestIdx = idx
		}
	}

	return closest, closestIdx
}

// RayPlane intersects the ray with the plane through point with the given normal.
func RayPlane(origin, dir, point, normal gm.Vec3) Intersection {
	denom := dir.Dot(normal)
	if math32.Abs(denom) < 1e-6 {
		return noIntersection()
	}

	t := point.Sub(origin).Dot(normal) / denom
	if t <= 0 {
		return noIntersection()
	}

	return Intersection{
		Valid:    true,
		Position: origin.Add(dir.Mul(t)),
		Normal:   normal,
		Distance: t,
	}
}
