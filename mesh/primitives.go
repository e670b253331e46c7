package mesh

import (
	"math"

	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
)

const typeName = "mesh"

var unitZ = gm.V3(0, 0, 1)

func tri(a, b, c int) gm.UInt3 {
	return gm.Vec3Of(uint32(a), uint32(b), uint32(c))
}

func requireSamples(op string, name string, value, minimum int) {
	if value < minimum {
		check.Preconditionf(typeName, op, "%s must be at least %d, got %d", name, minimum, value)
	}
}

func requirePositive(op string, name string, value float32) {
	if !(value > 0) {
		check.Preconditionf(typeName, op, "%s must be positive, got %g", name, value)
	}
}

// ConnectivityGrid returns the triangles of a regular grid of nu x nv vertices
// where vertex (ku, kv) is stored at index kv + nv*ku.
func ConnectivityGrid(nu, nv int) buffer.Buffer[gm.UInt3] {
	var connectivity buffer.Buffer[gm.UInt3]

	for ku := 0; ku < nu-1; ku++ {
		for kv := 0; kv < nv-1; kv++ {
			k00 := kv + nv*ku
			k10 := kv + 1 + nv*ku
			k01 := kv + nv*(ku+1)
			k11 := kv + 1 + nv*(ku+1)

			connectivity.Push(tri(k00, k10, k11))
			connectivity.Push(tri(k00, k11, k01))
		}
	}

	return connectivity
}

// Triangle returns a single triangle with a flat normal.
func Triangle(p0, p1, p2 gm.Vec3) Mesh {
	n := gm.Cross(p1.Sub(p0).Normalized(), p2.Sub(p0).Normalized()).Normalized()

	return Mesh{
		Position:     buffer.Of(p0, p1, p2),
		Normal:       buffer.Of(n, n, n),
		Color:        buffer.Of(White, White, White),
		UV:           buffer.Of(gm.V2(0, 0), gm.V2(0, 1), gm.V2(1, 0)),
		Connectivity: buffer.Of(tri(0, 1, 2)),
	}
}

// Quadrangle returns a quad made of the triangles (p00, p10, p11) and (p00, p11, p01).
func Quadrangle(p00, p10, p11, p01 gm.Vec3) Mesh {
	corner := func(p, next, prev gm.Vec3) gm.Vec3 {
		return gm.Cross(next.Sub(p).Normalized(), prev.Sub(p).Normalized()).Normalized()
	}

	return Mesh{
		Position: buffer.Of(p00, p10, p11, p01),
		Normal: buffer.Of(
			corner(p00, p10, p01),
			corner(p10, p11, p00),
			corner(p11, p01, p10),
			corner(p01, p00, p11),
		),
		Color:        buffer.Of(White, White, White, White),
		UV:           buffer.Of(gm.V2(0, 0), gm.V2(1, 0), gm.V2(1, 1), gm.V2(0, 1)),
		Connectivity: buffer.Of(tri(0, 1, 2), tri(0, 2, 3)),
	}
}

// Disc returns a flat disc made of n rim vertices around a center vertex.
// The disc faces the direction of normal, which must be a unit vector.
func Disc(radius float32, center, normal gm.Vec3, n int) Mesh {
	requirePositive("Disc", "radius", radius)
	requireSamples("Disc", "n", n, 3)

	r := gm.RotationBetween(unitZ, normal)

	var shape Mesh
	for k := range n {
		u := float32(k) / float32(n-1)
		sin, cos := gm.Rad(2 * math.Pi * u).SinCos()

		shape.Position.Push(r.Apply(gm.V3(cos, sin, 0).Mul(radius)).Add(center))
		shape.Normal.Push(normal)
		shape.UV.Push(gm.V2(0.5*cos+0.5, 0.5*sin+0.5))
	}

	// center vertex
	shape.Position.Push(center)
	shape.Normal.Push(normal)
	shape.UV.Push(gm.V2(0.5, 0.5))

	for k := range n - 1 {
		shape.Connectivity.Push(tri(n, k, k+1))
	}

	shape.FillEmptyFields()
	return shape
}

// Sphere returns a UV sphere with nu samples around and nv samples along the
// poles axis. Each pole is closed by a fan of triangles.
func Sphere(radius float32, center gm.Vec3, nu, nv int) Mesh {
	requirePositive("Sphere", "radius", radius)
	requireSamples("Sphere", "nu", nu, 3)
	requireSamples("Sphere", "nv", nv, 3)

	var shape Mesh

	for ku := range nu {
		for kv := range nv {
			u := float32(ku) / float32(nu-1)
			alpha := float32(kv) / float32(nv-1)
			v := (1-alpha)/float32(nv+1) + alpha*float32(nv)/float32(nv+1)

			sinTheta, cosTheta := gm.Rad(2 * math.Pi * (u - 0.5)).SinCos()
			sinPhi, cosPhi := gm.Rad(math.Pi * (v - 0.5)).SinCos()

			n := gm.V3(cosPhi*cosTheta, cosPhi*sinTheta, sinPhi)

			shape.Position.Push(n.Mul(radius).Add(center))
			shape.Normal.Push(n)
			shape.UV.Push(gm.V2(u, v))
		}
	}

	shape.Connectivity = ConnectivityGrid(nu, nv)

	// south pole
	for ku := range nu - 1 {
		shape.Position.Push(center.Add(gm.V3(0, 0, -radius)))
		shape.Normal.Push(gm.V3(0, 0, -1))
		shape.UV.Push(gm.V2(float32(ku)/float32(nu-1), 0))
	}

	for ku := range nu - 1 {
		shape.Connectivity.Push(tri(nu*nv+ku, nv*ku, nv*(ku+1)))
	}

	// north pole
	for ku := range nu - 1 {
		shape.Position.Push(center.Add(gm.V3(0, 0, radius)))
		shape.Normal.Push(gm.V3(0, 0, 1))
		shape.UV.Push(gm.V2(float32(ku)/float32(nu-1), 1))
	}

	for ku := range nu - 1 {
		shape.Connectivity.Push(tri(nu*nv+nu-1+ku, nv-1+nv*(ku+1), nv-1+nv*ku))
	}

	shape.FillEmptyFields()
	shape.FlipConnectivity()

	return shape
}

// Cylinder returns a cylinder of the given radius around the segment p0-p1,
// sampled nu times along the segment and nv times around it. If closed is set,
// both ends are closed by a disc.
func Cylinder(radius float32, p0, p1 gm.Vec3, nu, nv int, closed bool) Mesh {
	requirePositive("Cylinder", "radius", radius)
	requireSamples("Cylinder", "nu", nu, 2)
	requireSamples("Cylinder", "nv", nv, 3)

	axis := p1.Sub(p0)
	length := axis.Norm()
	if length < gm.NormalizeThreshold {
		check.Preconditionf(typeName, "Cylinder", "extremities %s and %s are too close", p0, p1)
	}

	dir := axis.Div(length)
	r := gm.RotationBetween(unitZ, dir)

	var shape Mesh

	for ku := range nu {
		for kv := range nv {
			u := float32(ku) / float32(nu-1)
			v := float32(kv) / float32(nv-1)

			sin, cos := gm.Rad(2 * math.Pi * v).SinCos()

			q := gm.V3(radius*cos, radius*sin, length*u)

			shape.Position.Push(r.Apply(q).Add(p0))
			shape.Normal.Push(r.Apply(gm.V3(cos, sin, 0)))
			shape.UV.Push(gm.V2(u, v))
		}
	}

	shape.Connectivity = ConnectivityGrid(nu, nv)
	shape.FillEmptyFields()

	if closed {
		bottom := Disc(radius, p0, dir, nv)
		shape.PushBack(*bottom.FlipConnectivity())
		shape.PushBack(Disc(radius, p1, dir, nv))
	}

	return shape
}

// Grid returns a bilinear patch between the four corners sampled nu x nv times.
func Grid(p00, p10, p11, p01 gm.Vec3, nu, nv int) Mesh {
	requireSamples("Grid", "nu", nu, 2)
	requireSamples("Grid", "nv", nv, 2)

	var shape Mesh

	for ku := range nu {
		for kv := range nv {
			u := float32(ku) / float32(nu-1)
			v := float32(kv) / float32(nv-1)

			p := p00.Mul((1 - u) * (1 - v)).
				Add(p10.Mul(u * (1 - v))).
				Add(p11.Mul(u * v)).
				Add(p01.Mul((1 - u) * v))

			dpdu := p10.Sub(p00).Mul(1 - v).Add(p11.Sub(p01).Mul(v))
			dpdv := p01.Sub(p00).Mul(1 - u).Add(p11.Sub(p10).Mul(u))

			shape.Position.Push(p)
			shape.Normal.Push(gm.Cross(dpdu, dpdv).Normalized())
			shape.UV.Push(gm.V2(u, v))
		}
	}

	shape.Connectivity = ConnectivityGrid(nu, nv)
	shape.FillEmptyFields()
	shape.FlipConnectivity()

	return shape
}

// Torus returns a torus with major radius majorRadius and tube radius
// minorRadius around the given axis.
func Torus(majorRadius, minorRadius float32, center, axis gm.Vec3, nu, nv int) Mesh {
	requirePositive("Torus", "majorRadius", majorRadius)
	requirePositive("Torus", "minorRadius", minorRadius)
	requireSamples("Torus", "nu", nu, 3)
	requireSamples("Torus", "nv", nv, 3)

	r := gm.RotationBetween(unitZ, axis)

	var shape Mesh

	for ku := range nu {
		for kv := range nv {
			u := float32(ku) / float32(nu-1)
			v := float32(kv) / float32(nv-1)

			sinTheta, cosTheta := gm.Rad(2 * math.Pi * v).SinCos()
			sinPhi, cosPhi := gm.Rad(2 * math.Pi * u).SinCos()

			a := majorRadius + minorRadius*cosTheta
			q := gm.V3(a*cosPhi, a*sinPhi, minorRadius*sinTheta)

			dPhi := gm.V3(-a*sinPhi, a*cosPhi, 0)
			dTheta := gm.V3(-minorRadius*sinTheta*cosPhi, -minorRadius*sinTheta*sinPhi, minorRadius*cosTheta)
			n := gm.Cross(dPhi, dTheta).Normalized()

			shape.Position.Push(r.Apply(q).Add(center))
			shape.Normal.Push(r.Apply(n))
			shape.UV.Push(gm.V2(u, v))
		}
	}

	shape.Connectivity = ConnectivityGrid(nu, nv)
	shape.FillEmptyFields()

	return shape
}

// Cone returns a cone with its base disc centered at base and its tip at
// base + height*axis. The cone is sampled nu times around and nv times along
// the axis. If closed is set, the base is closed by a disc.
func Cone(radius, height float32, base, axis gm.Vec3, nu, nv int, closed bool) Mesh {
	requirePositive("Cone", "radius", radius)
	requirePositive("Cone", "height", height)
	requireSamples("Cone", "nu", nu, 3)
	requireSamples("Cone", "nv", nv, 2)

	r := gm.RotationBetween(unitZ, axis)

	var shape Mesh

	for ku := range nu {
		for kv := range nv {
			u := float32(ku) / float32(nu-1)
			v := float32(kv) / float32(nv)

			sin, cos := gm.Rad(2 * math.Pi * u).SinCos()

			rr := radius * (1 - v)
			q := gm.V3(rr*cos, rr*sin, height*v)
			n := gm.V3(cos, sin, radius/height).Normalized()

			shape.Position.Push(r.Apply(q).Add(base))
			shape.Normal.Push(r.Apply(n))
			shape.UV.Push(gm.V2((1-v)*cos*0.5+0.5, (1-v)*sin*0.5+0.5))
		}
	}

	shape.Connectivity = ConnectivityGrid(nu, nv)
	shape.FlipConnectivity()

	// the tip is duplicated per sector to keep a normal per sector
	tip := r.Apply(gm.V3(0, 0, height)).Add(base)
	for ku := range nu - 1 {
		u := float32(ku) / float32(nu-1)
		sin, cos := gm.Rad(2 * math.Pi * u).SinCos()

		shape.Position.Push(tip)
		shape.Normal.Push(r.Apply(gm.V3(cos, sin, radius/height).Normalized()))
		shape.UV.Push(gm.V2(0.5, 0.5))
	}

	for ku := range nu - 1 {
		shape.Connectivity.Push(tri(nv*ku+nv-1, nv*(ku+1)+nv-1, nu*nv+ku))
	}

	shape.FillEmptyFields()

	if closed {
		disc := Disc(radius, base, axis, nu)
		shape.PushBack(*disc.FlipConnectivity())
	}

	return shape
}

// Cube returns an axis aligned cube as six independent quads, each face
// carrying its own normals.
func Cube(center gm.Vec3, edge float32) Mesh {
	requirePositive("Cube", "edge", edge)

	u := gm.VecSplat[float32, gm.D3](edge)
	p000 := center.Sub(u.Div(2))

	corner := func(x, y, z float32) gm.Vec3 {
		return p000.Add(u.MulEach(gm.V3(x, y, z)))
	}

	p100, p110, p010 := corner(1, 0, 0), corner(1, 1, 0), corner(0, 1, 0)
	p001, p101, p111, p011 := corner(0, 0, 1), corner(1, 0, 1), corner(1, 1, 1), corner(0, 1, 1)

	var shape Mesh

	shape.PushBack(Quadrangle(p000, p100, p101, p001))
	shape.PushBack(Quadrangle(p100, p110, p111, p101))
	shape.PushBack(Quadrangle(p110, p010, p011, p111))
	shape.PushBack(Quadrangle(p010, p000, p001, p011))
	shape.PushBack(Quadrangle(p001, p101, p111, p011))
	shape.PushBack(Quadrangle(p100, p000, p010, p110))

	return shape
}

// CubicGrid returns the surface of the hexahedron spanned by the eight corners
// where each face is a grid. The corners are ordered as p000, p100, p110, p010
// for the bottom face and p001, p101, p111, p011 for the top face.
func CubicGrid(p000, p100, p110, p010, p001, p101, p111, p011 gm.Vec3, nx, ny, nz int) Mesh {
	requireSamples("CubicGrid", "nx", nx, 2)
	requireSamples("CubicGrid", "ny", ny, 2)
	requireSamples("CubicGrid", "nz", nz, 2)

	var shape Mesh

	shape.PushBack(Grid(p000, p100, p101, p001, nx, nz))
	shape.PushBack(Grid(p100, p110, p111, p101, ny, nz))
	shape.PushBack(Grid(p110, p010, p011, p111, nx, nz))
	shape.PushBack(Grid(p010, p000, p001, p011, ny, nz))
	shape.PushBack(Grid(p001, p101, p111, p011, nx, ny))
	shape.PushBack(Grid(p100, p000, p010, p110, nx, ny))

	return shape
}

// Tetrahedron returns the four faces of the tetrahedron p0 p1 p2 p3 as
// independent triangles. The faces are oriented outwards if p3 lies on the
// positive side of the triangle (p0, p1, p2).
func Tetrahedron(p0, p1, p2, p3 gm.Vec3) Mesh {
	var shape Mesh

	shape.PushBack(Triangle(p0, p2, p1))
	shape.PushBack(Triangle(p0, p1, p3))
	shape.PushBack(Triangle(p1, p2, p3))
	shape.PushBack(Triangle(p2, p0, p3))

	return shape
}

// ArrowOptions configures the shape of an arrow.
type ArrowOptions struct {
	CylinderRadius float32

	// ConeLengthScale is the length of the cone relative to the cylinder radius.
	ConeLengthScale float32

	// ConeRadiusScale is the radius of the cone relative to the cylinder radius.
	ConeRadiusScale float32

	// Samples is the number of samples around the arrow.
	Samples int
}

// DefaultArrowOptions returns options for an arrow with the given cylinder radius.
func DefaultArrowOptions(cylinderRadius float32) ArrowOptions {
	return ArrowOptions{
		CylinderRadius:  cylinderRadius,
		ConeLengthScale: 4,
		ConeRadiusScale: 2.5,
		Samples:         20,
	}
}

// Arrow returns an arrow from p0 to p1 made of a cylinder and a closed cone at p1.
func Arrow(p0, p1 gm.Vec3, opts ArrowOptions) Mesh {
	requirePositive("Arrow", "CylinderRadius", opts.CylinderRadius)
	requireSamples("Arrow", "Samples", opts.Samples, 3)

	coneLength := opts.ConeLengthScale * opts.CylinderRadius
	coneRadius := opts.ConeRadiusScale * opts.CylinderRadius

	length := p0.DistanceTo(p1)
	if !(coneLength < length) {
		check.Preconditionf(typeName, "Arrow",
			"the cone of length %g does not fit into the arrow of length %g", coneLength, length)
	}

	u := p1.Sub(p0).Div(length)
	coneBase := p1.Sub(u.Mul(coneLength))

	shape := Cone(coneRadius, coneLength, coneBase, u, opts.Samples, 2, true)
	shape.PushBack(Cylinder(opts.CylinderRadius, p0, coneBase, 2, opts.Samples, false))

	return shape
}

// FrameOptions configures the look of a coordinate frame.
type FrameOptions struct {
	Scale     float32
	Thickness float32

	ColorX      gm.Vec3
	ColorY      gm.Vec3
	ColorZ      gm.Vec3
	ColorCenter gm.Vec3
}

// DefaultFrameOptions returns a unit frame with red, green and blue axes.
func DefaultFrameOptions() FrameOptions {
	return FrameOptions{
		Scale:       1,
		Thickness:   0.02,
		ColorX:      gm.V3(1, 0, 0),
		ColorY:      gm.V3(0, 1, 0),
		ColorZ:      gm.V3(0, 0, 1),
		ColorCenter: gm.V3(1, 1, 1),
	}
}

// Frame returns three colored arrows along the axes of frame and a sphere at its origin.
func Frame(frame gm.AffineRT, opts FrameOptions) Mesh {
	requirePositive("Frame", "Scale", opts.Scale)
	requirePositive("Frame", "Thickness", opts.Thickness)

	origin := frame.Translation
	arrowOpts := DefaultArrowOptions(opts.Thickness * opts.Scale)

	axis := func(dir, color gm.Vec3) Mesh {
		arrow := Arrow(origin, origin.Add(dir.Mul(opts.Scale)), arrowOpts)
		arrow.SetColor(color)
		return arrow
	}

	var shape Mesh

	shape.PushBack(axis(frame.Ux(), opts.ColorX))
	shape.PushBack(axis(frame.Uy(), opts.ColorY))
	shape.PushBack(axis(frame.Uz(), opts.ColorZ))

	center := Sphere(2.5*opts.Thickness*opts.Scale, origin, 40, 20)
	center.SetColor(opts.ColorCenter)
	shape.PushBack(center)

	return shape
}
