package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
)

// requireOutward checks that all triangles are oriented away from center.
func requireOutward(t *testing.T, shape Mesh, center gm.Vec3) {
	t.Helper()

	for idx, triangle := range shape.Connectivity.All() {
		p0 := shape.Position.At(int(triangle.X()))
		p1 := shape.Position.At(int(triangle.Y()))
		p2 := shape.Position.At(int(triangle.Z()))

		n := gm.Cross(p1.Sub(p0), p2.Sub(p0))
		centroid := p0.Add(p1).Add(p2).Div(3)

		require.Greaterf(t, n.Dot(centroid.Sub(center)), float32(0),
			"triangle %d is oriented inwards", idx)
	}
}

func TestTriangle(t *testing.T) {
	shape := Triangle(gm.V3(0, 0, 0), gm.V3(2, 0, 0), gm.V3(0, 3, 0))

	require.NoError(t, shape.Validate())
	for normal := range shape.Normal.Values() {
		requireVecInDelta(t, gm.V3(0, 0, 1), normal, 1e-6)
	}
}

func TestQuadrangle(t *testing.T) {
	shape := Quadrangle(gm.V3(0, 0, 0), gm.V3(1, 0, 0), gm.V3(1, 1, 0), gm.V3(0, 1, 0))

	require.NoError(t, shape.Validate())
	require.Equal(t, 2, shape.TriangleCount())
	for normal := range shape.Normal.Values() {
		requireVecInDelta(t, gm.V3(0, 0, 1), normal, 1e-6)
	}
}

func TestDisc(t *testing.T) {
	center := gm.V3(1, 2, 3)
	shape := Disc(2, center, gm.V3(0, 1, 0), 12)

	require.NoError(t, shape.Validate())
	require.Equal(t, 13, shape.VertexCount())
	require.Equal(t, 11, shape.TriangleCount())

	for idx := range 12 {
		require.InDelta(t, 2, shape.Position.At(idx).DistanceTo(center), 1e-5)
	}

	// all triangles face the normal direction
	requireOutward(t, shape, center.Sub(gm.V3(0, 1, 0)))

	requireViolation(t, check.Precondition, func() { Disc(0, center, gm.V3(0, 0, 1), 12) })
	requireViolation(t, check.Precondition, func() { Disc(1, center, gm.V3(0, 0, 1), 2) })
}

func TestSphere(t *testing.T) {
	center := gm.V3(1, -1, 2)
	shape := Sphere(2, center, 12, 8)

	require.NoError(t, shape.Validate())
	require.Equal(t, 12*8+2*11, shape.VertexCount())
	require.Equal(t, 2*11*7+2*11, shape.TriangleCount())

	for idx, position := range shape.Position.All() {
		require.InDelta(t, 2, position.DistanceTo(center), 1e-5)
		requireVecInDelta(t, position.Sub(center).Div(2), shape.Normal.At(idx), 1e-5)
	}

	requireOutward(t, shape, center)

	requireViolation(t, check.Precondition, func() { Sphere(-1, center, 12, 8) })
	requireViolation(t, check.Precondition, func() { Sphere(1, center, 2, 8) })
}

func TestCylinder(t *testing.T) {
	p0, p1 := gm.V3(0, 0, 0), gm.V3(0, 2, 0)

	open := Cylinder(0.5, p0, p1, 4, 10, false)
	require.NoError(t, open.Validate())
	require.Equal(t, 40, open.VertexCount())

	for position := range open.Position.Values() {
		radial := gm.V3(position.X(), 0, position.Z())
		require.InDelta(t, 0.5, radial.Norm(), 1e-5)
	}

	closed := Cylinder(0.5, p0, p1, 4, 10, true)
	require.NoError(t, closed.Validate())
	require.Equal(t, 40+2*11, closed.VertexCount())
	requireOutward(t, closed, gm.V3(0, 1, 0))

	requireViolation(t, check.Precondition, func() { Cylinder(1, p0, p0, 4, 10, false) })
}

func TestGrid(t *testing.T) {
	shape := Grid(gm.V3(0, 0, 0), gm.V3(1, 0, 0), gm.V3(1, 1, 0), gm.V3(0, 1, 0), 4, 3)

	require.NoError(t, shape.Validate())
	require.Equal(t, 12, shape.VertexCount())
	require.Equal(t, 2*3*2, shape.TriangleCount())

	for normal := range shape.Normal.Values() {
		requireVecInDelta(t, gm.V3(0, 0, 1), normal, 1e-6)
	}

	requireOutward(t, shape, gm.V3(0.5, 0.5, -1))

	// vertex (ku, kv) is stored at kv + nv*ku
	requireVecInDelta(t, gm.V3(1.0/3, 0.5, 0), shape.Position.At(1+3*1), 1e-6)

	requireViolation(t, check.Precondition, func() {
		Grid(gm.V3(0, 0, 0), gm.V3(1, 0, 0), gm.V3(1, 1, 0), gm.V3(0, 1, 0), 1, 3)
	})
}

func TestTorus(t *testing.T) {
	center := gm.V3(0, 0, 1)
	shape := Torus(2, 0.5, center, gm.V3(0, 0, 1), 20, 10)

	require.NoError(t, shape.Validate())

	for position := range shape.Position.Values() {
		local := position.Sub(center)
		ring := gm.V3(local.X(), local.Y(), 0).Normalized().Mul(2)
		require.InDelta(t, 0.5, local.DistanceTo(ring), 1e-5)
	}
}

func TestCone(t *testing.T) {
	base := gm.V3(0, 0, 0)
	shape := Cone(1, 1, base, gm.V3(0, 0, 1), 16, 3, true)

	require.NoError(t, shape.Validate())
	require.Equal(t, 16*3+15+17, shape.VertexCount())
	requireOutward(t, shape, gm.V3(0, 0, 0.25))

	bounds := shape.Bounds()
	require.InDelta(t, 0, bounds.Min.Z(), 1e-6)
	require.InDelta(t, 1, bounds.Max.Z(), 1e-6)

	requireViolation(t, check.Precondition, func() { Cone(1, 0, base, gm.V3(0, 0, 1), 16, 3, true) })
}

func TestCube(t *testing.T) {
	center := gm.V3(1, 2, 3)
	shape := Cube(center, 2)

	require.NoError(t, shape.Validate())
	require.Equal(t, 24, shape.VertexCount())
	require.Equal(t, 12, shape.TriangleCount())
	requireOutward(t, shape, center)

	bounds := shape.Bounds()
	require.Equal(t, gm.V3(0, 1, 2), bounds.Min)
	require.Equal(t, gm.V3(2, 3, 4), bounds.Max)

	// each face has a flat normal pointing away from the center
	for idx, normal := range shape.Normal.All() {
		require.Greater(t, normal.Dot(shape.Position.At(idx).Sub(center)), float32(0))
	}
}

func TestCubicGrid(t *testing.T) {
	shape := CubicGrid(
		gm.V3(0, 0, 0), gm.V3(1, 0, 0), gm.V3(1, 1, 0), gm.V3(0, 1, 0),
		gm.V3(0, 0, 1), gm.V3(1, 0, 1), gm.V3(1, 1, 1), gm.V3(0, 1, 1),
		3, 4, 5,
	)

	require.NoError(t, shape.Validate())
	require.Equal(t, 2*(3*5+4*5+3*4), shape.VertexCount())
	requireOutward(t, shape, gm.V3(0.5, 0.5, 0.5))
}

func TestTetrahedron(t *testing.T) {
	shape := Tetrahedron(gm.V3(0, 0, 0), gm.V3(1, 0, 0), gm.V3(0, 1, 0), gm.V3(0, 0, 1))

	require.NoError(t, shape.Validate())
	require.Equal(t, 12, shape.VertexCount())
	requireOutward(t, shape, gm.V3(0.25, 0.25, 0.25))
}

func TestArrow(t *testing.T) {
	p0, p1 := gm.V3(0, 0, 0), gm.V3(2, 0, 0)
	shape := Arrow(p0, p1, DefaultArrowOptions(0.05))

	require.NoError(t, shape.Validate())

	bounds := shape.Bounds()
	require.InDelta(t, 0, bounds.Min.X(), 1e-5)
	require.InDelta(t, 2, bounds.Max.X(), 1e-5)

	// nothing extends beyond the radius of the cone
	for position := range shape.Position.Values() {
		radial := gm.V3(0, position.Y(), position.Z())
		require.LessOrEqual(t, radial.Norm(), float32(0.125+1e-5))
	}

	violation := requireViolation(t, check.Precondition, func() {
		Arrow(p0, gm.V3(0.3, 0, 0), DefaultArrowOptions(0.1))
	})
	require.Contains(t, violation.Message, "does not fit")
}

func TestFrame(t *testing.T) {
	shape := Frame(gm.IdentityRT(), DefaultFrameOptions())
	require.NoError(t, shape.Validate())

	// the first arrow points along x and is red
	require.Equal(t, gm.V3(1, 0, 0), shape.Color.At(0))
	require.Equal(t, gm.V3(1, 1, 1), shape.Color.Back())

	bounds := shape.Bounds()
	require.InDelta(t, 1, bounds.Max.X(), 1e-5)
	require.InDelta(t, 1, bounds.Max.Y(), 1e-5)
	require.InDelta(t, 1, bounds.Max.Z(), 1e-5)
}

func TestCircle(t *testing.T) {
	center := gm.V3(1, 1, 0)
	points := Circle(2, center, gm.V3(0, 0, 1), 5)

	require.Equal(t, 5, points.Len())
	requireVecInDelta(t, gm.V3(3, 1, 0), points.Front(), 1e-6)
	requireVecInDelta(t, points.Front(), points.Back(), 1e-5)
	requireVecInDelta(t, gm.V3(1, 3, 0), points.At(1), 1e-5)

	for point := range points.Values() {
		require.InDelta(t, 2, point.DistanceTo(center), 1e-5)
	}

	require.InDelta(t, 4*2*1.41421356, CurveLength(points), 1e-4)
	require.Equal(t, 8, CurveSegments(points).Len())
}
