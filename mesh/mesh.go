// Package mesh provides a triangle mesh structure with per vertex attributes,
// primitive shape generators, curves and ray intersection tests.
package mesh

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/gm"
)

// Mesh is a triangle mesh storing per vertex attributes and the triangle
// connectivity. Position, Normal, Color and UV hold one value per vertex once
// FillEmptyFields was called. Each entry of Connectivity holds the three vertex
// indices of a triangle.
type Mesh struct {
	Position     buffer.Buffer[gm.Vec3]
	Normal       buffer.Buffer[gm.Vec3]
	Color        buffer.Buffer[gm.Vec3]
	UV           buffer.Buffer[gm.Vec2]
	Connectivity buffer.Buffer[gm.UInt3]
}

// White is the default vertex color.
var White = gm.V3(1, 1, 1)

func (m *Mesh) TypeName() string {
	return "Mesh"
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return m.Position.Len()
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return m.Connectivity.Len()
}

// FillEmptyFields completes all per vertex attributes that do not hold one
// value per vertex: normals are computed from the connectivity, colors are set
// to white and texture coordinates to zero.
func (m *Mesh) FillEmptyFields() *Mesh {
	count := m.Position.Len()

	if m.Normal.Len() != count {
		m.Normal = NormalPerVertex(m.Position, m.Connectivity, false)
	}

	if m.Color.Len() != count {
		m.Color.Resize(count)
		m.Color.Fill(White)
	}

	if m.UV.Len() != count {
		m.UV.ResizeClear(count)
	}

	return m
}

// PushBack appends the vertices and triangles of other to m. The indices of
// the appended triangles are shifted by the number of vertices in m.
func (m *Mesh) PushBack(other Mesh) *Mesh {
	m.FillEmptyFields()

	other = other.Clone()
	other.FillEmptyFields()

	offset := uint32(m.Position.Len())

	m.Position.PushAll(other.Position)
	m.Normal.PushAll(other.Normal)
	m.Color.PushAll(other.Color)
	m.UV.PushAll(other.UV)

	for triangle := range other.Connectivity.Values() {
		m.Connectivity.Push(triangle.AddScalar(offset))
	}

	return m
}

// FlipConnectivity reverses the orientation of all triangles.
func (m *Mesh) FlipConnectivity() *Mesh {
	for idx, triangle := range m.Connectivity.All() {
		m.Connectivity.SetUnchecked(idx, gm.Vec3Of(triangle.X(), triangle.Z(), triangle.Y()))
	}

	return m
}

// ComputeNormal recomputes the per vertex normals from the connectivity.
func (m *Mesh) ComputeNormal() *Mesh {
	NormalPerVertexInto(m.Position, m.Connectivity, &m.Normal, false)
	return m
}

// SetColor sets the color of all vertices.
func (m *Mesh) SetColor(color gm.Vec3) *Mesh {
	m.Color.Resize(m.Position.Len())
	m.Color.Fill(color)
	return m
}

// Apply transforms positions and normals by tr.
func (m *Mesh) Apply(tr gm.AffineRTS) *Mesh {
	for idx, position := range m.Position.All() {
		m.Position.SetUnchecked(idx, tr.Apply(position))
	}

	for idx, normal := range m.Normal.All() {
		m.Normal.SetUnchecked(idx, tr.Rotation.Apply(normal))
	}

	return m
}

// Bounds returns the bounding box of all vertex positions.
func (m *Mesh) Bounds() gm.Box {
	return gm.BoxOf(m.Position.Data()...)
}

// Clone returns a deep copy of the mesh.
func (m Mesh) Clone() Mesh {
	return Mesh{
		Position:     m.Position.Clone(),
		Normal:       m.Normal.Clone(),
		Color:        m.Color.Clone(),
		UV:           m.UV.Clone(),
		Connectivity: m.Connectivity.Clone(),
	}
}

// Validate checks that the mesh is coherent: all attributes hold one value per
// vertex, all indices address a vertex and no triangle is degenerate.
func (m *Mesh) Validate() error {
	var errs []error

	count := m.Position.Len()

	sizes := []struct {
		Name string
		Len  int
	}{
		{"normal", m.Normal.Len()},
		{"color", m.Color.Len()},
		{"uv", m.UV.Len()},
	}

	for _, size := range sizes {
		if size.Len != count {
			errs = append(errs, fmt.Errorf("%s holds %d values for %d vertices", size.Name, size.Len, count))
		}
	}

	for idx, triangle := range m.Connectivity.All() {
		a, b, c := triangle.X(), triangle.Y(), triangle.Z()

		if int(a) >= count || int(b) >= count || int(c) >= count {
			errs = append(errs, fmt.Errorf("triangle %d references %s, but there are %d vertices", idx, triangle, count))
			continue
		}

		if a == b || b == c || a == c {
			errs = append(errs, fmt.Errorf("triangle %d repeats a vertex: %s", idx, triangle))
			continue
		}

		p0, p1, p2 := m.Position.AtUnchecked(int(a)), m.Position.AtUnchecked(int(b)), m.Position.AtUnchecked(int(c))
		if gm.Cross(p1.Sub(p0), p2.Sub(p0)).Norm() < 1e-12 {
			errs = append(errs, fmt.Errorf("triangle %d has zero area", idx))
		}
	}

	return errors.Join(errs...)
}

func (m Mesh) String() string {
	return fmt.Sprintf("mesh(vertices=%d, triangles=%d)", m.Position.Len(), m.Connectivity.Len())
}

// NormalPerVertex computes a normal per vertex by averaging the normals of
// all adjacent triangles.
func NormalPerVertex(position buffer.Buffer[gm.Vec3], connectivity buffer.Buffer[gm.UInt3], invert bool) buffer.Buffer[gm.Vec3] {
	var normals buffer.Buffer[gm.Vec3]
	NormalPerVertexInto(position, connectivity, &normals, invert)
	return normals
}

// NormalPerVertexInto works like NormalPerVertex but reuses the storage of normals.
func NormalPerVertexInto(position buffer.Buffer[gm.Vec3], connectivity buffer.Buffer[gm.UInt3], normals *buffer.Buffer[gm.Vec3], invert bool) {
	normals.ResizeClear(position.Len())

	for triangle := range connectivity.Values() {
		a, b, c := int(triangle.X()), int(triangle.Y()), int(triangle.Z())

		p0, p1, p2 := position.At(a), position.At(b), position.At(c)

		n := gm.Cross(p1.Sub(p0), p2.Sub(p0))
		norm := n.Norm()
		if norm < 1e-12 {
			// degenerated triangle
			continue
		}

		n = n.Div(norm)
		for _, idx := range [3]int{a, b, c} {
			*normals.Ptr(idx) = normals.AtUnchecked(idx).Add(n)
		}
	}

	for idx, n := range normals.All() {
		norm := n.Norm()
		if norm < gm.NormalizeThreshold {
			// vertex without adjacent triangles
			normals.SetUnchecked(idx, gm.V3(0, 0, 1))
			continue
		}

		if invert {
			norm = -norm
		}

		normals.SetUnchecked(idx, n.Div(norm))
	}
}

// ConnectivityOneRing returns for each vertex the indices of all vertices that
// share an edge with it.
func ConnectivityOneRing(connectivity buffer.Buffer[gm.UInt3]) buffer.Buffer[buffer.Buffer[uint32]] {
	var vertexCount int
	for triangle := range connectivity.Values() {
		vertexCount = max(vertexCount, int(triangle.MaxComponent())+1)
	}

	rings := buffer.WithSize[buffer.Buffer[uint32]](vertexCount)

	addNeighbor := func(vertex, neighbor uint32) {
		ring := rings.Ptr(int(vertex))
		for existing := range ring.Values() {
			if existing == neighbor {
				return
			}
		}

		ring.Push(neighbor)
	}

	for triangle := range connectivity.Values() {
		for k := range 3 {
			a := triangle.At(k)
			b := triangle.At((k + 1) % 3)

			addNeighbor(a, b)
			addNeighbor(b, a)
		}
	}

	return rings
}
