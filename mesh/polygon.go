package mesh

import (
	"slices"

	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/gm"
)

// TriangulatePolygon splits a simple polygon into triangles by ear clipping.
// The outline may be given in either orientation, the triangles are always
// counter clockwise. Holes are not supported.
func TriangulatePolygon(outline buffer.Buffer[gm.Vec2]) buffer.Buffer[gm.UInt3] {
	requireSamples("TriangulatePolygon", "outline", outline.Len(), 3)

	points := outline.Data()

	ring := make([]int, len(points))
	for idx := range ring {
		ring[idx] = idx
	}

	if signedArea(points) < 0 {
		slices.Reverse(ring)
	}

	var triangles buffer.Buffer[gm.UInt3]

	for len(ring) > 3 {
		m := len(ring)

		clipped := false
		for k := range ring {
			a, b, c := ring[(k+m-1)%m], ring[k], ring[(k+1)%m]
			if !isEar(points, ring, a, b, c) {
				continue
			}

			triangles.Push(tri(a, b, c))
			ring = slices.Delete(ring, k, k+1)
			clipped = true
			break
		}

		if clipped {
			continue
		}

		// no ear left, the polygon is degenerate or self intersecting. Drop a
		// flat corner if there is one, clip the first corner otherwise.
		k, flat := 0, false
		for pos := range ring {
			if area(points[ring[(pos+m-1)%m]], points[ring[pos]], points[ring[(pos+1)%m]]) == 0 {
				k, flat = pos, true
				break
			}
		}

		if !flat {
			triangles.Push(tri(ring[m-1], ring[0], ring[1]))
		}

		ring = slices.Delete(ring, k, k+1)
	}

	if area(points[ring[0]], points[ring[1]], points[ring[2]]) != 0 {
		triangles.Push(tri(ring[0], ring[1], ring[2]))
	}

	return triangles
}

// Polygon returns the triangulated outline placed in the xy plane of frame.
// The uv coordinates map the bounding rectangle of the outline to [0,1].
func Polygon(outline buffer.Buffer[gm.Vec2], frame gm.AffineRT) Mesh {
	connectivity := TriangulatePolygon(outline)

	lo, hi := outline.Front(), outline.Front()
	for point := range outline.Values() {
		lo = gm.V2(min(lo.X(), point.X()), min(lo.Y(), point.Y()))
		hi = gm.V2(max(hi.X(), point.X()), max(hi.Y(), point.Y()))
	}

	size := hi.Sub(lo)

	var shape Mesh
	for point := range outline.Values() {
		shape.Position.Push(frame.Apply(gm.V3(point.X(), point.Y(), 0)))
		shape.Normal.Push(frame.Uz())

		uv := point.Sub(lo)
		if size.X() > 0 && size.Y() > 0 {
			uv = gm.V2(uv.X()/size.X(), uv.Y()/size.Y())
		}

		shape.UV.Push(uv)
	}

	shape.Connectivity = connectivity
	shape.FillEmptyFields()

	return shape
}

func isEar(points []gm.Vec2, ring []int, a, b, c int) bool {
	pa, pb, pc := points[a], points[b], points[c]

	// reflex or flat corner
	if area(pa, pb, pc) <= 0 {
		return false
	}

	for _, idx := range ring {
		if idx == a || idx == b || idx == c {
			continue
		}

		if pointInTriangle(pa, pb, pc, points[idx]) {
			return false
		}
	}

	return true
}

// area returns twice the signed area of the triangle, positive if counter clockwise.
func area(a, b, c gm.Vec2) float32 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}

func pointInTriangle(a, b, c, p gm.Vec2) bool {
	return area(a, b, p) >= 0 && area(b, c, p) >= 0 && area(c, a, p) >= 0
}

func signedArea(points []gm.Vec2) float32 {
	var sum float32

	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].X()*points[j].Y() - points[j].X()*points[i].Y()
	}

	return sum / 2
}
