package gm

import "fmt"

// Box is an axis aligned bounding box in 3d space. The zero value is an
// empty box at the origin. Use BoxOf to build a box that encloses a set of points.
type Box struct {
	Min, Max Vec3
}

// BoxOf returns the smallest box that contains all points.
func BoxOf(points ...Vec3) Box {
	if len(points) == 0 {
		return Box{}
	}

	box := Box{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box = box.Extend(point)
	}

	return box
}

// Extend returns the smallest box that contains b and the given point.
func (b Box) Extend(point Vec3) Box {
	for idx := range 3 {
		b.Min.v[idx] = min(b.Min.v[idx], point.v[idx])
		b.Max.v[idx] = max(b.Max.v[idx], point.v[idx])
	}

	return b
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(other Box) Box {
	return b.Extend(other.Min).Extend(other.Max)
}

func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Radius returns the radius of the bounding sphere around the box center.
func (b Box) Radius() float32 {
	return b.Size().Norm() / 2
}

func (b Box) Translate(offset Vec3) Box {
	return Box{
		Min: b.Min.Add(offset),
		Max: b.Max.Add(offset),
	}
}

func (b Box) Contains(point Vec3) bool {
	for idx := range 3 {
		if point.v[idx] < b.Min.v[idx] || point.v[idx] > b.Max.v[idx] {
			return false
		}
	}

	return true
}

// Corners returns the eight corners of the box.
func (b Box) Corners() [8]Vec3 {
	var corners [8]Vec3
	for idx := range corners {
		corners[idx] = V3(
			pick(idx&1 != 0, b.Max.X(), b.Min.X()),
			pick(idx&2 != 0, b.Max.Y(), b.Min.Y()),
			pick(idx&4 != 0, b.Max.Z(), b.Min.Z()),
		)
	}

	return corners
}

func (b Box) String() string {
	return fmt.Sprintf("box(min=%s, max=%s)", b.Min, b.Max)
}

func pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}

	return b
}
