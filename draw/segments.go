package draw

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
	"github.com/oliverbestmann/vcl/mesh"
)

// Line is a projected line segment in pixel coordinates.
type Line struct {
	A, B gm.Vec2
}

// SegmentsDrawable draws independent line segments. Consecutive pairs of
// points in Segments form one segment.
type SegmentsDrawable struct {
	Segments  buffer.Buffer[gm.Vec3]
	Transform gm.AffineRTS
	Color     Color

	// Width is the line width in pixels.
	Width float32

	lines []Line
	path  vector.Path
}

// NewSegmentsDrawable returns a drawable for the given pairs of points.
func NewSegmentsDrawable(segments buffer.Buffer[gm.Vec3], color Color) *SegmentsDrawable {
	return &SegmentsDrawable{
		Segments:  segments,
		Transform: gm.IdentityRTS(),
		Color:     color,
		Width:     1,
	}
}

// NewMeshNormalDrawable returns a drawable showing the normals of m as
// segments of the given length starting at each vertex.
func NewMeshNormalDrawable(m mesh.Mesh, length float32, color Color) *SegmentsDrawable {
	return NewSegmentsDrawable(NormalSegments(m.Position, m.Normal, length), color)
}

// NormalSegments returns one segment per vertex along its normal.
func NormalSegments(position, normal buffer.Buffer[gm.Vec3], length float32) buffer.Buffer[gm.Vec3] {
	check.SameSize("NormalSegments", "NormalSegments", position.Len(), normal.Len())

	var segments buffer.Buffer[gm.Vec3]
	for idx, p := range position.All() {
		segments.Push(p)
		segments.Push(p.Add(normal.AtUnchecked(idx).Mul(length)))
	}

	return segments
}

// Lines projects all segments that lie in front of the camera. The returned
// slice is re-used by the next call.
func (d *SegmentsDrawable) Lines(scene Scene, viewport Viewport) []Line {
	if d.Segments.Len()%2 != 0 {
		check.Preconditionf("SegmentsDrawable", "Lines",
			"segments need pairs of points, got %d points", d.Segments.Len())
	}

	proj := newProjector(scene, d.Transform, viewport)

	lines := d.lines[:0]
	for idx := 0; idx < d.Segments.Len(); idx += 2 {
		a, _, okA := proj.project(d.Segments.AtUnchecked(idx))
		b, _, okB := proj.project(d.Segments.AtUnchecked(idx + 1))
		if !okA || !okB {
			continue
		}

		lines = append(lines, Line{A: a, B: b})
	}

	d.lines = lines
	return lines
}

// Draw renders the segments to screen.
func (d *SegmentsDrawable) Draw(screen *ebiten.Image, scene Scene) {
	d.path.Reset()

	for _, line := range d.Lines(scene, ViewportOf(screen)) {
		d.path.MoveTo(line.A.X(), line.A.Y())
		d.path.LineTo(line.B.X(), line.B.Y())
	}

	strokePath(screen, &d.path, d.Color, d.Width)
}

func strokePath(screen *ebiten.Image, path *vector.Path, color Color, width float32) {
	dpo := &vector.DrawPathOptions{AntiAlias: true}
	dpo.ColorScale.Scale(color.PremultipliedValues())

	vector.StrokePath(screen, path, &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}, dpo)
}
