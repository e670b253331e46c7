package draw

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/gm"
)

// CurveDrawable draws a polyline through its points.
type CurveDrawable struct {
	Points    buffer.Buffer[gm.Vec3]
	Transform gm.AffineRTS
	Color     Color

	// Width is the line width in pixels.
	Width float32

	polylines [][]gm.Vec2
	path      vector.Path
}

// NewCurveDrawable returns a drawable for the polyline through points.
func NewCurveDrawable(points buffer.Buffer[gm.Vec3], color Color) *CurveDrawable {
	return &CurveDrawable{
		Points:    points,
		Transform: gm.IdentityRTS(),
		Color:     color,
		Width:     1,
	}
}

// Polylines projects the curve. The curve is split where it passes behind
// the camera. The returned slices are re-used by the next call.
func (d *CurveDrawable) Polylines(scene Scene, viewport Viewport) [][]gm.Vec2 {
	proj := newProjector(scene, d.Transform, viewport)

	polylines := d.polylines[:0]

	var current []gm.Vec2
	flush := func() {
		if len(current) >= 2 {
			polylines = append(polylines, current)
		}

		current = nil
	}

	for point := range d.Points.Values() {
		pixel, _, ok := proj.project(point)
		if !ok {
			flush()
			continue
		}

		current = append(current, pixel)
	}

	flush()

	d.polylines = polylines
	return polylines
}

// Draw renders the curve to screen.
func (d *CurveDrawable) Draw(screen *ebiten.Image, scene Scene) {
	d.path.Reset()

	for _, polyline := range d.Polylines(scene, ViewportOf(screen)) {
		d.path.MoveTo(polyline[0].X(), polyline[0].Y())
		for _, pixel := range polyline[1:] {
			d.path.LineTo(pixel.X(), pixel.Y())
		}
	}

	strokePath(screen, &d.path, d.Color, d.Width)
}

// DefaultTrajectorySamples is the default number of samples kept by a TrajectoryDrawable.
const DefaultTrajectorySamples = 100

// TrajectoryDrawable records the most recent positions of a moving point
// and draws them as a curve.
type TrajectoryDrawable struct {
	CurveDrawable

	// MaxSamples is the number of recorded samples, older samples are dropped.
	MaxSamples int

	times buffer.Buffer[float32]
}

// NewTrajectoryDrawable returns an empty trajectory keeping maxSamples samples.
func NewTrajectoryDrawable(maxSamples int, color Color) *TrajectoryDrawable {
	return &TrajectoryDrawable{
		CurveDrawable: *NewCurveDrawable(buffer.New[gm.Vec3](), color),
		MaxSamples:    maxSamples,
	}
}

// Add records the position at the given time.
func (d *TrajectoryDrawable) Add(position gm.Vec3, time float32) {
	d.Points.Push(position)
	d.times.Push(time)

	if excess := d.Points.Len() - d.MaxSamples; excess > 0 {
		d.Points = buffer.FromSlice(d.Points.Data()[excess:])
		d.times = buffer.FromSlice(d.times.Data()[excess:])
	}
}

// Times returns the time of each recorded sample.
func (d *TrajectoryDrawable) Times() buffer.Buffer[float32] {
	return d.times
}

// Clear drops all recorded samples.
func (d *TrajectoryDrawable) Clear() {
	d.Points.Clear()
	d.times.Clear()
}
