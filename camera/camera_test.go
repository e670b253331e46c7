package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/vcl/gm"
)

func requireVecInDelta(t *testing.T, expected, actual gm.Vec3, delta float64) {
	t.Helper()

	for idx := range 3 {
		require.InDeltaf(t, expected.At(idx), actual.At(idx), delta,
			"component %d: expected %s, got %s", idx, expected, actual)
	}
}

func requireMat4InDelta(t *testing.T, expected, actual gm.Mat4, delta float64) {
	t.Helper()

	for row := range 4 {
		for col := range 4 {
			require.InDeltaf(t, expected.At(row, col), actual.At(row, col), delta,
				"entry (%d, %d): expected %s, got %s", row, col, expected, actual)
		}
	}
}

func TestAroundCenter_Default(t *testing.T) {
	cam := NewAroundCenter()

	require.Equal(t, gm.V3(0, 0, 5), cam.Position())
	requireVecInDelta(t, gm.V3(0, 0, -1), Front(cam), 1e-6)
	requireVecInDelta(t, gm.V3(0, 1, 0), Up(cam), 1e-6)
	requireVecInDelta(t, gm.V3(1, 0, 0), Right(cam), 1e-6)

	expected := gm.Mat4FromMgl(mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
	requireMat4InDelta(t, expected, View(cam), 1e-6)
}

func TestAroundCenter_LookAt(t *testing.T) {
	eye, center, up := gm.V3(3, 4, 5), gm.V3(1, 0, 0), gm.V3(0, 1, 0)

	cam := NewAroundCenter()
	cam.LookAt(eye, center, up)

	require.InDelta(t, eye.DistanceTo(center), cam.Distance, 1e-6)
	requireVecInDelta(t, eye, cam.Position(), 1e-4)
	requireVecInDelta(t, center.Sub(eye).Normalized(), Front(cam), 1e-4)

	expected := gm.Mat4FromMgl(mgl32.LookAtV(gm.Vec3ToMgl(eye), gm.Vec3ToMgl(center), gm.Vec3ToMgl(up)))
	requireMat4InDelta(t, expected, View(cam), 1e-4)

	// the frame matrix is the inverse of the view
	requireMat4InDelta(t, gm.Identity4(), FrameMatrix(cam).Mul(View(cam)), 1e-4)
}

func TestAroundCenter_Trackball(t *testing.T) {
	cam := NewAroundCenter()
	cam.Center = gm.V3(1, 2, 3)

	cam.Trackball(gm.V2(0, 0), gm.V2(0.3, 0.2))
	require.InDelta(t, 5, cam.Position().DistanceTo(cam.Center), 1e-5)
	require.NotEqual(t, gm.V3(1, 2, 8), cam.Position())

	// moving the cursor back restores the orientation
	cam.Trackball(gm.V2(0.3, 0.2), gm.V2(0, 0))
	requireVecInDelta(t, gm.V3(1, 2, 8), cam.Position(), 1e-4)
}

func TestAroundCenter_RollPitchYaw(t *testing.T) {
	cam := NewAroundCenter()
	cam.RollPitchYaw(0, 0, math.Pi/2)

	requireVecInDelta(t, gm.V3(5, 0, 0), cam.Position(), 1e-5)
	requireVecInDelta(t, gm.V3(-1, 0, 0), Front(cam), 1e-5)
	requireVecInDelta(t, gm.V3(0, 1, 0), Up(cam), 1e-5)
}

func TestAroundCenter_ScaleDistance(t *testing.T) {
	cam := NewAroundCenter()

	cam.ScaleDistance(1)
	require.Equal(t, float32(10), cam.Distance)

	cam.ScaleDistance(-2)
	require.Equal(t, float32(MinDistance), cam.Distance)
}

func TestAroundCenter_TranslateInPlane(t *testing.T) {
	cam := NewAroundCenter()
	cam.TranslateInPlane(gm.V2(1, 2))

	require.Equal(t, gm.V3(-1, -2, 0), cam.Center)
	require.Equal(t, gm.V3(-1, -2, 5), cam.Position())
}

func TestSpherical(t *testing.T) {
	cam := NewSpherical()
	cam.Phi = math.Pi / 2

	requireVecInDelta(t, gm.V3(5, 0, 0), cam.Position(), 1e-5)

	cam.Rotate(math.Pi/2, 0)
	requireVecInDelta(t, gm.V3(0, 5, 0), cam.Position(), 1e-5)
	requireVecInDelta(t, gm.V3(0, -1, 0), Front(cam), 1e-5)

	cam.ScaleDistance(-0.5)
	requireVecInDelta(t, gm.V3(0, 2.5, 0), cam.Position(), 1e-5)
}

func TestHead(t *testing.T) {
	var cam Head

	cam.TranslateInPlane(gm.V2(1, 0))
	require.Equal(t, gm.V3(-1, 0, 0), cam.Position())

	cam.MoveForward(2)
	requireVecInDelta(t, gm.V3(-1, 0, -2), cam.Position(), 1e-6)

	cam.RollPitchYaw(0, 0, math.Pi)
	requireVecInDelta(t, gm.V3(0, 0, 1), Front(&cam), 1e-5)

	// turning the head does not move it
	cam.Trackball(gm.V2(0, 0), gm.V2(0.5, 0.5))
	requireVecInDelta(t, gm.V3(-1, 0, -2), cam.Position(), 1e-6)
}

func TestTrackballProjection(t *testing.T) {
	requireVecInDelta(t, gm.V3(0, 0, 1), TrackballProjection(0, 0, 1), 1e-6)
	requireVecInDelta(t, gm.V3(0.5, 0, 0.8660254), TrackballProjection(0.5, 0, 1), 1e-6)

	// outside of the sphere the point lies on the hyperbolic sheet
	requireVecInDelta(t, gm.V3(1, 0, 0.5), TrackballProjection(1, 0, 1), 1e-6)
}

func TestTrackballRotation(t *testing.T) {
	require.Equal(t, gm.IdentityRotation(), TrackballRotation(gm.V2(0.2, 0.2), gm.V2(0.2, 0.2), 1))
	require.Equal(t, gm.IdentityRotation(), TrackballRotation(gm.V2(0.2, 0.2), gm.V2(0.2, 0.20005), 1))

	r := TrackballRotation(gm.V2(0, 0), gm.V2(0.5, 0), 1)
	requireVecInDelta(t, gm.V3(0.5, 0, 0.8660254), r.Apply(gm.V3(0, 0, 1)), 1e-5)
}

func TestRayDirection(t *testing.T) {
	projection := DefaultPerspective(1.5)

	frame := gm.IdentityRT()
	requireVecInDelta(t, gm.V3(0, 0, -1), RayDirection(frame, projection.Inverse(), gm.V2(0, 0)), 1e-6)

	// a point along the ray projects back onto the screen position
	screen := gm.V2(0.3, -0.4)
	dir := RayDirection(frame, projection.Inverse(), screen)
	projected := gm.ProjectPoint(projection.Matrix(), dir.Mul(3))
	require.InDelta(t, 0.3, projected.X(), 1e-5)
	require.InDelta(t, -0.4, projected.Y(), 1e-5)

	// the ray follows the camera pose
	cam := NewAroundCenter()
	cam.RollPitchYaw(0, 0, math.Pi/2)
	requireVecInDelta(t, gm.V3(-1, 0, 0), RayDirection(Frame(cam), projection.Inverse(), gm.V2(0, 0)), 1e-5)
}

func TestProjection(t *testing.T) {
	perspective := DefaultPerspective(16.0 / 9)
	requireMat4InDelta(t, gm.Identity4(), perspective.Matrix().Mul(perspective.Inverse()), 1e-4)

	ortho := Orthographic{Left: -2, Right: 2, Bottom: -1, Top: 1, Near: 0.1, Far: 10}
	requireMat4InDelta(t, gm.Identity4(), ortho.Matrix().Mul(ortho.Inverse()), 1e-5)

	expected := gm.Mat4FromMgl(mgl32.Ortho(-2, 2, -1, 1, 0.1, 10))
	requireMat4InDelta(t, expected, ortho.Matrix(), 1e-6)
}
