package draw

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/vcl/camera"
	"github.com/oliverbestmann/vcl/gm"
)

// Scene holds everything shared by the drawables of a frame.
type Scene struct {
	Camera     camera.Camera
	Projection camera.Projection

	// Light is the position of the point light in world space.
	Light gm.Vec3
}

// ViewProjection returns the matrix transforming world coordinates to clip space.
func (s Scene) ViewProjection() gm.Mat4 {
	return s.Projection.Matrix().Mul(camera.View(s.Camera))
}

// Eye returns the position of the camera.
func (s Scene) Eye() gm.Vec3 {
	return s.Camera.Position()
}

// Viewport maps normalized device coordinates to pixels.
type Viewport struct {
	Width, Height float32
}

// ViewportOf returns the viewport covering the bounds of img.
func ViewportOf(img *ebiten.Image) Viewport {
	size := img.Bounds().Size()
	return Viewport{Width: float32(size.X), Height: float32(size.Y)}
}

// ToPixel maps normalized device coordinates to pixel coordinates with
// the origin at the top left corner.
func (v Viewport) ToPixel(ndc gm.Vec3) gm.Vec2 {
	return gm.V2(
		(ndc.X()+1)/2*v.Width,
		(1-ndc.Y())/2*v.Height,
	)
}

// BB returns the bounds of the viewport in pixels.
func (v Viewport) BB() cp.BB {
	return cp.NewBB(0, 0, float64(v.Width), float64(v.Height))
}

// Aspect returns the aspect ratio of the viewport.
func (v Viewport) Aspect() float32 {
	return v.Width / v.Height
}

// nearW is the smallest clip space w of a point in front of the camera.
const nearW = 1e-6

type projector struct {
	mvp      gm.Mat4
	viewport Viewport
}

func newProjector(scene Scene, model gm.AffineRTS, viewport Viewport) projector {
	return projector{
		mvp:      scene.ViewProjection().Mul(model.Matrix()),
		viewport: viewport,
	}
}

// project maps a point in model space to pixels. It returns false if the
// point lies behind the camera.
func (p projector) project(point gm.Vec3) (pixel gm.Vec2, depth float32, ok bool) {
	clip := p.mvp.MulVec(gm.V4(point.X(), point.Y(), point.Z(), 1))
	if clip.W() < nearW {
		return gm.Vec2{}, 0, false
	}

	ndc := clip.XYZ().Div(clip.W())
	return p.viewport.ToPixel(ndc), ndc.Z(), true
}

// screenBounds returns the pixel bounds of box. It returns false if a part of
// the box lies behind the camera, in which case the bounds are unknown.
func (p projector) screenBounds(box gm.Box) (cp.BB, bool) {
	var bb cp.BB

	for idx, corner := range box.Corners() {
		pixel, _, ok := p.project(corner)
		if !ok {
			return cp.BB{}, false
		}

		vec := cp.Vector{X: float64(pixel.X()), Y: float64(pixel.Y())}
		if idx == 0 {
			bb = cp.NewBBForExtents(vec, 0, 0)
		} else {
			bb = bb.Expand(vec)
		}
	}

	return bb, true
}

// visible reports whether box may cover a part of the viewport.
func (p projector) visible(box gm.Box) bool {
	bb, ok := p.screenBounds(box)
	if !ok {
		return true
	}

	return bb.Intersects(p.viewport.BB())
}
