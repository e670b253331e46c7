package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/vcl/camera"
	"github.com/oliverbestmann/vcl/draw"
	"github.com/oliverbestmann/vcl/gm"
)

// Game shows a scene and moves the camera with the mouse:
// the left button rotates, the right button pans and the wheel zooms.
type Game struct {
	config  Config
	objects []*Object

	camera     *camera.AroundCenter
	projection camera.Perspective

	ticks  int
	paused bool

	width, height int

	// last cursor position in normalized coordinates while dragging
	cursor gm.Vec2
}

func NewGame(config Config, objects []*Object) *Game {
	g := &Game{
		config:  config,
		objects: objects,
		width:   config.Window.Width,
		height:  config.Window.Height,
	}

	g.resetCamera()

	return g
}

func (g *Game) resetCamera() {
	g.camera = camera.NewAroundCenter()
	g.camera.Center = vec3(g.config.Camera.Center)
	g.camera.Distance = g.config.Camera.Distance

	g.projection = camera.DefaultPerspective(float32(g.width) / float32(g.height))
	g.projection.FovY = gm.DegToRad(g.config.Camera.FovY)
}

// normalizedCursor maps the cursor to [-1, 1] with y pointing up.
func (g *Game) normalizedCursor() gm.Vec2 {
	x, y := ebiten.CursorPosition()

	return gm.V2(
		2*float32(x)/float32(g.width)-1,
		1-2*float32(y)/float32(g.height),
	)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetCamera()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	cursor := g.normalizedCursor()

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.cursor = cursor

	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.camera.Trackball(g.cursor, cursor)
		g.cursor = cursor

	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		delta := cursor.Sub(g.cursor).Mul(g.camera.Distance / 2)
		g.camera.TranslateInPlane(delta)
		g.cursor = cursor
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.camera.ScaleDistance(-0.1 * float32(dy))
	}

	if !g.paused {
		g.ticks++

		time := float32(g.ticks) / float32(ebiten.TPS())
		for _, object := range g.objects {
			object.Update(time)
		}
	}

	return nil
}

func (g *Game) Scene() draw.Scene {
	return draw.Scene{
		Camera:     g.camera,
		Projection: g.projection,
		Light:      vec3(g.config.Light),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(draw.ColorOf(vec3(g.config.Background)))

	scene := g.Scene()
	for _, object := range g.objects {
		object.Draw(screen, scene)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %1.0f, FPS: %1.0f", ebiten.ActualTPS(), ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.projection.Aspect = float32(outsideWidth) / float32(outsideHeight)
	}

	return outsideWidth, outsideHeight
}
