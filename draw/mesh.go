package draw

import (
	"fmt"
	"image"
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
	"github.com/oliverbestmann/vcl/mesh"
)

var whiteImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

// maxVerticesPerBatch is the number of vertices addressable by uint16 indices,
// rounded down to full triangles.
const maxVerticesPerBatch = (1<<16 - 1) / 3 * 3

// Style holds the resources and parameters used to draw a mesh. Nothing in
// a Style is shared implicitly, every drawable gets its resources passed in.
type Style struct {
	Shading Shading

	// Texture is sampled using the texture coordinates of the mesh if
	// Shading.UseTexture is set. A nil texture draws the vertex colors.
	Texture *ebiten.Image

	// Shader replaces the default triangle rendering. The texture is passed as the first image.
	Shader   *ebiten.Shader
	Uniforms Uniforms

	// Wireframe draws the triangle edges on top of the mesh.
	Wireframe      bool
	WireframeColor Color
}

// DefaultStyle returns a style with the default shading and no texture.
func DefaultStyle() Style {
	return Style{
		Shading:        DefaultShading(),
		WireframeColor: Black,
	}
}

// ScreenTriangle is a shaded triangle in pixel coordinates.
type ScreenTriangle struct {
	Vertices [3]ebiten.Vertex

	// Depth is the mean normalized device depth of the corners, larger values are further away.
	Depth float32
}

// MeshDrawable draws a mesh by projecting and shading its vertices on the
// CPU. Triangles are drawn back to front.
type MeshDrawable struct {
	Transform gm.AffineRTS
	Style     Style

	position     buffer.Buffer[gm.Vec3]
	normal       buffer.Buffer[gm.Vec3]
	color        buffer.Buffer[gm.Vec3]
	uv           buffer.Buffer[gm.Vec2]
	connectivity buffer.Buffer[gm.UInt3]

	bounds   gm.Box
	released bool

	// scratch space re-used between frames
	triangles []ScreenTriangle
	vertices  []ebiten.Vertex
	indices   []uint16
	wireframe SegmentsDrawable
}

// NewMeshDrawable copies the geometry of m. Missing attributes of m are filled
// in. An error is returned if the mesh is not valid.
func NewMeshDrawable(m mesh.Mesh, style Style) (*MeshDrawable, error) {
	m = m.Clone()
	m.FillEmptyFields()

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}

	d := &MeshDrawable{
		Transform:    gm.IdentityRTS(),
		Style:        style,
		position:     m.Position,
		normal:       m.Normal,
		color:        m.Color,
		uv:           m.UV,
		connectivity: m.Connectivity,
		bounds:       m.Bounds(),
	}

	d.updateWireframe()

	return d, nil
}

func (d *MeshDrawable) requireAlive(op string) {
	if d.released {
		check.Preconditionf("MeshDrawable", op, "drawable was released")
	}
}

// UpdatePosition replaces the vertex positions. The number of vertices must not change.
func (d *MeshDrawable) UpdatePosition(position buffer.Buffer[gm.Vec3]) {
	d.requireAlive("UpdatePosition")
	check.SameSize("MeshDrawable", "UpdatePosition", position.Len(), d.position.Len())

	d.position = position.Clone()
	d.bounds = gm.BoxOf(d.position.Data()...)
	d.updateWireframe()
}

// UpdateNormal replaces the vertex normals. The number of vertices must not change.
func (d *MeshDrawable) UpdateNormal(normal buffer.Buffer[gm.Vec3]) {
	d.requireAlive("UpdateNormal")
	check.SameSize("MeshDrawable", "UpdateNormal", normal.Len(), d.normal.Len())

	d.normal = normal.Clone()
}

// UpdateColor replaces the vertex colors. The number of vertices must not change.
func (d *MeshDrawable) UpdateColor(color buffer.Buffer[gm.Vec3]) {
	d.requireAlive("UpdateColor")
	check.SameSize("MeshDrawable", "UpdateColor", color.Len(), d.color.Len())

	d.color = color.Clone()
}

// Bounds returns the bounding box of the mesh in model space.
func (d *MeshDrawable) Bounds() gm.Box {
	return d.bounds
}

// Release drops the geometry and all references to images and shaders. The
// drawable must not be used afterward.
func (d *MeshDrawable) Release() {
	*d = MeshDrawable{released: true}
}

func (d *MeshDrawable) updateWireframe() {
	d.wireframe.Segments = wireframeSegments(d.position, d.connectivity, d.wireframe.Segments)
	d.wireframe.Transform = d.Transform
	d.wireframe.Width = 1
}

func wireframeSegments(position buffer.Buffer[gm.Vec3], connectivity buffer.Buffer[gm.UInt3], segments buffer.Buffer[gm.Vec3]) buffer.Buffer[gm.Vec3] {
	segments.Clear()

	for triangle := range connectivity.Values() {
		for k := range 3 {
			a := triangle.At(k)
			b := triangle.At((k + 1) % 3)

			segments.Push(position.At(int(a)))
			segments.Push(position.At(int(b)))
		}
	}

	return segments
}

// Triangles shades and projects all triangles in front of the camera and
// returns them sorted back to front. The returned slice is re-used by the
// next call.
func (d *MeshDrawable) Triangles(scene Scene, viewport Viewport) []ScreenTriangle {
	d.requireAlive("Triangles")

	proj := newProjector(scene, d.Transform, viewport)
	eye := scene.Eye()

	shading := d.Style.Shading
	textured := shading.UseTexture && d.Style.Texture != nil

	var textureOrigin, textureSize gm.Vec2
	if textured {
		bounds := d.Style.Texture.Bounds()
		textureOrigin = gm.V2(float32(bounds.Min.X), float32(bounds.Min.Y))
		textureSize = gm.V2(float32(bounds.Dx()), float32(bounds.Dy()))
	}

	vertexOf := func(idx int) (ebiten.Vertex, float32, bool) {
		position := d.position.AtUnchecked(idx)

		pixel, depth, ok := proj.project(position)
		if !ok {
			return ebiten.Vertex{}, 0, false
		}

		world := d.Transform.Apply(position)
		normal := d.Transform.Rotation.Apply(d.normal.AtUnchecked(idx))

		color := d.color.AtUnchecked(idx).MulEach(shading.Color)
		shaded := shading.Phong.Shade(color, world, normal, scene.Light, eye)

		vertex := ebiten.Vertex{
			DstX:   pixel.X(),
			DstY:   pixel.Y(),
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: shaded.X() * shading.Alpha,
			ColorG: shaded.Y() * shading.Alpha,
			ColorB: shaded.Z() * shading.Alpha,
			ColorA: shading.Alpha,
		}

		if textured {
			uv := d.uv.AtUnchecked(idx)

			v := 1 - uv.Y()
			if shading.TextureInverseY {
				v = uv.Y()
			}

			vertex.SrcX = textureOrigin.X() + uv.X()*textureSize.X()
			vertex.SrcY = textureOrigin.Y() + v*textureSize.Y()
		}

		return vertex, depth, true
	}

	triangles := d.triangles[:0]

	for triangle := range d.connectivity.Values() {
		var screen ScreenTriangle

		visible := true
		for k := range 3 {
			vertex, depth, ok := vertexOf(int(triangle.At(k)))
			if !ok {
				visible = false
				break
			}

			screen.Vertices[k] = vertex
			screen.Depth += depth / 3
		}

		if visible {
			triangles = append(triangles, screen)
		}
	}

	slices.SortStableFunc(triangles, func(a, b ScreenTriangle) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		default:
			return 0
		}
	})

	d.triangles = triangles
	return triangles
}

// Visible reports whether the mesh may cover a part of the viewport.
func (d *MeshDrawable) Visible(scene Scene, viewport Viewport) bool {
	d.requireAlive("Visible")
	return newProjector(scene, d.Transform, viewport).visible(d.bounds)
}

// Draw renders the mesh to screen.
func (d *MeshDrawable) Draw(screen *ebiten.Image, scene Scene) {
	d.requireAlive("Draw")

	viewport := ViewportOf(screen)
	if !d.Visible(scene, viewport) {
		return
	}

	triangles := d.Triangles(scene, viewport)

	source := whiteImage()
	if d.Style.Shading.UseTexture && d.Style.Texture != nil {
		source = d.Style.Texture
	}

	for batch := range slices.Chunk(triangles, maxVerticesPerBatch/3) {
		d.vertices = d.vertices[:0]
		d.indices = d.indices[:0]

		for _, triangle := range batch {
			for _, vertex := range triangle.Vertices {
				d.indices = append(d.indices, uint16(len(d.vertices)))
				d.vertices = append(d.vertices, vertex)
			}
		}

		if d.Style.Shader != nil {
			screen.DrawTrianglesShader(d.vertices, d.indices, d.Style.Shader, &ebiten.DrawTrianglesShaderOptions{
				Uniforms: d.Style.Uniforms,
				Images:   [4]*ebiten.Image{source},
			})

			continue
		}

		screen.DrawTriangles(d.vertices, d.indices, source, &ebiten.DrawTrianglesOptions{
			Filter: ebiten.FilterLinear,
		})
	}

	if d.Style.Wireframe {
		d.wireframe.Transform = d.Transform
		d.wireframe.Color = d.Style.WireframeColor
		d.wireframe.Draw(screen, scene)
	}
}
