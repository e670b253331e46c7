package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/draw"
	"github.com/oliverbestmann/vcl/gm"
	"github.com/oliverbestmann/vcl/grid"
	"github.com/oliverbestmann/vcl/mesh"
	"github.com/oliverbestmann/vcl/textio"
)

type Drawable interface {
	Draw(screen *ebiten.Image, scene draw.Scene)
}

// Object is a set of drawables sharing one transform.
type Object struct {
	Name      string
	Drawables []Drawable

	center gm.Vec3
	axis   gm.Vec3
	spin   float32
	angle  gm.Rad

	// set for orbits only
	orbiter    *draw.MeshDrawable
	trail      *draw.TrajectoryDrawable
	orbitStart gm.Vec3

	meshes   []*draw.MeshDrawable
	segments []*draw.SegmentsDrawable
}

// Update advances the animation of the object to the given time.
func (o *Object) Update(time float32) {
	for _, d := range o.meshes {
		if d.Style.Shader != nil {
			d.Style.Uniforms.Put("Time", time)
		}
	}

	if o.spin == 0 {
		return
	}

	o.angle = gm.Rad(o.spin * time).Normalized()
	rotation := gm.RotationFromAxisAngle(o.axis, o.angle)

	if o.orbiter != nil {
		position := o.center.Add(rotation.Apply(o.orbitStart.Sub(o.center)))
		o.orbiter.Transform.Translation = position.Sub(o.orbitStart)

		if o.trail != nil {
			o.trail.Add(position, time)
		}

		return
	}

	transform := gm.RTSFromRT(gm.RotationAroundCenter(rotation, o.center))
	for _, d := range o.meshes {
		d.Transform = transform
	}

	for _, d := range o.segments {
		d.Transform = transform
	}
}

func (o *Object) Draw(screen *ebiten.Image, scene draw.Scene) {
	for _, d := range o.Drawables {
		d.Draw(screen, scene)
	}
}

// Release frees the meshes of the object.
func (o *Object) Release() {
	for _, d := range o.meshes {
		d.Release()
	}
}

// BuildObject creates the drawables described by config. Invalid
// parameters are reported as an error. Textures and shaders are loaded
// using resources.
func BuildObject(config ObjectConfig, resources *draw.Resources) (*Object, error) {
	var shape mesh.Mesh
	var curve buffer.Buffer[gm.Vec3]

	err := check.Catch(func() {
		shape, curve = buildGeometry(config)
	})

	if err != nil {
		return nil, fmt.Errorf("build %s: %w", config.Kind, err)
	}

	if config.Kind == "heightfield" || config.Kind == "curve" {
		loaded, err := loadGeometry(config)
		if err != nil {
			return nil, err
		}

		shape, curve = loaded.shape, loaded.curve
	}

	object := &Object{
		Name:   config.Kind,
		center: vec3(config.Center),
		axis:   vec3(config.Axis).Normalized(),
		spin:   config.Spin,
	}

	color := draw.ColorOf(vec3(config.Color)).WithAlpha(config.Alpha)

	if curve.Len() > 0 {
		object.Drawables = append(object.Drawables, draw.NewCurveDrawable(curve, color))
	}

	if shape.VertexCount() == 0 {
		return object, nil
	}

	style := draw.DefaultStyle()
	style.Shading.Color = vec3(config.Color)
	style.Shading.Alpha = config.Alpha
	style.Wireframe = config.Wireframe

	if err := loadStyle(&style, config, resources); err != nil {
		return nil, err
	}

	meshDrawable, err := draw.NewMeshDrawable(shape, style)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", config.Kind, err)
	}

	object.meshes = append(object.meshes, meshDrawable)
	object.Drawables = append(object.Drawables, meshDrawable)

	if config.Normals > 0 {
		normals := draw.NewMeshNormalDrawable(shape, config.Normals, draw.RGB(1, 1, 0))
		object.segments = append(object.segments, normals)
		object.Drawables = append(object.Drawables, normals)
	}

	if config.Kind == "orbit" {
		object.orbiter = meshDrawable
		object.orbitStart = vec3(config.Center).Add(gm.OrthogonalVector(object.axis).Mul(config.Radius))

		if config.Trail > 0 {
			object.trail = draw.NewTrajectoryDrawable(config.Trail, color)
			object.Drawables = append(object.Drawables, object.trail)
		}
	}

	slog.Debug(
		"Built object",
		slog.String("kind", config.Kind),
		slog.Int("vertices", shape.VertexCount()),
		slog.Int("triangles", shape.TriangleCount()),
	)

	return object, nil
}

func loadStyle(style *draw.Style, config ObjectConfig, resources *draw.Resources) error {
	if config.Texture == "" && config.Shader == "" {
		return nil
	}

	if resources == nil {
		return fmt.Errorf("build %s: no resources to load textures and shaders", config.Kind)
	}

	if config.Texture != "" {
		texture, err := resources.Texture(config.Texture)
		if err != nil {
			return err
		}

		style.Texture = texture
	}

	if config.Shader != "" {
		shader, err := resources.Shader(config.Shader)
		if err != nil {
			return err
		}

		style.Shader = shader
		style.Uniforms.Put("Time", float32(0))
	}

	return nil
}

func buildGeometry(config ObjectConfig) (mesh.Mesh, buffer.Buffer[gm.Vec3]) {
	center := vec3(config.Center)
	axis := vec3(config.Axis)
	from, to := vec3(config.From), vec3(config.To)
	n := config.Samples

	switch config.Kind {
	case "sphere":
		return mesh.Sphere(config.Radius, center, n, n/2+1), buffer.Buffer[gm.Vec3]{}

	case "cube":
		return mesh.Cube(center, config.Edge), buffer.Buffer[gm.Vec3]{}

	case "cylinder":
		return mesh.Cylinder(config.Radius, from, to, n, 2, true), buffer.Buffer[gm.Vec3]{}

	case "cone":
		return mesh.Cone(config.Radius, config.Height, center, axis, n, 2, true), buffer.Buffer[gm.Vec3]{}

	case "torus":
		return mesh.Torus(config.Radius, config.MinorRadius, center, axis, n, n/2+1), buffer.Buffer[gm.Vec3]{}

	case "disc":
		return mesh.Disc(config.Radius, center, axis, n), buffer.Buffer[gm.Vec3]{}

	case "arrow":
		return mesh.Arrow(from, to, mesh.DefaultArrowOptions(config.Radius/10)), buffer.Buffer[gm.Vec3]{}

	case "frame":
		opts := mesh.DefaultFrameOptions()
		opts.Scale = config.Edge

		frame := gm.IdentityRT()
		frame.Translation = center

		return mesh.Frame(frame, opts), buffer.Buffer[gm.Vec3]{}

	case "tetrahedron":
		e := config.Edge / 2
		return mesh.Tetrahedron(
			center.Add(gm.V3(e, e, e)),
			center.Add(gm.V3(e, -e, -e)),
			center.Add(gm.V3(-e, e, -e)),
			center.Add(gm.V3(-e, -e, e)),
		), buffer.Buffer[gm.Vec3]{}

	case "polygon":
		// a star alternating between the two radii
		var outline buffer.Buffer[gm.Vec2]
		for k := range 2 * n {
			radius := config.Radius
			if k%2 == 1 {
				radius = config.MinorRadius
			}

			sin, cos := gm.Rad(math.Pi * float32(k) / float32(n)).SinCos()
			outline.Push(gm.V2(radius*cos, radius*sin))
		}

		frame := gm.AffineRT{
			Rotation:    gm.RotationBetween(gm.V3(0, 0, 1), axis.Normalized()),
			Translation: center,
		}

		return mesh.Polygon(outline, frame), buffer.Buffer[gm.Vec3]{}

	case "orbit":
		axis := axis.Normalized()
		start := center.Add(gm.OrthogonalVector(axis).Mul(config.Radius))

		return mesh.Sphere(config.MinorRadius, start, n, n/2+1), mesh.Circle(config.Radius, center, axis, 4*n)

	default:
		return mesh.Mesh{}, buffer.Buffer[gm.Vec3]{}
	}
}

type geometry struct {
	shape mesh.Mesh
	curve buffer.Buffer[gm.Vec3]
}

func loadGeometry(config ObjectConfig) (geometry, error) {
	switch config.Kind {
	case "curve":
		points, err := textio.ReadFile(config.File, textio.ReadVecBuffer[float32, gm.D3])
		if err != nil {
			return geometry{}, err
		}

		return geometry{curve: points}, nil

	case "heightfield":
		heights, err := textio.ReadFile(config.File, textio.ReadGrid2D[float32])
		if err != nil {
			return geometry{}, err
		}

		var shape mesh.Mesh
		err = check.Catch(func() { shape = heightField(heights, vec3(config.Center), config.Edge) })
		if err != nil {
			return geometry{}, fmt.Errorf("build heightfield from %q: %w", config.File, err)
		}

		return geometry{shape: shape}, nil

	default:
		return geometry{}, fmt.Errorf("kind %q is not loaded from a file", config.Kind)
	}
}

// heightField builds a surface with z = heights(i, j) over a square of the given edge length.
func heightField(heights grid.Grid2D[float32], center gm.Vec3, edge float32) mesh.Mesh {
	n1, n2 := heights.Dimension()
	if n1 < 2 || n2 < 2 {
		check.Preconditionf("heightfield", "Build", "need at least 2x2 samples, got %dx%d", n1, n2)
	}

	var shape mesh.Mesh

	for i := range n1 {
		for j := range n2 {
			u := float32(i) / float32(n1-1)
			v := float32(j) / float32(n2-1)

			shape.Position.Push(center.Add(gm.V3((u-0.5)*edge, (v-0.5)*edge, heights.At(i, j))))
			shape.UV.Push(gm.V2(u, v))
		}
	}

	shape.Connectivity = mesh.ConnectivityGrid(n1, n2)
	shape.FillEmptyFields()

	return shape
}

// readScene builds all objects of config.
func readScene(config Config, resources *draw.Resources) ([]*Object, error) {
	objects := make([]*Object, 0, len(config.Objects))

	for idx, objectConfig := range config.Objects {
		object, err := BuildObject(objectConfig, resources)
		if err != nil {
			for _, built := range objects {
				built.Release()
			}

			return nil, fmt.Errorf("object %d: %w", idx, err)
		}

		objects = append(objects, object)
	}

	return objects, nil
}
