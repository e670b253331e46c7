package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/oliverbestmann/vcl/gm"
	"github.com/oliverbestmann/vcl/textio"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window     WindowConfig   `yaml:"window"`
	Camera     CameraConfig   `yaml:"camera"`
	Light      [3]float32     `yaml:"light"`
	Background [3]float32     `yaml:"background"`
	Objects    []ObjectConfig `yaml:"objects"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type CameraConfig struct {
	Center   [3]float32 `yaml:"center"`
	Distance float32    `yaml:"distance"`

	// FovY is the vertical field of view in degrees.
	FovY float32 `yaml:"fovY"`
}

// ObjectConfig describes one object of the scene. Which fields are used
// depends on the kind of the object.
type ObjectConfig struct {
	Kind string `yaml:"kind"`

	Center [3]float32 `yaml:"center"`
	From   [3]float32 `yaml:"from"`
	To     [3]float32 `yaml:"to"`
	Axis   [3]float32 `yaml:"axis"`

	Radius      float32 `yaml:"radius"`
	MinorRadius float32 `yaml:"minorRadius"`
	Height      float32 `yaml:"height"`
	Edge        float32 `yaml:"edge"`
	Samples     int     `yaml:"samples"`

	// File is read by the kinds curve and heightfield.
	File string `yaml:"file"`

	// Texture is an optional png or jpeg image mapped onto the mesh.
	Texture string `yaml:"texture"`

	// Shader is an optional Kage shader. It receives the uniform Time in seconds.
	Shader string `yaml:"shader"`

	Color     [3]float32 `yaml:"color"`
	Alpha     float32    `yaml:"alpha"`
	Wireframe bool       `yaml:"wireframe"`

	// Normals is the length of the normal vectors to draw, zero disables them.
	Normals float32 `yaml:"normals"`

	// Spin is the angular velocity around Axis in radians per second.
	Spin float32 `yaml:"spin"`

	// Trail is the number of samples of the trajectory drawn behind an orbit.
	Trail int `yaml:"trail"`
}

var kinds = map[string]bool{
	"sphere":      true,
	"cube":        true,
	"cylinder":    true,
	"cone":        true,
	"torus":       true,
	"disc":        true,
	"arrow":       true,
	"frame":       true,
	"tetrahedron": true,
	"polygon":     true,
	"heightfield": true,
	"curve":       true,
	"orbit":       true,
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "vclview",
			Width:  1024,
			Height: 768,
		},
		Camera: CameraConfig{
			Distance: 5,
			FovY:     50,
		},
		Light:      [3]float32{3, 3, 10},
		Background: [3]float32{0.1, 0.1, 0.12},
	}
}

// ParseConfig decodes a yaml scene description on top of DefaultConfig.
// Unknown fields are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	for idx := range config.Objects {
		config.Objects[idx].applyDefaults()
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// LoadConfig reads the scene description at path.
func LoadConfig(path string) (Config, error) {
	if err := textio.RequireFile(path); err != nil {
		return Config{}, err
	}

	return textio.ReadFile(path, ParseConfig)
}

func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d is not positive", c.Window.Width, c.Window.Height))
	}

	if c.Camera.Distance <= 0 {
		errs = append(errs, fmt.Errorf("camera distance %g is not positive", c.Camera.Distance))
	}

	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("camera fovY %g is not in (0, 180)", c.Camera.FovY))
	}

	for idx, object := range c.Objects {
		if !kinds[object.Kind] {
			errs = append(errs, fmt.Errorf("object %d: unknown kind %q", idx, object.Kind))
		}

		if (object.Kind == "curve" || object.Kind == "heightfield") && object.File == "" {
			errs = append(errs, fmt.Errorf("object %d: kind %q requires a file", idx, object.Kind))
		}
	}

	return errors.Join(errs...)
}

func (o *ObjectConfig) applyDefaults() {
	if o.Axis == [3]float32{} {
		o.Axis = [3]float32{0, 0, 1}
	}

	if o.Radius == 0 {
		o.Radius = 0.5
	}

	if o.MinorRadius == 0 {
		o.MinorRadius = o.Radius / 4
	}

	if o.Height == 0 {
		o.Height = 1
	}

	if o.Edge == 0 {
		o.Edge = 1
	}

	if o.Samples == 0 {
		o.Samples = 32
	}

	if o.Color == [3]float32{} {
		o.Color = [3]float32{1, 1, 1}
	}

	if o.Alpha == 0 {
		o.Alpha = 1
	}

	if o.From == o.To {
		o.To = [3]float32{o.From[0], o.From[1], o.From[2] + 1}
	}
}

func vec3(v [3]float32) gm.Vec3 {
	return gm.V3(v[0], v[1], v[2])
}
