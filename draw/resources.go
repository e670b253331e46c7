package draw

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"path/filepath"
	"reflect"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/vcl/textio"
)

// Resources loads textures and shaders from files and caches them by path.
// The zero value is ready to use.
type Resources struct {
	textures map[string]*ebiten.Image
	shaders  map[string]*ebiten.Shader
}

// Texture returns the image at path.
func (r *Resources) Texture(path string) (*ebiten.Image, error) {
	return cached(&r.textures, path, func() (*ebiten.Image, error) {
		img, err := textio.ReadFile(path, DecodeImage)
		if err != nil {
			return nil, err
		}

		return ebiten.NewImageFromImage(img), nil
	})
}

// Shader returns the compiled Kage shader at path.
func (r *Resources) Shader(path string) (*ebiten.Shader, error) {
	return cached(&r.shaders, path, func() (*ebiten.Shader, error) {
		source, err := textio.ReadFile(path, io.ReadAll)
		if err != nil {
			return nil, err
		}

		shader, err := ebiten.NewShader(source)
		if err != nil {
			return nil, fmt.Errorf("compile shader %q: %w", path, err)
		}

		return shader, nil
	})
}

// Release deallocates all loaded textures and shaders.
func (r *Resources) Release() {
	for _, img := range r.textures {
		img.Deallocate()
	}

	for _, shader := range r.shaders {
		shader.Deallocate()
	}

	r.textures = nil
	r.shaders = nil
}

// DecodeImage decodes a png or jpeg image.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	return img, nil
}

func cached[T any](values *map[string]T, path string, load func() (T, error)) (T, error) {
	path = filepath.Clean(path)

	if value, ok := (*values)[path]; ok {
		return value, nil
	}

	startTime := time.Now()

	value, err := load()
	if err != nil {
		slog.Warn("Failed to load resource",
			slog.String("type", reflect.TypeFor[T]().String()),
			slog.String("path", path),
			slog.String("error", err.Error()))

		return value, err
	}

	slog.Debug("Loaded resource",
		slog.String("type", reflect.TypeFor[T]().String()),
		slog.String("path", path),
		slog.Duration("duration", time.Since(startTime)))

	if *values == nil {
		*values = map[string]T{}
	}

	(*values)[path] = value

	return value, nil
}
