// Package config decodes the optional YAML scene-override file
// cmd/pathtracer's -scene-config flag points at, letting render and
// camera parameters be tweaked without recompiling (spec.md §6: scenes
// stay data).
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kestrelrender/go-pathtracer/internal/camera"
	"github.com/kestrelrender/go-pathtracer/internal/core"
)

// Vec3Override is a YAML-friendly optional 3-vector: present whenever its
// key appears in the file; components missing from it decode as zero.
type Vec3Override struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// CameraOverrides tweaks a subset of camera.Config's fields; a nil
// field leaves the scene's built-in value untouched.
type CameraOverrides struct {
	LookFrom      *Vec3Override `yaml:"look_from"`
	LookAt        *Vec3Override `yaml:"look_at"`
	VerticalFOV   *float64      `yaml:"vertical_fov"`
	Aperture      *float64      `yaml:"aperture"`
	FocusDistance *float64      `yaml:"focus_distance"`
}

// Overrides is the top-level shape of a -scene-config YAML file. Every
// field is optional; unset fields leave the command-line defaults or
// the selected scene's built-in values in place.
type Overrides struct {
	Width           *int             `yaml:"width"`
	Height          *int             `yaml:"height"`
	SamplesPerPixel *int             `yaml:"samples_per_pixel"`
	MaxDepth        *int             `yaml:"max_depth"`
	Seed            *int64           `yaml:"seed"`
	Camera          *CameraOverrides `yaml:"camera"`
}

// LoadOverrides reads and decodes a YAML scene-override file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scene config %q", path)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, errors.Wrapf(err, "parse scene config %q", path)
	}
	return &o, nil
}

// ApplyCamera overlays the non-nil fields of o.Camera onto cfg,
// returning the merged camera.Config. A nil receiver or nil Camera
// field returns cfg unchanged.
func (o *Overrides) ApplyCamera(cfg camera.Config) camera.Config {
	if o == nil || o.Camera == nil {
		return cfg
	}

	c := o.Camera
	if c.LookFrom != nil {
		cfg.LookFrom = vec3From(c.LookFrom)
	}
	if c.LookAt != nil {
		cfg.LookAt = vec3From(c.LookAt)
	}
	if c.VerticalFOV != nil {
		cfg.VerticalFOV = *c.VerticalFOV
	}
	if c.Aperture != nil {
		cfg.Aperture = *c.Aperture
	}
	if c.FocusDistance != nil {
		cfg.FocusDistance = *c.FocusDistance
	}
	return cfg
}

func vec3From(v *Vec3Override) core.Vec3 {
	return core.New(v.X, v.Y, v.Z)
}
