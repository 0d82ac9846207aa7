// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Sphere  SphereConfig  `yaml:"sphere"`
	Capture CaptureConfig `yaml:"capture"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds orbit camera and projection settings.
type CameraConfig struct {
	Target        [3]float32 `yaml:"target"`
	Radius        float32    `yaml:"radius"`
	OrbitSpeed    float32    `yaml:"orbit_speed"`
	ZoomSpeed     float32    `yaml:"zoom_speed"`
	FOVDegrees    float32    `yaml:"fov_degrees"`
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	ResetDuration float32    `yaml:"reset_duration"` // Seconds; 0 resets instantly
}

// SphereConfig holds tessellation and draw settings.
type SphereConfig struct {
	Radius    float32    `yaml:"radius"`
	Sectors   int        `yaml:"sectors"`
	Stacks    int        `yaml:"stacks"`
	Color     [4]float32 `yaml:"color"`
	Wireframe bool       `yaml:"wireframe"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`

	// Components overrides Level per named logger, e.g. {renderer: debug}.
	Components map[string]string `yaml:"components,omitempty"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "sphereview",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Target:        [3]float32{0, 0, 0},
			Radius:        5,
			OrbitSpeed:    0.01,
			ZoomSpeed:     1.0,
			FOVDegrees:    45,
			Near:          0.1,
			Far:           100,
			ResetDuration: 0.4,
		},
		Sphere: SphereConfig{
			Radius:    1.0,
			Sectors:   36,
			Stacks:    18,
			Color:     [4]float32{0.35, 0.65, 0.95, 1.0},
			Wireframe: false,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "sphereview",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting the viewer cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.Radius <= 0:
		return fmt.Errorf("%w: camera radius %v", ErrInvalid, c.Camera.Radius)
	case c.Camera.OrbitSpeed <= 0 || c.Camera.ZoomSpeed <= 0:
		return fmt.Errorf("%w: camera speeds must be positive", ErrInvalid)
	case c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180:
		return fmt.Errorf("%w: fov %v out of (0, 180)", ErrInvalid, c.Camera.FOVDegrees)
	case c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.ResetDuration < 0:
		return fmt.Errorf("%w: negative reset duration", ErrInvalid)
	case c.Sphere.Radius <= 0:
		return fmt.Errorf("%w: sphere radius %v", ErrInvalid, c.Sphere.Radius)
	case c.Sphere.Sectors <= 0 || c.Sphere.Stacks <= 0:
		return fmt.Errorf("%w: sphere tessellation %dx%d", ErrInvalid, c.Sphere.Sectors, c.Sphere.Stacks)
	}
	return nil
}
