// Package viewer implements the sphere viewer's frame loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/sphereview/internal/config"
	"github.com/Faultbox/sphereview/internal/engine/camera"
	"github.com/Faultbox/sphereview/internal/engine/capture"
	"github.com/Faultbox/sphereview/internal/engine/input"
	"github.com/Faultbox/sphereview/internal/engine/renderer"
	"github.com/Faultbox/sphereview/internal/engine/shader"
	"github.com/Faultbox/sphereview/internal/engine/sphere"
	"github.com/Faultbox/sphereview/internal/engine/vertexarray"
	"github.com/Faultbox/sphereview/internal/engine/window"
	"github.com/Faultbox/sphereview/internal/logger"
	"github.com/Faultbox/sphereview/internal/viewer/shaders"
	"github.com/Faultbox/sphereview/pkg/math"
)

// Viewer owns the window, GPU resources and camera for one session.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	program *shader.Program
	mesh    *vertexarray.VertexArray

	controls    *controls
	screenshots *capture.Screenshotter
}

// New opens the window, builds GPU resources and places the camera.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:         cfg,
		log:         logger.Named("viewer"),
		input:       input.New(),
		screenshots: capture.New(cfg.Capture.Dir, cfg.Capture.Prefix),
	}

	v.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the window: it needs a current GL context.
	fbWidth, fbHeight := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: fbWidth, Height: fbHeight})
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.program, err = shader.NewProgram(shaders.SphereVertexShader, shaders.SphereFragmentShader)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to build sphere program: %w", err)
	}

	vertices, err := sphere.Generate(cfg.Sphere.Radius, cfg.Sphere.Sectors, cfg.Sphere.Stacks)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to generate sphere: %w", err)
	}
	v.mesh, err = vertexarray.New(vertices)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to upload sphere: %w", err)
	}
	v.log.Info("sphere uploaded",
		zap.Int("sectors", cfg.Sphere.Sectors),
		zap.Int("stacks", cfg.Sphere.Stacks),
		zap.Int32("vertices", v.mesh.VertexCount()),
	)

	v.controls = &controls{
		camera: camera.NewOrbitCameraWithSpeed(
			math.Vec3FromArray(cfg.Camera.Target),
			cfg.Camera.Radius,
			cfg.Camera.OrbitSpeed,
			cfg.Camera.ZoomSpeed,
		),
		resetDuration: cfg.Camera.ResetDuration,
		wireframe:     cfg.Sphere.Wireframe,
	}

	v.log.Info("viewer initialized")
	return v, nil
}

// Run drives the frame loop until the window is closed or Escape is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		v.input.Update()

		wantScreenshot := false
		for _, ev := range v.input.Events() {
			switch v.controls.handle(ev) {
			case cmdQuit:
				v.running = false
			case cmdResize:
				v.renderer.Resize(v.window.DrawableSize())
			case cmdScreenshot:
				wantScreenshot = true
			}
		}
		if !v.running {
			break
		}

		v.controls.update(float32(dt))

		v.render()

		// Read back before the swap, while the back buffer still holds this frame.
		if wantScreenshot {
			v.captureScreenshot()
		}

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases GPU resources and the window. Safe on a partially built Viewer.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.mesh != nil {
		v.mesh.Delete()
	}
	if v.program != nil {
		v.program.Delete()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// render draws the current frame.
func (v *Viewer) render() {
	v.renderer.Begin()

	cam := v.cfg.Camera
	projection := math.Perspective(math.Radians(cam.FOVDegrees), v.renderer.Aspect(), cam.Near, cam.Far)
	mvp := projection.Mul(v.controls.camera.ViewMatrix())

	v.renderer.DrawMesh(v.program, v.mesh, mvp, v.cfg.Sphere.Color, v.controls.wireframe)
}

func (v *Viewer) captureScreenshot() {
	width, height := v.renderer.Size()
	path, err := v.screenshots.SavePixels(capture.ReadFramebuffer(width, height), width, height)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}
