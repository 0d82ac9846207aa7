// Package inspector implements the sphere inspector: the sphere rendered
// offscreen into an ImGui scene panel next to a panel with live camera
// readouts, tessellation sliders, view toggles and glTF export.
package inspector

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/sphereview/internal/config"
	"github.com/Faultbox/sphereview/internal/engine/camera"
	"github.com/Faultbox/sphereview/internal/engine/capture"
	"github.com/Faultbox/sphereview/internal/engine/framebuffer"
	"github.com/Faultbox/sphereview/internal/engine/renderer"
	"github.com/Faultbox/sphereview/internal/engine/shader"
	"github.com/Faultbox/sphereview/internal/engine/sphere"
	"github.com/Faultbox/sphereview/internal/engine/ui"
	"github.com/Faultbox/sphereview/internal/engine/vertexarray"
	"github.com/Faultbox/sphereview/internal/logger"
	"github.com/Faultbox/sphereview/internal/viewer/shaders"
	"github.com/Faultbox/sphereview/pkg/math"
)

// Layout, in logical pixels.
const panelWidth = 300

// Slider bounds for the tessellation controls.
const (
	minSectors = 3
	maxSectors = 256
	minStacks  = 2
	maxStacks  = 128
)

// Inspector owns the ImGui window, the offscreen scene and the camera.
type Inspector struct {
	cfg *config.Config
	log *zap.Logger

	backend  *ui.Backend
	renderer *renderer.Renderer
	program  *shader.Program
	scene    *framebuffer.Framebuffer

	mesh     *vertexarray.VertexArray
	vertices []float32
	sectors  int32
	stacks   int32

	camera    *camera.OrbitCamera
	reset     *camera.ResetAnimation
	pointer   pointer
	wireframe bool

	screenshots    *capture.Screenshotter
	wantScreenshot bool
	exports        *exporter
	status         string

	lastFrame time.Time
}

// New opens the inspector window and builds the GPU resources.
func New(cfg *config.Config) (*Inspector, error) {
	in := &Inspector{
		cfg:         cfg,
		log:         logger.Named("inspector"),
		wireframe:   cfg.Sphere.Wireframe,
		screenshots: capture.New(cfg.Capture.Dir, cfg.Capture.Prefix),
		exports:     newExporter(saveDialog),
		camera: camera.NewOrbitCameraWithSpeed(
			math.Vec3FromArray(cfg.Camera.Target),
			cfg.Camera.Radius,
			cfg.Camera.OrbitSpeed,
			cfg.Camera.ZoomSpeed,
		),
	}
	in.sectors, in.stacks = clampTessellation(cfg.Sphere.Sectors, cfg.Sphere.Stacks)

	var err error
	in.backend, err = ui.NewBackend(cfg.Window.Title+" inspector", cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create ui backend: %w", err)
	}

	in.renderer, err = renderer.New(renderer.Config{Width: cfg.Window.Width, Height: cfg.Window.Height})
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	in.program, err = shader.NewProgram(shaders.SphereVertexShader, shaders.SphereFragmentShader)
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("failed to build sphere program: %w", err)
	}

	in.scene, err = framebuffer.New(int32(cfg.Window.Width-panelWidth), int32(cfg.Window.Height))
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("failed to create scene target: %w", err)
	}

	if err := in.rebuild(); err != nil {
		in.Close()
		return nil, err
	}

	in.log.Info("inspector initialized")
	return in, nil
}

// Run drives ImGui frames until the window is closed.
func (in *Inspector) Run() {
	in.lastFrame = time.Now()
	in.backend.Run(in.frame)
}

// Close releases GPU resources. Safe on a partially built Inspector.
func (in *Inspector) Close() {
	in.log.Info("closing inspector")

	if in.mesh != nil {
		in.mesh.Delete()
	}
	if in.scene != nil {
		in.scene.Delete()
	}
	if in.program != nil {
		in.program.Delete()
	}
	if in.renderer != nil {
		in.renderer.Close()
	}
}

// rebuild regenerates the sphere at the current slider values.
func (in *Inspector) rebuild() error {
	vertices, err := sphere.Generate(in.cfg.Sphere.Radius, int(in.sectors), int(in.stacks))
	if err != nil {
		return fmt.Errorf("failed to generate sphere: %w", err)
	}
	mesh, err := vertexarray.New(vertices)
	if err != nil {
		return fmt.Errorf("failed to upload sphere: %w", err)
	}

	if in.mesh != nil {
		in.mesh.Delete()
	}
	in.mesh = mesh
	in.vertices = vertices

	in.log.Debug("sphere rebuilt",
		zap.Int32("sectors", in.sectors),
		zap.Int32("stacks", in.stacks),
		zap.Int32("vertices", mesh.VertexCount()),
	)
	return nil
}

func (in *Inspector) frame() {
	now := time.Now()
	dt := float32(now.Sub(in.lastFrame).Seconds())
	in.lastFrame = now

	if path, err := in.exports.poll(in.vertices); err != nil {
		in.log.Warn("export failed", zap.Error(err))
		in.status = "Export failed: " + err.Error()
	} else if path != "" {
		in.log.Info("sphere exported", zap.String("path", path))
		in.status = "Exported " + path
	}

	in.handleKeys()

	if in.reset != nil && in.reset.Update(in.camera, dt) {
		in.reset = nil
	}

	pos, size := ui.WorkArea()
	sceneWidth := max(size.X-panelWidth, 1)
	in.drawScene(pos, imgui.NewVec2(sceneWidth, size.Y))
	in.drawPanel(imgui.NewVec2(pos.X+sceneWidth, pos.Y), imgui.NewVec2(panelWidth, size.Y))
}

func (in *Inspector) handleKeys() {
	if ui.KeyPressed(imgui.KeyHome) {
		in.startReset()
	}
	if ui.KeyPressed(imgui.KeyW) {
		in.wireframe = !in.wireframe
	}
	if ui.KeyPressed(imgui.KeyF12) {
		in.wantScreenshot = true
	}
}

// startReset eases the camera home. A drag in progress keeps the camera.
func (in *Inspector) startReset() {
	if in.camera.Dragging() {
		return
	}
	in.reset = in.camera.AnimateReset(in.cfg.Camera.ResetDuration)
}

func (in *Inspector) drawScene(pos, size imgui.Vec2) {
	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(size)

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		avail := imgui.ContentRegionAvail()
		scale := ui.FramebufferScale()
		in.scene.Resize(int32(avail.X*scale.X), int32(avail.Y*scale.Y))

		in.renderScene()
		if in.wantScreenshot {
			in.wantScreenshot = false
			in.captureScreenshot()
		}

		hovered := ui.SceneImage(in.scene.ColorTexture(), avail)
		if in.pointer.apply(in.camera, hovered, ui.ReadPointer()) {
			in.reset = nil
		}
	}
	imgui.End()
	imgui.PopStyleVar()
}

func (in *Inspector) renderScene() {
	restore := in.scene.Bind()
	defer restore()

	in.renderer.Resize(in.scene.Size())
	in.renderer.Begin()

	cam := in.cfg.Camera
	projection := math.Perspective(math.Radians(cam.FOVDegrees), in.renderer.Aspect(), cam.Near, cam.Far)
	mvp := projection.Mul(in.camera.ViewMatrix())

	in.renderer.DrawMesh(in.program, in.mesh, mvp, in.cfg.Sphere.Color, in.wireframe)
}

func (in *Inspector) drawPanel(pos, size imgui.Vec2) {
	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(size)

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove | imgui.WindowFlagsNoCollapse
	if imgui.BeginV("Sphere", nil, flags) {
		imgui.Text("Camera")
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Azimuth:   %.3f rad", in.camera.Azimuth))
		imgui.Text(fmt.Sprintf("Elevation: %.3f rad", in.camera.Elevation))
		imgui.Text(fmt.Sprintf("Radius:    %.2f", in.camera.Radius))
		eye := in.camera.Position()
		imgui.Text(fmt.Sprintf("Eye: (%.2f, %.2f, %.2f)", eye.X, eye.Y, eye.Z))
		if imgui.ButtonV("Reset View", imgui.NewVec2(-1, 0)) {
			in.startReset()
		}

		imgui.Spacing()
		imgui.Text("Mesh")
		imgui.Separator()
		changed := imgui.SliderInt("Sectors", &in.sectors, minSectors, maxSectors)
		changed = imgui.SliderInt("Stacks", &in.stacks, minStacks, maxStacks) || changed
		if changed {
			if err := in.rebuild(); err != nil {
				in.log.Warn("sphere rebuild failed", zap.Error(err))
				in.status = err.Error()
			}
		}
		imgui.Text(fmt.Sprintf("Triangles: %d", in.mesh.VertexCount()/3))
		imgui.Checkbox("Wireframe", &in.wireframe)

		imgui.Spacing()
		imgui.Text("Export")
		imgui.Separator()
		imgui.BeginDisabledV(in.exports.busy())
		if imgui.ButtonV("Export glTF...", imgui.NewVec2(-1, 0)) {
			in.exports.open()
		}
		imgui.EndDisabled()
		if in.status != "" {
			imgui.TextWrapped(in.status)
		}

		imgui.Spacing()
		imgui.Separator()
		imgui.TextDisabled("Drag to orbit, scroll to zoom")
		imgui.TextDisabled("Home: reset  W: wireframe  F12: screenshot")
	}
	imgui.End()
}

func (in *Inspector) captureScreenshot() {
	width, height := in.scene.Size()
	path, err := in.screenshots.SavePixels(in.scene.ReadPixels(), width, height)
	if err != nil {
		in.log.Warn("screenshot failed", zap.Error(err))
		in.status = "Screenshot failed: " + err.Error()
		return
	}
	in.log.Info("screenshot saved", zap.String("path", path))
	in.status = "Saved " + path
}

// clampTessellation fits configured values into the slider ranges.
func clampTessellation(sectors, stacks int) (int32, int32) {
	return int32(min(max(sectors, minSectors), maxSectors)),
		int32(min(max(stacks, minStacks), maxStacks))
}
