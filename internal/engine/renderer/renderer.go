// Package renderer provides OpenGL frame setup and draw submission.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sphereview/internal/engine/shader"
	"github.com/Faultbox/sphereview/internal/engine/vertexarray"
	"github.com/Faultbox/sphereview/internal/logger"
	"github.com/Faultbox/sphereview/pkg/math"
)

// Uniform names the sphere shaders must declare.
const (
	UniformMVP   = "uMVP"
	UniformColor = "uColor"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns global GL state and issues draw calls.
type Renderer struct {
	config Config
	log    *zap.Logger
}

// New initializes OpenGL and the default pipeline state.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	applyState()
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// applyState sets the pipeline state the sphere pass relies on. An ImGui
// frame may change it between passes.
func applyState() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Sphere triangles are counter-clockwise seen from outside.
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
}

// Close logs shutdown. GPU objects are owned by their wrappers.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
}

// Resize updates the viewport to the framebuffer size in pixels.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	if width == r.config.Width && height == r.config.Height {
		return
	}
	r.config.Width = width
	r.config.Height = height
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns width/height, or 1 for a collapsed viewport.
func (r *Renderer) Aspect() float32 {
	if r.config.Width <= 0 || r.config.Height <= 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	applyState()
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawMesh draws a position-only triangle list with a flat color.
func (r *Renderer) DrawMesh(program *shader.Program, mesh *vertexarray.VertexArray, mvp math.Mat4, color [4]float32, wireframe bool) {
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	program.Use()
	program.SetUniformMat4(UniformMVP, mvp)
	program.SetUniform4f(UniformColor, color[0], color[1], color[2], color[3])

	mesh.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, mesh.VertexCount())
	gl.BindVertexArray(0)
}
