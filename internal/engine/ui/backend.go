// Package ui wraps the cimgui-go SDL backend, which owns the inspector's
// window, GL context and ImGui frame.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sphereview/internal/logger"
)

// Backend drives the ImGui frame loop.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
}

// NewBackend opens the window and loads GL function pointers.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{log: logger.Named("ui")}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	b.log.Info("imgui backend ready",
		zap.String("title", title),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return b, nil
}

// Run calls frame once per ImGui frame until the window closes.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// WorkArea returns the main viewport's work area in logical pixels.
func WorkArea() (pos, size imgui.Vec2) {
	viewport := imgui.MainViewport()
	return viewport.WorkPos(), viewport.WorkSize()
}

// FramebufferScale returns physical pixels per logical pixel.
func FramebufferScale() imgui.Vec2 {
	return imgui.CurrentIO().DisplayFramebufferScale()
}

// Pointer is one frame of mouse state.
type Pointer struct {
	X, Y     float32
	LeftDown bool
	Wheel    float32
}

// ReadPointer samples the mouse for the current frame.
func ReadPointer() Pointer {
	pos := imgui.MousePos()
	return Pointer{
		X:        pos.X,
		Y:        pos.Y,
		LeftDown: imgui.IsMouseDown(imgui.MouseButtonLeft),
		Wheel:    imgui.CurrentIO().MouseWheel(),
	}
}

// KeyPressed reports a key press this frame. Presses are ignored while a
// widget such as a slider is active.
func KeyPressed(key imgui.Key) bool {
	return !imgui.IsAnyItemActive() && imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// SceneImage draws a GL color texture with its bottom-up rows flipped and
// reports whether the pointer is over it.
func SceneImage(texture uint32, size imgui.Vec2) bool {
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
	imgui.ImageV(*texRef, size, imgui.NewVec2(0, 1), imgui.NewVec2(1, 0))
	return imgui.IsItemHovered()
}
