package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/sphereview/internal/engine/camera"
	"github.com/Faultbox/sphereview/internal/engine/input"
)

// command is a request from input that the frame loop must carry out.
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdResize
	cmdScreenshot
)

// Key bindings.
const (
	keyQuit       = sdl.SCANCODE_ESCAPE
	keyReset      = sdl.SCANCODE_HOME
	keyWireframe  = sdl.SCANCODE_W
	keyScreenshot = sdl.SCANCODE_F12
)

// controls routes input events to the camera and tracks view toggles.
type controls struct {
	camera        *camera.OrbitCamera
	resetDuration float32
	reset         *camera.ResetAnimation
	wireframe     bool
}

// handle applies one event and returns what the frame loop should do next.
func (c *controls) handle(ev input.Event) command {
	switch ev.Type {
	case input.EventQuit:
		return cmdQuit

	case input.EventWindowResize:
		return cmdResize

	case input.EventPointerMove:
		c.camera.ProcessPointerMove(ev.X, ev.Y)

	case input.EventPointerButton:
		// Grabbing the camera takes over from an eased reset.
		if ev.Button == camera.ButtonLeft && ev.Action == camera.ActionPress {
			c.reset = nil
		}
		c.camera.ProcessPointerButton(ev.Button, ev.Action, ev.X, ev.Y)

	case input.EventScroll:
		c.reset = nil
		c.camera.ProcessScroll(ev.ScrollY)

	case input.EventKeyDown:
		switch ev.Key {
		case keyQuit:
			return cmdQuit
		case keyReset:
			// The drag owns the camera until release.
			if !c.camera.Dragging() {
				c.reset = c.camera.AnimateReset(c.resetDuration)
			}
		case keyWireframe:
			c.wireframe = !c.wireframe
		case keyScreenshot:
			return cmdScreenshot
		}
	}
	return cmdNone
}

// update advances time-based camera motion by dt seconds.
func (c *controls) update(dt float32) {
	if c.reset == nil {
		return
	}
	if c.reset.Update(c.camera, dt) {
		c.reset = nil
	}
}
