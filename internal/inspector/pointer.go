package inspector

import (
	"github.com/Faultbox/sphereview/internal/engine/camera"
	"github.com/Faultbox/sphereview/internal/engine/ui"
)

// pointer turns per-frame ImGui mouse samples into camera pointer events.
// Only a press that lands on the scene starts a drag, so slider drags in the
// panel never orbit the camera.
type pointer struct {
	held bool // left button state in the previous sample
	drag bool // the current press began on the scene
}

// apply forwards one sample and reports whether the user took hold of the
// view by pressing on it or scrolling over it.
func (p *pointer) apply(cam *camera.OrbitCamera, hovered bool, s ui.Pointer) (took bool) {
	x, y := float64(s.X), float64(s.Y)
	pressed := s.LeftDown && !p.held
	released := !s.LeftDown && p.held
	p.held = s.LeftDown

	switch {
	case pressed && hovered:
		cam.ProcessPointerButton(camera.ButtonLeft, camera.ActionPress, x, y)
		p.drag = true
		took = true
	case released && p.drag:
		cam.ProcessPointerButton(camera.ButtonLeft, camera.ActionRelease, x, y)
		p.drag = false
	}

	cam.ProcessPointerMove(x, y)

	if hovered && s.Wheel != 0 {
		cam.ProcessScroll(float64(s.Wheel))
		took = true
	}
	return took
}
