// Package camera provides the orbit camera driven by pointer and scroll input.
package camera

import (
	gomath "math"

	"github.com/Faultbox/sphereview/pkg/math"
)

// Limits applied to the orbit state.
const (
	MinRadius    float32 = 1.0
	MinElevation float32 = 0.01
	MaxElevation float32 = gomath.Pi - 0.01
)

// Default sensitivities.
const (
	DefaultOrbitSpeed float32 = 0.01
	DefaultZoomSpeed  float32 = 1.0
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonOther
)

// Action is a pointer button transition.
type Action int

const (
	ActionPress Action = iota
	ActionRelease
)

// OrbitCamera orbits a target using spherical coordinates.
//
// Elevation is the polar angle measured from +Y, so π/2 puts the eye level
// with the target. Azimuth is not normalized.
type OrbitCamera struct {
	Target    math.Vec3
	Radius    float32
	Azimuth   float32
	Elevation float32

	orbitSpeed float32
	zoomSpeed  float32
	homeRadius float32

	dragging     bool
	lastX, lastY float64
}

// NewOrbitCamera creates an orbit camera with default sensitivities.
func NewOrbitCamera(target math.Vec3, radius float32) *OrbitCamera {
	return NewOrbitCameraWithSpeed(target, radius, DefaultOrbitSpeed, DefaultZoomSpeed)
}

// NewOrbitCameraWithSpeed creates an orbit camera with explicit sensitivities.
// A radius below MinRadius is raised to MinRadius.
func NewOrbitCameraWithSpeed(target math.Vec3, radius, orbitSpeed, zoomSpeed float32) *OrbitCamera {
	radius = max(radius, MinRadius)
	return &OrbitCamera{
		Target:     target,
		Radius:     radius,
		Azimuth:    0,
		Elevation:  gomath.Pi / 2,
		orbitSpeed: orbitSpeed,
		zoomSpeed:  zoomSpeed,
		homeRadius: radius,
	}
}

// OrbitSpeed returns the radians turned per pixel of drag.
func (c *OrbitCamera) OrbitSpeed() float32 { return c.orbitSpeed }

// ZoomSpeed returns the distance moved per scroll unit.
func (c *OrbitCamera) ZoomSpeed() float32 { return c.zoomSpeed }

// Dragging reports whether the primary button is held.
func (c *OrbitCamera) Dragging() bool { return c.dragging }

// LastPointer returns the last observed pointer coordinates.
func (c *OrbitCamera) LastPointer() (x, y float64) { return c.lastX, c.lastY }

// Position returns the eye position.
//
// The target is not added: the eye orbits the origin while ViewMatrix still
// looks at Target. Both only agree when Target is the origin.
func (c *OrbitCamera) Position() math.Vec3 {
	elevation := float64(clampElevation(c.Elevation))
	azimuth := float64(c.Azimuth)
	r := float64(c.Radius)

	return math.Vec3{
		X: float32(r * gomath.Sin(elevation) * gomath.Cos(azimuth)),
		Y: float32(r * gomath.Cos(elevation)),
		Z: float32(r * gomath.Sin(elevation) * gomath.Sin(azimuth)),
	}
}

// ViewMatrix returns the right-handed view matrix from Position to Target.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Target, up)
}

// ProcessPointerMove orbits the camera while dragging. The last pointer
// position is recorded on every call so a drag never starts with a jump.
func (c *OrbitCamera) ProcessPointerMove(x, y float64) {
	dx := x - c.lastX
	dy := y - c.lastY

	if c.dragging {
		c.Azimuth += float32(dx) * c.orbitSpeed
		c.Elevation -= float32(dy) * c.orbitSpeed
		c.Elevation = clampElevation(c.Elevation)
	}

	c.lastX = x
	c.lastY = y
}

// ProcessPointerButton starts or stops a drag. Only ButtonLeft is handled.
func (c *OrbitCamera) ProcessPointerButton(button Button, action Action, x, y float64) {
	if button != ButtonLeft {
		return
	}

	switch action {
	case ActionPress:
		c.dragging = true
		c.lastX = x
		c.lastY = y
	case ActionRelease:
		c.dragging = false
	}
}

// ProcessScroll zooms toward the target; positive offsets move closer.
func (c *OrbitCamera) ProcessScroll(yOffset float64) {
	c.Radius -= float32(yOffset) * c.zoomSpeed
	if c.Radius < MinRadius {
		c.Radius = MinRadius
	}
}

// SetTarget replaces the orbit pivot.
func (c *OrbitCamera) SetTarget(target math.Vec3) {
	c.Target = target
}

// Reset returns the camera to its initial orbit. Target and drag state are
// left untouched.
func (c *OrbitCamera) Reset() {
	c.Azimuth = 0
	c.Elevation = gomath.Pi / 2
	c.Radius = c.homeRadius
}

func clampElevation(e float32) float32 {
	return min(max(e, MinElevation), MaxElevation)
}
