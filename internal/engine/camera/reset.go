package camera

import (
	gomath "math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ResetAnimation eases a camera back to its initial orbit over time.
type ResetAnimation struct {
	azimuth   *gween.Tween
	elevation *gween.Tween
	radius    *gween.Tween
	done      bool
}

// AnimateReset starts an eased transition from the current orbit to the one
// Reset would produce. duration is in seconds; a non-positive duration
// resets immediately and returns a finished animation.
func (c *OrbitCamera) AnimateReset(duration float32) *ResetAnimation {
	if duration <= 0 {
		c.Reset()
		return &ResetAnimation{done: true}
	}

	// Take the short way round.
	azimuth := float32(gomath.Remainder(float64(c.Azimuth), 2*gomath.Pi))
	c.Azimuth = azimuth

	return &ResetAnimation{
		azimuth:   gween.New(azimuth, 0, duration, ease.OutCubic),
		elevation: gween.New(clampElevation(c.Elevation), gomath.Pi/2, duration, ease.OutCubic),
		radius:    gween.New(c.Radius, c.homeRadius, duration, ease.OutCubic),
	}
}

// Update advances the animation by dt seconds and writes the result into c.
// It returns true once the camera has reached its initial orbit.
func (a *ResetAnimation) Update(c *OrbitCamera, dt float32) bool {
	if a.done {
		return true
	}

	azimuth, finished := a.azimuth.Update(dt)
	elevation, _ := a.elevation.Update(dt)
	radius, _ := a.radius.Update(dt)

	c.Azimuth = azimuth
	c.Elevation = clampElevation(elevation)
	c.Radius = max(radius, MinRadius)

	if finished {
		c.Reset()
		a.done = true
	}
	return a.done
}

// Done reports whether the animation has finished.
func (a *ResetAnimation) Done() bool {
	return a.done
}
