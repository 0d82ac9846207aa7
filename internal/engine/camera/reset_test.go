package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/sphereview/pkg/math"
)

func TestAnimateResetReachesHome(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{}, 5)
	c.Azimuth, c.Elevation, c.Radius = 2, 0.3, 12

	anim := c.AnimateReset(0.5)
	steps := 0
	for !anim.Update(c, 1.0/60) {
		steps++
		if c.Elevation < MinElevation || c.Elevation > MaxElevation || c.Radius < MinRadius {
			t.Fatalf("invariant broken mid-animation: el=%f r=%f", c.Elevation, c.Radius)
		}
		if steps > 1000 {
			t.Fatal("animation did not finish")
		}
	}

	if steps == 0 {
		t.Error("animation should take more than one frame")
	}
	if c.Azimuth != 0 || !near(c.Elevation, gomath.Pi/2) || c.Radius != 5 {
		t.Errorf("after animation: az=%f el=%f r=%f", c.Azimuth, c.Elevation, c.Radius)
	}
	if !anim.Done() {
		t.Error("Done() should be true after finishing")
	}
}

func TestAnimateResetTakesShortestTurn(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{}, 5)
	c.Azimuth = 4 * gomath.Pi + 0.5
	before := c.Position()

	c.AnimateReset(1)

	if !near(c.Azimuth, 0.5) {
		t.Errorf("Azimuth = %f, want 0.5 after wrapping", c.Azimuth)
	}
	after := c.Position()
	if !near(before.X, after.X) || !near(before.Z, after.Z) {
		t.Errorf("wrapping moved the eye: %v -> %v", before, after)
	}
}

func TestAnimateResetZeroDuration(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{}, 5)
	c.Azimuth, c.Radius = 1, 9

	anim := c.AnimateReset(0)

	if !anim.Done() {
		t.Error("zero-duration animation should be done")
	}
	if c.Azimuth != 0 || c.Radius != 5 {
		t.Errorf("camera not reset: az=%f r=%f", c.Azimuth, c.Radius)
	}
	if !anim.Update(c, 0.1) {
		t.Error("Update on a finished animation should report done")
	}
}
