package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func TestMulMatchesMathgl(t *testing.T) {
	a := LookAt(Vec3{3, 2, -4}, Vec3{1, 1, 1}, Vec3{0, 1, 0})
	b := Perspective(Radians(60), 4.0/3.0, 0.5, 50)

	got := b.Mul(a)
	want := mgl32.Mat4(b).Mul4(mgl32.Mat4(a))
	for i := range 16 {
		if abs(got[i]-want[i]) > 1e-4 {
			t.Errorf("Mul[%d] = %f, mathgl has %f", i, got[i], want[i])
		}
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-float32(math.Pi)) > eps {
		t.Errorf("Radians(180) = %f, want pi", got)
	}
}

func TestPerspectiveMatchesMathgl(t *testing.T) {
	fov := Radians(45)
	got := Perspective(fov, 16.0/9.0, 0.1, 100)
	want := mgl32.Perspective(fov, 16.0/9.0, 0.1, 100)

	for i := range 16 {
		if abs(got[i]-want[i]) > eps {
			t.Errorf("Perspective[%d] = %f, mathgl has %f", i, got[i], want[i])
		}
	}
	if got[11] != -1 || got[15] != 0 {
		t.Errorf("Perspective should have [11]=-1 and [15]=0, got %f and %f", got[11], got[15])
	}
}

func TestLookAtMatchesMathgl(t *testing.T) {
	tests := []struct {
		name        string
		eye, center Vec3
	}{
		{"on z axis", Vec3{0, 0, 5}, Vec3{}},
		{"on x axis", Vec3{5, 0, 0}, Vec3{}},
		{"off origin", Vec3{3, 2, -4}, Vec3{1, 1, 1}},
	}
	up := Vec3{0, 1, 0}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookAt(tt.eye, tt.center, up)
			want := mgl32.LookAtV(
				mglVec(tt.eye),
				mglVec(tt.center),
				mglVec(up),
			)
			for i := range 16 {
				if abs(got[i]-want[i]) > 1e-4 {
					t.Errorf("LookAt[%d] = %f, mathgl has %f", i, got[i], want[i])
				}
			}
		})
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{3, 2, -4}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	p := mgl32.TransformCoordinate(mglVec(eye), mgl32.Mat4(m))
	if p.Length() > 1e-4 {
		t.Errorf("eye in view space should be origin, got %v", p)
	}

	// The target lies on the negative Z axis of view space.
	c := mgl32.TransformCoordinate(mgl32.Vec3{}, mgl32.Mat4(m))
	if abs(c.X()) > 1e-4 || abs(c.Y()) > 1e-4 || c.Z() >= 0 {
		t.Errorf("center in view space should be on -Z, got %v", c)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	if l := n.Length(); abs(l-1) > eps {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing the zero vector should return zero")
	}
}

func mglVec(v Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
