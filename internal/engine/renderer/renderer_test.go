package renderer

import "testing"

func TestAspect(t *testing.T) {
	tests := []struct {
		width, height int
		want          float32
	}{
		{1280, 720, 1280.0 / 720.0},
		{600, 600, 1},
		{800, 0, 1},
		{0, 0, 1},
	}

	for _, tt := range tests {
		r := &Renderer{config: Config{Width: tt.width, Height: tt.height}}
		if got := r.Aspect(); got != tt.want {
			t.Errorf("Aspect() for %dx%d = %f, want %f", tt.width, tt.height, got, tt.want)
		}
	}
}
