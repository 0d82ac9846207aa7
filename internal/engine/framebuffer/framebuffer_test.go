package framebuffer

import "testing"

func TestClampSize(t *testing.T) {
	tests := []struct {
		w, h         int32
		wantW, wantH int32
	}{
		{640, 480, 640, 480},
		{0, 480, 1, 480},
		{640, -3, 640, 1},
		{0, 0, 1, 1},
	}

	for _, tt := range tests {
		if w, h := clampSize(tt.w, tt.h); w != tt.wantW || h != tt.wantH {
			t.Errorf("clampSize(%d, %d) = (%d, %d), want (%d, %d)", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestResizeSameSizeIsNoop(t *testing.T) {
	// No GL objects are touched when the size is unchanged.
	fb := &Framebuffer{width: 320, height: 200}
	if fb.Resize(320, 200) {
		t.Error("Resize to the current size should report no change")
	}

	collapsed := &Framebuffer{width: 1, height: 1}
	if collapsed.Resize(0, 0) {
		t.Error("collapsed 1x1 target should not be reallocated")
	}
}
