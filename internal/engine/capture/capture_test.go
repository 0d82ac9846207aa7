package capture

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSavePixelsFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := New(dir, "test")

	// Two rows, bottom-up: red at the bottom, blue at the top.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}

	path, err := s.SavePixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	top := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	bottom := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA)
	if top != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", top)
	}
	if bottom != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", bottom)
	}
}

func TestSavePixelsSizeMismatch(t *testing.T) {
	s := New(t.TempDir(), "test")
	if _, err := s.SavePixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := s.SavePixels(nil, 0, 0); err == nil {
		t.Error("expected error for empty capture")
	}
}

func TestFilename(t *testing.T) {
	s := New("out", "sphere")
	s.now = func() time.Time {
		return time.Date(2026, 3, 4, 5, 6, 7, 890_000_000, time.UTC)
	}

	want := filepath.Join("out", "sphere_2026-03-04_05-06-07.890.png")
	if got := s.Filename(); got != want {
		t.Errorf("Filename() = %s, want %s", got, want)
	}

	if got := New("", "x").Filename(); strings.Contains(got, string(filepath.Separator)) {
		t.Errorf("Filename() without dir should be bare, got %s", got)
	}
}
