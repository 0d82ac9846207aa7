package capture

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFramebuffer reads the current read framebuffer as bottom-up RGBA.
func ReadFramebuffer(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}
