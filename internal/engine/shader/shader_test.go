package shader

import (
	"errors"
	"strings"
	"testing"
	"unsafe"
)

func TestInfoLog(t *testing.T) {
	tests := []struct {
		name   string
		logLen int32
		fill   string
		want   string
	}{
		{"trailing nul trimmed", 12, "0:1: error\x00", "0:1: error"},
		{"no nul", 4, "oops", "oops"},
		{"empty log", 0, "", "(no info log)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := infoLog(tt.logLen, func(buf *uint8) {
				dst := unsafe.Slice(buf, int(tt.logLen))
				copy(dst, tt.fill)
			})
			if got != tt.want {
				t.Errorf("infoLog() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildErrorKeepsLog(t *testing.T) {
	log := "0:3(12): error: `vPos' undeclared"
	err := buildError("vertex shader", log)

	if !errors.Is(err, ErrBuild) {
		t.Errorf("errors.Is(%v, ErrBuild) = false", err)
	}
	if !strings.HasSuffix(err.Error(), log) {
		t.Errorf("error %q should end with the GL log %q", err, log)
	}
}
