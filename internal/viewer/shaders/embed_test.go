package shaders

import (
	"strings"
	"testing"
)

func TestSourcesDeclareUniforms(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		uniform string
	}{
		{"vertex", SphereVertexShader, "uMVP"},
		{"fragment", SphereFragmentShader, "uColor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.source, "#version 410 core") {
				t.Errorf("%s shader should target GLSL 410 core", tt.name)
			}
			if !strings.Contains(tt.source, tt.uniform) {
				t.Errorf("%s shader should declare %s", tt.name, tt.uniform)
			}
		})
	}
}
