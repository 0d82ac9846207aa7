package export

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/sphereview/internal/engine/sphere"
)

func TestPositions(t *testing.T) {
	got, err := Positions([]float32{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	want := [][3]float32{{1, 2, 3}, {4, 5, 6}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Positions() = %v, want %v", got, want)
	}

	if _, err := Positions(nil); !errors.Is(err, ErrNoVertices) {
		t.Errorf("Positions(nil) err = %v, want ErrNoVertices", err)
	}
	if _, err := Positions([]float32{1, 2}); err == nil {
		t.Error("expected error for misaligned input")
	}
}

func TestWriteGLTFRoundTrip(t *testing.T) {
	vertices, err := sphere.Generate(1, 8, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, name := range []string{"sphere.gltf", "sphere.glb"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := WriteGLTF(path, "Sphere", vertices); err != nil {
				t.Fatalf("WriteGLTF: %v", err)
			}

			doc, err := gltf.Open(path)
			if err != nil {
				t.Fatalf("gltf.Open: %v", err)
			}
			if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
				t.Fatalf("expected one mesh with one primitive, got %d meshes", len(doc.Meshes))
			}

			prim := doc.Meshes[0].Primitives[0]
			if prim.Indices != nil {
				t.Error("triangle list should not be indexed")
			}
			if prim.Mode != gltf.PrimitiveTriangles {
				t.Errorf("mode = %v, want triangles", prim.Mode)
			}

			acr := doc.Accessors[prim.Attributes[gltf.POSITION]]
			positions, err := modeler.ReadPosition(doc, acr, nil)
			if err != nil {
				t.Fatalf("ReadPosition: %v", err)
			}
			if len(positions) != sphere.VertexCount(8, 4) {
				t.Fatalf("read %d positions, want %d", len(positions), sphere.VertexCount(8, 4))
			}
			for i, p := range positions {
				if p != [3]float32{vertices[i*3], vertices[i*3+1], vertices[i*3+2]} {
					t.Fatalf("position %d = %v differs from source", i, p)
				}
			}
		})
	}
}

func TestWriteGLTFEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gltf")
	if err := WriteGLTF(path, "Empty", nil); !errors.Is(err, ErrNoVertices) {
		t.Errorf("WriteGLTF(nil) err = %v, want ErrNoVertices", err)
	}
}
