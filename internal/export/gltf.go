// Package export writes generated meshes to interchange formats.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoVertices is returned when there is nothing to export.
var ErrNoVertices = errors.New("export: no vertices")

// Positions groups a flat x, y, z float list into vertices.
func Positions(vertices []float32) ([][3]float32, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	if len(vertices)%3 != 0 {
		return nil, fmt.Errorf("export: %d floats is not a whole number of vertices", len(vertices))
	}

	out := make([][3]float32, len(vertices)/3)
	for i := range out {
		out[i] = [3]float32{vertices[i*3], vertices[i*3+1], vertices[i*3+2]}
	}
	return out, nil
}

// Document builds a glTF document holding one non-indexed triangle-list mesh.
func Document(name string, vertices []float32) (*gltf.Document, error) {
	positions, err := Positions(vertices)
	if err != nil {
		return nil, err
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "sphereview"

	position := modeler.WritePosition(doc, positions)
	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]int{gltf.POSITION: position},
			Mode:       gltf.PrimitiveTriangles,
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc, nil
}

// WriteGLTF saves vertices as a glTF file. A .glb extension produces the
// binary container, anything else the JSON form with an embedded buffer.
func WriteGLTF(path, name string, vertices []float32) error {
	doc, err := Document(name, vertices)
	if err != nil {
		return err
	}

	if isBinary(path) {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func isBinary(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".glb")
}
