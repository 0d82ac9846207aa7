package inspector

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"

	"github.com/Faultbox/sphereview/internal/export"
)

// pickResult is what the save dialog returned.
type pickResult struct {
	path string
	err  error
}

// exporter runs the native save dialog off the frame thread and writes the
// glTF file once the frame loop collects the answer.
type exporter struct {
	pick    func() (string, error)
	results chan pickResult
	pending bool
}

func newExporter(pick func() (string, error)) *exporter {
	return &exporter{
		pick:    pick,
		results: make(chan pickResult, 1),
	}
}

// saveDialog asks the user where to write the sphere.
func saveDialog() (string, error) {
	return dialog.File().
		Filter("glTF binary", "glb").
		Filter("glTF", "gltf").
		Title("Export Sphere").
		Save()
}

// open shows the dialog unless one is already up.
func (e *exporter) open() {
	if e.pending {
		return
	}
	e.pending = true
	go func() {
		path, err := e.pick()
		e.results <- pickResult{path: path, err: err}
	}()
}

// busy reports whether a dialog is open.
func (e *exporter) busy() bool {
	return e.pending
}

// poll collects a finished dialog and writes vertices to the chosen file.
// It returns the written path, or "" if no dialog finished or the user
// cancelled.
func (e *exporter) poll(vertices []float32) (string, error) {
	var r pickResult
	select {
	case r = <-e.results:
		e.pending = false
	default:
		return "", nil
	}

	if errors.Is(r.err, dialog.ErrCancelled) {
		return "", nil
	}
	if r.err != nil {
		return "", r.err
	}

	path := withGLTFExtension(r.path)
	if err := export.WriteGLTF(path, "Sphere", vertices); err != nil {
		return "", err
	}
	return path, nil
}

// withGLTFExtension appends .glb unless path already names a glTF file.
func withGLTFExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return path
	}
	return path + ".glb"
}
