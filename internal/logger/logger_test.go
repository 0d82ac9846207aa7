package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// initFile points the loggers at a fresh file and returns a reader for it.
func initFile(t *testing.T, opts Options) func() string {
	t.Helper()

	opts.LogFile = filepath.Join(t.TempDir(), "sphereview.log")
	if err := Init(opts); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return func() string {
		Sync()
		content, err := os.ReadFile(opts.LogFile)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		return string(content)
	}
}

func TestGlobalLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			read := initFile(t, Options{Level: tt.level})

			Log.Debug("frame timing")
			Log.Info("sphere uploaded")
			Log.Warn("vsync unavailable")
			Log.Error("screenshot failed")
			content := read()

			for _, exp := range tt.expected {
				if !strings.Contains(content, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(content, exc) {
					t.Errorf("unexpected %s in log output for level %q", exc, tt.level)
				}
			}
		})
	}
}

func TestComponentOverrides(t *testing.T) {
	read := initFile(t, Options{
		Level: "info",
		Components: map[string]string{
			"renderer": "debug",
			"window":   "error",
		},
	})

	tests := []struct {
		component string
		log       func(msg string)
		msg       string
		want      bool
	}{
		{"renderer", func(m string) { Named("renderer").Debug(m) }, "viewport resized", true},
		{"window", func(m string) { Named("window").Info(m) }, "window created", false},
		{"window", func(m string) { Named("window").Warn(m) }, "adaptive vsync refused", false},
		{"window", func(m string) { Named("window").Error(m) }, "context lost", true},
		{"viewer", func(m string) { Named("viewer").Debug(m) }, "fps tick", false},
		{"viewer", func(m string) { Named("viewer").Info(m) }, "viewer initialized", true},
		{"root", func(m string) { Log.Debug(m) }, "root debug", false},
	}
	for _, tt := range tests {
		tt.log(tt.msg)
	}

	content := read()
	for _, tt := range tests {
		if got := strings.Contains(content, tt.msg); got != tt.want {
			t.Errorf("%s: %q logged = %v, want %v", tt.component, tt.msg, got, tt.want)
		}
	}
}

func TestNamedTagsComponent(t *testing.T) {
	read := initFile(t, Options{Components: map[string]string{"renderer": "warn"}})

	Named("viewer").Info("sphere uploaded")
	Named("renderer").Warn("wireframe unsupported")

	lines := strings.Split(strings.TrimSpace(read()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "viewer") || !strings.Contains(lines[0], "sphere uploaded") {
		t.Errorf("expected viewer name and message in %q", lines[0])
	}
	if !strings.Contains(lines[1], "renderer") || !strings.Contains(lines[1], "wireframe unsupported") {
		t.Errorf("expected renderer name and message in %q", lines[1])
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"global", Options{Level: "loud"}, "log level"},
		{"component", Options{Components: map[string]string{"window": "chatty"}}, `"window"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.opts)
			if err == nil {
				t.Fatal("expected error for unknown level")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %s", err, tt.want)
			}
		})
	}
}
