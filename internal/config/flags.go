package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSectors    = flag.Int("sectors", 0, "Sphere sectors (longitude slices)")
	flagStacks     = flag.Int("stacks", 0, "Sphere stacks (latitude bands)")
	flagExport     = flag.String("export", "", "Write the sphere to a glTF file and exit")
	flagWrite      = flag.Bool("write-config", false, "Save the effective config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// ExportPath returns the glTF output path if provided via --export flag.
func ExportPath() string {
	return *flagExport
}

// WriteConfigRequested reports whether --write-config was given.
func WriteConfigRequested() bool {
	return *flagWrite
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagSectors > 0 {
		cfg.Sphere.Sectors = *flagSectors
	}
	if *flagStacks > 0 {
		cfg.Sphere.Stacks = *flagStacks
	}
}
