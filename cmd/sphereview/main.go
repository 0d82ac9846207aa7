// Package main is the entry point for the sphere viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/sphereview/internal/config"
	"github.com/Faultbox/sphereview/internal/engine/shader"
	"github.com/Faultbox/sphereview/internal/engine/sphere"
	"github.com/Faultbox/sphereview/internal/export"
	"github.com/Faultbox/sphereview/internal/logger"
	"github.com/Faultbox/sphereview/internal/viewer"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logging.Level,
		Components: cfg.Logging.Components,
		LogFile:    cfg.Logging.LogFile,
		Console:    true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== sphereview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return
	}

	if path := config.ExportPath(); path != "" {
		if err := exportSphere(cfg, path); err != nil {
			logger.Error("export failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		return
	}

	v, err := viewer.New(cfg)
	if err != nil {
		if errors.Is(err, shader.ErrBuild) {
			logger.Fatal("shader build failed", zap.Error(err))
		}
		logger.Error("failed to create viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		v.Close()
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// exportSphere writes the configured sphere to a glTF file.
func exportSphere(cfg *config.Config, path string) error {
	vertices, err := sphere.Generate(cfg.Sphere.Radius, cfg.Sphere.Sectors, cfg.Sphere.Stacks)
	if err != nil {
		return err
	}
	if err := export.WriteGLTF(path, "Sphere", vertices); err != nil {
		return err
	}
	logger.Info("sphere exported",
		zap.String("path", path),
		zap.Int("vertices", len(vertices)/sphere.FloatsPerVertex),
	)
	return nil
}
