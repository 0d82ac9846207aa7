// Package main is the entry point for the ImGui sphere inspector.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/sphereview/internal/config"
	"github.com/Faultbox/sphereview/internal/engine/shader"
	"github.com/Faultbox/sphereview/internal/inspector"
	"github.com/Faultbox/sphereview/internal/logger"
)

func main() {
	// ImGui and GL calls must stay on the main thread.
	runtime.LockOSThread()

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

	logger.Info("=== sphereinspect ===")

	in, err := inspector.New(cfg)
	if err != nil {
		if errors.Is(err, shader.ErrBuild) {
			logger.Fatal("shader build failed", zap.Error(err))
		}
		logger.Error("failed to create inspector", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer in.Close()

	in.Run()
	logger.Info("inspector closed normally")
}
