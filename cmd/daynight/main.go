// Package main is the entry point for the day/night terrain demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Patryk0329/DayNightSimulation/internal/config"
	"github.com/Patryk0329/DayNightSimulation/internal/game"
	"github.com/Patryk0329/DayNightSimulation/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Day/Night Terrain Demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run demo
	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create demo", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	// Run the main loop
	if err := g.Run(); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}
