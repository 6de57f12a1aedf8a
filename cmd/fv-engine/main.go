package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"FlowVet/internal/config"
	"FlowVet/internal/engine/stream"
	"FlowVet/internal/logger"
)

func main() {
	// 1. Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zl = logger.WithComponent(zl, "fv-engine")
	zl.Info().Msg("Starting fv-engine...")

	// 2. Initialize the stream engine
	engine, err := stream.NewEngine(cfg, zl)
	if err != nil {
		zl.Fatal().Err(err).Msg("Failed to create stream engine")
	}

	// 3. Start the engine
	engine.Start()

	// 4. Wait for a shutdown signal for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	zl.Info().Msg("Shutdown signal received, stopping engine...")
	engine.Stop()
	zl.Info().Msg("Shutdown complete")
}
