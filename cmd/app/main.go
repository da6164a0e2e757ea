package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"dispatch/cmd"
)

// The batch binary runs the whole pipeline once: it reads orders.json,
// couriers.json, zones.csv and log.csv from the working directory (paths
// overridable via the environment) and writes clean_orders.json, plan.json
// and reconciliation.json next to them.
func main() {
	// A .env file is optional; the defaults cover a plain data directory.
	_ = godotenv.Load(".env")

	config := cmd.NewConfig()
	root := cmd.NewCompositionRoot(config)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	runner := root.CreatePipelineRunner(logger)

	if err := runner.RunOnce(context.Background()); err != nil {
		log.Fatalf("pipeline run failed: %v", err)
	}
}
