package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"dispatch/cmd"
)

// The server binary exposes the pipeline over HTTP and, when
// PLAN_REFRESH_SCHEDULE is set, periodically re-runs the file-based pipeline
// so the artifacts on disk track the input files.
func main() {
	_ = godotenv.Load(".env")

	config := cmd.NewConfig()
	root := cmd.NewCompositionRoot(config)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if config.RefreshSchedule != "" {
		jobManager := root.CreateJobManager(logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	e := echo.New()
	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
