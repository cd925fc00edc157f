// Tray configuration service - exposes the experiment catalog and the reagent
// tray optimizer over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ketos-lab/traylims/pkg/api"
	"github.com/ketos-lab/traylims/pkg/batch"
	"github.com/ketos-lab/traylims/pkg/config"
	"github.com/ketos-lab/traylims/pkg/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envFile := flag.String("env-file", ".env", "Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("Warning: Could not load %s file: %v", *envFile, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", *envFile)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	log.Printf("Starting %s", version.Full())
	log.Printf("HTTP Port: %s", cfg.HTTPPort)
	log.Printf("Batch workers: %d", cfg.BatchWorkers)

	pool := batch.NewPool(cfg.BatchWorkers)
	server := api.NewServer(pool)

	// Serve until interrupted, then drain in-flight requests.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(":" + cfg.HTTPPort)
	}()
	log.Printf("HTTP server listening on :%s", cfg.HTTPPort)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	case <-ctx.Done():
		log.Printf("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
			os.Exit(1)
		}
	}
}
