package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/api"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/api/handlers"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/api/ws"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/grading"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/ingest"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/store"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/database"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the grading API server",
	Long: `Starts the REST API server for graded film data.

Endpoints:
  GET  /health                - Health check
  GET  /ws                    - Live grade updates (WebSocket)
  GET  /api/grades/{week}     - Graded rows for a week
  GET  /api/players/{player}  - Player season rollup
  GET  /api/season/summary    - Season summaries for all players
  POST /api/ingest            - Upload and grade a weekly CSV

Example:
  go run ./cmd/filmgrade api
  go run ./cmd/filmgrade api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (default: PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	if apiPort != "" {
		cfg.Port = apiPort
	}

	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	weights, err := loadWeights(cfg, log)
	if err != nil {
		return err
	}

	// Database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	log.Info("Connected to database")

	// Cache (no-op when Redis is disabled)
	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	cache := redis.NewCache(redisClient, "filmgrade")

	// Components
	repo := store.NewRepository(db.Pool)
	engine := grading.New(weights, log)
	reader := ingest.NewReader(log)
	hub := ws.NewHub(log)

	gradesHandler := handlers.NewGradesHandler(repo, cache, engine, reader, hub, log)

	router := api.NewRouter(gradesHandler, hub, log)
	server := api.New(cfg, log, router)

	// Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
