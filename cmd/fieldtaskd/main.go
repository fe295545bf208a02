package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"fieldtask/internal/config"
	"fieldtask/internal/repository/sqlite"
	"fieldtask/internal/server"
	"fieldtask/internal/services"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration once; it is passed down to every component.
	// A missing database path is fatal here, before anything starts.
	cfg, err := config.NewLoader().LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening task store: %v\n", err)
		os.Exit(1)
	}

	service := services.NewTaskService(repo)
	srv := server.New(cfg, service)

	go func() {
		log.Printf("fieldtaskd listening on :%d (database: %s)", cfg.Server.ListenPort, cfg.Database.Path)
		if err := srv.Listen(); err != nil {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Println("Shutting down HTTP server...")
				return srv.Shutdown()
			},
			"task-store": func(ctx context.Context) error {
				log.Println("Closing task store...")
				return repo.Close()
			},
		},
	)

	exitCode := <-wait
	log.Printf("fieldtaskd exited with code: %d", exitCode)
	os.Exit(exitCode)
}
