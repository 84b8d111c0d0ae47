package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WailSalutem-Health-Care/employee-directory/internal/config"
	"github.com/WailSalutem-Health-Care/employee-directory/internal/directory"
	apphttp "github.com/WailSalutem-Health-Care/employee-directory/internal/http"
	"github.com/WailSalutem-Health-Care/employee-directory/internal/messaging"
	"github.com/WailSalutem-Health-Care/employee-directory/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otelCfg, err := telemetry.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load telemetry configuration: %v", err)
	}
	provider, err := telemetry.InitProvider(ctx, otelCfg)
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}
	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	var publisher messaging.PublisherInterface
	if cfg.RabbitMQURL != "" {
		p, err := messaging.NewPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("Warning: %v", err)
			log.Println("Service will continue without load events")
		} else {
			publisher = p
			defer p.Close()
		}
	}

	labels, err := directory.LoadLabels(cfg.DisplayLabelsPath)
	if err != nil {
		log.Fatalf("Failed to load display labels: %v", err)
	}

	client := directory.NewClient(cfg.UsersSourceURL, cfg.UsersSourceTimeout)
	loader := directory.NewLoader(client, publisher, metrics)
	service := directory.NewService(loader, labels, metrics)
	handler := directory.NewHandler(service)

	// The page is served while the single fetch is still in flight.
	go loader.Load(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.SetupRouter(handler, metrics, cfg.Origins()),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Printf("employee-directory starting on %s (users source: %s)", cfg.HTTPAddr, cfg.UsersSourceURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	loader.Discard()
	if err := provider.Shutdown(shutdownCtx); err != nil {
		log.Printf("Telemetry shutdown failed: %v", err)
	}

	log.Println("Server stopped")
}
