package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"maitred/internal/api"
	"maitred/internal/catalog"
	"maitred/internal/config"
	"maitred/internal/coordinator"
	"maitred/internal/floorplan"
	"maitred/internal/monitoring"
	"maitred/internal/orderbook"
	"maitred/internal/reservations"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	apiPort := cfg.Server.Port
	if *port != 0 {
		apiPort = *port
	}
	promPort := cfg.Server.MetricsPort
	if *metricsPort != 0 {
		promPort = *metricsPort
	}

	// Seed the stores
	cat := catalog.New()
	for _, item := range cfg.MenuItems() {
		if err := cat.AddItem(item); err != nil {
			log.Fatalf("Failed to seed menu item %s: %v", item.ID, err)
		}
	}
	floor, err := floorplan.New(cfg.FloorTables())
	if err != nil {
		log.Fatalf("Failed to seed floor plan: %v", err)
	}

	// Wire the coordinator
	metrics := monitoring.NewMetrics()
	hub := api.NewEventHub()
	ops := coordinator.New(cat, floor, orderbook.New(), reservations.New(), hub, metrics)

	// API server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", apiPort),
		Handler: api.NewServer(ops, hub, metrics).Router(),
	}

	// Metrics server
	go startMetricsServer(promPort, metrics)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting %s operations tracker on port %d", cfg.RestaurantName, apiPort)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func startMetricsServer(port int, metrics *monitoring.Metrics) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(metrics.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
