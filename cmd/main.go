package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/noshahi-devs/notification-service/internal/api"
	"github.com/noshahi-devs/notification-service/internal/config"
	"github.com/noshahi-devs/notification-service/internal/db"
	"github.com/noshahi-devs/notification-service/internal/engine"
	"github.com/noshahi-devs/notification-service/internal/kafka"
	"github.com/noshahi-devs/notification-service/internal/logging"
	"github.com/noshahi-devs/notification-service/internal/mailer"
	"github.com/noshahi-devs/notification-service/internal/monitor"
	"github.com/noshahi-devs/notification-service/internal/templates"
	"github.com/noshahi-devs/notification-service/pkg/ops"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := logging.New(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	// Connect to database
	dbConn, err := db.New(cfg.DB.DSN)
	if err != nil {
		logger.Errorf("Failed to connect to database: %v", err)
		log.Fatalf("Database connection failed: %v", err)
	}
	defer dbConn.Close()

	// Assemble the dispatch engine
	store := templates.NewStore(cfg.Notification.TemplateDir)
	renderer := templates.NewRenderer(store, cfg.Institute)
	transport := mailer.New(cfg.Email, cfg.Notification.EmailsPerSecond)
	hub := monitor.NewHub(logger)

	eng := engine.New(cfg.Email, logger, renderer, transport, dbConn, dbConn).
		WithMonitor(hub)
	if alerter := ops.NewTelegramAlerter(cfg.Ops.TelegramToken, cfg.Ops.TelegramChatID, logger); alerter != nil {
		eng.WithAlerter(alerter)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	// Start Kafka intake when a broker is configured
	var consumer *kafka.Consumer
	if cfg.Kafka.Broker != "" {
		consumer = kafka.NewConsumer(cfg.Kafka.Broker, cfg.Kafka.Topic, cfg.Kafka.GroupID, eng, logger)
		consumer.Start(ctx, &wg)
	}

	// Start API server
	router := api.NewRouter(dbConn, logger, cfg, eng, hub)
	go func() {
		logger.Infof("API started on %s", cfg.API.Port)
		if err := router.Run(cfg.API.Port); err != nil {
			logger.Errorf("API run failed: %v", err)
		}
	}()

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	logger.Infof("Shutting down...")
	cancel()
	if consumer != nil {
		_ = consumer.Close()
	}
	wg.Wait()
	logger.Infof("Service stopped")
}
