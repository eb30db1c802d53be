package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/Elie-MK/eventBooking-microservice/internal/config"
	"github.com/Elie-MK/eventBooking-microservice/internal/consumer"
	"github.com/Elie-MK/eventBooking-microservice/internal/discovery"
	"github.com/Elie-MK/eventBooking-microservice/internal/handlers"
	"github.com/Elie-MK/eventBooking-microservice/internal/messaging"
	"github.com/Elie-MK/eventBooking-microservice/internal/notifier"
	"github.com/Elie-MK/eventBooking-microservice/internal/server"
)

func main() {
	cfg, err := config.Load(config.NotificationService)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to RabbitMQ
	rabbitMQ, err := messaging.NewRabbitMQ(cfg.RabbitMQHost, cfg.RabbitMQPort, cfg.RabbitMQUser, cfg.RabbitMQPassword)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitMQ.Close()

	if err := rabbitMQ.DeclareQueue(cfg.NotificationQueue); err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	messages, err := rabbitMQ.Consume(ctx, cfg.NotificationQueue, cfg.ServiceID, cfg.ConsumerPrefetch)
	if err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	notificationConsumer := consumer.NewNotificationConsumer(notifier.NewConsole())
	go func() {
		notificationConsumer.Run(ctx, messages)
		stop()
	}()

	// Health endpoint only, for Consul
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/health", handlers.HealthCheck(cfg.ServiceName, map[string]handlers.Check{"rabbitmq": rabbitMQ.Ping}))

	consul := discovery.Connect(cfg)
	deregister := consul.RegisterSelf(cfg, "notifications")
	defer deregister()

	log.Printf("🚀 Notification Service listening on queue %s", cfg.NotificationQueue)
	if err := server.Run(ctx, cfg.Addr(), router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
